// internal/engine/policy.go
package engine

import "eligibility-workers/internal/models"

// Policy tunes how per-criterion results roll up into a verdict. Gating
// criteria dominate: one failed gate forces INELIGIBLE no matter the score.
type Policy struct {
	// Minimum score for ELIGIBLE, in [0,100].
	EligibleScoreThreshold float64
	// Criteria whose failure forces INELIGIBLE outright.
	GatingCriteria map[models.CriterionName]bool
}

// DefaultPolicy gates on documents and education level with an eligibility
// threshold of 80.
func DefaultPolicy() Policy {
	return Policy{
		EligibleScoreThreshold: 80,
		GatingCriteria: map[models.CriterionName]bool{
			models.CriterionDocuments:      true,
			models.CriterionEducationLevel: true,
		},
	}
}

// PolicyFrom builds a Policy from configuration values. Out-of-range
// thresholds and empty gating sets fall back to the defaults.
func PolicyFrom(threshold float64, gating []string) Policy {
	p := DefaultPolicy()
	if threshold > 0 && threshold <= 100 {
		p.EligibleScoreThreshold = threshold
	}
	if len(gating) > 0 {
		p.GatingCriteria = make(map[models.CriterionName]bool, len(gating))
		for _, name := range gating {
			p.GatingCriteria[models.CriterionName(name)] = true
		}
	}
	return p
}

func (p Policy) gates(name models.CriterionName) bool {
	return p.GatingCriteria[name]
}
