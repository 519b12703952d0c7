// internal/models/report.go
package models

import "time"

// Verdict is the engine's final classification for one profile-program pair.
type Verdict string

const (
	VerdictEligible   Verdict = "ELIGIBLE"
	VerdictIneligible Verdict = "INELIGIBLE"
	VerdictPartial    Verdict = "PARTIAL"
)

// CriterionStatus is the outcome of one requirement dimension.
type CriterionStatus string

const (
	StatusSatisfied     CriterionStatus = "SATISFIED"
	StatusNotSatisfied  CriterionStatus = "NOT_SATISFIED"
	StatusNotApplicable CriterionStatus = "NOT_APPLICABLE"
)

// CriterionName identifies one independently evaluable requirement dimension.
type CriterionName string

const (
	CriterionEducationLevel CriterionName = "EDUCATION_LEVEL"
	CriterionGPA            CriterionName = "GPA"
	CriterionDocuments      CriterionName = "DOCUMENTS"
	CriterionWorkExperience CriterionName = "WORK_EXPERIENCE"
	CriterionInstitution    CriterionName = "INSTITUTION"
	CriterionCourse         CriterionName = "COURSE"
	CriterionFundingType    CriterionName = "FUNDING_TYPE"
	CriterionStudyDuration  CriterionName = "STUDY_DURATION"
	CriterionCompletionDate CriterionName = "COMPLETION_DATE"
)

// TestCriterion returns the criterion name for one standardized test,
// e.g. TEST_IELTS.
func TestCriterion(test TestType) CriterionName {
	return CriterionName("TEST_" + string(test))
}

// CriterionResult is one line of the per-criterion breakdown. Detail is a
// human-readable reason intended to be displayed to the applicant as-is.
type CriterionResult struct {
	Criterion    CriterionName   `json:"criterion"`
	Status       CriterionStatus `json:"status"`
	Weight       float64         `json:"weight"`
	Contribution float64         `json:"contribution"`
	Detail       string          `json:"detail,omitempty"`
}

// EligibilityReport is the engine's output for one (profile, program) pair.
// It is a derived view: never persisted as a source of truth, recomputed
// whenever the profile, documents, or requirement set change.
type EligibilityReport struct {
	ProgramID   string  `json:"programId"`
	ProgramName string  `json:"programName,omitempty"`
	Verdict     Verdict `json:"verdict"`
	// Score over the applicable criteria only, in [0,100].
	Score    float64           `json:"score"`
	Criteria []CriterionResult `json:"criteria"`

	// Set when the requirement set violated an invariant at evaluation time;
	// the verdict is forced to INELIGIBLE and ConfigDetail explains why.
	ConfigInvalid bool   `json:"configInvalid,omitempty"`
	ConfigDetail  string `json:"configDetail,omitempty"`

	EvaluatedAt time.Time `json:"evaluatedAt"`
}

// Criterion returns the breakdown entry for name, if present.
func (r *EligibilityReport) Criterion(name CriterionName) (CriterionResult, bool) {
	for _, c := range r.Criteria {
		if c.Criterion == name {
			return c, true
		}
	}
	return CriterionResult{}, false
}
