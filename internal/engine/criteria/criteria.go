// internal/engine/criteria/criteria.go

// Package criteria holds one evaluator per admission requirement dimension.
// Every evaluator reads its slice of the profile/documents and of the
// requirement set and returns a single CriterionResult; none of them mutate
// their inputs or look at any other criterion.
package criteria

import (
	"strings"

	"eligibility-workers/internal/models"
)

// Fixed criterion weights. These shape the 0-100 score only; which criteria
// gate the verdict is decided by the evaluation policy, not here.
var weights = map[models.CriterionName]float64{
	models.CriterionEducationLevel: 15,
	models.CriterionGPA:            20,
	models.CriterionDocuments:      20,
	models.CriterionWorkExperience: 10,
	models.CriterionInstitution:    5,
	models.CriterionCourse:         5,
	models.CriterionFundingType:    5,
	models.CriterionStudyDuration:  5,
	models.CriterionCompletionDate: 5,
}

// testWeight applies to each standardized test criterion.
const testWeight = 10

// Weight returns the fixed scoring weight of a criterion.
func Weight(name models.CriterionName) float64 {
	if w, ok := weights[name]; ok {
		return w
	}
	if strings.HasPrefix(string(name), "TEST_") {
		return testWeight
	}
	return 0
}

func satisfied(name models.CriterionName, detail string) models.CriterionResult {
	return models.CriterionResult{
		Criterion: name,
		Status:    models.StatusSatisfied,
		Weight:    Weight(name),
		Detail:    detail,
	}
}

func notSatisfied(name models.CriterionName, detail string) models.CriterionResult {
	return models.CriterionResult{
		Criterion: name,
		Status:    models.StatusNotSatisfied,
		Weight:    Weight(name),
		Detail:    detail,
	}
}

func notApplicable(name models.CriterionName, detail string) models.CriterionResult {
	return models.CriterionResult{
		Criterion: name,
		Status:    models.StatusNotApplicable,
		Weight:    Weight(name),
		Detail:    detail,
	}
}

// matchesSet reports whether value matches any entry of set after trimming
// and case folding both sides. Exact equality only; fuzzy matching would make
// the verdict unauditable.
func matchesSet(value string, set []string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	for _, entry := range set {
		if strings.ToLower(strings.TrimSpace(entry)) == v {
			return true
		}
	}
	return false
}
