// internal/engine/criteria/tests.go
package criteria

import (
	"fmt"

	"eligibility-workers/internal/models"
)

// TestScore evaluates one standardized test. A configured minimum with no
// score on the profile is a failed criterion: absence is not a pass.
func TestScore(test models.TestType, profile *models.AcademicProfile, req *models.RequirementSet) models.CriterionResult {
	name := models.TestCriterion(test)

	min, required := req.TestMinimums[test]
	if !required {
		return notApplicable(name, fmt.Sprintf("program does not set a minimum %s score", test))
	}

	score, ok := profile.TestScores[test]
	if !ok {
		return notSatisfied(name,
			fmt.Sprintf("no %s score on profile; program requires at least %g", test, min))
	}

	if score < min {
		return notSatisfied(name,
			fmt.Sprintf("%s score %g is below the required minimum %g", test, score, min))
	}
	return satisfied(name,
		fmt.Sprintf("%s score %g meets the required minimum %g", test, score, min))
}
