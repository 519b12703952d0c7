// internal/engine/criteria/academic.go
package criteria

import (
	"fmt"

	"eligibility-workers/internal/engine/grading"
	"eligibility-workers/internal/models"
)

// EducationLevel checks the profile's level against the accepted set. An
// admin-configured empty set means "not restricted" (mirroring the admin UI's
// "leave empty to accept all"), so the criterion is NOT_APPLICABLE then.
func EducationLevel(profile *models.AcademicProfile, req *models.RequirementSet) models.CriterionResult {
	if len(req.AcceptedLevels) == 0 {
		return notApplicable(models.CriterionEducationLevel, "program does not restrict education level")
	}

	for _, level := range req.AcceptedLevels {
		if profile.EducationLevel == level {
			return satisfied(models.CriterionEducationLevel,
				fmt.Sprintf("education level %s is accepted", profile.EducationLevel))
		}
	}

	return notSatisfied(models.CriterionEducationLevel,
		fmt.Sprintf("education level %s is not accepted; program accepts %v",
			profile.EducationLevel, req.AcceptedLevels))
}

// GPA compares the profile GPA against the configured minimum across grading
// systems. No configured minimum means the dimension is not checked.
// Incomparable systems (OTHER, unknown labels) resolve to NOT_APPLICABLE with
// a manual-review detail; they never count against the applicant.
func GPA(profile *models.AcademicProfile, req *models.RequirementSet) models.CriterionResult {
	if req.MinimumGPA == nil {
		return notApplicable(models.CriterionGPA, "program does not set a minimum GPA")
	}
	if profile.GPA == nil {
		return notSatisfied(models.CriterionGPA, "no GPA on profile; program requires a minimum GPA")
	}

	ord, err := grading.Compare(*profile.GPA, *req.MinimumGPA)
	if err != nil {
		return notApplicable(models.CriterionGPA,
			"GPA grading systems cannot be compared; manual review required")
	}

	if ord == grading.Less {
		return notSatisfied(models.CriterionGPA,
			fmt.Sprintf("GPA below the program minimum of %s", formatGPA(*req.MinimumGPA)))
	}
	return satisfied(models.CriterionGPA,
		fmt.Sprintf("GPA meets the program minimum of %s", formatGPA(*req.MinimumGPA)))
}

func formatGPA(g models.GPA) string {
	if g.Grade != "" {
		return fmt.Sprintf("%s (%s)", g.Grade, g.System)
	}
	return fmt.Sprintf("%g (%s)", g.Value, g.System)
}
