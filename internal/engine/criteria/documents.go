// internal/engine/criteria/documents.go
package criteria

import (
	"fmt"
	"strings"
	"time"

	"eligibility-workers/internal/models"
)

// Documents checks that every required type has an upload. The overall status
// is the conjunction: one missing type fails the whole criterion, and the
// detail names exactly which types are missing.
func Documents(latest map[models.DocumentType]models.DocumentHolding, req *models.RequirementSet) models.CriterionResult {
	var missing []string
	for _, required := range req.RequiredDocuments {
		if _, ok := latest[required]; !ok {
			missing = append(missing, string(required))
		}
	}

	if len(missing) > 0 {
		return notSatisfied(models.CriterionDocuments,
			fmt.Sprintf("missing required documents: %s", strings.Join(missing, ", ")))
	}
	return satisfied(models.CriterionDocuments,
		fmt.Sprintf("all %d required documents uploaded", len(req.RequiredDocuments)))
}

// Institution matches the profile institution or any document-declared
// institution against the accepted set. Empty set means unrestricted.
func Institution(profile *models.AcademicProfile, latest map[models.DocumentType]models.DocumentHolding, req *models.RequirementSet) models.CriterionResult {
	if len(req.AcceptedInstitutions) == 0 {
		return notApplicable(models.CriterionInstitution, "program does not restrict institutions")
	}

	if matchesSet(profile.Institution, req.AcceptedInstitutions) {
		return satisfied(models.CriterionInstitution,
			fmt.Sprintf("institution %q is accepted", profile.Institution))
	}
	for _, doc := range latest {
		if doc.Meta != nil && matchesSet(doc.Meta.Institution, req.AcceptedInstitutions) {
			return satisfied(models.CriterionInstitution,
				fmt.Sprintf("institution %q is accepted", doc.Meta.Institution))
		}
	}

	return notSatisfied(models.CriterionInstitution,
		"institution is not on the program's accepted list")
}

// Course matches the profile's field of study or any document-declared course
// against the accepted set. Empty set means unrestricted.
func Course(profile *models.AcademicProfile, latest map[models.DocumentType]models.DocumentHolding, req *models.RequirementSet) models.CriterionResult {
	if len(req.AcceptedCourses) == 0 {
		return notApplicable(models.CriterionCourse, "program does not restrict courses")
	}

	if matchesSet(profile.FieldOfStudy, req.AcceptedCourses) {
		return satisfied(models.CriterionCourse,
			fmt.Sprintf("course %q is accepted", profile.FieldOfStudy))
	}
	for _, doc := range latest {
		if doc.Meta != nil && matchesSet(doc.Meta.Course, req.AcceptedCourses) {
			return satisfied(models.CriterionCourse,
				fmt.Sprintf("course %q is accepted", doc.Meta.Course))
		}
	}

	return notSatisfied(models.CriterionCourse,
		"course is not on the program's accepted list")
}

// FundingType checks the declared funding type against the accepted set.
// Empty set means unrestricted. A restricted set with no funding type
// declared on any document is a failed criterion, mirroring the test-score
// rule that absence is not a pass.
func FundingType(latest map[models.DocumentType]models.DocumentHolding, req *models.RequirementSet) models.CriterionResult {
	if len(req.AcceptedFundingTypes) == 0 {
		return notApplicable(models.CriterionFundingType, "program does not restrict funding types")
	}

	declared := false
	for _, doc := range latest {
		if doc.Meta == nil || doc.Meta.FundingType == "" {
			continue
		}
		declared = true
		for _, accepted := range req.AcceptedFundingTypes {
			if doc.Meta.FundingType == accepted {
				return satisfied(models.CriterionFundingType,
					fmt.Sprintf("funding type %s is accepted", doc.Meta.FundingType))
			}
		}
	}

	if !declared {
		return notSatisfied(models.CriterionFundingType,
			"no funding type declared on any document; program restricts funding types")
	}
	return notSatisfied(models.CriterionFundingType,
		"declared funding type is not accepted by the program")
}

// StudyDuration computes whole months between the start and end dates on the
// most recent document that carries both. No configured minimum or missing
// dates resolve to NOT_APPLICABLE; missing dates are insufficient data, never
// an automatic failure.
func StudyDuration(latest map[models.DocumentType]models.DocumentHolding, req *models.RequirementSet) models.CriterionResult {
	if req.MinimumStudyDurationMonths == nil {
		return notApplicable(models.CriterionStudyDuration, "program does not set a minimum study duration")
	}

	doc, ok := newestWithDates(latest)
	if !ok {
		return notApplicable(models.CriterionStudyDuration,
			"insufficient data: no document carries both start and end dates")
	}

	months := wholeMonthsBetween(*doc.Meta.StartDate, *doc.Meta.EndDate)
	if months < *req.MinimumStudyDurationMonths {
		return notSatisfied(models.CriterionStudyDuration,
			fmt.Sprintf("study duration of %d months is below the required %d months",
				months, *req.MinimumStudyDurationMonths))
	}
	return satisfied(models.CriterionStudyDuration,
		fmt.Sprintf("study duration of %d months meets the required %d months",
			months, *req.MinimumStudyDurationMonths))
}

// CompletionDate checks for a document whose end date lies in the past
// relative to the evaluation time.
func CompletionDate(latest map[models.DocumentType]models.DocumentHolding, req *models.RequirementSet, now time.Time) models.CriterionResult {
	if !req.CompletionDateRequired {
		return notApplicable(models.CriterionCompletionDate, "program does not require a completion date")
	}

	for _, doc := range latest {
		if doc.Meta != nil && doc.Meta.EndDate != nil && doc.Meta.EndDate.Before(now) {
			return satisfied(models.CriterionCompletionDate,
				fmt.Sprintf("completed on %s", doc.Meta.EndDate.Format("2006-01-02")))
		}
	}

	return notSatisfied(models.CriterionCompletionDate,
		"no document shows a completion date in the past")
}

func newestWithDates(latest map[models.DocumentType]models.DocumentHolding) (models.DocumentHolding, bool) {
	var best models.DocumentHolding
	found := false
	for _, doc := range latest {
		if doc.Meta == nil || doc.Meta.StartDate == nil || doc.Meta.EndDate == nil {
			continue
		}
		if !found || doc.UploadedAt.After(best.UploadedAt) {
			best = doc
			found = true
		}
	}
	return best, found
}
