// internal/models/requirement.go
package models

import (
	"errors"
	"fmt"
)

// ErrRequirementSetInvalid wraps every violation found by Validate.
var ErrRequirementSetInvalid = errors.New("requirement set invalid")

// RequirementSet is the admission criteria attached to one program. At most
// one active set exists per program; replacing it is a full overwrite.
//
// Empty accepted sets (institutions, courses, funding types, levels) mean
// "not restricted". An empty RequiredDocuments set is a configuration error,
// never "no documents required".
type RequirementSet struct {
	ProgramID    string `json:"programId"`
	ProgramName  string `json:"programName,omitempty"`
	DisplayOrder int    `json:"displayOrder"`

	AcceptedLevels    []EducationLevel `json:"acceptedLevels,omitempty"`
	MinimumGPA        *GPA             `json:"minimumGpa,omitempty"`
	RequiredDocuments []DocumentType   `json:"requiredDocuments"`

	TestMinimums map[TestType]float64 `json:"testMinimums,omitempty"`

	WorkExperienceRequired     bool     `json:"workExperienceRequired"`
	MinimumWorkExperienceYears *float64 `json:"minimumWorkExperienceYears,omitempty"`

	AcceptedInstitutions []string      `json:"acceptedInstitutions,omitempty"`
	AcceptedCourses      []string      `json:"acceptedCourses,omitempty"`
	AcceptedFundingTypes []FundingType `json:"acceptedFundingTypes,omitempty"`

	MinimumStudyDurationMonths *int `json:"minimumStudyDurationMonths,omitempty"`
	CompletionDateRequired     bool `json:"completionDateRequired"`

	// Advisory only, never scored.
	AdditionalRequirements string `json:"additionalRequirements,omitempty"`
}

// Validate checks the invariants an admin-saved requirement set must hold.
// Violations are configuration errors: they belong to the admin caller at
// save time, and degrade to a "configuration invalid" report at evaluation
// time rather than failing the evaluation.
func (r *RequirementSet) Validate() error {
	if r.ProgramID == "" {
		return fmt.Errorf("%w: programId is required", ErrRequirementSetInvalid)
	}
	if len(r.RequiredDocuments) == 0 {
		return fmt.Errorf("%w: requiredDocuments must not be empty", ErrRequirementSetInvalid)
	}
	if r.MinimumGPA != nil && r.MinimumGPA.System == "" {
		return fmt.Errorf("%w: minimumGpa.system is required when minimumGpa is set", ErrRequirementSetInvalid)
	}
	for test, min := range r.TestMinimums {
		if min < 0 {
			return fmt.Errorf("%w: testMinimums[%s] must not be negative", ErrRequirementSetInvalid, test)
		}
	}
	if r.MinimumWorkExperienceYears != nil && *r.MinimumWorkExperienceYears < 0 {
		return fmt.Errorf("%w: minimumWorkExperienceYears must not be negative", ErrRequirementSetInvalid)
	}
	if r.MinimumStudyDurationMonths != nil && *r.MinimumStudyDurationMonths < 0 {
		return fmt.Errorf("%w: minimumStudyDurationMonths must not be negative", ErrRequirementSetInvalid)
	}
	return nil
}
