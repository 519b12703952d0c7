// internal/workers/eligibility/evaluate-eligibility/models.go
package evaluateeligibility

import "eligibility-workers/internal/models"

// Input carries either inline evaluation data or the IDs to load it by.
// Inline values win; IDs are the fallback for process models that only carry
// references.
type Input struct {
	ApplicantID string `json:"applicantId"`
	ProgramID   string `json:"programId,omitempty"`

	Profile        *models.AcademicProfile  `json:"profile,omitempty"`
	Documents      []models.DocumentHolding `json:"documents,omitempty"`
	RequirementSet *models.RequirementSet   `json:"requirementSet,omitempty"`
}

type Output struct {
	Report  *models.EligibilityReport `json:"report"`
	Verdict models.Verdict            `json:"verdict"`
	Score   float64                   `json:"score"`
}
