// internal/workers/eligibility/match-programs/models.go
package matchprograms

import (
	"eligibility-workers/internal/engine"
	"eligibility-workers/internal/models"
)

// Input names the applicant and the explicit candidate program list. The
// worker never recommends programs on its own; an empty candidate list is a
// valid request with an empty result.
type Input struct {
	ApplicantID string   `json:"applicantId"`
	ProgramIDs  []string `json:"programIds"`

	Profile         *models.AcademicProfile  `json:"profile,omitempty"`
	Documents       []models.DocumentHolding `json:"documents,omitempty"`
	RequirementSets []*models.RequirementSet `json:"requirementSets,omitempty"`
}

type Output struct {
	BatchID     string               `json:"batchId"`
	Results     []engine.MatchResult `json:"results"`
	Truncated   bool                 `json:"truncated"`
	Unevaluated []string             `json:"unevaluated,omitempty"`
}
