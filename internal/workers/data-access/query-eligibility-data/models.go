// internal/workers/data-access/query-eligibility-data/models.go
package queryeligibilitydata

import "eligibility-workers/internal/models"

type Input struct {
	QueryType   string                 `json:"queryType"`
	ApplicantID string                 `json:"applicantId,omitempty"`
	ProgramID   string                 `json:"programId,omitempty"`
	ProgramIDs  []string               `json:"programIds,omitempty"`
	Filters     map[string]interface{} `json:"filters,omitempty"`
}

type Output struct {
	Data               interface{} `json:"data"`
	RowCount           int         `json:"rowCount"`
	QueryExecutionTime int64       `json:"queryExecutionTime"` // milliseconds
}

type QueryType = models.QueryType

// Export constants for external use
var (
	QueryTypeApplicantProfile       = models.QueryTypeApplicantProfile
	QueryTypeApplicantDocuments     = models.QueryTypeApplicantDocuments
	QueryTypeRequirementSet         = models.QueryTypeRequirementSet
	QueryTypeProgramRequirementSets = models.QueryTypeProgramRequirementSets
)
