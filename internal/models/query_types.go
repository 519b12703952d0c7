// internal/models/query_types.go
package models

type QueryType string

const (
	QueryTypeApplicantProfile       QueryType = "applicant_profile"
	QueryTypeApplicantDocuments     QueryType = "applicant_documents"
	QueryTypeRequirementSet         QueryType = "requirement_set"
	QueryTypeProgramRequirementSets QueryType = "program_requirement_sets"
)
