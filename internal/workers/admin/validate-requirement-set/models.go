// internal/workers/admin/validate-requirement-set/models.go
package validaterequirementset

// Input carries the raw requirement-set payload as submitted by the admin UI.
// The raw map form lets the schema check report unknown fields and wrong
// types before anything is decoded into the model.
type Input struct {
	ProgramID      string                 `json:"programId"`
	RequirementSet map[string]interface{} `json:"requirementSet"`
}

// Output is always completed, never thrown: the admin UI renders the error
// list inline next to the form fields.
type Output struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}
