// internal/engine/errors.go
package engine

import "fmt"

// InputError marks inputs the engine cannot evaluate at all, as opposed to
// inputs that evaluate to INELIGIBLE. Missing profile fields fail fast here;
// a weak profile still gets a report.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid evaluation input: %s: %s", e.Field, e.Reason)
}

func newInputError(field, reason string) *InputError {
	return &InputError{Field: field, Reason: reason}
}
