// internal/common/validation/schema.go

// Package validation holds the structural JSON schema for requirement sets.
// Structural checks run before the model-level invariant checks so admins get
// shape errors (wrong types, unknown enum values) and rule errors separately.
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

const requirementSetSchema = `{
	"type": "object",
	"required": ["programId", "requiredDocuments"],
	"properties": {
		"programId": {"type": "string", "minLength": 1},
		"programName": {"type": "string"},
		"displayOrder": {"type": "integer"},
		"acceptedLevels": {
			"type": "array",
			"items": {
				"type": "string",
				"enum": ["HIGH_SCHOOL", "DIPLOMA", "UNDERGRADUATE", "MASTERS", "DOCTORATE"]
			}
		},
		"minimumGpa": {
			"type": "object",
			"required": ["system"],
			"properties": {
				"value": {"type": "number"},
				"grade": {"type": "string"},
				"system": {
					"type": "string",
					"enum": ["PERCENTAGE", "GPA_4", "GPA_5", "CGPA_10", "LETTER", "WASSCE", "UK_CLASS", "OTHER"]
				}
			}
		},
		"requiredDocuments": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "string",
				"enum": ["PASSPORT_COPY", "TRANSCRIPT", "BIRTH_CERTIFICATE", "DEGREE_CERTIFICATE", "CV",
					"RECOMMENDATION_LETTER", "STATEMENT_OF_PURPOSE", "FINANCIAL_STATEMENT", "ENGLISH_CERTIFICATE"]
			}
		},
		"testMinimums": {
			"type": "object",
			"additionalProperties": {"type": "number", "minimum": 0},
			"propertyNames": {
				"enum": ["TOEFL", "IELTS", "DUOLINGO", "PTE", "SAT", "ACT", "GRE", "GMAT"]
			}
		},
		"workExperienceRequired": {"type": "boolean"},
		"minimumWorkExperienceYears": {"type": "number", "minimum": 0},
		"acceptedInstitutions": {"type": "array", "items": {"type": "string"}},
		"acceptedCourses": {"type": "array", "items": {"type": "string"}},
		"acceptedFundingTypes": {
			"type": "array",
			"items": {
				"type": "string",
				"enum": ["SELF_FUNDED", "SCHOLARSHIP", "LOAN", "SPONSOR", "GOVERNMENT"]
			}
		},
		"minimumStudyDurationMonths": {"type": "integer", "minimum": 0},
		"completionDateRequired": {"type": "boolean"},
		"additionalRequirements": {"type": "string"}
	},
	"additionalProperties": false
}`

// ValidateRequirementSetShape checks a raw requirement-set payload against
// the JSON schema.
func ValidateRequirementSetShape(payload map[string]interface{}) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewStringLoader(requirementSetSchema)
	documentLoader := gojsonschema.NewGoLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed to run: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, e := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   e.Field(),
			Message: e.Description(),
			Code:    e.Type(),
		})
	}
	return out, nil
}
