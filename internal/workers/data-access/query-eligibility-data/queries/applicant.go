// internal/workers/data-access/query-eligibility-data/queries/applicant.go
package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

func ApplicantProfile(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	applicantID, ok := params["applicantId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	var educationLevel, fieldOfStudy, institution string
	var gpa, testScores, workExperience []byte

	err := db.QueryRowContext(ctx, `
		SELECT education_level, field_of_study, gpa, institution, test_scores, work_experience
		FROM academic_profiles
		WHERE applicant_id = $1`, applicantID).Scan(
		&educationLevel, &fieldOfStudy, &gpa,
		&institution, &testScores, &workExperience,
	)
	if err != nil {
		return nil, 0, 0, err
	}

	result := map[string]interface{}{
		"applicantId":    applicantID,
		"educationLevel": educationLevel,
		"fieldOfStudy":   fieldOfStudy,
		"institution":    institution,
		"gpa":            rawJSON(gpa),
		"testScores":     rawJSON(testScores),
		"workExperience": rawJSON(workExperience),
	}

	execTime := time.Since(start).Milliseconds()
	return result, 1, execTime, nil
}

func ApplicantDocuments(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	applicantID, ok := params["applicantId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	rows, err := db.QueryContext(ctx, `
		SELECT doc_type, uploaded_at, meta
		FROM applicant_documents
		WHERE applicant_id = $1
		ORDER BY uploaded_at DESC`, applicantID)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var documents []map[string]interface{}
	for rows.Next() {
		var docType string
		var uploadedAt time.Time
		var meta []byte
		if err := rows.Scan(&docType, &uploadedAt, &meta); err != nil {
			return nil, 0, 0, err
		}
		documents = append(documents, map[string]interface{}{
			"type":       docType,
			"uploadedAt": uploadedAt,
			"meta":       rawJSON(meta),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	execTime := time.Since(start).Milliseconds()
	return documents, len(documents), execTime, nil
}

// rawJSON decodes a jsonb column into a generic value so the output
// carries structured data instead of a base64 byte string.
func rawJSON(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	return v
}
