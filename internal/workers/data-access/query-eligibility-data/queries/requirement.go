// internal/workers/data-access/query-eligibility-data/queries/requirement.go
package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

func RequirementSet(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	programID, ok := params["programId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	var payload []byte
	err := db.QueryRowContext(ctx, `
		SELECT payload
		FROM program_requirement_sets
		WHERE program_id = $1`, programID).Scan(&payload)
	if err != nil {
		return nil, 0, 0, err
	}

	result := map[string]interface{}{
		"programId":      programID,
		"requirementSet": rawJSON(payload),
	}

	execTime := time.Since(start).Milliseconds()
	return result, 1, execTime, nil
}

func ProgramRequirementSets(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	programIDs, ok := params["programIds"].([]string)
	if !ok || len(programIDs) == 0 {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	rows, err := db.QueryContext(ctx, `
		SELECT program_id, payload
		FROM program_requirement_sets
		WHERE program_id = ANY($1)`, pq.Array(programIDs))
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	byID := make(map[string]interface{})
	for rows.Next() {
		var programID string
		var payload []byte
		if err := rows.Scan(&programID, &payload); err != nil {
			return nil, 0, 0, err
		}
		byID[programID] = rawJSON(payload)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	// Preserve the caller's candidate order; missing programs are skipped.
	var results []map[string]interface{}
	for _, id := range programIDs {
		payload, found := byID[id]
		if !found {
			continue
		}
		results = append(results, map[string]interface{}{
			"programId":      id,
			"requirementSet": payload,
		})
	}

	execTime := time.Since(start).Milliseconds()
	return results, len(results), execTime, nil
}
