// internal/engine/matcher.go
package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"eligibility-workers/internal/models"
)

// MatchResult is one program's outcome in a batch. Exactly one of Report or
// ErrorCode is meaningful: a failed evaluation carries the error pair and a
// nil report.
type MatchResult struct {
	ProgramID    string                    `json:"programId"`
	Report       *models.EligibilityReport `json:"report,omitempty"`
	ErrorCode    string                    `json:"errorCode,omitempty"`
	ErrorMessage string                    `json:"errorMessage,omitempty"`
}

// MatchOutcome is the full batch result. When the context deadline cuts the
// batch short, Truncated is set and Unevaluated lists the program IDs that
// never ran.
type MatchOutcome struct {
	Results     []MatchResult `json:"results"`
	Truncated   bool          `json:"truncated"`
	Unevaluated []string      `json:"unevaluated,omitempty"`
}

// MatchPrograms evaluates one profile against every candidate program
// concurrently and ranks the results by score descending, ties broken by the
// program's display order. One program failing (malformed requirement set, a
// panicking evaluator) becomes a per-item error entry; it never drops the
// rest of the batch.
func MatchPrograms(ctx context.Context, profile *models.AcademicProfile, docs []models.DocumentHolding, programs []*models.RequirementSet, policy Policy, now time.Time) (*MatchOutcome, error) {
	if err := checkBatchInputs(profile, programs); err != nil {
		return nil, err
	}
	if len(programs) == 0 {
		return &MatchOutcome{Results: []MatchResult{}}, nil
	}

	type indexed struct {
		idx    int
		result MatchResult
	}

	resultCh := make(chan indexed, len(programs))
	for i, req := range programs {
		go func(idx int, req *models.RequirementSet) {
			resultCh <- indexed{idx: idx, result: evaluateOne(profile, docs, req, policy, now)}
		}(i, req)
	}

	results := make([]MatchResult, len(programs))
	done := make([]bool, len(programs))
	outcome := &MatchOutcome{}

	received := 0
collect:
	for received < len(programs) {
		if ctx.Err() != nil {
			outcome.Truncated = true
			break collect
		}
		select {
		case r := <-resultCh:
			results[r.idx] = r.result
			done[r.idx] = true
			received++
		case <-ctx.Done():
			outcome.Truncated = true
			break collect
		}
	}

	var ranked []MatchResult
	for i, req := range programs {
		if done[i] {
			ranked = append(ranked, results[i])
			continue
		}
		outcome.Unevaluated = append(outcome.Unevaluated, req.ProgramID)
	}

	order := displayOrderIndex(programs)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := rankScore(ranked[i]), rankScore(ranked[j])
		if si != sj {
			return si > sj
		}
		oi, oj := order[ranked[i].ProgramID], order[ranked[j].ProgramID]
		if oi.display != oj.display {
			return oi.display < oj.display
		}
		return oi.position < oj.position
	})

	outcome.Results = ranked
	return outcome, nil
}

func evaluateOne(profile *models.AcademicProfile, docs []models.DocumentHolding, req *models.RequirementSet, policy Policy, now time.Time) (result MatchResult) {
	result.ProgramID = programID(req)

	defer func() {
		if r := recover(); r != nil {
			result.Report = nil
			result.ErrorCode = "EVALUATION_FAILED"
			result.ErrorMessage = fmt.Sprintf("evaluation panicked: %v", r)
		}
	}()

	report, err := Evaluate(profile, docs, req, policy, now)
	if err != nil {
		result.ErrorCode = "EVALUATION_FAILED"
		result.ErrorMessage = err.Error()
		return result
	}
	result.Report = report
	return result
}

// rankScore orders error entries and invalid configurations below every real
// score.
func rankScore(r MatchResult) float64 {
	if r.Report == nil {
		return -1
	}
	return r.Report.Score
}

type programOrder struct {
	display  int
	position int
}

func displayOrderIndex(programs []*models.RequirementSet) map[string]programOrder {
	order := make(map[string]programOrder, len(programs))
	for i, req := range programs {
		id := programID(req)
		if _, seen := order[id]; seen {
			continue
		}
		order[id] = programOrder{display: req.DisplayOrder, position: i}
	}
	return order
}

func programID(req *models.RequirementSet) string {
	if req == nil {
		return ""
	}
	return req.ProgramID
}

func checkBatchInputs(profile *models.AcademicProfile, programs []*models.RequirementSet) error {
	if profile == nil {
		return newInputError("profile", "must not be nil")
	}
	for i, req := range programs {
		if req == nil {
			return newInputError(fmt.Sprintf("programs[%d]", i), "must not be nil")
		}
	}
	return nil
}
