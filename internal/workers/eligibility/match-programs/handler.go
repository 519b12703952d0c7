// internal/workers/eligibility/match-programs/handler.go
package matchprograms

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"eligibility-workers/internal/common/errors"
	"eligibility-workers/internal/common/logger"
	"eligibility-workers/internal/common/metrics"
	"eligibility-workers/internal/engine"
	"eligibility-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "match-programs"
)

type Handler struct {
	config *Config
	db     *sql.DB
	redis  *redis.Client
	logger logger.Logger
}

func NewHandler(config *Config, db *sql.DB, redis *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
		redis:  redis,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		code := "EVALUATION_FAILED"
		if stdErr, ok := err.(*errors.StandardError); ok {
			code = string(stdErr.Code)
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, code).Inc()
		h.failJob(client, job, code, err.Error())
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	profile := input.Profile
	if profile == nil {
		if input.ApplicantID == "" {
			return nil, errors.NewProfileMalformedError("neither profile nor applicantId provided")
		}
		var err error
		profile, err = h.getProfile(ctx, input.ApplicantID)
		if err != nil {
			return nil, err
		}
	}

	docs := input.Documents
	if docs == nil && input.ApplicantID != "" {
		var err error
		docs, err = h.getDocuments(ctx, input.ApplicantID)
		if err != nil {
			return nil, err
		}
	}

	programs := input.RequirementSets
	if programs == nil && len(input.ProgramIDs) > 0 {
		var err error
		programs, err = h.getRequirementSets(ctx, input.ProgramIDs)
		if err != nil {
			return nil, err
		}
	}

	metrics.MatchBatchSize.WithLabelValues(TaskType).Observe(float64(len(programs)))

	outcome, err := engine.MatchPrograms(ctx, profile, docs, programs, h.config.Policy, time.Now().UTC())
	if err != nil {
		if inputErr, ok := err.(*engine.InputError); ok {
			return nil, errors.NewProfileMalformedError(inputErr.Error())
		}
		return nil, errors.NewEvaluationFailedError(err)
	}

	for _, r := range outcome.Results {
		if r.Report != nil {
			metrics.EvaluationsByVerdict.WithLabelValues(string(r.Report.Verdict)).Inc()
		}
	}

	output := &Output{
		BatchID:     uuid.NewString(),
		Results:     outcome.Results,
		Truncated:   outcome.Truncated,
		Unevaluated: outcome.Unevaluated,
	}

	h.logger.Info("programs matched", map[string]interface{}{
		"applicantId": profile.ApplicantID,
		"batchId":     output.BatchID,
		"programs":    len(programs),
		"truncated":   output.Truncated,
	})

	return output, nil
}

func (h *Handler) getProfile(ctx context.Context, applicantID string) (*models.AcademicProfile, error) {
	cacheKey := "applicant:profile:" + applicantID
	if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
		var profile models.AcademicProfile
		if err := json.Unmarshal([]byte(val), &profile); err == nil {
			return &profile, nil
		}
	}

	row := h.db.QueryRowContext(ctx, `
		SELECT education_level, field_of_study, gpa, institution, test_scores, work_experience
		FROM academic_profiles WHERE applicant_id = $1`, applicantID)

	profile := models.AcademicProfile{ApplicantID: applicantID}
	var gpa, testScores, workExperience []byte
	err := row.Scan(&profile.EducationLevel, &profile.FieldOfStudy, &gpa,
		&profile.Institution, &testScores, &workExperience)
	if err == sql.ErrNoRows {
		return nil, errors.NewProfileNotFoundError(applicantID)
	}
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("applicant_profile", err)
	}

	if len(gpa) > 0 {
		_ = json.Unmarshal(gpa, &profile.GPA)
	}
	if len(testScores) > 0 {
		_ = json.Unmarshal(testScores, &profile.TestScores)
	}
	if len(workExperience) > 0 {
		_ = json.Unmarshal(workExperience, &profile.WorkExperience)
	}

	data, _ := json.Marshal(profile)
	h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL)

	return &profile, nil
}

func (h *Handler) getDocuments(ctx context.Context, applicantID string) ([]models.DocumentHolding, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT doc_type, uploaded_at, meta
		FROM applicant_documents WHERE applicant_id = $1`, applicantID)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("applicant_documents", err)
	}
	defer rows.Close()

	var docs []models.DocumentHolding
	for rows.Next() {
		var doc models.DocumentHolding
		var meta []byte
		if err := rows.Scan(&doc.Type, &doc.UploadedAt, &meta); err != nil {
			return nil, errors.NewQueryExecutionFailedError("applicant_documents", err)
		}
		if len(meta) > 0 {
			_ = json.Unmarshal(meta, &doc.Meta)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("applicant_documents", err)
	}

	return docs, nil
}

// getRequirementSets loads every candidate program's requirement set in one
// round trip. Programs without a stored set are left out; the engine reports
// them as unevaluated only if the caller listed them inline.
func (h *Handler) getRequirementSets(ctx context.Context, programIDs []string) ([]*models.RequirementSet, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT program_id, payload
		FROM program_requirement_sets WHERE program_id = ANY($1)`, pq.Array(programIDs))
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("program_requirement_sets", err)
	}
	defer rows.Close()

	byID := make(map[string]*models.RequirementSet, len(programIDs))
	for rows.Next() {
		var programID string
		var payload []byte
		if err := rows.Scan(&programID, &payload); err != nil {
			return nil, errors.NewQueryExecutionFailedError("program_requirement_sets", err)
		}
		var req models.RequirementSet
		if err := json.Unmarshal(payload, &req); err != nil {
			h.logger.Warn("skipping undecodable requirement set", map[string]interface{}{
				"programId": programID,
				"error":     err,
			})
			continue
		}
		byID[programID] = &req
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("program_requirement_sets", err)
	}

	// Preserve the caller's candidate order.
	programs := make([]*models.RequirementSet, 0, len(byID))
	for _, id := range programIDs {
		if req, ok := byID[id]; ok {
			programs = append(programs, req)
		}
	}
	return programs, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
