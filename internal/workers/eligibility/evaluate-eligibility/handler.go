// internal/workers/eligibility/evaluate-eligibility/handler.go
package evaluateeligibility

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
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "evaluate-eligibility"
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
	metrics.EvaluationsByVerdict.WithLabelValues(string(output.Verdict)).Inc()

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

	req := input.RequirementSet
	if req == nil {
		if input.ProgramID == "" {
			return nil, errors.NewRequirementSetNotFoundError("(none given)")
		}
		var err error
		req, err = h.getRequirementSet(ctx, input.ProgramID)
		if err != nil {
			return nil, err
		}
	}

	report, err := engine.Evaluate(profile, docs, req, h.config.Policy, time.Now().UTC())
	if err != nil {
		if inputErr, ok := err.(*engine.InputError); ok {
			return nil, errors.NewProfileMalformedError(inputErr.Error())
		}
		return nil, errors.NewEvaluationFailedError(err)
	}

	h.logger.Info("eligibility evaluated", map[string]interface{}{
		"applicantId": profile.ApplicantID,
		"programId":   report.ProgramID,
		"verdict":     report.Verdict,
		"score":       report.Score,
	})

	return &Output{
		Report:  report,
		Verdict: report.Verdict,
		Score:   report.Score,
	}, nil
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
	cacheKey := "applicant:documents:" + applicantID
	if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
		var docs []models.DocumentHolding
		if err := json.Unmarshal([]byte(val), &docs); err == nil {
			return docs, nil
		}
	}

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

	data, _ := json.Marshal(docs)
	h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL)

	return docs, nil
}

func (h *Handler) getRequirementSet(ctx context.Context, programID string) (*models.RequirementSet, error) {
	cacheKey := "program:requirements:" + programID
	if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
		var req models.RequirementSet
		if err := json.Unmarshal([]byte(val), &req); err == nil {
			return &req, nil
		}
	}

	row := h.db.QueryRowContext(ctx, `
		SELECT payload FROM program_requirement_sets WHERE program_id = $1`, programID)

	var payload []byte
	err := row.Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, errors.NewRequirementSetNotFoundError(programID)
	}
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("requirement_set", err)
	}

	var req models.RequirementSet
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, errors.NewRequirementSetInvalidError(fmt.Sprintf("programId: %s, error: %v", programID, err))
	}

	h.redis.Set(ctx, cacheKey, payload, h.config.CacheTTL)

	return &req, nil
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
