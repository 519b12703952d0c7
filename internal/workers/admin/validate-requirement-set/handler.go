// internal/workers/admin/validate-requirement-set/handler.go
package validaterequirementset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eligibility-workers/internal/common/logger"
	"eligibility-workers/internal/common/metrics"
	"eligibility-workers/internal/common/validation"
	"eligibility-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-requirement-set"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
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
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "VALIDATION_ERROR").Inc()
		h.failJob(client, job, "VALIDATION_ERROR", err.Error())
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())

	h.completeJob(client, job, output)
}

// execute runs the structural schema check first, then the model invariants.
// Validation findings are results, not errors: only a broken validation run
// itself errors out.
func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if input.RequirementSet == nil {
		return &Output{Valid: false, Errors: []string{"requirementSet: payload is required"}}, nil
	}

	shape, err := validation.ValidateRequirementSetShape(input.RequirementSet)
	if err != nil {
		return nil, err
	}
	if !shape.Valid {
		return &Output{Valid: false, Errors: shape.GetErrorMessages()}, nil
	}

	payload, err := json.Marshal(input.RequirementSet)
	if err != nil {
		return nil, fmt.Errorf("re-encode requirement set: %w", err)
	}
	var req models.RequirementSet
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("decode requirement set: %w", err)
	}

	if err := req.Validate(); err != nil {
		return &Output{Valid: false, Errors: []string{err.Error()}}, nil
	}

	h.logger.Info("requirement set valid", map[string]interface{}{
		"programId": req.ProgramID,
	})

	return &Output{Valid: true}, nil
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
