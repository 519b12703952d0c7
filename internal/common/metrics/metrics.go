// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	EvaluationsByVerdict = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eligibility_evaluations_total",
			Help: "Total number of eligibility evaluations by verdict",
		},
		[]string{"verdict"},
	)

	MatchBatchSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eligibility_match_batch_size",
			Help:    "Number of candidate programs per match batch",
			Buckets: []float64{1, 3, 5, 10, 25, 50, 100},
		},
		[]string{"task_type"},
	)
)
