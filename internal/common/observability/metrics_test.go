// internal/common/observability/metrics_test.go
package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordOnInitializedObservability(t *testing.T) {
	obs := New("test-service")
	defer obs.Shutdown()

	assert.NotNil(t, obs.meterProvider)
	assert.NotNil(t, obs.jobCounter)
	assert.NotNil(t, obs.jobDuration)

	ctx := context.Background()
	obs.RecordJobProcessed(ctx, "completed")
	obs.RecordJobProcessed(ctx, "failed")
	obs.RecordJobDuration(ctx, 125*time.Millisecond, "completed")
}

func TestRecordOnZeroValueObservability(t *testing.T) {
	var obs Observability

	ctx := context.Background()
	obs.RecordJobProcessed(ctx, "completed")
	obs.RecordJobDuration(ctx, time.Second, "completed")
	obs.Shutdown()
}
