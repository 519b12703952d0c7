// internal/common/camunda/client_test.go
package camunda

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eligibility-workers/internal/common/errors"
)

func testClient() *Client {
	return &Client{
		config: &ClientConfig{
			GatewayAddress:    "localhost:26500",
			ConnectionTimeout: time.Second,
			RequestTimeout:    time.Second,
			RetryConfig: &RetryConfig{
				MaxRetries: 2,
				BaseDelay:  time.Millisecond,
				MaxDelay:   5 * time.Millisecond,
			},
		},
	}
}

func TestExecuteWithRetrySucceedsAfterTransientFailure(t *testing.T) {
	c := testClient()

	attempts := 0
	result, err := c.ExecuteWithRetry(context.Background(), func(ctx context.Context) (interface{}, error) {
		attempts++
		if attempts < 2 {
			return nil, fmt.Errorf("connection refused")
		}
		return "ok", nil
	}, "test-operation")

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 2, attempts)
}

func TestExecuteWithRetryDoesNotRetryPermanentErrors(t *testing.T) {
	c := testClient()

	attempts := 0
	_, err := c.ExecuteWithRetry(context.Background(), func(ctx context.Context) (interface{}, error) {
		attempts++
		return nil, fmt.Errorf("element not found")
	}, "test-operation")

	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrorCode("RESOURCE_NOT_FOUND"), stdErr.Code)
}

func TestExecuteWithRetryExhaustsRetries(t *testing.T) {
	c := testClient()

	attempts := 0
	_, err := c.ExecuteWithRetry(context.Background(), func(ctx context.Context) (interface{}, error) {
		attempts++
		return nil, fmt.Errorf("deadline exceeded")
	}, "test-operation")

	require.Error(t, err)
	assert.Equal(t, 3, attempts)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrorCode("TIMEOUT_ERROR"), stdErr.Code)
}

func TestIsRetryableZeebeError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"connection refused", fmt.Errorf("connection refused"), true},
		{"deadline exceeded", fmt.Errorf("rpc error: deadline exceeded"), true},
		{"unavailable", fmt.Errorf("gateway UNAVAILABLE"), true},
		{"not found", fmt.Errorf("process not found"), false},
		{"validation", fmt.Errorf("invalid variables"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableZeebeError(tt.err))
		})
	}
}
