// internal/workers/eligibility/evaluate-eligibility/config.go
package evaluateeligibility

import (
	"time"

	"eligibility-workers/internal/engine"
)

type Config struct {
	CacheTTL time.Duration
	Timeout  time.Duration
	Policy   engine.Policy
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL: 5 * time.Minute,
		Timeout:  10 * time.Second,
		Policy:   engine.DefaultPolicy(),
	}
}
