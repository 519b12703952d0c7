// internal/workers/eligibility/match-programs/config.go
package matchprograms

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
		Timeout:  30 * time.Second,
		Policy:   engine.DefaultPolicy(),
	}
}
