// internal/workers/data-access/query-eligibility-data/config.go
package queryeligibilitydata

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
