// internal/workers/admin/validate-requirement-set/config.go
package validaterequirementset

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}
