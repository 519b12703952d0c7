// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func Load(path string) (*WorkerRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg WorkerRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func Save(reg *WorkerRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

// FindByTaskType returns the entry registered for a Camunda task type.
func (r *WorkerRegistry) FindByTaskType(taskType string) (*WorkerEntry, bool) {
	for i := range r.Workers {
		if r.Workers[i].TaskType == taskType {
			return &r.Workers[i], true
		}
	}
	return nil, false
}

// Validate checks the structural rules every entry must satisfy: unique IDs
// and the fields the process modelers depend on.
func (r *WorkerRegistry) Validate() error {
	if len(r.Workers) == 0 {
		return fmt.Errorf("registry contains no workers")
	}

	ids := make(map[string]bool)
	for _, entry := range r.Workers {
		if entry.ID == "" {
			return fmt.Errorf("worker entry missing required field: id")
		}
		if ids[entry.ID] {
			return fmt.Errorf("duplicate worker ID: %s", entry.ID)
		}
		ids[entry.ID] = true

		if entry.DisplayName == "" {
			return fmt.Errorf("worker %s missing required field: displayName", entry.ID)
		}
		if entry.TaskType == "" {
			return fmt.Errorf("worker %s missing required field: taskType", entry.ID)
		}
		if entry.Category == "" {
			return fmt.Errorf("worker %s missing required field: category", entry.ID)
		}
	}

	return nil
}
