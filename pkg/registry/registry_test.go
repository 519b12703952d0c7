// pkg/registry/registry_test.go
package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistry() *WorkerRegistry {
	return &WorkerRegistry{
		Version:     "1.0.0",
		LastUpdated: "2026-08-14T10:00:00Z",
		Workers: []WorkerEntry{
			{
				ID:          "evaluate-eligibility",
				DisplayName: "Evaluate Eligibility",
				Category:    "eligibility",
				TaskType:    "evaluate-eligibility",
			},
			{
				ID:          "match-programs",
				DisplayName: "Match Programs",
				Category:    "eligibility",
				TaskType:    "match-programs",
			},
		},
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "worker-registry.json")

	reg := validRegistry()
	require.NoError(t, Save(reg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, reg.Version, loaded.Version)
	require.Len(t, loaded.Workers, 2)
	assert.Equal(t, "evaluate-eligibility", loaded.Workers[0].ID)
}

func TestFindByTaskType(t *testing.T) {
	reg := validRegistry()

	entry, found := reg.FindByTaskType("match-programs")
	require.True(t, found)
	assert.Equal(t, "Match Programs", entry.DisplayName)

	_, found = reg.FindByTaskType("does-not-exist")
	assert.False(t, found)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WorkerRegistry)
		wantErr string
	}{
		{
			name:   "valid registry",
			mutate: func(r *WorkerRegistry) {},
		},
		{
			name: "empty registry",
			mutate: func(r *WorkerRegistry) {
				r.Workers = nil
			},
			wantErr: "no workers",
		},
		{
			name: "duplicate id",
			mutate: func(r *WorkerRegistry) {
				r.Workers[1].ID = r.Workers[0].ID
			},
			wantErr: "duplicate worker ID",
		},
		{
			name: "missing display name",
			mutate: func(r *WorkerRegistry) {
				r.Workers[0].DisplayName = ""
			},
			wantErr: "displayName",
		},
		{
			name: "missing task type",
			mutate: func(r *WorkerRegistry) {
				r.Workers[0].TaskType = ""
			},
			wantErr: "taskType",
		},
		{
			name: "missing category",
			mutate: func(r *WorkerRegistry) {
				r.Workers[0].Category = ""
			},
			wantErr: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistry()
			tt.mutate(reg)

			err := reg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
