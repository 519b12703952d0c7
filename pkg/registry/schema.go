// pkg/registry/schema.go
package registry

// WorkerRegistry is the machine-readable catalog of Camunda task types this
// service implements. Process modelers read it to wire service tasks; the
// generator tool reads it to scaffold new workers.
type WorkerRegistry struct {
	Version     string        `json:"version"`
	LastUpdated string        `json:"lastUpdated"`
	Workers     []WorkerEntry `json:"workers"`
}

type WorkerEntry struct {
	ID           string                 `json:"id"`
	DisplayName  string                 `json:"displayName"`
	Description  string                 `json:"description"`
	Category     string                 `json:"category"`
	Version      string                 `json:"version"`
	TaskType     string                 `json:"taskType"`
	Status       string                 `json:"status"`
	InputSchema  map[string]interface{} `json:"inputSchema"`
	OutputSchema map[string]interface{} `json:"outputSchema"`
	ErrorCodes   []string               `json:"errorCodes"`
	Timeout      string                 `json:"timeout"`
	Retries      int                    `json:"retries"`
	Processes    []string               `json:"processes"`
	Tags         []string               `json:"tags"`
}
