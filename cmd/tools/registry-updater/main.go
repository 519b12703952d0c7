// cmd/tools/registry-updater/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"eligibility-workers/pkg/registry"
)

var registryPath string

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Add command flags
	idAdd := addCmd.String("id", "", "Worker ID (e.g., evaluate-eligibility)")
	displayName := addCmd.String("displayName", "", "Display Name (e.g., Evaluate Eligibility)")
	description := addCmd.String("description", "", "Description")
	category := addCmd.String("category", "", "Category (eligibility, admin, data-access)")
	taskType := addCmd.String("taskType", "", "Camunda Task Type (e.g., evaluate-eligibility)")
	version := addCmd.String("version", "1.0.0", "Version")
	status := addCmd.String("status", "planned", "Status (planned, in-progress, completed, verified)")
	addCmd.StringVar(&registryPath, "path", "configs/worker-registry.json", "Path to registry file")

	// Update command flags
	idUpdate := updateCmd.String("id", "", "Worker ID to update")
	field := updateCmd.String("field", "", "Field to update (status, version, etc.)")
	value := updateCmd.String("value", "", "New value for the field")
	updateCmd.StringVar(&registryPath, "path", "configs/worker-registry.json", "Path to registry file")

	// Validate command flags
	validateCmd.StringVar(&registryPath, "path", "configs/worker-registry.json", "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *idAdd == "" || *displayName == "" || *description == "" || *category == "" || *taskType == "" {
			fmt.Println("Error: id, displayName, description, category, and taskType are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		entry := registry.WorkerEntry{
			ID:           *idAdd,
			DisplayName:  *displayName,
			Description:  *description,
			Category:     *category,
			Version:      *version,
			TaskType:     *taskType,
			Status:       *status,
			InputSchema:  map[string]interface{}{},
			OutputSchema: map[string]interface{}{},
			ErrorCodes:   []string{},
			Timeout:      "10s",
			Retries:      0,
			Processes:    []string{},
			Tags:         []string{},
		}
		if err := addWorker(&entry); err != nil {
			fmt.Printf("Error adding worker: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added worker: %s\n", *idAdd)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *idUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: id, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateWorker(*idUpdate, *field, *value); err != nil {
			fmt.Printf("Error updating worker: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated worker %s, field %s to %s\n", *idUpdate, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		reg, err := registry.Load(registryPath)
		if err != nil {
			fmt.Printf("Failed to load registry: %v\n", err)
			os.Exit(1)
		}
		if err := reg.Validate(); err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registry validation passed. Found %d workers.\n", len(reg.Workers))

	case "help":
		fallthrough
	default:
		help()
	}
}

func addWorker(entry *registry.WorkerEntry) error {
	reg, err := registry.Load(registryPath)
	if err != nil {
		if os.IsNotExist(err) {
			reg = &registry.WorkerRegistry{
				Version:     "1.0.0",
				LastUpdated: time.Now().Format(time.RFC3339),
				Workers:     []registry.WorkerEntry{},
			}
		} else {
			return fmt.Errorf("failed to load registry: %w", err)
		}
	}

	for _, existing := range reg.Workers {
		if existing.ID == entry.ID {
			return fmt.Errorf("worker with ID %s already exists", entry.ID)
		}
	}

	reg.Workers = append(reg.Workers, *entry)
	reg.LastUpdated = time.Now().Format(time.RFC3339)

	return registry.Save(reg, registryPath)
}

func updateWorker(id, field, value string) error {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	found := false
	for i := range reg.Workers {
		if reg.Workers[i].ID == id {
			found = true
			switch field {
			case "status":
				reg.Workers[i].Status = value
			case "version":
				reg.Workers[i].Version = value
			case "displayName":
				reg.Workers[i].DisplayName = value
			case "description":
				reg.Workers[i].Description = value
			case "category":
				reg.Workers[i].Category = value
			case "taskType":
				reg.Workers[i].TaskType = value
			case "timeout":
				reg.Workers[i].Timeout = value
			case "retries":
				retries, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("invalid retries value: %w", err)
				}
				reg.Workers[i].Retries = retries
			default:
				return fmt.Errorf("unknown field: %s", field)
			}
			break
		}
	}

	if !found {
		return fmt.Errorf("worker with ID %s not found", id)
	}

	reg.LastUpdated = time.Now().Format(time.RFC3339)
	return registry.Save(reg, registryPath)
}

func help() {
	fmt.Print(`
Usage: registry-updater <command> [flags]

Commands:
  add      Add a new worker to the registry
  update   Update an existing worker's field
  validate Validate the registry file
  help     Show this help message

Examples:
  registry-updater add -id evaluate-eligibility -displayName "Evaluate Eligibility" -description "Scores an applicant against one program's requirement set" -category eligibility -taskType evaluate-eligibility
  registry-updater update -id evaluate-eligibility -field status -value completed
  registry-updater validate -path configs/worker-registry.json
`)
}
