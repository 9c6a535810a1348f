package testkit

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestSuiteRunner(t *testing.T) {
	// One suite entry pointing at a product list endpoint.
	masterConfig := []ConfigEntry{
		{
			ServiceName:       "ListProducts",
			FilePath:          "inventory_api",
			ScenariosFileName: "list_scenario.json",
			ServiceURL:        "/api/inventory",
			HTTPMethodType:    "GET",
			WorkflowService:   "HandleList",
		},
	}

	scenarios := []Scenario{
		{
			Name:             "ListSuccess",
			Description:      "Returns the product list envelope",
			RequestMethod:    "GET",
			RequestURL:       "/api/inventory",
			ExpectedCode:     200,
			ResponseFileName: "res.json",
		},
	}

	dir := t.TempDir()
	masterPath := filepath.Join(dir, "test_scenarios.json")

	masterData, _ := json.Marshal(masterConfig)
	_ = os.WriteFile(masterPath, masterData, 0644)

	apiDir := filepath.Join(dir, "inventory_api")
	_ = os.MkdirAll(apiDir, 0755)

	scenarioData, _ := json.Marshal(scenarios)
	_ = os.WriteFile(filepath.Join(apiDir, "list_scenario.json"), scenarioData, 0644)

	body := []byte(`{"status":"success","data":[{"id":1,"name":"Laptop"}]}`)
	_ = os.WriteFile(filepath.Join(apiDir, "res.json"), body, 0644)

	handlers := map[string]http.HandlerFunc{
		"HandleList": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(body)
		},
	}

	// Errors inside RunSuite surface through t; a clean run is a pass.
	RunSuite(t, masterPath, handlers)
}
