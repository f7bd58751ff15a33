package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/GAMOps/gamops/pkg/utils"
)

// WorkflowSettings remembers the operator's last answers per workflow
// so the next run starts pre-filled.
type WorkflowSettings struct {
	OperatorEmail string `json:"operator_email,omitempty"`
	CopyTemplate  bool   `json:"copy_template,omitempty"`
	JoinPolicy    string `json:"join_policy,omitempty"`
	AllowExternal bool   `json:"allow_external,omitempty"`
}

func settingsPath(workflow string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, workflow+"_config.json"), nil
}

// LoadSettings returns the saved settings for a workflow. Missing or
// corrupt files degrade to the zero value, never an error: stale
// defaults must not block a run.
func LoadSettings(workflow string) WorkflowSettings {
	var settings WorkflowSettings

	path, err := settingsPath(workflow)
	if err != nil {
		utils.Log.Warn("Cannot resolve settings path: ", err)
		return settings
	}
	if !utils.FileExists(path) {
		return settings
	}
	data, err := os.ReadFile(path)
	if err != nil {
		utils.Log.Warn("Cannot read settings file: ", err)
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		utils.Log.Warn("Malformed settings file, ignoring: ", err)
		return WorkflowSettings{}
	}
	return settings
}

// SaveSettings persists the settings for a workflow. Callers save only
// after the options validated, so a saved file is always loadable.
func SaveSettings(workflow string, settings WorkflowSettings) error {
	path, err := settingsPath(workflow)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
