// Package config holds what survives between runs: the org-wide
// provisioning policy (YAML, admin-maintained) and the per-workflow
// settings files that remember the operator's last answers.
package config

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"

	"github.com/GAMOps/gamops/pkg/utils"
)

const configDirName = ".gamops"

// Vacation is the auto-reply installed on offboarded accounts.
type Vacation struct {
	Subject string `yaml:"subject"`
	Message string `yaml:"message"`
}

// Policy is org-wide provisioning policy. A missing or unreadable
// policy file is not an error: every field has a compiled-in default
// and workflows run on those.
type Policy struct {
	Domain           string   `yaml:"domain"`
	TemplateFolderID string   `yaml:"template_folder_id"`
	LeaversOU        string   `yaml:"leavers_ou"`
	Vacation         Vacation `yaml:"vacation"`
	// GroupBaseline is a flat key/value list appended verbatim to the
	// group settings command before the permission matrix, so matrix
	// values win when a key appears in both.
	GroupBaseline []string `yaml:"group_baseline"`
}

func DefaultPolicy() Policy {
	return Policy{
		Domain:           "ustwo.com",
		TemplateFolderID: "1rfE8iB-kt96m5JSJwX-X87OxTI5J7hIi",
		LeaversOU:        "/Leavers",
		Vacation: Vacation{
			Subject: "This person is no longer with ustwo",
			Message: "Thank you for your email, however this person is no longer with ustwo.",
		},
		GroupBaseline: []string{
			"whocanmodifytagsandcategories", "OWNERS_AND_MANAGERS",
			"whocandeletetopics", "OWNERS_AND_MANAGERS",
			"whocanapprovemembers", "ALL_MANAGERS_CAN_APPROVE",
			"whocaninvite", "ALL_MANAGERS_CAN_INVITE",
			"whocanmodifymembers", "OWNERS_AND_MANAGERS",
		},
	}
}

// ConfigDir returns the gamops config directory under the user's home.
func ConfigDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName), nil
}

// LoadPolicy reads the policy file at path, or the default location
// when path is empty. Unreadable or malformed files degrade to the
// compiled-in defaults with a warning.
func LoadPolicy(path string) Policy {
	policy := DefaultPolicy()

	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			utils.Log.Warn("Cannot resolve home directory, using default policy: ", err)
			return policy
		}
		path = filepath.Join(dir, "policy.yaml")
	}

	if !utils.FileExists(path) {
		return policy
	}
	data, err := os.ReadFile(path)
	if err != nil {
		utils.Log.Warn("Cannot read policy file, using defaults: ", err)
		return policy
	}
	if err := yaml.Unmarshal(data, &policy); err != nil {
		utils.Log.Warn("Malformed policy file, using defaults: ", err)
		return DefaultPolicy()
	}
	return policy
}
