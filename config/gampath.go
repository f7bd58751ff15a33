package config

import (
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// GamPath resolves the gam binary: the --gam flag wins, then the
// GAM_PATH environment variable, then ~/bin/gam7/gam.
func GamPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	viper.BindEnv("GAM_PATH")
	if env := viper.GetString("GAM_PATH"); env != "" {
		return env
	}
	home, err := homedir.Dir()
	if err != nil {
		return "gam"
	}
	return filepath.Join(home, "bin", "gam7", "gam")
}
