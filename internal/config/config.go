// Package config loads calculator settings from a YAML file, CALC_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every front end.
type Config struct {
	Locale  string `mapstructure:"locale"`  // display locale, e.g. "en", "de"
	Tape    string `mapstructure:"tape"`    // CSV file every evaluation is appended to; empty disables
	Daily   bool   `mapstructure:"daily"`   // start a new tape file each day
	Verbose bool   `mapstructure:"verbose"` // debug logging
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"locale":  "en",
		"tape":    "",
		"daily":   false,
		"verbose": false,
	}
}

// Load builds a Config. An explicit path must exist; otherwise calculator.yaml
// is looked up in the user config directory and the working directory, and a
// missing file is not an error. Flags on cmd that were set override
// everything else.
func Load(cmd *cobra.Command, path string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("calculator")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "circlecalc"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("calc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
