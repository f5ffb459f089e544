// Config loading for the chinook CLI. Settings come from chinook.yaml, the
// CHINOOK_* environment, or defaults, in that order of precedence.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chinook-browser/internal/adapter"
	"chinook-browser/internal/core"
	"chinook-browser/pkg/http_client"

	"github.com/spf13/viper"
)

const (
	configFileName = "chinook"
	configFileType = "yaml"

	// Config keys.
	cfgKeyAPIURL  = "api_url"
	cfgKeyTimeout = "timeout"
	cfgKeyTheme   = "theme"

	// Defaults.
	defaultAPIURL  = "http://localhost:8000"
	defaultTimeout = 10 * time.Second
	defaultTheme   = "default"
)

// loadConfig reads the CLI configuration with Viper. A missing config file
// is not an error; defaults and CHINOOK_* env vars still apply.
func loadConfig() (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAPIURL, defaultAPIURL)
	v.SetDefault(cfgKeyTimeout, defaultTimeout)
	v.SetDefault(cfgKeyTheme, defaultTheme)
	v.SetEnvPrefix("CHINOOK")
	v.AutomaticEnv()

	if flags.configFile != "" {
		v.SetConfigFile(flags.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config"))
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// newService wires the configured catalog client into a service. Every
// subcommand goes through here.
func newService() (*core.Service, *viper.Viper, error) {
	v, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	client := adapter.NewClient(
		v.GetString(cfgKeyAPIURL),
		http_client.CreateHTTPClient(v.GetDuration(cfgKeyTimeout)),
		newLogger(),
	)
	return core.NewService(client), v, nil
}
