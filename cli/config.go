package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the config file read under --use-config.
const ConfigFileName = ".quoter.yaml"

// Config holds all configuration options for the CLI.
type Config struct {
	Dialect  string `yaml:"dialect"`
	DSN      string `yaml:"dsn"`
	Timezone string `yaml:"timezone"`

	UseConfig bool   `yaml:"-"`
	Env       string `yaml:"-"`
	JSON      bool   `yaml:"-"`
	Verbose   bool   `yaml:"-"`
}

// ConfigFile represents the structure of .quoter.yaml
type ConfigFile struct {
	ConfigLocked bool                    `yaml:"config_locked"`
	Environments map[string]*Environment `yaml:",inline"`
}

// Environment represents a single environment configuration.
type Environment struct {
	Dialect  string `yaml:"dialect"`
	DSN      string `yaml:"dsn"`
	Timezone string `yaml:"timezone"`
}

// loadConfig loads configuration from all sources.
// Priority: flags > env > config file.
func (app *App) loadConfig() error {
	app.loadEnv()
	if app.config.UseConfig {
		if err := app.loadConfigFile(); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) loadEnv() {
	if app.config.Dialect == "" {
		if dialect := os.Getenv("QUOTER_DIALECT"); dialect != "" {
			app.config.Dialect = dialect
		}
	}

	if app.config.DSN == "" {
		if dsn := os.Getenv("QUOTER_DSN"); dsn != "" {
			app.config.DSN = dsn
		}
	}

	if app.config.Timezone == "" {
		if tz := os.Getenv("QUOTER_TIMEZONE"); tz != "" {
			app.config.Timezone = tz
		}
	}
}

func (app *App) loadConfigFile() error {
	if _, err := os.Stat(ConfigFileName); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s (use --use-config only when config file exists)", ConfigFileName)
	}

	data, err := os.ReadFile(ConfigFileName)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var cf ConfigFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if cf.ConfigLocked {
		return fmt.Errorf("config file is locked. Remove 'config_locked: true' or use flags/ENV vars instead")
	}

	if app.config.Env == "" {
		return nil
	}

	env, ok := cf.Environments[app.config.Env]
	if !ok || env == nil {
		return fmt.Errorf("environment '%s' not found in config file", app.config.Env)
	}

	if app.config.Dialect == "" {
		app.config.Dialect = env.Dialect
	}
	if app.config.DSN == "" {
		app.config.DSN = env.DSN
	}
	if app.config.Timezone == "" {
		app.config.Timezone = env.Timezone
	}
	return nil
}

func (app *App) getEnvironmentName() string {
	if app.config.Env != "" {
		return app.config.Env
	}
	return "custom"
}
