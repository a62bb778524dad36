// Package config provides plugin config files under data/config/PLUGIN_NAME/config.yaml,
// with environment variables layered on top of the file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigDirName is the subdir under data root: data/config
	ConfigDirName = "config"
	// ConfigFileName is the default config file name per plugin
	ConfigFileName = "config.yaml"
)

// Path returns the path of a plugin's config file: dataDir/config/pluginName/config.yaml
func Path(dataDir, pluginName string) string {
	return filepath.Join(dataDir, ConfigDirName, pluginName, ConfigFileName)
}

// Dir returns the config directory for a plugin: dataDir/config/pluginName
func Dir(dataDir, pluginName string) string {
	return filepath.Join(dataDir, ConfigDirName, pluginName)
}

// Read unmarshals the plugin config file into dest.
// If the file does not exist or is empty, no error is returned and dest is unchanged.
func Read(dataDir, pluginName string, dest any) error {
	data, err := os.ReadFile(Path(dataDir, pluginName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config read: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("config unmarshal: %w", err)
	}
	return nil
}

// Save creates or updates the plugin config file. Creates parent dirs if needed.
// The file holds secrets (API keys), so it is written owner-only.
func Save(dataDir, pluginName string, v any) error {
	if err := os.MkdirAll(Dir(dataDir, pluginName), 0755); err != nil {
		return fmt.Errorf("config mkdir: %w", err)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("config marshal: %w", err)
	}
	if err := os.WriteFile(Path(dataDir, pluginName), data, 0600); err != nil {
		return fmt.Errorf("config write: %w", err)
	}
	return nil
}

// Exists reports whether the plugin config file exists.
func Exists(dataDir, pluginName string) bool {
	_, err := os.Stat(Path(dataDir, pluginName))
	return err == nil
}

// Load fills dest in three layers: the values already in dest act as defaults,
// the config file overrides them, and `env:"..."` tagged fields override both.
// When no config file exists yet, the defaults are written so admins have a file to edit.
// Env values are never written back to disk.
func Load(dataDir, pluginName string, dest any) error {
	if !Exists(dataDir, pluginName) {
		if err := Save(dataDir, pluginName, dest); err != nil {
			return err
		}
	} else if err := Read(dataDir, pluginName, dest); err != nil {
		return err
	}
	if err := env.Parse(dest); err != nil {
		return fmt.Errorf("config env: %w", err)
	}
	return nil
}
