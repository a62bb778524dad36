package steps

import (
	"fmt"
	"strings"
	"time"

	"github.com/Hafuunano/Plugin-XiaomiSteps/lib/database/config"
)

// PluginName is the config directory name under data/config.
const PluginName = "plugin-xiaomi-steps"

const (
	DefaultAPIURL  = "https://tmini.net/api/xiaomi"
	DefaultTimeout = 15 * time.Second
	DefaultCommand = "steps"
)

// TriggerMode selects which message forms start a request.
type TriggerMode string

const (
	// TriggerPassive listens to every message shaped like account#password#steps.
	TriggerPassive TriggerMode = "passive"
	// TriggerCommand only reacts to <prefix>steps account#password#steps.
	TriggerCommand TriggerMode = "command"
	TriggerBoth    TriggerMode = "both"
)

// Config is the plugin config file data/config/plugin-xiaomi-steps/config.yaml.
type Config struct {
	CKey    string        `yaml:"ckey" env:"XIAOMI_STEPS_CKEY"`
	APIURL  string        `yaml:"api_url" env:"XIAOMI_STEPS_API_URL"`
	Timeout time.Duration `yaml:"timeout" env:"XIAOMI_STEPS_TIMEOUT"`
	Trigger TriggerMode   `yaml:"trigger" env:"XIAOMI_STEPS_TRIGGER"`
	Command string        `yaml:"command" env:"XIAOMI_STEPS_COMMAND"`
}

// DefaultConfig has everything but the API key.
func DefaultConfig() Config {
	return Config{
		APIURL:  DefaultAPIURL,
		Timeout: DefaultTimeout,
		Trigger: TriggerBoth,
		Command: DefaultCommand,
	}
}

// LoadConfig reads the plugin config under dataDir, creating a default file if missing,
// and applies XIAOMI_STEPS_* env overrides.
func LoadConfig(dataDir string) (Config, error) {
	cfg := DefaultConfig()
	if err := config.Load(dataDir, PluginName, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg.normalize()
}

// SaveDefaultConfig writes DefaultConfig unless a config file already exists.
func SaveDefaultConfig(dataDir string) (string, error) {
	p := config.Path(dataDir, PluginName)
	if config.Exists(dataDir, PluginName) {
		return p, nil
	}
	cfg := DefaultConfig()
	return p, config.Save(dataDir, PluginName, &cfg)
}

func (c Config) normalize() (Config, error) {
	def := DefaultConfig()
	c.CKey = strings.TrimSpace(c.CKey)
	c.APIURL = strings.TrimSpace(c.APIURL)
	if c.APIURL == "" {
		c.APIURL = def.APIURL
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	c.Command = strings.TrimSpace(c.Command)
	if c.Command == "" {
		c.Command = def.Command
	}
	c.Trigger = TriggerMode(strings.ToLower(strings.TrimSpace(string(c.Trigger))))
	switch c.Trigger {
	case TriggerPassive, TriggerCommand, TriggerBoth:
	case "":
		c.Trigger = def.Trigger
	default:
		bad := c.Trigger
		c.Trigger = def.Trigger
		return c, fmt.Errorf("steps: unknown trigger mode %q", bad)
	}
	return c, nil
}
