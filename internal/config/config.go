package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rezonia/invoice-renderer/internal/format"
	"github.com/rezonia/invoice-renderer/internal/render"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "INVOICE_RENDERER_"

type Config struct {
	// HTTP server settings
	Server ServerConfig `yaml:"server"`

	// Rendering defaults
	Render RenderConfig `yaml:"render"`

	// Logging
	Log LogConfig `yaml:"log"`
}

type ServerConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	Debug        bool          `yaml:"debug"`
}

type RenderConfig struct {
	DefaultTemplate string `yaml:"default_template"` // Used when a request names no template
	Convention      string `yaml:"convention"`       // Number grouping: en-US, en-IN or de-DE
	DateLayout      string `yaml:"date_layout"`      // Go time layout for invoice dates
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfigPath returns ~/.config/invoice-renderer/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "invoice-renderer", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "invoice-renderer", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:      ":8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Render: RenderConfig{
			DefaultTemplate: string(render.DefaultTemplate),
			Convention:      string(format.ConventionUS),
			DateLayout:      format.DefaultDateLayout,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads config from path, falling back to defaults when the file does
// not exist, then applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that the render settings name supported values
func (c *Config) Validate() error {
	if _, err := format.ParseConvention(c.Render.Convention); err != nil {
		return fmt.Errorf("render.convention: %w", err)
	}
	if _, err := render.DefaultRegistry().Get(c.TemplateID()); err != nil {
		return fmt.Errorf("render.default_template: %w", err)
	}
	return nil
}

// TemplateID returns the configured default template
func (c *Config) TemplateID() render.TemplateID {
	id := render.ParseTemplateID(c.Render.DefaultTemplate)
	if id == "" {
		return render.DefaultTemplate
	}
	return id
}

// FormatOptions builds formatting options from the render section. The
// precision is replaced per invoice by the currency's precision.
func (c *Config) FormatOptions() format.Options {
	opts := format.DefaultOptions()
	if conv, err := format.ParseConvention(c.Render.Convention); err == nil {
		opts.Convention = conv
	}
	if c.Render.DateLayout != "" {
		opts.DateLayout = c.Render.DateLayout
	}
	return opts
}

type lookupFunc func(string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	str("ADDRESS", &c.Server.Address)
	str("TEMPLATE", &c.Render.DefaultTemplate)
	str("CONVENTION", &c.Render.Convention)
	str("DATE_LAYOUT", &c.Render.DateLayout)
	str("LOG_LEVEL", &c.Log.Level)

	for key, dst := range map[string]*time.Duration{
		"READ_TIMEOUT":  &c.Server.ReadTimeout,
		"WRITE_TIMEOUT": &c.Server.WriteTimeout,
	} {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
		}
		*dst = d
	}

	if v, ok := lookup(EnvPrefix + "DEBUG"); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sDEBUG: %w", EnvPrefix, err)
		}
		c.Server.Debug = debug
	}
	return nil
}
