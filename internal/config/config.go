// Package config loads waypoint settings from TOML files with environment
// overlays and overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/toyz/waypoint/internal/errors"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "waypoint.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "waypoint.%s.toml"

	// EnvWaypointEnv selects the overlay.
	EnvWaypointEnv = "WAYPOINT_ENV"

	EnvYAMLDir       = "WAYPOINT_YAML_DIR"
	EnvControllerDir = "WAYPOINT_CONTROLLER_DIR"
	EnvNamespace     = "WAYPOINT_NAMESPACE"
)

// Config represents the root configuration.
type Config struct {
	Discovery DiscoveryConfig `toml:"discovery"`
	Output    OutputConfig    `toml:"output"`
}

// DiscoveryConfig describes where routes come from.
type DiscoveryConfig struct {
	YAMLDir        string `toml:"yaml_dir"`
	ControllerDir  string `toml:"controller_dir"`
	Namespace      string `toml:"namespace"`
	Separator      string `toml:"separator"`
	Extension      string `toml:"extension"`
	Order          string `toml:"order"`
	CamelCaseTypes bool   `toml:"camel_case_types"`
}

// OutputConfig describes how the CLI prints the table.
type OutputConfig struct {
	Format string `toml:"format"`
}

// Formats lists the supported output formats.
var Formats = []string{"table", "json", "yaml", "html"}

// Load reads path (BaseConfigFile when empty), applies the overlay selected by
// WAYPOINT_ENV from the same directory, then the WAYPOINT_* environment
// overrides. A missing base file yields an empty configuration.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = BaseConfigFile
	}

	cfg, err := load(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			cfg = &Config{}
		} else {
			return nil, errors.WrapConfigurationError(path, "load", err)
		}
	}

	if overlay := overlayPath(path); overlay != "" {
		o, err := load(overlay)
		if err != nil {
			return nil, errors.WrapConfigurationError(overlay, "load overlay", err)
		}
		cfg.Merge(o)
	}
	cfg.loadEnv()
	return cfg, nil
}

// Finalize applies defaults and validates the configuration. Call it after
// command-line overrides so flags win over files and environment.
func (c *Config) Finalize() error {
	c.loadDefaults()
	if err := c.validate(); err != nil {
		return errors.WrapConfigurationError(BaseConfigFile, "validate", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	d, o := &c.Discovery, &overlay.Discovery
	if o.YAMLDir != "" {
		d.YAMLDir = o.YAMLDir
	}
	if o.ControllerDir != "" {
		d.ControllerDir = o.ControllerDir
	}
	if o.Namespace != "" {
		d.Namespace = o.Namespace
	}
	if o.Separator != "" {
		d.Separator = o.Separator
	}
	if o.Extension != "" {
		d.Extension = o.Extension
	}
	if o.Order != "" {
		d.Order = o.Order
	}
	if o.CamelCaseTypes {
		d.CamelCaseTypes = true
	}
	if overlay.Output.Format != "" {
		c.Output.Format = overlay.Output.Format
	}
}

func (c *Config) loadDefaults() {
	if c.Discovery.Separator == "" {
		c.Discovery.Separator = `\`
	}
	if c.Discovery.Extension == "" {
		c.Discovery.Extension = ".go"
	}
	if c.Discovery.Order == "" {
		c.Discovery.Order = "yaml-first"
	}
	if c.Output.Format == "" {
		c.Output.Format = "table"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvYAMLDir); v != "" {
		c.Discovery.YAMLDir = v
	}
	if v := os.Getenv(EnvControllerDir); v != "" {
		c.Discovery.ControllerDir = v
	}
	if v := os.Getenv(EnvNamespace); v != "" {
		c.Discovery.Namespace = v
	}
}

func (c *Config) validate() error {
	switch c.Discovery.Order {
	case "yaml-first", "code-first":
	default:
		return fmt.Errorf("invalid order %q (expected yaml-first or code-first)", c.Discovery.Order)
	}
	if !strings.HasPrefix(c.Discovery.Extension, ".") {
		return fmt.Errorf("invalid extension %q (must start with a dot)", c.Discovery.Extension)
	}
	for _, f := range Formats {
		if c.Output.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q (supported: %s)", c.Output.Format, strings.Join(Formats, ", "))
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func overlayPath(base string) string {
	if env := os.Getenv(EnvWaypointEnv); env != "" {
		path := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, env))
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
