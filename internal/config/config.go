package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glint-dev/glint/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "glint.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultExportDir is the default static export output directory.
	DefaultExportDir = "dist"
)

// Config represents the complete glint.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Port is the server port.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Title is the default page title.
	Title string `json:"title,omitempty"`

	// Lang is the html lang attribute value.
	Lang string `json:"lang,omitempty"`

	// Static contains static file serving configuration.
	Static StaticConfig `json:"static,omitempty"`

	// Dev contains development mode configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Export contains static export configuration.
	Export ExportConfig `json:"export,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// StaticConfig contains static file serving configuration.
type StaticConfig struct {
	// Dir is the directory containing static files.
	Dir string `json:"dir,omitempty"`

	// Prefix is the URL prefix for static files (default: "/static/").
	Prefix string `json:"prefix,omitempty"`
}

// DevConfig contains development mode settings.
type DevConfig struct {
	// LiveReload enables the live-reload WebSocket endpoint and client.
	LiveReload bool `json:"liveReload,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains patterns to ignore during watch.
	Ignore []string `json:"ignore,omitempty"`
}

// ExportConfig contains static export settings.
type ExportConfig struct {
	// Output is the output directory for static export.
	Output string `json:"output,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Port:    DefaultPort,
		Host:    DefaultHost,
		Lang:    "en",
		Static: StaticConfig{
			Dir:    "static",
			Prefix: "/static/",
		},
		Dev: DevConfig{
			LiveReload: true,
			Watch:      []string{"static"},
		},
		Export: ExportConfig{
			Output: DefaultExportDir,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for glint.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E040").
				WithDetail("No glint.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'glint init' to create a new project or create glint.json manually.")
		}
		return nil, errors.FromError(err, "E041")
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E041").
			WithDetail("Failed to parse glint.json: " + err.Error()).
			WithSuggestion("Check that glint.json is valid JSON.")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.FromError(err, "E041")
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.FromError(err, "E041")
	}

	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// Addr returns the host:port address to listen on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// applyDefaults fills in defaults for fields the file left empty.
func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Lang == "" {
		c.Lang = "en"
	}
	if c.Static.Dir == "" {
		c.Static.Dir = "static"
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = "/static/"
	}
	if c.Dev.Watch == nil {
		c.Dev.Watch = []string{c.Static.Dir}
	}
	if c.Export.Output == "" {
		c.Export.Output = DefaultExportDir
	}
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("E042").
			WithDetailf("port %d is outside the valid range 1-65535", c.Port)
	}
	if c.Static.Prefix != "" && c.Static.Prefix[0] != '/' {
		return errors.New("E042").
			WithDetailf("static prefix %q must start with '/'", c.Static.Prefix)
	}
	return nil
}
