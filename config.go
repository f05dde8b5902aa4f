package glint

import (
	"log/slog"

	"github.com/glint-dev/glint/pkg/plugin"
)

// =============================================================================
// Configuration Types
// =============================================================================

// Config is the main application configuration.
type Config struct {
	// Plugins are registered in order. Order is significant: it controls
	// hook nesting (first registered = outermost) and the order styles
	// and scripts appear in rendered documents.
	Plugins []*plugin.Plugin

	// Static configures static file serving.
	Static StaticConfig

	// Title is the default page title.
	Title string

	// Lang is the html lang attribute. Default: "en".
	Lang string

	// StyleSheets are external stylesheet paths linked in every page head,
	// before any plugin styles.
	StyleSheets []string

	// DevMode enables pretty-printed HTML and the live-reload endpoint.
	// Never use in production.
	DevMode bool

	// Logger is the structured logger for the application.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// StaticConfig configures static file serving.
type StaticConfig struct {
	// Dir is the directory containing static files (e.g., "static").
	Dir string

	// Prefix is the URL path prefix for static files.
	// A file at static/app.css with Prefix="/static/" is served at
	// /static/app.css. Default: "/static/".
	Prefix string

	// Headers are custom headers added to all static file responses.
	Headers map[string]string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Static: StaticConfig{
			Prefix: "/static/",
		},
		Lang: "en",
	}
}

// applyDefaults fills zero fields in place.
func (c *Config) applyDefaults() {
	if c.Static.Prefix == "" {
		c.Static.Prefix = "/static/"
	}
	if c.Lang == "" {
		c.Lang = "en"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
