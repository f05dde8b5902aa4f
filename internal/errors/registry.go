package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Plugin Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryPlugin,
		Message:  "Invalid plugin name",
		Detail:   "Plugin names may only contain lowercase ASCII letters and underscores.",
		DocURL:   "https://glint.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryPlugin,
		Message:  "Duplicate plugin name",
		Detail:   "Two plugins with the same name were passed to the application. Every registered plugin must have a unique name.",
		DocURL:   "https://glint.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryPlugin,
		Message:  "Invalid route contribution",
		Detail:   "A plugin route must have a path starting with '/' and exactly one of a handler or a component.",
		DocURL:   "https://glint.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryPlugin,
		Message:  "Invalid entrypoint",
		Detail:   "Plugin entrypoint names may only contain lowercase ASCII letters and underscores, and the module path must be non-empty.",
		DocURL:   "https://glint.dev/docs/errors/E004",
	},

	// ============================================
	// Routing Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryRouting,
		Message:  "Route path collision",
		Detail:   "Two routes were registered for the same path. Route paths contributed by plugins must not overlap with each other or with host routes.",
		DocURL:   "https://glint.dev/docs/errors/E020",
	},

	// ============================================
	// Config Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No glint.json was found at the given path.",
		DocURL:   "https://glint.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "glint.json exists but could not be parsed as JSON.",
		DocURL:   "https://glint.dev/docs/errors/E041",
	},
	"E042": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field has a value outside its allowed range.",
		DocURL:   "https://glint.dev/docs/errors/E042",
	},
}

// Register adds a custom error template to the registry.
// Intended for extensions that define their own error codes.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
