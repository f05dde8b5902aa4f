// Package errors provides structured, actionable error messages for Glint.
//
// Errors raised while assembling an application (invalid plugin names,
// duplicate plugins, route collisions, bad configuration files) carry a
// stable code, a plain-language explanation, a fix suggestion, and a
// documentation link. They are meant to be printed once at startup and
// read by a human.
//
// # Error Categories
//
//   - plugin: problems with a registered plugin (name, routes, entrypoints)
//   - routing: problems merging routes into the host routing table
//   - config: problems with glint.json or programmatic configuration
//   - render: problems surfaced while producing a page
//   - cli: problems in the glint command-line tool
//
// # Usage
//
//	err := errors.New("E001").
//	    WithDetailf("plugin name %q contains invalid characters", name).
//	    WithSuggestion("use only lowercase letters and underscores")
//
//	fmt.Println(err.Format())
package errors
