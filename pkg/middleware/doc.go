// Package middleware provides framework middleware for observability.
//
// All middleware here has the standard shape func(http.Handler)
// http.Handler, so it can be registered on the application, contributed
// by a plugin, or mounted on any router that accepts standard middleware.
//
// Two middlewares are included:
//
//   - Prometheus: request counts, durations, and in-flight gauge
//   - OpenTelemetry: one server span per request
//
// Both are configured with option functions and work with zero options.
package middleware
