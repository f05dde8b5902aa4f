// Package compose merges host and plugin routing contributions into a
// single chi router.
//
// Routes are registered with their owner (the host or a named plugin) so
// collisions can be reported precisely: two registrations for the same
// path are a startup error, never a silent override.
//
// Middleware composes in registration order with host middleware
// outermost, then plugin middleware in plugin registration order. The
// composed router is built once at startup and is immutable afterwards.
package compose
