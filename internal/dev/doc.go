// Package dev provides development-mode tooling: a WebSocket live-reload
// server and a polling file watcher.
//
// In development mode the application mounts the reload endpoint at
// /_glint/reload and injects ClientScript into every rendered page. The
// watcher observes the project's static directories and notifies the
// reload server, which broadcasts to all connected browsers.
//
// Nothing in this package is used in production builds.
package dev
