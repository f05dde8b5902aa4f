// Package config loads and validates glint.json project configuration.
//
// Configuration is entirely optional: an application constructed in code
// works without a glint.json. The file exists for settings that belong
// to the project rather than the program, such as ports, static asset
// directories, and development watch paths.
package config
