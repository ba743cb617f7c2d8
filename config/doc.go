// Package config loads the process-wide appkit settings.
//
// The most important setting is default_backend, the backend an
// Application selects when Select is called without a name.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/appkit/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Empty fields keep their defaults
//  5. APPKIT_BACKEND and APPKIT_LOG_LEVEL override file values
//
// # File Formats
//
// TOML:
//
//	default_backend = "gogpu"
//	log_level = "debug"
//	poll_interval = "10ms"
//	title = "My App"
//
// YAML (for paths ending in .yaml or .yml):
//
//	default_backend: headless
//	log_level: warn
//
// # Default Values
//
//   - default_backend: auto
//   - log_level: info
//   - poll_interval: 16ms
//   - title: appkit
//
// Missing config files are not an error.
package config
