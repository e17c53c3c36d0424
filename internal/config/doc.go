// Package config loads, normalizes, and validates gfl-pages configuration.
//
// Configuration is a TOML file resolved from an explicit path, the user
// config directory, or a project-local gfl-pages.toml. Defaults are applied
// first so a missing file still yields a runnable configuration. All path
// fields are tilde-expanded and made absolute before use.
package config
