// Package config loads depot's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/depot/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	catalog = "~/.config/depot/catalog.toml"
//	log_file = "~/.local/state/depot/depot.log"
//	log_level = "info"
//
// All fields are optional. Without catalog the built-in program table is
// used. Tilde expansion is applied to catalog and log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. The log level is not validated
// here; the logging package rejects unknown names.
package config
