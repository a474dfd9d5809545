// Package config handles loading and parsing the roster configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/roster/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Missing config files are NOT an error; defaults allow roster to work
// out-of-the-box against the public demo API.
//
// # TOML Format
//
// Example config.toml:
//
//	base_url = "https://dummyjson.com"
//	log_dir = "~/.local/share/roster/logs"
//
// Both fields are optional. Tilde expansion is performed automatically.
//
// # Design Philosophy
//
// The config package is read-only and stateless: it loads configuration once
// at startup and returns an immutable Config struct. No global state or
// singleton patterns are used.
package config
