// Package config loads empdir settings. Sources are applied in order, each
// overriding the previous: built-in defaults, an optional JSON file, a .env
// file, EMPDIR_* environment variables and finally command-line flags
// (applied by the cli package).
package config
