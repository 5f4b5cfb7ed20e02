package config

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/empdir/internal/common"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "EMPDIR_"

// Config holds runtime settings.
//
// WideWidth is the terminal width below which the list is always drawn as a
// table; NarrowWidth the width below which the pager shows at most three
// pages. An empty Passphrase stores data unencrypted.
type Config struct {
	DBPath      string `env:"DB"`
	Language    string `env:"LANG"`
	PerPage     int    `env:"PER_PAGE"`
	WideWidth   int    `env:"WIDE_WIDTH"`
	NarrowWidth int    `env:"NARROW_WIDTH"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
	Passphrase  string `env:"PASSPHRASE"`
	Seed        bool   `env:"SEED"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "empdir.db"
	c.Language = ""
	c.PerPage = 5
	c.WideWidth = 160
	c.NarrowWidth = 64
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.Passphrase = ""
	c.Seed = true
}

// Load applies defaults, the JSON file at jsonPath (skipped when empty),
// the dotenv file at dotenvPath (skipped when missing) and the environment.
func Load(jsonPath, dotenvPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if jsonPath != "" {
		if err := parseJSON(cfg, jsonPath); err != nil {
			return nil, err
		}
	}
	if err := parseEnv(cfg, dotenvPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the app cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("database path is empty: %w", common.ErrorInvalidInput)
	}
	if c.PerPage < 1 {
		return fmt.Errorf("per-page %d: %w", c.PerPage, common.ErrorInvalidInput)
	}
	if c.NarrowWidth < 0 || c.WideWidth < 0 {
		return fmt.Errorf("layout widths must not be negative: %w", common.ErrorInvalidInput)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q: %w", c.LogFormat, common.ErrorInvalidInput)
	}
	return nil
}
