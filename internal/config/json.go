package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfig is the on-disk layout of the JSON config file. Absent fields
// leave the current value alone. The passphrase is never read from it.
type JsonConfig struct {
	DBPath      *string `json:"db_path"`
	Language    *string `json:"language"`
	PerPage     *int    `json:"per_page"`
	WideWidth   *int    `json:"wide_width"`
	NarrowWidth *int    `json:"narrow_width"`
	LogLevel    *string `json:"log_level"`
	LogFormat   *string `json:"log_format"`
	Seed        *bool   `json:"seed"`
}

func parseJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	setIf(&cfg.DBPath, jc.DBPath)
	setIf(&cfg.Language, jc.Language)
	setIf(&cfg.PerPage, jc.PerPage)
	setIf(&cfg.WideWidth, jc.WideWidth)
	setIf(&cfg.NarrowWidth, jc.NarrowWidth)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.Seed, jc.Seed)
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
