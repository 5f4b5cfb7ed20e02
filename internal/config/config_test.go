package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/empdir/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "empdir.db", c.DBPath)
	assert.Equal(t, 5, c.PerPage)
	assert.Equal(t, "text", c.LogFormat)
	assert.True(t, c.Seed)
	assert.NoError(t, c.Validate())
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)

	if diff := cmp.Diff(defaults(), *cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_JSONOverridesOnlyPresentFields(t *testing.T) {
	p := writeFile(t, "cfg.json", `{"db_path": "/tmp/x.db", "per_page": 10, "seed": false}`)

	cfg, err := Load(p, "")
	require.NoError(t, err)

	want := defaults()
	want.DBPath = "/tmp/x.db"
	want.PerPage = 10
	want.Seed = false
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_JSONErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"), "")
	assert.ErrorContains(t, err, "failed to read config file")

	bad := writeFile(t, "bad.json", `{"per_page": "many"}`)
	_, err = Load(bad, "")
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoad_EnvOverridesJSON(t *testing.T) {
	p := writeFile(t, "cfg.json", `{"language": "en", "per_page": 10}`)
	t.Setenv("EMPDIR_LANG", "tr")
	t.Setenv("EMPDIR_PER_PAGE", "7")
	t.Setenv("EMPDIR_SEED", "false")

	cfg, err := Load(p, "")
	require.NoError(t, err)
	assert.Equal(t, "tr", cfg.Language)
	assert.Equal(t, 7, cfg.PerPage)
	assert.False(t, cfg.Seed)
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("EMPDIR_PER_PAGE", "lots")

	_, err := Load("", "")
	assert.ErrorContains(t, err, "failed to parse environment")
}

func TestLoad_DotenvFile(t *testing.T) {
	p := writeFile(t, ".env", "EMPDIR_LOG_LEVEL=debug\nEMPDIR_DB=from-dotenv.db\n")
	t.Setenv("EMPDIR_DB", "from-env.db")
	t.Cleanup(func() { _ = os.Unsetenv("EMPDIR_LOG_LEVEL") })

	cfg, err := Load("", p)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "from-env.db", cfg.DBPath, "real environment wins over .env")
}

func TestLoad_MissingDotenvIsFine(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty db", func(c *Config) { c.DBPath = " " }},
		{"per page", func(c *Config) { c.PerPage = 0 }},
		{"widths", func(c *Config) { c.NarrowWidth = -1 }},
		{"log format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), common.ErrorInvalidInput)
		})
	}
}
