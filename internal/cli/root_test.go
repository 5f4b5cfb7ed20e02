package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/empdir/internal/common"
	"github.com/dmitrijs2005/empdir/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "empdir", cmd.Use)
	assert.Contains(t, cmd.Long, "employee directory")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"list", "export", "seed", "delete", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	cfg := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, cfg)
	assert.Equal(t, "c", cfg.Shorthand)

	envFile := cmd.PersistentFlags().Lookup("env-file")
	require.NotNil(t, envFile)
	assert.Equal(t, ".env", envFile.DefValue)

	for _, name := range []string{"db", "lang", "per-page", "log-level", "log-format", "no-seed", "sealed"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestDeleteCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	del, _, err := cmd.Find([]string{"delete"})
	require.NoError(t, err)

	yes := del.Flags().Lookup("yes")
	require.NotNil(t, yes)
	assert.Equal(t, "y", yes.Shorthand)
	assert.Equal(t, "false", yes.DefValue)
}

// execute runs the command tree against a database in dir.
func execute(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	fixWidth(t, 0)

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{
		"--db", filepath.Join(dir, "empdir.db"),
		"--env-file", filepath.Join(dir, "missing.env"),
		"--lang", "en",
	}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func exportedIDs(t *testing.T, dir string) []string {
	t.Helper()
	path := filepath.Join(dir, "ids.json")
	_, err := execute(t, dir, "", "export", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var es []models.Employee
	require.NoError(t, json.Unmarshal(raw, &es))

	ids := make([]string, 0, len(es))
	for _, e := range es {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: N/A")
}

func TestListCommand_EmptyWithoutSeed(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "--no-seed", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No employees to show")
}

func TestListCommand_SeedsByDefault(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "list", "--page", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 3 of 10")
}

func TestListCommand_PerPageFlag(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "--per-page", "25", "list", "--view", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1 of 2")
	assert.Contains(t, out, "  ---")
}

func TestListCommand_InvalidFlags(t *testing.T) {
	_, err := execute(t, t.TempDir(), "", "--per-page", "0", "list")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = execute(t, t.TempDir(), "", "list", "--view", "grid")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"per_page": 50, "seed": false}`), 0o600))

	out, err := execute(t, dir, "", "-c", path, "seed", "--count", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Demo employees added: 7")

	out, err = execute(t, dir, "", "-c", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, "Items per page: 50")
}

func TestSeedCommand_LeavesNonEmptyDirectoryAlone(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "", "seed", "--count", "3")
	require.NoError(t, err)

	out, err := execute(t, dir, "", "seed", "--count", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Demo employees added: 0")
	assert.Len(t, exportedIDs(t, dir), 3)
}

func TestDeleteCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "", "seed", "--count", "3")
	require.NoError(t, err)
	ids := exportedIDs(t, dir)

	_, err = execute(t, dir, "no\n", "delete", ids[0])
	require.NoError(t, err)
	assert.Len(t, exportedIDs(t, dir), 3)

	out, err := execute(t, dir, "", "delete", ids[0], "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete: "+ids[0])
	assert.Equal(t, ids[1:], exportedIDs(t, dir))

	_, err = execute(t, dir, "", "delete", "missing", "--yes")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRootCommand_Interactive(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "lang tr\nquit\n", "--no-seed")
	require.NoError(t, err)

	assert.Contains(t, out, "Employee Manager")
	assert.Contains(t, out, "Çalışan Listesi")
	assert.Contains(t, out, "Hoşça kalın!")
}

func TestSealedFlag(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	pass := func(p string) { readPassword = func(int) ([]byte, error) { return []byte(p), nil } }

	dir := t.TempDir()
	pass("correct horse")
	_, err := execute(t, dir, "", "--sealed", "seed", "--count", "2")
	require.NoError(t, err)

	out, err := execute(t, dir, "", "--sealed", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1 of 1")

	pass("wrong")
	_, err = execute(t, dir, "", "--sealed", "list")
	assert.ErrorIs(t, err, common.ErrorSealBroken)

	pass("")
	_, err = execute(t, dir, "", "--sealed", "list")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
}
