package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/empdir/internal/config"
	"github.com/dmitrijs2005/empdir/internal/confirm"
	"github.com/dmitrijs2005/empdir/internal/i18n"
	"github.com/dmitrijs2005/empdir/internal/logging"
	"github.com/dmitrijs2005/empdir/internal/models"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC) }

// fixWidth pins the detected terminal width for one test.
func fixWidth(t *testing.T, w int) {
	t.Helper()
	old := terminalWidth
	terminalWidth = func() int { return w }
	t.Cleanup(func() { terminalWidth = old })
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DBPath = filepath.Join(t.TempDir(), "empdir.db")
	cfg.Seed = false
	cfg.Language = "en"
	return cfg
}

// newTestApp opens an App reading input and writing to the returned buffer.
func newTestApp(t *testing.T, cfg *config.Config, input string, gate confirm.Gate) (*App, *bytes.Buffer) {
	t.Helper()
	fixWidth(t, 0)
	out := &bytes.Buffer{}
	a, err := NewApp(context.Background(), cfg, AppOptions{
		In:     strings.NewReader(input),
		Out:    out,
		Logger: logging.Nop(),
		Gate:   gate,
		Now:    fixedNow,
	})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a, out
}

func draft(i int) models.Draft {
	return models.Draft{
		FirstName:        fmt.Sprintf("First%d", i),
		LastName:         fmt.Sprintf("Last%d", i),
		DateOfEmployment: "2020-01-01",
		DateOfBirth:      "1990-01-01",
		Phone:            fmt.Sprintf("555000%04d", i),
		Email:            fmt.Sprintf("user%d@example.com", i),
		Department:       models.DepartmentTech,
		Position:         models.PositionJunior,
	}
}

func addEmployees(t *testing.T, a *App, n int) []models.Employee {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := a.store.Add(context.Background(), draft(i))
		require.NoError(t, err)
	}
	return a.store.List()
}

type rawTexts struct{}

func (rawTexts) T(k i18n.Key) string { return string(k) }
