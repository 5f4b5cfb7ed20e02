package localstore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/empdir/internal/logging"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "empdir.db")

	db, err := Open(ctx, dsn, logging.Nop())
	require.NoError(t, err)
	defer db.Close()

	require.True(t, tableExists(t, db, "goose_db_version"))
	require.True(t, tableExists(t, db, "local_storage"))
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "empdir.db")

	db, err := Open(ctx, dsn, logging.Nop())
	require.NoError(t, err)
	require.NoError(t, NewSQLiteRepository(db).Set(ctx, "lang", []byte("tr")))
	require.NoError(t, db.Close())

	db, err = Open(ctx, dsn, logging.Nop())
	require.NoError(t, err)
	defer db.Close()

	v, err := NewSQLiteRepository(db).Get(ctx, "lang")
	require.NoError(t, err)
	require.Equal(t, []byte("tr"), v)
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, ":memory:", logging.Nop())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db, logging.Nop()))
	require.True(t, tableExists(t, db, "local_storage"))
}

func TestOpen_CreatesParentDirectories(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "missing", "dir", "empdir.db")

	db, err := Open(context.Background(), dsn, logging.Nop())
	require.NoError(t, err)
	defer db.Close()
	require.True(t, tableExists(t, db, "local_storage"))
}

func TestOpen_BadPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := Open(context.Background(), filepath.Join(blocker, "empdir.db"), logging.Nop())
	require.Error(t, err)
}
