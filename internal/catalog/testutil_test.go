package catalog

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	_ "modernc.org/sqlite"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewStore(db)
	if err := store.Init(); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return store
}

func setupTestIndex(t *testing.T) *Index {
	t.Helper()
	index, err := NewIndex(t.TempDir(), testLogger())
	if err != nil {
		t.Fatalf("create index: %v", err)
	}
	t.Cleanup(func() { _ = index.Close() })
	return index
}

// ptr is a helper to create pointer to value
func ptr[T any](v T) *T {
	return &v
}
