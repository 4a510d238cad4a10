package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkWALMode compares write performance between WAL and rollback journal modes.
// This simulates a feed scan: saving many bookmarks one after another.
func BenchmarkWALMode(b *testing.B) {
	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkBookmarkInserts(b, false)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkBookmarkInserts(b, true)
	})
}

func benchmarkBookmarkInserts(b *testing.B, useWAL bool) {
	b.Helper()

	tmpDir := b.TempDir()
	dbPath := filepath.Join(tmpDir, "bench.db")

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())

	ctx := context.Background()
	if !useWAL {
		_, err := db.ExecContext(ctx, "PRAGMA journal_mode = DELETE")
		require.NoError(b, err)
	}

	defer func() {
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	svc := sqlite.NewBookmarkService(db)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bm := &pinmark.Bookmark{
			URL:      fmt.Sprintf("https://example.com/posts/%d", i),
			Title:    fmt.Sprintf("Post %d", i),
			Platform: "Reddit",
			Tags:     []string{"reddit", "golang"},
		}
		if err := svc.CreateBookmark(ctx, bm); err != nil {
			b.Fatal(err)
		}
	}
}
