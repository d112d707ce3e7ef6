// ABOUTME: Tests for the local prediction history store
// ABOUTME: Covers recording, recency ordering, and outcome counts

package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, 1, "Dewi", "Berprestasi", 0.91))
	require.NoError(t, s.Record(ctx, 1, "Budi", "Tidak Berprestasi", 0.67))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, 1, e.ModelID)
		assert.False(t, e.CreatedAt.IsZero())
	}
}

func TestRecent_HonorsLimit(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, 2, "", "Berprestasi", 0.8))
	}

	entries, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRecent_EmptyStore(t *testing.T) {
	s := createTestStore(t)

	entries, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCounts(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, 1, "", "Berprestasi", 0.9))
	require.NoError(t, s.Record(ctx, 1, "", "Berprestasi", 0.8))
	require.NoError(t, s.Record(ctx, 1, "", "Tidak Berprestasi", 0.7))

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Berprestasi": 2, "Tidak Berprestasi": 1}, counts)
}

func TestOpen_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Record(context.Background(), 1, "", "Berprestasi", 0.5))
}
