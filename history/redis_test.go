package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRedisStore creates a miniredis instance and returns a connected RedisStore.
func setupRedisStore(t *testing.T, cap int) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := NewRedisStore(RedisOptions{
		URL:            fmt.Sprintf("redis://%s", mr.Addr()),
		Cap:            cap,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store, mr
}

func TestNewRedisStore(t *testing.T) {
	t.Run("successful connection", func(t *testing.T) {
		mr := miniredis.RunT(t)
		defer mr.Close()

		store, err := NewRedisStore(RedisOptions{
			URL: fmt.Sprintf("redis://%s", mr.Addr()),
		})
		require.NoError(t, err)
		require.NotNil(t, store)
		defer store.Close()
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, err := NewRedisStore(RedisOptions{URL: "not-a-url"})
		require.Error(t, err)
	})

	t.Run("unreachable server", func(t *testing.T) {
		_, err := NewRedisStore(RedisOptions{
			URL:            "redis://127.0.0.1:1",
			ConnectTimeout: 100 * time.Millisecond,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestRedisStore_AppendAndHistory(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedisStore(t, 10)

	for i := 0; i < 3; i++ {
		err := store.Append(ctx, "vault-1", snapshotAt(float64(i*10), time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	hist, err := store.History(ctx, "vault-1")
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, 0.0, hist[0].CompositeScore)
	assert.Equal(t, 20.0, hist[2].CompositeScore)
}

func TestRedisStore_Last(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedisStore(t, 10)

	last, err := store.Last(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, last)

	require.NoError(t, store.Append(ctx, "vault-1", snapshotAt(42, 0)))

	last, err = store.Last(ctx, "vault-1")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 42.0, last.CompositeScore)
}

func TestRedisStore_CapEvictsOldest(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedisStore(t, 5)

	for i := 0; i < 7; i++ {
		require.NoError(t, store.Append(ctx, "vault-1", snapshotAt(float64(i), time.Duration(i)*time.Second)))
	}

	hist, err := store.History(ctx, "vault-1")
	require.NoError(t, err)
	require.Len(t, hist, 5)
	assert.Equal(t, 2.0, hist[0].CompositeScore)
	assert.Equal(t, 6.0, hist[4].CompositeScore)
}

func TestRedisStore_VaultIsolation(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedisStore(t, 10)

	require.NoError(t, store.Append(ctx, "vault-1", snapshotAt(11, 0)))
	require.NoError(t, store.Append(ctx, "vault-2", snapshotAt(22, 0)))

	hist, err := store.History(ctx, "vault-1")
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, 11.0, hist[0].CompositeScore)
}

func TestRedisStore_EmptyVaultID(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedisStore(t, 10)

	assert.ErrorIs(t, store.Append(ctx, "", snapshotAt(1, 0)), ErrInvalidVaultID)
	_, err := store.History(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidVaultID)
	_, err = store.Last(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidVaultID)
}

func TestRedisStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t, 10)

	require.NoError(t, store.Append(ctx, "vault-1", snapshotAt(1, 0)))
	mr.Close()

	err := store.Append(ctx, "vault-1", snapshotAt(2, time.Minute))
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.History(ctx, "vault-1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRedisStore_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedisStore(t, 10)

	snap := snapshotAt(73.42, 0)
	snap.CategoryScores.DataExfiltration = 88.5
	snap.LogicScores.Deductive = 90
	require.NoError(t, store.Append(ctx, "vault-1", snap))

	last, err := store.Last(ctx, "vault-1")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 73.42, last.CompositeScore)
	assert.Equal(t, 88.5, last.CategoryScores.DataExfiltration)
	assert.Equal(t, 90.0, last.LogicScores.Deductive)
	assert.True(t, last.Timestamp.Equal(snap.Timestamp))
}
