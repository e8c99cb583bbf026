package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both local backends must satisfy the same contract: absent keys are
// (nil, nil), removes are idempotent, writes replace.
func TestLocalBackends(t *testing.T) {
	ctx := context.Background()

	fileStore, err := NewFile(t.TempDir())
	require.NoError(t, err)

	backends := map[string]Store{
		"memory": NewMemory(),
		"file":   fileStore,
	}

	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			t.Run("absent key is nil without error", func(t *testing.T) {
				value, err := backend.Get(ctx, "missing")
				require.NoError(t, err)
				assert.Nil(t, value)
			})

			t.Run("set then get round-trips", func(t *testing.T) {
				require.NoError(t, backend.Set(ctx, "k", []byte("v1")))
				value, err := backend.Get(ctx, "k")
				require.NoError(t, err)
				assert.Equal(t, []byte("v1"), value)
			})

			t.Run("set replaces", func(t *testing.T) {
				require.NoError(t, backend.Set(ctx, "k", []byte("v2")))
				value, err := backend.Get(ctx, "k")
				require.NoError(t, err)
				assert.Equal(t, []byte("v2"), value)
			})

			t.Run("remove is idempotent", func(t *testing.T) {
				require.NoError(t, backend.Remove(ctx, "k"))
				require.NoError(t, backend.Remove(ctx, "k"))
				value, err := backend.Get(ctx, "k")
				require.NoError(t, err)
				assert.Nil(t, value)
			})

			t.Run("keys with separators are safe", func(t *testing.T) {
				key := "mindsync:state/of the/app"
				require.NoError(t, backend.Set(ctx, key, []byte("doc")))
				value, err := backend.Get(ctx, key)
				require.NoError(t, err)
				assert.Equal(t, []byte("doc"), value)
			})
		})
	}
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	require.NoError(t, mem.Set(ctx, "k", []byte("abc")))

	value, err := mem.Get(ctx, "k")
	require.NoError(t, err)
	value[0] = 'X'

	again, err := mem.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestFilePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "state", []byte("doc")))

	second, err := NewFile(dir)
	require.NoError(t, err)
	value, err := second.Get(ctx, "state")
	require.NoError(t, err)
	assert.Equal(t, []byte("doc"), value)
}
