package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteKV(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "nile.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)

	_, err = s.Get(ctx, KeyMapCity)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyMapCity, []byte(`"Luxor"`)))
	require.NoError(t, s.Set(ctx, KeyMapCity, []byte(`"Aswan"`)))

	v, err := s.Get(ctx, KeyMapCity)
	require.NoError(t, err)
	assert.Equal(t, `"Aswan"`, string(v))
	require.NoError(t, s.Close())

	// values survive a reopen
	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "Aswan", Load(ctx, s, KeyMapCity, "Cairo"))

	require.NoError(t, s.Delete(ctx, KeyMapCity))
	assert.Equal(t, "Cairo", Load(ctx, s, KeyMapCity, "Cairo"))
}

func TestSQLiteInMemory(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.True(t, Save(ctx, s, KeyProfile, map[string]any{"name": "Mona", "verified": true}))
	got := Load(ctx, s, KeyProfile, map[string]any{})
	assert.Equal(t, "Mona", got["name"])
	assert.Equal(t, true, got["verified"])
}
