package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenKV struct{}

var errUnavailable = errors.New("storage unavailable")

func (brokenKV) Get(context.Context, string) ([]byte, error) { return nil, errUnavailable }
func (brokenKV) Set(context.Context, string, []byte) error   { return errUnavailable }
func (brokenKV) Delete(context.Context, string) error        { return errUnavailable }
func (brokenKV) Close() error                                { return nil }

type itinerary struct {
	Days     int        `json:"days"`
	Selected []string   `json:"selected"`
	Plan     [][]string `json:"plan"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	value := itinerary{Days: 2, Selected: []string{"karnak", "philae"}, Plan: [][]string{{"karnak"}, {"philae"}}}

	require.True(t, Save(ctx, kv, KeyItinerary, value))
	got := Load(ctx, kv, KeyItinerary, itinerary{})
	assert.Equal(t, value, got)
}

func TestLoadFallbacks(t *testing.T) {
	ctx := context.Background()
	fallback := itinerary{Days: 7}

	t.Run("missing key", func(t *testing.T) {
		assert.Equal(t, fallback, Load(ctx, NewMemory(), KeyItinerary, fallback))
	})

	t.Run("backend failure", func(t *testing.T) {
		assert.Equal(t, fallback, Load[itinerary](ctx, brokenKV{}, KeyItinerary, fallback))
	})

	t.Run("empty value", func(t *testing.T) {
		kv := NewMemory()
		require.NoError(t, kv.Set(ctx, KeyItinerary, nil))
		assert.Equal(t, fallback, Load(ctx, kv, KeyItinerary, fallback))
	})

	t.Run("corrupt json", func(t *testing.T) {
		kv := NewMemory()
		require.NoError(t, kv.Set(ctx, KeyItinerary, []byte(`{"days":`)))
		assert.Equal(t, fallback, Load(ctx, kv, KeyItinerary, fallback))
	})

	t.Run("nil store", func(t *testing.T) {
		assert.Equal(t, fallback, Load(ctx, nil, KeyItinerary, fallback))
	})
}

func TestLoadStrict(t *testing.T) {
	ctx := context.Background()
	empty := itinerary{Days: 1}

	t.Run("missing key", func(t *testing.T) {
		got, err := LoadStrict(ctx, NewMemory(), KeyItinerary, empty)
		require.NoError(t, err)
		assert.Equal(t, empty, got)
	})

	t.Run("stored value", func(t *testing.T) {
		kv := NewMemory()
		require.True(t, Save(ctx, kv, KeyItinerary, itinerary{Days: 3}))
		got, err := LoadStrict(ctx, kv, KeyItinerary, empty)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Days)
	})

	t.Run("backend failure", func(t *testing.T) {
		_, err := LoadStrict[itinerary](ctx, brokenKV{}, KeyItinerary, empty)
		assert.ErrorIs(t, err, errUnavailable)
	})

	t.Run("corrupt json", func(t *testing.T) {
		kv := NewMemory()
		require.NoError(t, kv.Set(ctx, KeyItinerary, []byte(`{"days":`)))
		_, err := LoadStrict(ctx, kv, KeyItinerary, empty)
		assert.Error(t, err)
	})

	t.Run("nil store", func(t *testing.T) {
		got, err := LoadStrict(ctx, nil, KeyItinerary, empty)
		require.NoError(t, err)
		assert.Equal(t, empty, got)
	})
}

func TestSaveSwallowsFailures(t *testing.T) {
	ctx := context.Background()
	assert.False(t, Save(ctx, brokenKV{}, KeyProfile, map[string]string{"name": "x"}))
	assert.False(t, Save(ctx, NewMemory(), KeyProfile, make(chan int)))
	assert.False(t, Remove(ctx, brokenKV{}, KeyProfile))
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	require.True(t, Save(ctx, kv, KeyWelcomeSeen, true))
	require.True(t, Remove(ctx, kv, KeyWelcomeSeen))
	assert.False(t, Load(ctx, kv, KeyWelcomeSeen, false))
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	buf := []byte("abc")
	require.NoError(t, kv.Set(ctx, "k", buf))
	buf[0] = 'z'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	_, err = kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), Options{Backend: "etcd"})
	assert.Error(t, err)
}

func TestCartKey(t *testing.T) {
	assert.Equal(t, "nile.cart.abc", CartKey("abc"))
}
