package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/game"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	started := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := &game.Session{
				ID:        "abc123",
				Mode:      game.ModeDaily,
				Root:      "карета",
				Accepted:  []string{"карта", "рак"},
				Input:     "торт",
				StartedAt: started,
				UpdatedAt: started.Add(time.Minute),
			}
			require.NoError(t, st.Save(ctx, s))

			got, err := st.Get(ctx, "abc123")
			require.NoError(t, err)
			assert.Equal(t, s, got)

			// update in place
			s.Accepted = append([]string{"река"}, s.Accepted...)
			s.Input = ""
			require.NoError(t, st.Save(ctx, s))

			got, err = st.Get(ctx, "abc123")
			require.NoError(t, err)
			assert.Equal(t, []string{"река", "карта", "рак"}, got.Accepted)
			assert.Equal(t, 12, got.Score())
		})
	}
}

func TestStore_EmptyAccepted(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Save(ctx, &game.Session{ID: "e", Mode: game.ModeRandom, Root: "карета", Accepted: []string{}}))
			got, err := st.Get(ctx, "e")
			require.NoError(t, err)
			assert.NotNil(t, got.Accepted)
			assert.Empty(t, got.Accepted)
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Get(context.Background(), "missing")
			assert.True(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := &game.Session{ID: "x", Accepted: []string{"рак"}}
	require.NoError(t, st.Save(ctx, s))

	s.Accepted[0] = "река"
	got, err := st.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"рак"}, got.Accepted)

	got.Accepted[0] = "карта"
	again, err := st.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"рак"}, again.Accepted)
}

func TestSQLiteStore_MigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.db")
	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(context.Background(), &game.Session{ID: "k", Mode: game.ModeRandom, Root: "карета"}))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()
	got, err := second.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "карета", got.Root)
}

func TestOpen(t *testing.T) {
	st, err := Open("")
	require.NoError(t, err)
	_, ok := st.(*memory)
	assert.True(t, ok)

	st, err = Open(":memory:")
	require.NoError(t, err)
	defer st.Close()
	_, ok = st.(*sqliteStore)
	assert.True(t, ok)
}
