package words

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPicker(t *testing.T) {
	roots := []string{"карета", "столица", "крокодил"}
	for i := 0; i < 20; i++ {
		w, err := RandomPicker{}.Pick(roots)
		require.NoError(t, err)
		assert.Contains(t, roots, w)
	}

	_, err := RandomPicker{}.Pick(nil)
	assert.True(t, errors.Is(err, ErrWordListUnavailable))
}

func TestSeededPicker_Deterministic(t *testing.T) {
	roots := []string{"a", "b", "c", "d", "e", "f", "g"}

	a := NewSeededPicker(42)
	b := NewSeededPicker(42)
	for i := 0; i < 10; i++ {
		wa, err := a.Pick(roots)
		require.NoError(t, err)
		wb, err := b.Pick(roots)
		require.NoError(t, err)
		assert.Equal(t, wa, wb)
	}

	_, err := NewSeededPicker(1).Pick(nil)
	assert.True(t, errors.Is(err, ErrWordListUnavailable))
}
