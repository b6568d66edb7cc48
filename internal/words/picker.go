package words

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Picker chooses the root word for a new game.
type Picker interface {
	Pick(roots []string) (string, error)
}

// RandomPicker picks uniformly using crypto/rand.
type RandomPicker struct{}

// Pick returns a random element of roots.
func (RandomPicker) Pick(roots []string) (string, error) {
	if len(roots) == 0 {
		return "", ErrWordListUnavailable
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(roots))))
	if err != nil {
		return "", err
	}
	return roots[n.Int64()], nil
}

// SeededPicker picks from a deterministic PCG stream. The same seed yields
// the same sequence of root words.
type SeededPicker struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededPicker returns a SeededPicker for seed.
func NewSeededPicker(seed uint64) *SeededPicker {
	return &SeededPicker{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick returns the next pseudo-random element of roots.
func (p *SeededPicker) Pick(roots []string) (string, error) {
	if len(roots) == 0 {
		return "", ErrWordListUnavailable
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return roots[p.rng.IntN(len(roots))], nil
}
