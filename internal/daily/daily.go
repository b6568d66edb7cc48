// Package daily provides the "daily root word": every player starting a
// daily game on the same UTC day gets the same root word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordscramble/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % listLen.
func WordIndex(date time.Time, salt string, listLen int) int {
	if listLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(listLen))
}

// Picker selects the root word of the day. It satisfies words.Picker.
type Picker struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

// NewPicker returns a Picker keyed by salt.
func NewPicker(salt string) *Picker {
	return &Picker{Salt: salt, Now: time.Now}
}

// Pick returns today's root word.
func (p *Picker) Pick(roots []string) (string, error) {
	if len(roots) == 0 {
		return "", words.ErrWordListUnavailable
	}
	return roots[WordIndex(p.now(), p.Salt, len(roots))], nil
}

// Today returns today's date key and root word.
func (p *Picker) Today(roots []string) (string, string, error) {
	w, err := p.Pick(roots)
	if err != nil {
		return "", "", err
	}
	return DateKey(p.now()), w, nil
}

func (p *Picker) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
