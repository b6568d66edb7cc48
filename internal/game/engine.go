// internal/game/engine.go
//
// Game session controller.
// Responsibilities:
//   - Start (and reset) sessions with a root word chosen by a Picker.
//   - Normalize submitted input once and run it through the Validator.
//   - Prepend accepted words and clear the pending input.
//   - Notify observers after every mutation.
//
// Notes:
//   - The root-word list is read-only; an empty list is a fatal condition
//     reported as words.ErrWordListUnavailable.
//   - A Session is mutated only by Start and Submit. Callers serialize
//     access to a given Session.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robalobadob/wordscramble/internal/words"
)

// ErrUnknownMode is returned by NewGame for a mode with no picker.
var ErrUnknownMode = errors.New("game: unknown mode")

// Observer is notified with the session view after each mutation.
type Observer func(Snapshot)

// Config wires an Engine.
type Config struct {
	Roots       []string     // Root-word list.
	Picker      words.Picker // Picker for ModeRandom; defaults to words.RandomPicker.
	DailyPicker words.Picker // Picker for ModeDaily; optional.
	Speller     Speller
	Language    string
	Now         func() time.Time // defaults to time.Now
}

// Engine owns root selection and applies submissions to sessions.
type Engine struct {
	roots     []string
	pickers   map[Mode]words.Picker
	validator Validator
	now       func() time.Time

	mu        sync.RWMutex // guards observers
	observers []Observer
}

// NewEngine constructs an Engine from cfg.
func NewEngine(cfg Config) *Engine {
	picker := cfg.Picker
	if picker == nil {
		picker = words.RandomPicker{}
	}
	pickers := map[Mode]words.Picker{ModeRandom: picker}
	if cfg.DailyPicker != nil {
		pickers[ModeDaily] = cfg.DailyPicker
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		roots:     cfg.Roots,
		pickers:   pickers,
		validator: Validator{Speller: cfg.Speller, Language: cfg.Language},
		now:       now,
	}
}

// Observe registers o to be called after every session mutation.
func (e *Engine) Observe(o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, o)
}

// NewGame creates a session in mode and starts it.
func (e *Engine) NewGame(mode Mode) (*Session, error) {
	if mode == "" {
		mode = ModeRandom
	}
	if _, ok := e.pickers[mode]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	s := &Session{ID: randomID(), Mode: mode}
	if err := e.Start(s); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGameWithRoot creates a session with a fixed root word (testing).
func (e *Engine) NewGameWithRoot(root string) *Session {
	s := &Session{ID: randomID(), Mode: ModeRandom}
	e.reset(s, Normalize(root))
	return s
}

// Start picks a new root word for s and clears its words and input.
// Calling Start on a played session is the reset command.
func (e *Engine) Start(s *Session) error {
	picker, ok := e.pickers[s.Mode]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, s.Mode)
	}
	root, err := picker.Pick(e.roots)
	if err != nil {
		return fmt.Errorf("pick root word: %w", err)
	}
	e.reset(s, root)
	return nil
}

func (e *Engine) reset(s *Session, root string) {
	now := e.now().UTC()
	s.Root = root
	s.Accepted = []string{}
	s.Input = ""
	s.StartedAt = now
	s.UpdatedAt = now
	e.notify(s)
}

// Submit validates raw input against s and applies the outcome:
//   - accepted: the word is prepended and the pending input cleared.
//   - rejected: only the pending input changes; observers see it and the
//     alert is returned.
//   - ignored:  blank input, nothing changes and no observer is called.
func (e *Engine) Submit(s *Session, raw string) Result {
	word := Normalize(raw)
	v := e.validator.Validate(word, s.Root, s.Accepted)

	switch v.Outcome {
	case OutcomeIgnored:
		return Result{Outcome: OutcomeIgnored}
	case OutcomeRejected:
		s.Input = raw
		s.UpdatedAt = e.now().UTC()
		e.notify(s)
		alert := AlertFor(v.Reason, s.Root)
		return Result{Outcome: OutcomeRejected, Word: word, Reason: v.Reason, Alert: &alert}
	}

	s.Accepted = append([]string{word}, s.Accepted...)
	s.Input = ""
	s.UpdatedAt = e.now().UTC()
	e.notify(s)
	return Result{Outcome: OutcomeAccepted, Word: word}
}

// Score reports the score of s.
func (e *Engine) Score(s *Session) int { return s.Score() }

// Roots returns the root-word list.
func (e *Engine) Roots() []string { return e.roots }

func (e *Engine) notify(s *Session) {
	e.mu.RLock()
	obs := e.observers
	e.mu.RUnlock()
	if len(obs) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, o := range obs {
		o(snap)
	}
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
