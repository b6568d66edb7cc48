// internal/game/types.go
//
// Core type definitions for the word scramble game.
// Defines:
//   - Outcome/Reason: result of validating one submitted word.
//   - Alert: the (title, message) pair shown to the player on a reject.
//   - Session: state for a single game (root word, accepted words, input).

package game

import (
	"time"
	"unicode/utf8"
)

// Outcome is the coarse result of a submission.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
	OutcomeIgnored  Outcome = "ignored" // empty input, nothing happens
)

// Reason names the first validation check a rejected word failed.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonDuplicate     Reason = "duplicate"
	ReasonNotComposable Reason = "not_composable"
	ReasonMisspelled    Reason = "misspelled"
	ReasonTooShort      Reason = "too_short"
	ReasonEqualsRoot    Reason = "equals_root"
)

// Mode selects how a game's root word is picked.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
)

// Alert is what the presentation layer shows for a rejected word.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Verdict is the validator's decision for one candidate.
type Verdict struct {
	Outcome Outcome
	Reason  Reason
}

// Result is returned to the presentation layer after a submission.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Word    string  `json:"word,omitempty"`   // normalized candidate
	Reason  Reason  `json:"reason,omitempty"` // set when rejected
	Alert   *Alert  `json:"alert,omitempty"`  // set when rejected
}

// Session holds the state of a single game.
type Session struct {
	ID        string    // Unique session identifier (random hex string).
	Mode      Mode      // How Root was picked.
	Root      string    // The root word (lowercase); fixed for the game.
	Accepted  []string  // Accepted words, most recent first.
	Input     string    // Pending input; cleared when a word is accepted.
	StartedAt time.Time // When the current root word was picked.
	UpdatedAt time.Time // Last mutation.
}

// Score is the sum of letter counts of the accepted words.
func (s *Session) Score() int { return Score(s.Accepted) }

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	c := *s
	c.Accepted = make([]string, len(s.Accepted))
	copy(c.Accepted, s.Accepted)
	return &c
}

// Snapshot is the view of a session handed to observers.
type Snapshot struct {
	ID    string   `json:"id"`
	Mode  Mode     `json:"mode"`
	Root  string   `json:"root"`
	Words []string `json:"words"`
	Input string   `json:"input"`
	Score int      `json:"score"`
}

// Snapshot returns the current view of s.
func (s *Session) Snapshot() Snapshot {
	ws := append([]string{}, s.Accepted...)
	return Snapshot{
		ID:    s.ID,
		Mode:  s.Mode,
		Root:  s.Root,
		Words: ws,
		Input: s.Input,
		Score: s.Score(),
	}
}

// Score sums the letter counts of words.
func Score(words []string) int {
	n := 0
	for _, w := range words {
		n += utf8.RuneCountInString(w)
	}
	return n
}
