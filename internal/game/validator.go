// internal/game/validator.go
//
// Word validation pipeline.
//
// A normalized candidate goes through four checks in fixed order; the first
// one that fails decides the rejection reason and later checks do not run:
//
//  1. originality   - not already accepted
//  2. composability - letters are a sub-multiset of the root word's letters
//  3. spelling      - known to the configured Speller
//  4. length        - at least MinWordLength letters and not the root itself
//
// An empty candidate is ignored without an alert.

package game

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// MinWordLength is the shortest acceptable word, in letters.
const MinWordLength = 3

// Speller is the spell-check facility consulted by the validator.
type Speller interface {
	IsCorrectlySpelled(word, language string) bool
}

// Validator decides whether a candidate may be accepted.
type Validator struct {
	Speller  Speller
	Language string
}

// Validate runs the pipeline on an already normalized candidate.
func (v Validator) Validate(candidate, root string, accepted []string) Verdict {
	if candidate == "" {
		return Verdict{Outcome: OutcomeIgnored}
	}
	if !IsOriginal(candidate, accepted) {
		return reject(ReasonDuplicate)
	}
	if !IsComposable(candidate, root) {
		return reject(ReasonNotComposable)
	}
	if !v.isSpelled(candidate) {
		return reject(ReasonMisspelled)
	}
	if r := checkLength(candidate, root); r != ReasonNone {
		return reject(r)
	}
	return Verdict{Outcome: OutcomeAccepted}
}

func reject(r Reason) Verdict {
	return Verdict{Outcome: OutcomeRejected, Reason: r}
}

// IsOriginal reports whether word has not been accepted yet.
func IsOriginal(word string, accepted []string) bool {
	return !slices.Contains(accepted, word)
}

// IsComposable reports whether word can be spelled by taking letters one at a
// time out of root. Each letter of root can be used once.
func IsComposable(word, root string) bool {
	pool := []rune(root)
	for _, letter := range word {
		i := slices.Index(pool, letter)
		if i < 0 {
			return false
		}
		pool = slices.Delete(pool, i, i+1)
	}
	return true
}

func (v Validator) isSpelled(word string) bool {
	if v.Speller == nil {
		return false
	}
	return v.Speller.IsCorrectlySpelled(word, v.Language)
}

// checkLength rejects words that are too short or equal to the root word.
func checkLength(word, root string) Reason {
	if utf8.RuneCountInString(word) < MinWordLength {
		return ReasonTooShort
	}
	if word == root {
		return ReasonEqualsRoot
	}
	return ReasonNone
}

// AlertFor returns the player-facing alert for a rejection reason.
func AlertFor(r Reason, root string) Alert {
	switch r {
	case ReasonDuplicate:
		return Alert{Title: "Слово уже использовалось", Message: "Будь оригинальнее!"}
	case ReasonNotComposable:
		return Alert{
			Title:   fmt.Sprintf("Такое слово невозможно составить из '%s'", root),
			Message: "Придумай новое слово!",
		}
	case ReasonMisspelled:
		return Alert{Title: "В слове допущена ошибка", Message: "Посмотри внимательнее на введенное слово!"}
	case ReasonTooShort:
		return Alert{Title: "Слишком короткое слово", Message: "Слово не должно состоять из 2х букв"}
	case ReasonEqualsRoot:
		return Alert{Title: "Слово совпадает с исходным", Message: "Нельзя использовать исходное слово!"}
	default:
		return Alert{}
	}
}
