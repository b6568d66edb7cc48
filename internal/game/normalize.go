package game

import "github.com/robalobadob/wordscramble/internal/words"

// Normalize prepares raw input for validation. It is the same normalization
// applied to root words and dictionary entries.
func Normalize(raw string) string { return words.Normalize(raw) }
