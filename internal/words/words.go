// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the root-word list from a file named in configuration or fall back
//     to the embedded default (assets/start.txt).
//   - Load the spelling dictionary the same way (assets/dictionary_ru.txt).
//   - Report list sizes for diagnostics.
//
// A game cannot be played without root words, so an empty or unreadable root
// list is reported as ErrWordListUnavailable and callers treat it as fatal.

package words

import (
	"errors"
	"fmt"
	"os"

	"github.com/robalobadob/wordscramble/assets"
)

// DefaultLanguage is the language of the embedded dictionary.
const DefaultLanguage = "ru"

// ErrWordListUnavailable marks the unrecoverable startup failure: there is no
// root word to start a game with.
var ErrWordListUnavailable = errors.New("words: root word list unavailable")

// Options selects where word lists come from. Empty paths use the embedded
// defaults.
type Options struct {
	StartFile      string
	DictionaryFile string
	Language       string
}

// Lists holds the loaded root words and the spelling dictionary.
// Both are read-only once Load returns.
type Lists struct {
	Roots      []string
	Dictionary *Dictionary
	Language   string
}

// Load reads the root-word list and the dictionary.
func Load(opts Options) (*Lists, error) {
	lang := opts.Language
	if lang == "" {
		lang = DefaultLanguage
	}

	roots, err := loadRoots(opts.StartFile)
	if err != nil {
		return nil, err
	}

	dictWords, err := loadDictionary(opts.DictionaryFile, lang)
	if err != nil {
		return nil, err
	}
	dict := NewDictionary()
	dict.Add(lang, dictWords...)
	// Root words are always spelled correctly.
	dict.Add(lang, roots...)

	return &Lists{Roots: roots, Dictionary: dict, Language: lang}, nil
}

// Stats returns counts of loaded words: (roots, dictionary entries).
func (l *Lists) Stats() (rootCount int, dictionaryCount int) {
	return len(l.Roots), l.Dictionary.Len(l.Language)
}

func loadRoots(path string) ([]string, error) {
	var (
		list []string
		err  error
	)
	if path != "" {
		list, err = readWordFile(path)
	} else {
		list, err = assets.StartList()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordListUnavailable, err)
	}
	list = normalizeAll(list)
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: list is empty", ErrWordListUnavailable)
	}
	return list, nil
}

func loadDictionary(path, lang string) ([]string, error) {
	if path != "" {
		list, err := readWordFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dictionary: %w", err)
		}
		return list, nil
	}
	if lang != DefaultLanguage {
		// Only the Russian dictionary is bundled.
		return nil, nil
	}
	return assets.DictionaryList()
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}
