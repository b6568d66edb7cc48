// Package assets embeds the bundled word lists so the game runs without any
// files configured.
package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed start.txt dictionary_ru.txt
var FS embed.FS

// ReadLines reads one word per line, trimming and lowercasing each one.
// Blank lines and lines starting with "#" are skipped.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// StartList returns the bundled root words.
func StartList() ([]string, error) {
	return readLines("start.txt")
}

// DictionaryList returns the bundled Russian dictionary.
func DictionaryList() ([]string, error) {
	return readLines("dictionary_ru.txt")
}
