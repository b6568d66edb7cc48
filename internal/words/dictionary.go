package words

// Dictionary is an in-memory spelling dictionary with one word set per
// language. It satisfies game.Speller.
type Dictionary struct {
	sets map[string]map[string]struct{}
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{sets: make(map[string]map[string]struct{})}
}

// Add registers words for language. Entries are stored lowercased in NFC.
func (d *Dictionary) Add(language string, words ...string) {
	set, ok := d.sets[language]
	if !ok {
		set = make(map[string]struct{}, len(words))
		d.sets[language] = set
	}
	for _, w := range words {
		w = Normalize(w)
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
}

// IsCorrectlySpelled reports whether word is known for language.
// Unknown languages have no correctly spelled words.
func (d *Dictionary) IsCorrectlySpelled(word, language string) bool {
	set, ok := d.sets[language]
	if !ok {
		return false
	}
	_, ok = set[Normalize(word)]
	return ok
}

// Len returns the number of words known for language.
func (d *Dictionary) Len(language string) int {
	return len(d.sets[language])
}
