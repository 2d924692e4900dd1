// Package lexicon holds the in-memory dictionary: known words, per-word
// usage counts and corrections learned from the user.
package lexicon

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// topWordsLimit caps Stats.TopWords.
const topWordsLimit = 5

// Lexicon is the dictionary state shared by the matcher and the correction
// pipeline. It is not safe for concurrent use; callers adding goroutines
// must serialize access themselves.
type Lexicon struct {
	words map[string]struct{}
	freq  map[string]int
	fixes map[string]string
}

// New returns an empty Lexicon. Callers seed it through AddWord.
func New() *Lexicon {
	return &Lexicon{
		words: make(map[string]struct{}),
		freq:  make(map[string]int),
		fixes: make(map[string]string),
	}
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// AddWord inserts word into the dictionary and bumps its usage count.
// Words are lowercased and trimmed; an empty result is a no-op. Adding an
// existing word only increments the count.
func (l *Lexicon) AddWord(word string) {
	w := normalize(word)
	if w == "" {
		return
	}
	l.words[w] = struct{}{}
	l.freq[w]++
}

// LearnCorrection records wrong -> correct, overwriting any earlier entry
// for wrong, and adds the correction to the dictionary. Both sides are
// lowercased.
func (l *Lexicon) LearnCorrection(wrong, correct string) {
	l.fixes[strings.ToLower(wrong)] = strings.ToLower(correct)
	l.AddWord(correct)
}

// Contains reports whether word is in the dictionary.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[normalize(word)]
	return ok
}

// FrequencyOf returns word's usage count, 0 if unknown.
func (l *Lexicon) FrequencyOf(word string) int {
	return l.freq[normalize(word)]
}

// LearnedFixFor returns the learned correction for word, if one exists.
func (l *Lexicon) LearnedFixFor(word string) (string, bool) {
	fix, ok := l.fixes[strings.ToLower(word)]
	return fix, ok
}

// Words returns all dictionary words in no particular order.
func (l *Lexicon) Words() []string {
	return maps.Keys(l.words)
}

// WordCount pairs a word with its usage count.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Stats is a point-in-time summary of the dictionary.
type Stats struct {
	TotalWords         int         `json:"total_words" yaml:"total_words"`
	LearnedCorrections int         `json:"learned_corrections" yaml:"learned_corrections"`
	TopWords           []WordCount `json:"most_common_words" yaml:"most_common_words"`
}

// Stats reports the dictionary and learned-correction totals plus the five
// most used words, counts descending. Ties order lexicographically so the
// result is deterministic.
func (l *Lexicon) Stats() Stats {
	top := make([]WordCount, 0, len(l.freq))
	for w, n := range l.freq {
		top = append(top, WordCount{Word: w, Count: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Word < top[j].Word
	})
	if len(top) > topWordsLimit {
		top = top[:topWordsLimit]
	}
	return Stats{
		TotalWords:         len(l.words),
		LearnedCorrections: len(l.fixes),
		TopWords:           top,
	}
}

// Snapshot is a serializable copy of the lexicon's three maps. It is the
// boundary a surrounding layer may persist and restore; the lexicon itself
// never touches disk.
type Snapshot struct {
	Words        []string          `json:"words" yaml:"words"`
	Frequencies  map[string]int    `json:"frequencies" yaml:"frequencies"`
	LearnedFixes map[string]string `json:"learned_fixes" yaml:"learned_fixes"`
}

// Snapshot copies the current state. Words are sorted so serialized output
// is stable across runs.
func (l *Lexicon) Snapshot() Snapshot {
	words := maps.Keys(l.words)
	sort.Strings(words)
	return Snapshot{
		Words:        words,
		Frequencies:  maps.Clone(l.freq),
		LearnedFixes: maps.Clone(l.fixes),
	}
}

// Restore replaces the lexicon's contents with s. Entries pass through the
// normalizing mutators; saved counts are applied last because
// LearnCorrection bumps them while rebuilding.
func (l *Lexicon) Restore(s Snapshot) {
	l.words = make(map[string]struct{}, len(s.Words))
	l.freq = make(map[string]int, len(s.Words))
	l.fixes = make(map[string]string, len(s.LearnedFixes))
	for _, w := range s.Words {
		l.AddWord(w)
	}
	for wrong, correct := range s.LearnedFixes {
		l.LearnCorrection(wrong, correct)
	}
	for w, n := range s.Frequencies {
		w = normalize(w)
		if _, ok := l.words[w]; ok && n > 0 {
			l.freq[w] = n
		}
	}
}
