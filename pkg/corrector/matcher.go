package corrector

import (
	"sort"
	"strings"

	"braillecorrect/pkg/lexicon"
)

const (
	// defaultSuggestionLimit applies when Suggest gets a non-positive limit.
	defaultSuggestionLimit = 5

	// distanceCeiling caps how many edits a candidate may be away,
	// regardless of word length.
	distanceCeiling = 3

	similarityWeight = 0.7
	frequencyWeight  = 0.3
	frequencyScale   = 100.0
)

type suggestion struct {
	word     string
	score    float64
	distance int
}

// Matcher ranks dictionary words against a query by edit distance and
// usage frequency.
type Matcher struct {
	lex *lexicon.Lexicon
}

func NewMatcher(lex *lexicon.Lexicon) *Matcher {
	return &Matcher{lex: lex}
}

// Suggest returns up to maxSuggestions candidate corrections for word,
// best first. A word already in the dictionary, or one with a learned fix,
// short-circuits the fuzzy scan and comes back alone regardless of the
// limit. A non-positive limit falls back to the default of 5.
func (m *Matcher) Suggest(word string, maxSuggestions int) []string {
	word = strings.ToLower(word)
	if m.lex.Contains(word) {
		return []string{word}
	}
	if fix, ok := m.lex.LearnedFixFor(word); ok {
		return []string{fix}
	}
	if maxSuggestions <= 0 {
		maxSuggestions = defaultSuggestionLimit
	}

	wordLen := len([]rune(word))
	maxDistance := min(distanceCeiling, wordLen/2+1)

	var scored []suggestion
	for _, cand := range m.lex.Words() {
		distance := editDistance(word, cand)
		if distance > maxDistance {
			continue
		}
		candLen := len([]rune(cand))
		similarity := 1.0 - float64(distance)/float64(max(wordLen, candLen))
		freq := m.lex.FrequencyOf(cand)
		if freq == 0 {
			freq = 1
		}
		total := similarity*similarityWeight + float64(freq)/frequencyScale*frequencyWeight
		scored = append(scored, suggestion{word: cand, score: total, distance: distance})
	}

	// Best score first; ties prefer fewer edits, then lexicographic order
	// so results stay deterministic across map iteration.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].distance != scored[j].distance {
			return scored[i].distance < scored[j].distance
		}
		return scored[i].word < scored[j].word
	})

	if len(scored) > maxSuggestions {
		scored = scored[:maxSuggestions]
	}
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.word
	}
	return out
}
