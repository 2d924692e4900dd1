package corrector

import (
	"strings"
	"unicode"

	"braillecorrect/pkg/braille"
	"braillecorrect/pkg/lexicon"
	"braillecorrect/pkg/options"
)

// Autocorrector ties the dot codec, the lexicon and the matcher into the
// correction pipeline: decode chords if any, split into words, suggest
// per word.
type Autocorrector struct {
	lex     *lexicon.Lexicon
	matcher *Matcher
	conf    options.EngineOptions
}

func NewAutocorrector(lex *lexicon.Lexicon, opts ...options.Options) *Autocorrector {
	conf := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&conf)
	}
	if conf.MaxSuggestions <= 0 {
		conf.MaxSuggestions = options.DefaultOptions.MaxSuggestions
	}
	return &Autocorrector{lex: lex, matcher: NewMatcher(lex), conf: conf}
}

// Autocorrect runs text through the pipeline and returns one result per
// whitespace-separated token, in input order. maxPerWord caps each token's
// suggestion list; non-positive values fall back to the configured default.
func (a *Autocorrector) Autocorrect(text string, maxPerWord int) []CorrectionResult {
	if maxPerWord <= 0 {
		maxPerWord = a.conf.MaxSuggestions
	}
	if !a.conf.PlainText && braille.ContainsChordKeys(text) {
		text = braille.Decode(text)
	}

	tokens := strings.Fields(text)
	results := make([]CorrectionResult, 0, len(tokens))
	for _, tok := range tokens {
		clean := stripNonLetters(tok)
		if clean == "" {
			// Nothing to look up; the token passes through untouched.
			results = append(results, CorrectionResult{
				Original:    tok,
				Suggestions: []string{tok},
				BestMatch:   tok,
			})
			continue
		}
		suggestions := a.matcher.Suggest(clean, maxPerWord)
		if len(suggestions) == 0 {
			results = append(results, CorrectionResult{
				Original:    tok,
				Suggestions: []string{},
				BestMatch:   tok,
			})
			continue
		}
		results = append(results, CorrectionResult{
			Original:    tok,
			Suggestions: suggestions,
			BestMatch:   suggestions[0],
		})
	}
	return results
}

// Suggest exposes the matcher for single-word lookups.
func (a *Autocorrector) Suggest(word string, maxSuggestions int) []string {
	return a.matcher.Suggest(word, maxSuggestions)
}

// LearnCorrection records wrong -> correct for future lookups and admits
// the correction into the dictionary.
func (a *Autocorrector) LearnCorrection(wrong, correct string) {
	a.lex.LearnCorrection(wrong, correct)
}

func stripNonLetters(tok string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, tok)
}
