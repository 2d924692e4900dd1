package braille

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// keysFor spells the chord keys for a dot sequence, e.g. [1 4] -> "DK".
func keysFor(dots []int) string {
	keyOf := map[int]byte{1: 'D', 2: 'W', 3: 'Q', 4: 'K', 5: 'O', 6: 'P'}
	b := make([]byte, 0, len(dots))
	for _, d := range dots {
		b = append(b, keyOf[d])
	}
	return string(b)
}

func TestDecodeAlphabet(t *testing.T) {
	for letter, dots := range letterDots {
		keys := keysFor(dots)
		assert.Equal(t, string(letter), Decode(keys), "keys %q", keys)

		// Key order within a chord must not matter.
		rev := []byte(keys)
		for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
			rev[i], rev[j] = rev[j], rev[i]
		}
		assert.Equal(t, string(letter), Decode(string(rev)), "keys %q", rev)
	}
}

func TestDecodeUnknownChord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single dot 2", "W", "?"},
		{"dots 2 3", "WQ", "?"},
		{"all six dots", "DWQKOP", "?"},
		{"dot 4 alone after flush", "DW,K", "b,?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single chord", "DK", "c"},
		{"chord then space then text", "DW hello", "b hello"},
		{"two chords split by space", "DK DW", "c b"},
		{"double space keeps both", "DK  DW", "c  b"},
		{"non-chord char flushes", "DWa", "ba"},
		{"plain lowercase passes through", "helo", "helo"},
		{"plain uppercase is lowercased", "DW HELLT", "b hellt"},
		{"uppercase chord key inside word chords", "Dog", "aog"},
		{"trailing chord flushed without separator", "DW", "b"},
		{"punctuation kept", "DK!", "c!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in))
		})
	}
}

func TestContainsChordKeys(t *testing.T) {
	assert.True(t, ContainsChordKeys("DW hello"))
	assert.True(t, ContainsChordKeys("K"))
	assert.False(t, ContainsChordKeys("helo"), "lowercase letters are not chord keys")
	assert.False(t, ContainsChordKeys("xyz"))
	assert.False(t, ContainsChordKeys(""))
}

func TestPatternOf(t *testing.T) {
	assert.Equal(t, []int{1, 4}, PatternOf(4, 1).Dots())
	assert.Equal(t, PatternOf(1, 4), PatternOf(1, 4, 4), "duplicate dots are idempotent")
	assert.Equal(t, PatternOf(2), PatternOf(2, 0, 7, -3), "out-of-range dots are ignored")
	assert.Nil(t, PatternOf().Dots())
}

func TestPatternString(t *testing.T) {
	assert.Equal(t, "135", PatternOf(5, 3, 1).String())
	assert.Equal(t, "123456", PatternOf(1, 2, 3, 4, 5, 6).String())
	assert.Equal(t, "empty", Pattern(0).String())
}

func TestPatternLetter(t *testing.T) {
	assert.Equal(t, 'c', PatternOf(1, 4).Letter())
	assert.Equal(t, 'w', PatternOf(2, 4, 5, 6).Letter())
	assert.Equal(t, rune(Placeholder), PatternOf(2).Letter())
	assert.Equal(t, rune(Placeholder), Pattern(0).Letter())
}

func TestDotForKey(t *testing.T) {
	for key, want := range map[rune]int{'D': 1, 'W': 2, 'Q': 3, 'K': 4, 'O': 5, 'P': 6} {
		got, ok := DotForKey(key)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := DotForKey('d')
	assert.False(t, ok, "lowercase keys are plain text")
	_, ok = DotForKey('x')
	assert.False(t, ok)
}
