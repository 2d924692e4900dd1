// Package braille decodes chorded QWERTY input into plain text via the
// six-dot Braille cell.
//
// The designated chord keys are D, W, Q (dots 1-3, the left column of the
// cell) and K, O, P (dots 4-6, the right column). Only the uppercase keys
// are chord keys; lowercase d/w/q/k/o/p are ordinary text, so English words
// containing those letters survive decoding untouched.
package braille

import (
	"strings"
	"unicode"
)

// Placeholder is emitted for a chord that maps to no letter.
const Placeholder = '?'

// Pattern is one Braille cell as a 6-bit set: bit i-1 is dot i.
// The zero Pattern is the empty cell.
type Pattern uint8

// PatternOf builds a Pattern from dot numbers. Dots outside 1..6 are
// ignored and duplicates are harmless, so the result is always canonical.
func PatternOf(dots ...int) Pattern {
	var p Pattern
	for _, d := range dots {
		p = p.WithDot(d)
	}
	return p
}

// WithDot returns p with dot d (1..6) raised.
func (p Pattern) WithDot(d int) Pattern {
	if d < 1 || d > 6 {
		return p
	}
	return p | 1<<(d-1)
}

// Dots lists the raised dots in ascending order.
func (p Pattern) Dots() []int {
	var dots []int
	for d := 1; d <= 6; d++ {
		if p&(1<<(d-1)) != 0 {
			dots = append(dots, d)
		}
	}
	return dots
}

// String renders the raised dots as a digit string, e.g. "135". The empty
// cell reads "empty".
func (p Pattern) String() string {
	if p == 0 {
		return "empty"
	}
	buf := make([]byte, 0, 6)
	for d := 1; d <= 6; d++ {
		if p&(1<<(d-1)) != 0 {
			buf = append(buf, '0'+byte(d))
		}
	}
	return string(buf)
}

// Letter returns the letter for p, or Placeholder if the pattern is not
// in the alphabet.
func (p Pattern) Letter() rune {
	if l := letterFor[p&0x3f]; l != 0 {
		return rune(l)
	}
	return Placeholder
}

// chordKeys is the fixed key-to-dot bijection.
var chordKeys = map[rune]int{
	'D': 1, 'W': 2, 'Q': 3,
	'K': 4, 'O': 5, 'P': 6,
}

const chordKeyChars = "DWQKOP"

// DotForKey maps a designated chord key to its dot number.
func DotForKey(r rune) (int, bool) {
	d, ok := chordKeys[r]
	return d, ok
}

// ContainsChordKeys reports whether s holds at least one designated chord
// key. The correction pipeline uses this as its decode gate.
func ContainsChordKeys(s string) bool {
	return strings.ContainsAny(s, chordKeyChars)
}

// letterDots is the standard six-dot alphabet, a through z.
var letterDots = map[byte][]int{
	'a': {1}, 'b': {1, 2}, 'c': {1, 4}, 'd': {1, 4, 5}, 'e': {1, 5},
	'f': {1, 2, 4}, 'g': {1, 2, 4, 5}, 'h': {1, 2, 5}, 'i': {2, 4}, 'j': {2, 4, 5},
	'k': {1, 3}, 'l': {1, 2, 3}, 'm': {1, 3, 4}, 'n': {1, 3, 4, 5}, 'o': {1, 3, 5},
	'p': {1, 2, 3, 4}, 'q': {1, 2, 3, 4, 5}, 'r': {1, 2, 3, 5}, 's': {2, 3, 4}, 't': {2, 3, 4, 5},
	'u': {1, 3, 6}, 'v': {1, 2, 3, 6}, 'w': {2, 4, 5, 6}, 'x': {1, 3, 4, 6}, 'y': {1, 3, 4, 5, 6},
	'z': {1, 3, 5, 6},
}

var letterFor = func() [64]byte {
	var t [64]byte
	for l, dots := range letterDots {
		t[PatternOf(dots...)] = l
	}
	return t
}()

// Decode translates chorded input to plain text. Chord keys accumulate
// into the current cell and are never emitted themselves; a space or any
// other character flushes the cell (unknown chords become Placeholder)
// and is then appended, lowercased if it is a letter. A cell still
// pending at end of input is flushed with no trailing character.
//
// Decode is pure and total: any input yields some output.
func Decode(raw string) string {
	var out strings.Builder
	out.Grow(len(raw))
	var cell Pattern
	flush := func() {
		if cell != 0 {
			out.WriteRune(cell.Letter())
			cell = 0
		}
	}
	for _, r := range raw {
		if d, ok := DotForKey(r); ok {
			cell = cell.WithDot(d)
			continue
		}
		flush()
		out.WriteRune(unicode.ToLower(r))
	}
	flush()
	return out.String()
}
