package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"helo", "hello", 1},
		{"hello", "helo", 1},
		{"computr", "computer", 1},
		{"cat", "car", 1},
		{"kitten", "sitting", 3},
		// A swap of adjacent letters costs two edits here, not one.
		{"wrold", "world", 2},
		{"teh", "the", 2},
		{"abc", "xyz", 3},
		{"café", "cafe", 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, editDistance(c.a, c.b), "editDistance(%q, %q)", c.a, c.b)
	}
}

func TestEditDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"helo", "hello"},
		{"word", "wrold"},
		{"a", "abcdef"},
	}
	for _, p := range pairs {
		assert.Equal(t, editDistance(p[0], p[1]), editDistance(p[1], p[0]),
			"distance between %q and %q depends on argument order", p[0], p[1])
	}
}
