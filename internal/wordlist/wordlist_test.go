package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	words := Builtin()
	require.Len(t, words, 101)
	assert.Equal(t, "the", words[0])
	assert.Equal(t, "input", words[100])
	assert.Contains(t, words, "hello")
	assert.Contains(t, words, "braille")
	assert.Contains(t, words, "keyboard")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "Hello\n\n# comment line\nWORLD 42\n  typing  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	words, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", "typing"}, words)
}

func TestLoadFileKeepsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("the\nthe\nthe\n"), 0o644))

	words, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "the", "the"}, words)
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	words, err := LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
