// Package wordlist seeds lexicons: a built-in set of common English words
// plus optional word-list files on disk.
package wordlist

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
)

//go:embed words.txt
var builtin string

// Builtin returns the built-in common-word list in its canonical order.
func Builtin() []string {
	return strings.Fields(builtin)
}

// LoadFile reads one word per line from path. Blank lines and '#' comments
// are skipped; on lines with several fields only the first counts. Words
// come back lowercased, duplicates kept so repeated lines act as a
// frequency signal.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %v", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat word list: %v", err)
	}
	if info.Size() == 0 {
		return nil, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("map word list: %v", err)
	}
	defer m.Unmap()

	var words []string
	s := bufio.NewScanner(bytes.NewReader(m))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(strings.Fields(line)[0]))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %v", err)
	}
	return words, nil
}
