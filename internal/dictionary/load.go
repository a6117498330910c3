package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

//go:embed words.txt
var embeddedWords string

// Word length bounds for playable words.
const (
	MinWordLen = 3
	MaxWordLen = 5
)

// Default returns the dictionary built from the embedded word list.
func Default() (*Dictionary, error) {
	return Load(strings.NewReader(embeddedWords))
}

// Load reads one word per line. Blank lines and lines starting with '#' are
// skipped; nothing else is validated.
func Load(r io.Reader) (*Dictionary, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	return New(lines)
}

// LoadFile loads a dictionary from a word list file.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: cannot open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %s: %w", path, err)
	}
	return d, nil
}

// LoadPathOrDefault loads path when set, otherwise the embedded list.
func LoadPathOrDefault(path string) (*Dictionary, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Normalize trims a raw word list down to playable entries: lowercase
// alphabetic words of MinWordLen..MaxWordLen letters, order preserved.
func Normalize(words []string) []string {
	return lo.Uniq(lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.TrimSpace(w)
		if len(w) < MinWordLen || len(w) > MaxWordLen {
			return "", false
		}
		for _, r := range w {
			if r < 'a' || r > 'z' {
				return "", false
			}
		}
		return w, true
	}))
}

// ReadWords returns the raw lines of r without blank or comment lines.
func ReadWords(r io.Reader) ([]string, error) {
	return readLines(r)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read failed: %w", err)
	}
	return lines, nil
}
