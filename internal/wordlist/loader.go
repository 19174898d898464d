package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotText is returned when an input file is not valid UTF-8 text.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// List holds the raw lines of one loaded word-list file.
type List struct {
	Path  string
	Lines []string
}

// Load reads a word-list file from disk and splits it into lines.
// The whole file is consumed before any line is handed downstream, so a
// read error never yields a partial list. Files that are not valid UTF-8
// are rejected rather than silently skipped.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading word list %q: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("loading word list %q: %w", path, ErrNotText)
	}

	lines := make([]string, 0, 256)
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning word list %q: %w", path, err)
	}

	return &List{Path: path, Lines: lines}, nil
}

// Normalize trims surrounding whitespace and upper-cases a raw line.
// It is total: an empty or all-whitespace line normalizes to "".
func Normalize(line string) string {
	return strings.ToUpper(strings.TrimSpace(line))
}
