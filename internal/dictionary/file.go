package dictionary

import (
	"fmt"
	"os"
	"strings"

	"github.com/ewestra/tiledict/internal/wordlist"
)

// WriteFile serializes the set to path, one word per line in ascending
// order, newline-joined with no trailing delimiter. Any existing file is
// overwritten. Nothing is written until every upstream stage has
// succeeded, so a failed run leaves a previous dictionary untouched.
func WriteFile(path string, s *Set) error {
	content := strings.Join(s.Words(), "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing dictionary %q: %w", path, err)
	}
	return nil
}

// ReadFile loads a dictionary file back into a Set. Lines are normalized
// the same way the build pipeline normalizes them, so a written dictionary
// round-trips to an identical set.
func ReadFile(path string) (*Set, error) {
	list, err := wordlist.Load(path)
	if err != nil {
		return nil, err
	}
	s := NewSet()
	for _, line := range list.Lines {
		if w := wordlist.Normalize(line); w != "" {
			s.Add(w)
		}
	}
	return s, nil
}

// Violation describes the first problem Check found in a dictionary file.
type Violation struct {
	Line    int // 1-based
	Word    string
	Problem string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("line %d (%q): %s", v.Line, v.Word, v.Problem)
}

// Check verifies that a dictionary file is well formed: every line is a
// non-empty uppercase A-Z word, lines are in strictly ascending
// lexicographic order, and there are no duplicates. It returns the first
// violation found, or nil.
func Check(path string) (*Violation, error) {
	list, err := wordlist.Load(path)
	if err != nil {
		return nil, err
	}
	prev := ""
	for i, line := range list.Lines {
		if line == "" {
			return &Violation{Line: i + 1, Word: line, Problem: "blank line"}, nil
		}
		for j := 0; j < len(line); j++ {
			if line[j] < 'A' || line[j] > 'Z' {
				return &Violation{Line: i + 1, Word: line, Problem: fmt.Sprintf("character %q outside A-Z", line[j])}, nil
			}
		}
		if prev != "" {
			switch {
			case line == prev:
				return &Violation{Line: i + 1, Word: line, Problem: "duplicate of previous line"}, nil
			case line < prev:
				return &Violation{Line: i + 1, Word: line, Problem: fmt.Sprintf("out of order after %q", prev)}, nil
			}
		}
		prev = line
	}
	return nil, nil
}
