// Package diff compares two dictionary revisions, reporting the words that
// were added and removed along with a machine-applicable patch.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ewestra/tiledict/internal/dictionary"
)

// Comparison holds the outcome of diffing two dictionary files.
type Comparison struct {
	Added   []string
	Removed []string
	Patch   string // diff-match-patch text, empty when identical
}

// Compare loads two dictionary files and diffs their word sets. Both sides
// are normalized and sorted before diffing, so formatting differences never
// show up as changes.
func Compare(oldPath, newPath string) (*Comparison, error) {
	oldSet, err := dictionary.ReadFile(oldPath)
	if err != nil {
		return nil, err
	}
	newSet, err := dictionary.ReadFile(newPath)
	if err != nil {
		return nil, err
	}

	c := &Comparison{}
	for _, w := range newSet.Words() {
		if !oldSet.Has(w) {
			c.Added = append(c.Added, w)
		}
	}
	for _, w := range oldSet.Words() {
		if !newSet.Has(w) {
			c.Removed = append(c.Removed, w)
		}
	}
	if len(c.Added) == 0 && len(c.Removed) == 0 {
		return c, nil
	}

	oldText := joinWords(oldSet.Words())
	newText := joinWords(newSet.Words())

	// Line-mode diff: words never span lines, so diffing at line
	// granularity keeps the patch readable.
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	c.Patch = dmp.PatchToText(dmp.PatchMake(oldText, diffs))
	return c, nil
}

// Summary returns a one-line human description of the comparison.
func (c *Comparison) Summary() string {
	if len(c.Added) == 0 && len(c.Removed) == 0 {
		return "dictionaries are identical"
	}
	return fmt.Sprintf("%d added, %d removed", len(c.Added), len(c.Removed))
}

func joinWords(words []string) string {
	return strings.Join(words, "\n")
}
