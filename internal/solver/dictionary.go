package solver

import (
	"fmt"
	"sort"

	"github.com/smhanov/dawg"

	"github.com/ewestra/tiledict/internal/board"
)

// Dictionary indexes a word list for the solver. Membership queries go
// through a DAWG, which wants its words added in strictly increasing
// order; the sorted dictionary file satisfies that for free.
type Dictionary struct {
	finder dawg.Finder
	words  []string
}

// NewDictionary builds the index from uppercase A-Z words. Input order
// does not matter; words are sorted and deduplicated here. Words longer
// than the board's maximum word length are rejected.
func NewDictionary(words []string) (*Dictionary, error) {
	sorted := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if len(w) > board.MaxWordLength {
			return nil, fmt.Errorf("word %q exceeds maximum length %d", w, board.MaxWordLength)
		}
		for i := 0; i < len(w); i++ {
			if w[i] < 'A' || w[i] > 'Z' {
				return nil, fmt.Errorf("word %q contains %q: solver words must be uppercase A-Z", w, w[i])
			}
		}
		sorted = append(sorted, w)
	}
	if len(sorted) == 0 {
		return nil, fmt.Errorf("no usable words in dictionary")
	}
	sort.Strings(sorted)

	builder := dawg.New()
	prev := ""
	n := 0
	for _, w := range sorted {
		if w == prev {
			continue
		}
		builder.Add(w)
		sorted[n] = w
		n++
		prev = w
	}
	sorted = sorted[:n]

	return &Dictionary{finder: builder.Finish(), words: sorted}, nil
}

// Contains reports exact word membership.
func (d *Dictionary) Contains(word string) bool {
	return d.finder.IndexOf(word) >= 0
}

// Len returns the number of distinct words indexed.
func (d *Dictionary) Len() int { return len(d.words) }

// candidates returns the words spellable from the rack, longest first so
// the search empties the rack in fewer placements.
func (d *Dictionary) candidates(rack board.Rack) []string {
	out := make([]string, 0, len(d.words))
	for _, w := range d.words {
		if len(w) <= rack.Size() && rack.CanMake(w) {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}
