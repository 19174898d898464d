package dictionary

import "sort"

// Set is the deduplicated accumulator of accepted words. Insertion order is
// irrelevant; ordering is applied once when Words is called.
type Set struct {
	members map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{members: make(map[string]struct{})}
}

// Add inserts a word and reports whether it was not already present.
func (s *Set) Add(word string) bool {
	if _, ok := s.members[word]; ok {
		return false
	}
	s.members[word] = struct{}{}
	return true
}

// Has reports whether the word is in the set.
func (s *Set) Has(word string) bool {
	_, ok := s.members[word]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int { return len(s.members) }

// Words returns the members sorted in ascending lexicographic order.
func (s *Set) Words() []string {
	words := make([]string, 0, len(s.members))
	for w := range s.members {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
