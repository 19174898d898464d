package board

import (
	"fmt"
	"strings"
)

// Rack counts the unplayed tiles in a hand, indexed by letter (0 = 'A').
type Rack [26]int

// ParseRack builds a Rack from a string of letters. Case is ignored;
// anything outside A-Z is an error.
func ParseRack(letters string) (Rack, error) {
	var r Rack
	up := strings.ToUpper(strings.TrimSpace(letters))
	if up == "" {
		return r, fmt.Errorf("empty hand")
	}
	for i := 0; i < len(up); i++ {
		if up[i] < 'A' || up[i] > 'Z' {
			return r, fmt.Errorf("invalid tile %q: tiles must be letters A-Z", up[i])
		}
		r[up[i]-'A']++
	}
	return r, nil
}

// Empty reports whether every tile has been played.
func (r Rack) Empty() bool {
	for _, n := range r {
		if n != 0 {
			return false
		}
	}
	return true
}

// Size returns the number of tiles in the rack.
func (r Rack) Size() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

// CanMake reports whether word can be spelled with the rack alone.
func (r Rack) CanMake(word string) bool {
	avail := r
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'A'
		if avail[idx] == 0 {
			return false
		}
		avail[idx]--
	}
	return true
}
