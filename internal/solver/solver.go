// Package solver searches for a board arrangement that plays out an entire
// hand of letter tiles as interlocking dictionary words.
package solver

import (
	"github.com/ewestra/tiledict/internal/board"
)

// Solution is a completed board using every tile in the hand.
type Solution struct {
	Board  *board.Board
	Bounds board.Bounds
	// Checked counts word placements attempted during the search.
	Checked int
}

// String renders the solved board.
func (s *Solution) String() string {
	return s.Board.Render(s.Bounds)
}

// Solve tries to lay out every tile in rack as crossing dictionary words.
// Each candidate word is tried as the seed at the board center; from there
// the search alternates preferred direction per depth, undoing placements
// that lead nowhere. Returns false when no arrangement exists.
func Solve(dict *Dictionary, rack board.Rack) (*Solution, bool) {
	seeds := dict.candidates(rack)
	if len(seeds) == 0 {
		return nil, false
	}

	checked := 0
	for _, seed := range seeds {
		checked++
		b := board.New()
		row := board.Size / 2
		col := board.Size/2 - len(seed)/2
		play, bounds := b.Seed(seed, row, col, board.Horizontal, rack)
		if play.Usage == board.UsageFinished {
			return &Solution{Board: b, Bounds: bounds, Checked: checked}, true
		}

		// After the seed, restrict candidates to words spellable from the
		// remaining tiles plus at most one letter borrowed from the board.
		onBoard := make(map[byte]bool, len(seed))
		for i := 0; i < len(seed); i++ {
			onBoard[seed[i]] = true
		}
		cands := make([]string, 0, len(seeds))
		for _, w := range seeds {
			if playableAfterSeed(play.Remaining, w, onBoard) {
				cands = append(cands, w)
			}
		}

		s := &search{dict: dict, board: b, words: cands}
		if finalBounds, ok := s.extend(bounds, play.Remaining, 0); ok {
			checked += s.checked
			return &Solution{Board: b, Bounds: finalBounds, Checked: checked}, true
		}
		checked += s.checked
	}
	return nil, false
}

type search struct {
	dict    *Dictionary
	board   *board.Board
	words   []string
	checked int
}

// extend recursively places words until the rack is empty. Odd depths
// prefer horizontal placements and even depths vertical, alternating with
// the horizontal seed so crossings appear early.
func (s *search) extend(bounds board.Bounds, rack board.Rack, depth int) (board.Bounds, bool) {
	first, second := board.Vertical, board.Horizontal
	if depth%2 == 1 {
		first, second = board.Horizontal, board.Vertical
	}
	if out, ok := s.sweep(bounds, rack, depth, first); ok {
		return out, true
	}
	return s.sweep(bounds, rack, depth, second)
}

// sweep tries every candidate word at every position overlapping the
// occupied rectangle in one direction.
func (s *search) sweep(bounds board.Bounds, rack board.Rack, depth int, dir board.Direction) (board.Bounds, bool) {
	for _, word := range s.words {
		s.checked++
		minRow, maxRow := bounds.MinRow-1, bounds.MaxRow+1
		minCol, maxCol := bounds.MinCol-len(word), bounds.MaxCol+1
		if dir == board.Vertical {
			minRow, maxRow = bounds.MinRow-len(word), bounds.MaxRow+1
			minCol, maxCol = bounds.MinCol-1, bounds.MaxCol+1
		}
		for row := max(minRow, 1); row <= maxRow; row++ {
			for col := max(minCol, 1); col <= maxCol; col++ {
				if out, ok := s.tryPlace(word, row, col, dir, bounds, rack, depth); ok {
					return out, true
				}
			}
		}
	}
	return bounds, false
}

func (s *search) tryPlace(word string, row, col int, dir board.Direction, bounds board.Bounds, rack board.Rack, depth int) (board.Bounds, bool) {
	play, err := s.board.Place(word, row, col, dir, rack)
	if err != nil {
		return bounds, false // off the grid at this position
	}
	if !play.Valid {
		s.board.Undo(play)
		return bounds, false
	}

	wordBounds := board.Bounds{MinRow: row, MaxRow: row, MinCol: col, MaxCol: col + len(word) - 1}
	if dir == board.Vertical {
		wordBounds = board.Bounds{MinRow: row, MaxRow: row + len(word) - 1, MinCol: col, MaxCol: col}
	}
	newBounds := bounds.Union(wordBounds)

	if !s.board.CrossCheck(newBounds, row, col, len(word), dir, s.dict) {
		s.board.Undo(play)
		return bounds, false
	}
	if play.Usage == board.UsageFinished {
		return newBounds, true
	}
	if out, ok := s.extend(newBounds, play.Remaining, depth+1); ok {
		return out, true
	}
	s.board.Undo(play)
	return bounds, false
}

// playableAfterSeed reports whether word can be spelled from the rack,
// borrowing at most one letter already standing on the board.
func playableAfterSeed(rack board.Rack, word string, onBoard map[byte]bool) bool {
	avail := rack
	borrowed := false
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'A'
		if avail[idx] > 0 {
			avail[idx]--
			continue
		}
		if borrowed || !onBoard[word[i]] {
			return false
		}
		borrowed = true
	}
	return true
}
