// Package board models the tile grid a hand of letters is played onto,
// with word placement, undo, and cross-word validation.
package board

import (
	"errors"
	"strings"
)

const (
	// Size is the number of rows and columns in the grid. Generous enough
	// that a full hand can never reach an edge from the center.
	Size = 144
	// MaxWordLength bounds the length of any dictionary word.
	MaxWordLength = 17
)

// ErrOutOfBounds is returned when a placement would run off the grid.
var ErrOutOfBounds = errors.New("placement runs off the board")

// Direction of a word placement.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Opposite returns the perpendicular direction.
func (d Direction) Opposite() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Lookup answers exact word membership during cross-word validation.
type Lookup interface {
	Contains(word string) bool
}

// Bounds is the occupied rectangle of the grid, inclusive.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinRow: min(b.MinRow, other.MinRow),
		MaxRow: max(b.MaxRow, other.MaxRow),
		MinCol: min(b.MinCol, other.MinCol),
		MaxCol: max(b.MaxCol, other.MaxCol),
	}
}

// Board is the grid itself. A zero cell is empty; occupied cells hold
// 'A'..'Z'.
type Board struct {
	cells []byte
}

// New returns an empty Size x Size board.
func New() *Board {
	return &Board{cells: make([]byte, Size*Size)}
}

// At returns the letter at (row, col), or 0 for an empty cell.
func (b *Board) At(row, col int) byte {
	return b.cells[row*Size+col]
}

func (b *Board) set(row, col int, ch byte) {
	b.cells[row*Size+col] = ch
}

func (b *Board) occupied(row, col int) bool {
	return b.cells[row*Size+col] != 0
}

// Usage reports how a placement left the rack.
type Usage int

const (
	// UsageRemaining means unplayed letters remain in the rack.
	UsageRemaining Usage = iota
	// UsageOverused means the placement needed a letter the rack lacks.
	UsageOverused
	// UsageFinished means the placement emptied the rack.
	UsageFinished
)

// Play records a placement so it can be undone.
type Play struct {
	// Valid is false when the word could not be legally placed here; the
	// caller must still Undo to clear any cells written before rejection.
	Valid     bool
	Remaining Rack
	Usage     Usage

	cells []int // flat indices of newly written cells
}

// Seed writes the first word of a game at the given position without any
// adjacency requirement and returns its bounds. The rack must be able to
// cover the word; Seed panics on an occupied cell since it is only ever
// called on an empty board.
func (b *Board) Seed(word string, row, col int, dir Direction, rack Rack) (Play, Bounds) {
	p := Play{Valid: true, Remaining: rack, cells: make([]int, 0, len(word))}
	bounds := Bounds{MinRow: row, MaxRow: row, MinCol: col, MaxCol: col}
	for i := 0; i < len(word); i++ {
		r, c := row, col+i
		if dir == Vertical {
			r, c = row+i, col
		}
		if b.occupied(r, c) {
			panic("board: seeding onto an occupied cell")
		}
		b.set(r, c, word[i])
		p.cells = append(p.cells, r*Size+c)
		p.Remaining[word[i]-'A']--
	}
	if dir == Horizontal {
		bounds.MaxCol = col + len(word) - 1
	} else {
		bounds.MaxRow = row + len(word) - 1
	}
	p.Usage = UsageRemaining
	if p.Remaining.Empty() {
		p.Usage = UsageFinished
	}
	return p, bounds
}

// Place attempts to play word starting at (row, col) in the given
// direction, drawing missing letters from rack. It reports a Play that is
// Valid only when the word connects to existing tiles, never contradicts a
// letter already on the board, and writes at least one new tile. An
// invalid or overused Play must still be passed to Undo.
func (b *Board) Place(word string, row, col int, dir Direction, rack Rack) (Play, error) {
	dr, dc := 0, 1
	if dir == Vertical {
		dr, dc = 1, 0
	}
	endRow := row + dr*(len(word)-1)
	endCol := col + dc*(len(word)-1)
	if row < 1 || col < 1 || endRow >= Size-1 || endCol >= Size-1 {
		return Play{}, ErrOutOfBounds
	}

	p := Play{Remaining: rack, cells: make([]int, 0, len(word))}

	// The word must start or end against an existing tile, or border one
	// along its length. Crossings are caught by the border checks.
	connected := b.occupied(row-dr, col-dc) || b.occupied(endRow+dr, endCol+dc)
	for i := 0; i < len(word) && !connected; i++ {
		r, c := row+dr*i, col+dc*i
		connected = b.occupied(r+dc, c+dr) || b.occupied(r-dc, c-dr)
	}
	if !connected {
		return p, nil
	}

	wholeOverlap := true
	for i := 0; i < len(word); i++ {
		r, c := row+dr*i, col+dc*i
		switch {
		case !b.occupied(r, c):
			wholeOverlap = false
			idx := word[i] - 'A'
			if p.Remaining[idx] == 0 {
				p.Usage = UsageOverused
				return p, nil
			}
			p.Remaining[idx]--
			b.set(r, c, word[i])
			p.cells = append(p.cells, r*Size+c)
		case b.At(r, c) != word[i]:
			return p, nil
		}
	}
	if wholeOverlap {
		return p, nil
	}

	p.Valid = true
	p.Usage = UsageRemaining
	if p.Remaining.Empty() {
		p.Usage = UsageFinished
	}
	return p, nil
}

// Undo clears every cell a Play wrote.
func (b *Board) Undo(p Play) {
	for _, idx := range p.cells {
		b.cells[idx] = 0
	}
}

// CrossCheck verifies every word formed by a placement at (row, col) of
// the given length: the run along the placement's own line plus the
// perpendicular run through each of its cells. A run of a single letter is
// not a word and is ignored.
func (b *Board) CrossCheck(bounds Bounds, row, col, length int, dir Direction, dict Lookup) bool {
	if dir == Horizontal {
		if !b.runValid(row, row, bounds.MinCol, bounds.MaxCol, dict) {
			return false
		}
		for c := col; c < col+length; c++ {
			if !b.runValid(bounds.MinRow, bounds.MaxRow, c, c, dict) {
				return false
			}
		}
		return true
	}
	if !b.runValid(bounds.MinRow, bounds.MaxRow, col, col, dict) {
		return false
	}
	for r := row; r < row+length; r++ {
		if !b.runValid(r, r, bounds.MinCol, bounds.MaxCol, dict) {
			return false
		}
	}
	return true
}

// runValid scans one row or one column between the given bounds and checks
// that every maximal run of two or more letters is a dictionary word.
func (b *Board) runValid(minRow, maxRow, minCol, maxCol int, dict Lookup) bool {
	run := make([]byte, 0, MaxWordLength)
	flush := func() bool {
		defer func() { run = run[:0] }()
		if len(run) < 2 {
			return true
		}
		// Two abutting words fuse into one run longer than any word.
		if len(run) > MaxWordLength {
			return false
		}
		return dict.Contains(string(run))
	}
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if ch := b.At(r, c); ch != 0 {
				run = append(run, ch)
				continue
			}
			if !flush() {
				return false
			}
		}
	}
	return flush()
}

// Render returns the occupied rectangle as text, one row per line, with
// spaces for empty cells. Trailing whitespace is trimmed from every line.
func (b *Board) Render(bounds Bounds) string {
	var sb strings.Builder
	line := make([]byte, 0, bounds.MaxCol-bounds.MinCol+1)
	for r := bounds.MinRow; r <= bounds.MaxRow; r++ {
		line = line[:0]
		for c := bounds.MinCol; c <= bounds.MaxCol; c++ {
			if ch := b.At(r, c); ch != 0 {
				line = append(line, ch)
			} else {
				line = append(line, ' ')
			}
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
