package minesweeper

import "math/rand"

// Cell is one square of the board.
type Cell struct {
	Mine      bool
	Revealed  bool
	Flagged   bool
	Neighbors int // mines in the eight surrounding cells
}

// Board is the minefield.
type Board struct {
	Width  int
	Height int
	Cells  [][]Cell
	safe   int // unrevealed cells without a mine
}

// NewBoard creates a board with mines placed uniformly at random.
// Draws that hit an existing mine are retried, so exactly count mines
// are placed. count must be smaller than the number of cells.
func NewBoard(width, height, count int, rng *rand.Rand) *Board {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	b := &Board{Width: width, Height: height, Cells: cells}

	for placed := 0; placed < count; {
		x, y := rng.Intn(width), rng.Intn(height)
		if !b.Cells[y][x].Mine {
			b.Cells[y][x].Mine = true
			placed++
		}
	}
	b.safe = width*height - count
	b.countNeighbors()
	return b
}

// countNeighbors fills in Neighbors for every safe cell.
func (b *Board) countNeighbors() {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Cells[y][x].Mine {
				continue
			}
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && b.isMine(x+dx, y+dy) {
						n++
					}
				}
			}
			b.Cells[y][x].Neighbors = n
		}
	}
}

func (b *Board) isMine(x, y int) bool {
	return b.inside(x, y) && b.Cells[y][x].Mine
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Open reveals a cell and reports whether it changed and whether it was
// a mine. Revealed or flagged cells are left alone. Only the chosen cell
// is revealed; zero cells do not cascade.
func (b *Board) Open(x, y int) (changed, mine bool) {
	if !b.inside(x, y) {
		return false, false
	}
	c := &b.Cells[y][x]
	if c.Revealed || c.Flagged {
		return false, false
	}
	c.Revealed = true
	if !c.Mine {
		b.safe--
	}
	return true, c.Mine
}

// ToggleFlag flips the flag on an unrevealed cell.
func (b *Board) ToggleFlag(x, y int) bool {
	if !b.inside(x, y) {
		return false
	}
	c := &b.Cells[y][x]
	if c.Revealed {
		return false
	}
	c.Flagged = !c.Flagged
	return true
}

// Cleared reports whether every safe cell has been revealed.
func (b *Board) Cleared() bool {
	return b.safe == 0
}

// Mines returns the number of mines on the board.
func (b *Board) Mines() int {
	n := 0
	for y := range b.Cells {
		for x := range b.Cells[y] {
			if b.Cells[y][x].Mine {
				n++
			}
		}
	}
	return n
}
