package model

// Board represents a square game board with toroidal topology: the last
// row/column is adjacent to the first, so there are no edge effects.
type Board struct {
	size  int
	cells [][]bool
}

// neighborOffsets are the 8 cells surrounding a coordinate. The cell
// itself, offset (0,0), is deliberately not in this set.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewBoard creates a new all-dead board with the given side length
func NewBoard(size int) *Board {
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return &Board{
		size:  size,
		cells: cells,
	}
}

// Size returns the side length of the board
func (b *Board) Size() int {
	return b.size
}

// Wrap maps index+offset onto the torus of side n. The result is always
// in [0, n): Wrap(0, -1, n) == n-1 and Wrap(n-1, 1, n) == 0.
func Wrap(index, offset, n int) int {
	return ((index+offset)%n + n) % n
}

// Get returns the state of the cell at (row, col).
// Both coordinates must already be in [0, Size); callers normalize
// arbitrary coordinates with Wrap first.
func (b *Board) Get(row, col int) bool {
	return b.cells[row][col]
}

// Set writes the state of the cell at (row, col).
// Both coordinates must already be in [0, Size).
func (b *Board) Set(row, col int, alive bool) {
	b.cells[row][col] = alive
}

// LiveNeighbors counts the live cells among the 8 toroidal neighbors of
// (row, col). The cell itself is never counted; the result is in [0, 8].
func (b *Board) LiveNeighbors(row, col int) int {
	count := 0
	for _, off := range neighborOffsets {
		var (
			r = Wrap(row, off[0], b.size)
			c = Wrap(col, off[1], b.size)
		)
		if b.cells[r][c] {
			count++
		}
	}
	return count
}

// Clear kills all cells
func (b *Board) Clear() {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			b.cells[row][col] = false
		}
	}
}

// Reset resizes the board and kills all cells
func (b *Board) Reset(size int) {
	if len(b.cells) != size {
		b.size = size
		b.cells = make([][]bool, size)
		for i := range b.cells {
			b.cells[i] = make([]bool, size)
		}
		return
	}
	b.size = size
	b.Clear()
}

// Clone returns a deep copy sharing no storage with the receiver
func (b *Board) Clone() *Board {
	clone := NewBoard(b.size)
	for row := 0; row < b.size; row++ {
		copy(clone.cells[row], b.cells[row])
	}
	return clone
}

// Equal reports whether both boards have the same size and cell states
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// CountLiveCells returns the total number of live cells
func (b *Board) CountLiveCells() (count int) {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[row][col] {
				count++
			}
		}
	}
	return
}
