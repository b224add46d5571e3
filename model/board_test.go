package model

import "testing"

func TestWrapEdges(t *testing.T) {
	tests := []struct {
		name                   string
		index, offset, n, want int
	}{
		{"top edge wraps to bottom", 0, -1, 8, 7},
		{"bottom edge wraps to top", 7, 1, 8, 0},
		{"interior unchanged", 4, 0, 8, 4},
		{"interior minus one", 4, -1, 8, 3},
		{"interior plus one", 4, 1, 8, 5},
		{"single cell torus", 0, -1, 1, 0},
		{"single cell torus forward", 0, 1, 1, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.index, tt.offset, tt.n); got != tt.want {
			t.Errorf("%s: Wrap(%d, %d, %d) = %d, want %d",
				tt.name, tt.index, tt.offset, tt.n, got, tt.want)
		}
	}
}

func TestWrapStaysInRange(t *testing.T) {
	for n := 1; n <= 10; n++ {
		for index := 0; index < n; index++ {
			for _, offset := range []int{-1, 0, 1} {
				got := Wrap(index, offset, n)
				if got < 0 || got >= n {
					t.Fatalf("Wrap(%d, %d, %d) = %d, out of [0, %d)",
						index, offset, n, got, n)
				}
			}
		}
	}
}

func TestNewBoardAllDead(t *testing.T) {
	b := NewBoard(8)
	if b.Size() != 8 {
		t.Fatalf("Size() = %d, want 8", b.Size())
	}
	if got := b.CountLiveCells(); got != 0 {
		t.Errorf("new board has %d live cells, want 0", got)
	}
}

func TestSetGet(t *testing.T) {
	b := NewBoard(8)
	b.Set(3, 4, true)
	if !b.Get(3, 4) {
		t.Error("Get(3, 4) = false after Set(3, 4, true)")
	}
	if b.Get(4, 3) {
		t.Error("Get(4, 3) = true, only (3, 4) was set")
	}
	b.Set(3, 4, false)
	if b.Get(3, 4) {
		t.Error("Get(3, 4) = true after Set(3, 4, false)")
	}
}

func TestLiveNeighborsCornerWraparound(t *testing.T) {
	// The corner test board: cells (0,0), (7,0), (7,1). Both live
	// neighbors of (0,0) are only reachable across the torus seam.
	b := NewBoard(8)
	b.Set(0, 0, true)
	b.Set(7, 0, true)
	b.Set(7, 1, true)

	if got := b.LiveNeighbors(0, 0); got != 2 {
		t.Errorf("LiveNeighbors(0, 0) = %d, want 2", got)
	}
	if got := b.LiveNeighbors(7, 0); got != 2 {
		t.Errorf("LiveNeighbors(7, 0) = %d, want 2", got)
	}
	if got := b.LiveNeighbors(7, 7); got != 2 {
		t.Errorf("LiveNeighbors(7, 7) = %d, want 2", got)
	}
}

func TestLiveNeighborsExcludesSelf(t *testing.T) {
	b := NewBoard(8)
	b.Set(4, 4, true)
	if got := b.LiveNeighbors(4, 4); got != 0 {
		t.Errorf("LiveNeighbors(4, 4) = %d, want 0: a cell is not its own neighbor", got)
	}
}

func TestLiveNeighborsFullBoard(t *testing.T) {
	b := NewBoard(8)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			b.Set(row, col, true)
		}
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if got := b.LiveNeighbors(row, col); got != 8 {
				t.Fatalf("LiveNeighbors(%d, %d) = %d on a full board, want 8", row, col, got)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(8)
	b.Set(2, 2, true)

	clone := b.Clone()
	if !clone.Equal(b) {
		t.Fatal("clone differs from original")
	}

	clone.Set(5, 5, true)
	if b.Get(5, 5) {
		t.Error("writing the clone mutated the original")
	}
}

func TestEqual(t *testing.T) {
	a := NewBoard(8)
	b := NewBoard(8)
	if !a.Equal(b) {
		t.Error("two empty boards should be equal")
	}

	a.Set(1, 1, true)
	if a.Equal(b) {
		t.Error("boards with different cells should not be equal")
	}

	if a.Equal(NewBoard(4)) {
		t.Error("boards of different sizes should not be equal")
	}
}

func TestClear(t *testing.T) {
	b := NewBoard(8)
	b.Set(0, 0, true)
	b.Set(7, 7, true)
	b.Clear()
	if got := b.CountLiveCells(); got != 0 {
		t.Errorf("board has %d live cells after Clear, want 0", got)
	}
}

func TestBoardPoolReset(t *testing.T) {
	pool := NewBoardPool()

	b := pool.Get(8)
	if b.Size() != 8 {
		t.Fatalf("pooled board Size() = %d, want 8", b.Size())
	}
	b.Set(3, 3, true)
	pool.Put(b)

	reused := pool.Get(8)
	if got := reused.CountLiveCells(); got != 0 {
		t.Errorf("reused board has %d live cells, want 0", got)
	}

	resized := pool.Get(4)
	if resized.Size() != 4 {
		t.Errorf("resized board Size() = %d, want 4", resized.Size())
	}
}
