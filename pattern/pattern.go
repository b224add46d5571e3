package pattern

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lifelab/toruslife/model"
)

// Pattern identifies one of the named starting configurations
type Pattern string

const (
	// Blinker is a 3-cell vertical line, a period-2 oscillator
	Blinker Pattern = "blinker"
	// Toad is a 6-cell period-2 oscillator
	Toad Pattern = "toad"
	// Beacon is an 8-cell period-2 oscillator
	Beacon Pattern = "beacon"
	// Random fills every cell with a coin flip
	Random Pattern = "random"
	// Test places 3 cells around the board corner to exercise wraparound
	Test Pattern = "test"
)

// cells holds the live coordinates of each fixed pattern as (row, col)
// pairs. Negative indices count back from the far edge.
var cells = map[Pattern][][2]int{
	Blinker: {{3, 4}, {4, 4}, {5, 4}},
	Toad:    {{3, 3}, {3, 4}, {3, 5}, {4, 2}, {4, 3}, {4, 4}},
	Beacon:  {{1, 5}, {1, 6}, {2, 5}, {2, 6}, {3, 3}, {3, 4}, {4, 3}, {4, 4}},
	Test:    {{0, 0}, {-1, 0}, {-1, 1}},
}

// Parse maps a pattern name to a Pattern, case-insensitively
func Parse(name string) (Pattern, error) {
	switch p := Pattern(strings.ToLower(name)); p {
	case Blinker, Toad, Beacon, Random, Test:
		return p, nil
	default:
		return "", errors.Errorf("[Parse] unknown pattern: %+v", name)
	}
}

// Load clears the board and populates it with the named configuration.
// Random fill draws from a time-seeded source.
func Load(p Pattern, b *model.Board) error {
	return LoadSeeded(p, b, time.Now().UnixNano())
}

// LoadSeeded is Load with an explicit seed, so random boards can be
// reproduced. The fixed patterns ignore the seed.
func LoadSeeded(p Pattern, b *model.Board, seed int64) error {
	b.Clear()

	if p == Random {
		randomize(b, rand.New(rand.NewSource(seed)))
		return nil
	}

	coords, ok := cells[p]
	if !ok {
		return errors.Errorf("[LoadSeeded] unknown pattern: %+v", p)
	}
	for _, rc := range coords {
		var (
			row = model.Wrap(rc[0], 0, b.Size())
			col = model.Wrap(rc[1], 0, b.Size())
		)
		b.Set(row, col, true)
	}
	return nil
}

// randomize fills the board with random live cells at 50% density
func randomize(b *model.Board, rng *rand.Rand) {
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			b.Set(row, col, rng.Intn(2) == 1)
		}
	}
}
