package engine

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lifelab/toruslife/model"
	"github.com/lifelab/toruslife/rules"
)

// Step computes one generation transition from one board into another.
//
// Every cell of to is written from the neighbor counts of from, so from
// is never mutated and the result does not depend on scan order. The two
// boards must be distinct storage of the same size; aliasing them would
// let later cells read already-updated neighbors, so it is rejected
// before any cell is touched.
func Step(from, to *model.Board) error {
	if err := checkBuffers(from, to); err != nil {
		return errors.Wrap(err, "[Step] invalid board pair")
	}

	for row := 0; row < from.Size(); row++ {
		stepRow(from, to, row)
	}
	return nil
}

// StepParallel computes the same transition as Step with rows split
// across workers. Workers partition rows, so no two goroutines write
// the same cell.
func StepParallel(from, to *model.Board, workers int) error {
	if err := checkBuffers(from, to); err != nil {
		return errors.Wrap(err, "[StepParallel] invalid board pair")
	}
	if workers < 1 {
		workers = 1
	}

	var (
		eg            errgroup.Group
		size          = from.Size()
		rowsPerWorker = (size + workers - 1) / workers // Ceiling division
	)

	for i := 0; i < workers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, size)
		)
		if startRow >= size {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				stepRow(from, to, row)
			}
			return nil
		})
	}

	return eg.Wait()
}

// stepRow writes one row of the next generation
func stepRow(from, to *model.Board, row int) {
	for col := 0; col < from.Size(); col++ {
		neighbors := from.LiveNeighbors(row, col)
		to.Set(row, col, rules.NextState(neighbors, from.Get(row, col)))
	}
}

// checkBuffers enforces the double-buffer contract: two independent
// storage regions of the same size
func checkBuffers(from, to *model.Board) error {
	if from == to {
		return errors.New("from and to are the same board")
	}
	if from.Size() != to.Size() {
		return errors.Errorf("size mismatch: from %d, to %d", from.Size(), to.Size())
	}
	return nil
}
