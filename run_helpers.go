package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lifelab/toruslife/engine"
	"github.com/lifelab/toruslife/model"
	"github.com/lifelab/toruslife/pattern"
	"github.com/lifelab/toruslife/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, p pattern.Pattern) (
	*model.Board,
	*model.BoardPool,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.BoardPool
	if config.UseMemoryPool {
		pool = model.NewBoardPool()
	}

	// A nonzero seed makes random boards reproducible across runs
	board := model.NewBoard(config.Size)
	var err error
	if config.Seed != 0 {
		err = pattern.LoadSeeded(p, board, config.Seed)
	} else {
		err = pattern.Load(p, board)
	}
	if err != nil {
		return nil, nil, nil, nil, err
	}

	renderer := model.NewTerminalRenderer()
	stats := utils.NewStats()

	return board, pool, renderer, stats, nil
}

// run drives the simulation: print the starting board, then step a fixed
// number of generations, swapping the two buffers after each step
func run(config utils.Config, p pattern.Pattern) error {
	current, pool, renderer, stats, err := initializeGame(config, p)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	renderer.Display(current)

	lastFrameTime := time.Now()
	for generation := 1; generation <= config.Generations; generation++ {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			displayFinalStats(stats)
			model.BoardToPool(current, pool)
			return nil
		default:
			// Continue with game loop
		}

		next := nextBuffer(config, pool, current.Size())
		if err := stepBoard(config, current, next); err != nil {
			return err
		}

		frameDuration := time.Since(lastFrameTime)
		lastFrameTime = time.Now()
		stats.Update(generation, next.CountLiveCells(), frameDuration)

		if config.ClearScreen {
			renderer.Clear()
		}
		renderer.Display(next)

		// Swap buffer roles: the freshly written board becomes current
		// and the old one goes back to the pool as the spare
		model.BoardToPool(current, pool)
		current = next

		if config.FrameRate > 0 {
			time.Sleep(config.FrameRate)
		}
	}

	displayFinalStats(stats)
	model.BoardToPool(current, pool)
	return nil
}

// nextBuffer supplies a cleared destination board for the next step
func nextBuffer(config utils.Config, pool *model.BoardPool, size int) *model.Board {
	if config.UseMemoryPool && pool != nil {
		return pool.Get(size)
	}
	return model.NewBoard(size)
}

// stepBoard advances one generation using the configured step variant
func stepBoard(config utils.Config, from, to *model.Board) error {
	if config.Workers > 1 {
		return engine.StepParallel(from, to, config.Workers)
	}
	return engine.Step(from, to)
}

// displayFinalStats shows the run summary
func displayFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
