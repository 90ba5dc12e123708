// Package batch renders displacement cells on a worker pool.
package batch

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"disp-alpha-tools/internal/alpha"
	"disp-alpha-tools/internal/brush"
	"disp-alpha-tools/internal/grid"
	"disp-alpha-tools/internal/logging"
	"disp-alpha-tools/internal/sample"
)

// Config holds the shared inputs of a run.
type Config struct {
	Sample  sample.Sample
	Dims    grid.Dimensions
	Tints   []brush.Tint // one per cell, in index order
	Workers int
}

// Result is one rendered cell.
type Result struct {
	Index  int
	Solid  brush.Solid
	Alphas alpha.Grid
}

// progressEvery is how often a running batch reports progress.
var progressEvery = 2 * time.Second

// Run renders every cell of cfg.Dims. Results are stored by cell index, so
// ids, tints and positions never depend on worker scheduling.
func Run(cfg Config) []Result {
	total := cfg.Dims.Count()
	results := make([]Result, total)
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, total)

	if workers <= 1 {
		for n := range results {
			results[n] = processCell(cfg, n)
		}
		return results
	}

	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(progressEvery)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logging.Logger().Info("batch: progress",
						"done", p, "total", total, "cells_per_sec", rate)
				}
			}
		}
	}()

	// Worker pool
	cellChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range cellChan {
				results[n] = processCell(cfg, n)
				processed.Add(1)
			}
		}()
	}

	for n := range results {
		cellChan <- n
	}
	close(cellChan)

	wg.Wait()
	close(done)

	logging.Logger().Debug("batch: finished",
		"cells", total, "workers", workers, "elapsed", time.Since(start))
	return results
}

func processCell(cfg Config, n int) Result {
	c := cfg.Dims.Cell(n)
	return Result{
		Index:  n,
		Solid:  brush.NewSolid(n+1, c, cfg.Tints[n]),
		Alphas: alpha.Paint(cfg.Sample, c),
	}
}
