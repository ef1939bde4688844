//
// Copyright (c) 2020, NVIDIA CORPORATION. All rights reserved.
//
// See LICENSE.txt for license information
//

// Package benchmark measures the time required to run a fixed workload on behalf of a code snippet.
//
// The snippet is accepted so callers can identify what they asked to benchmark; it is never
// inspected nor executed. The workload is always the same.
package benchmark

import (
	"fmt"
	"log"
	"math"

	"github.com/gvallee/performance_module/tools/internal/pkg/timer"
	"github.com/gvallee/performance_module/tools/internal/pkg/workload"
	"github.com/gvallee/performance_module/tools/pkg/errors"
)

// Result gathers the data of a single measurement
type Result struct {
	// Elapsed is the time in seconds taken by the workload
	Elapsed float64

	// Operations is the number of multiplications performed by the workload
	Operations uint64
}

// Comparison is the outcome of comparing a measurement to a baseline
type Comparison struct {
	Baseline float64
	Elapsed  float64

	// Gain is the improvement in percent over the baseline. It is negative when the measurement is slower.
	Gain float64
}

// Run measures the fixed workload
func Run(snippet string) Result {
	log.Printf("running benchmark for a %d bytes snippet", len(snippet))

	t := timer.Start()
	ops := workload.Run()
	elapsed := t.Stop()

	log.Printf("benchmark completed: %d operations in %s", ops, t)
	return Result{
		Elapsed:    elapsed,
		Operations: ops,
	}
}

// RunBenchmark returns the time in seconds taken by the fixed workload
func RunBenchmark(snippet string) float64 {
	return Run(snippet).Elapsed
}

func validTime(val float64) bool {
	return val >= 0 && !math.IsInf(val, 0) && !math.IsNaN(val)
}

// Compare computes the performance gain of a measurement over a baseline; the gain is 0 when the baseline is 0.
func Compare(baseline float64, elapsed float64) (Comparison, error) {
	if !validTime(baseline) {
		return Comparison{}, errors.New(errors.ErrInvalidInput, fmt.Errorf("invalid baseline: %f", baseline))
	}
	if !validTime(elapsed) {
		return Comparison{}, errors.New(errors.ErrInvalidInput, fmt.Errorf("invalid execution time: %f", elapsed))
	}

	c := Comparison{
		Baseline: baseline,
		Elapsed:  elapsed,
	}
	if baseline > 0 {
		c.Gain = (baseline - elapsed) / baseline * 100
	}
	return c, nil
}
