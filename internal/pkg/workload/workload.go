//
// Copyright (c) 2020, NVIDIA CORPORATION. All rights reserved.
//
// See LICENSE.txt for license information
//

package workload

const (
	// OuterIterations is the bound of the outer loop of the workload
	OuterIterations = 100000

	// InnerIterations is the bound of the inner loop of the workload
	InnerIterations = 1000

	// TotalIterations is the number of multiplications performed by Run
	TotalIterations = OuterIterations * InnerIterations
)

// sink receives the last product so the loops are not optimized away
var sink int

// Run executes the fixed workload and returns the number of multiplications that were performed
func Run() uint64 {
	return RunBounded(OuterIterations, InnerIterations)
}

// RunBounded executes the nested loops with the given bounds. Negative bounds are handled as zero.
func RunBounded(outer int, inner int) uint64 {
	var ops uint64
	x := 0
	for i := 0; i < outer; i++ {
		for j := 0; j < inner; j++ {
			x = i * j
			ops++
		}
	}
	sink = x
	return ops
}
