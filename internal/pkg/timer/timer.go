//
// Copyright (c) 2020, NVIDIA CORPORATION. All rights reserved.
//
// See LICENSE.txt for license information
//

package timer

import "time"

// Handle is a structure gathering all the data necessary to implement timers
type Handle struct {
	tStart time.Time
}

// Start creates and start a timer. The start time carries a monotonic clock reading.
func Start() *Handle {
	h := new(Handle)
	h.tStart = time.Now()
	return h
}

func (h *Handle) elapsed() time.Duration {
	d := time.Since(h.tStart)
	if d < 0 {
		return 0
	}
	return d
}

// Stop returns the time in seconds elapsed since the timer started
func (h *Handle) Stop() float64 {
	return h.elapsed().Seconds()
}

// String returns the elapsed time in a human readable form
func (h *Handle) String() string {
	return h.elapsed().String()
}
