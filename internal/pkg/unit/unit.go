//
// Copyright (c) 2020, NVIDIA CORPORATION. All rights reserved.
//
// See LICENSE.txt for license information
//

package unit

const (
	// Nanoseconds is the smallest time scale
	Nanoseconds = iota
	Microseconds
	Milliseconds

	// Seconds is the largest time scale
	Seconds
)

func getTimeUnits() map[int]string {
	return map[int]string{
		Seconds:      "seconds",
		Milliseconds: "milliseconds",
		Microseconds: "microseconds",
		Nanoseconds:  "nanoseconds",
	}
}

// FromString translates a unit identifier to its scale, -1 if the unit is unknown
func FromString(unitID string) int {
	for lvl, val := range getTimeUnits() {
		if val == unitID {
			return lvl
		}
	}
	return -1
}

// ToString converts a time scale to a string that is readable
func ToString(unitScale int) string {
	return getTimeUnits()[unitScale]
}

func IsValidScale(unitScale int) bool {
	_, ok := getTimeUnits()[unitScale]
	return ok
}
