//
// Copyright (c) 2020, NVIDIA CORPORATION. All rights reserved.
//
// See LICENSE.txt for license information
//

package scale

import (
	"github.com/gvallee/performance_module/tools/internal/pkg/unit"
)

const (
	// DOWN means we move to a smaller unit
	DOWN = iota

	// UP means we move to a larger unit
	UP
)

func float64ScaleDown(unitScale int, value float64) (int, float64) {
	if unitScale == -1 {
		// Unit not recognized, nothing we can do
		return unitScale, value
	}

	newUnitScale := unitScale - 1
	if !unit.IsValidScale(newUnitScale) {
		return unitScale, value
	}

	return newUnitScale, float64Compute(DOWN, value)
}

func float64ScaleUp(unitScale int, value float64) (int, float64) {
	if unitScale == -1 {
		// Unit not recognized, nothing we can do
		return unitScale, value
	}

	newUnitScale := unitScale + 1
	if !unit.IsValidScale(newUnitScale) {
		return unitScale, value
	}

	return newUnitScale, float64Compute(UP, value)
}

func float64Compute(op int, value float64) float64 {
	switch op {
	case DOWN:
		return value * 1000
	case UP:
		return value / 1000
	}
	return value
}

// Float64 scales a time value so it lands in [1, 1000) when a suitable unit exists
func Float64(unitID string, value float64) (string, float64) {
	if value <= 0 {
		return unitID, value
	}

	unitScale := unit.FromString(unitID)

	if value < 1 {
		newUnitScale, newValue := float64ScaleDown(unitScale, value)
		if newUnitScale == unitScale {
			return unitID, value
		}
		return Float64(unit.ToString(newUnitScale), newValue)
	}

	if value >= 1000 {
		newUnitScale, newValue := float64ScaleUp(unitScale, value)
		if newUnitScale == unitScale {
			return unitID, value
		}
		return Float64(unit.ToString(newUnitScale), newValue)
	}

	// Nothing to do, just return the same
	return unitID, value
}
