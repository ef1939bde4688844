//
// Copyright (c) 2020, NVIDIA CORPORATION. All rights reserved.
//
// See LICENSE.txt for license information
//

package scale

import (
	"math"
	"testing"
)

func TestFloat64(t *testing.T) {
	tests := []struct {
		unit          string
		value         float64
		expectedUnit  string
		expectedValue float64
	}{
		{
			unit:          "seconds",
			value:         2.5,
			expectedUnit:  "seconds",
			expectedValue: 2.5,
		},
		{
			unit:          "seconds",
			value:         0.25,
			expectedUnit:  "milliseconds",
			expectedValue: 250,
		},
		{
			unit:          "seconds",
			value:         0.000042,
			expectedUnit:  "microseconds",
			expectedValue: 42,
		},
		{
			unit:          "seconds",
			value:         0.0000000005,
			expectedUnit:  "nanoseconds",
			expectedValue: 0.5,
		},
		{
			unit:          "nanoseconds",
			value:         2500000,
			expectedUnit:  "milliseconds",
			expectedValue: 2.5,
		},
		{
			unit:          "seconds",
			value:         4200,
			expectedUnit:  "seconds",
			expectedValue: 4200,
		},
		{
			unit:          "seconds",
			value:         0,
			expectedUnit:  "seconds",
			expectedValue: 0,
		},
		{
			unit:          "hours",
			value:         0.5,
			expectedUnit:  "hours",
			expectedValue: 0.5,
		},
	}

	for _, tt := range tests {
		scaledUnit, scaledValue := Float64(tt.unit, tt.value)
		if scaledUnit != tt.expectedUnit {
			t.Fatalf("Float64(%s, %g) returned %s instead of %s", tt.unit, tt.value, scaledUnit, tt.expectedUnit)
		}
		if math.Abs(scaledValue-tt.expectedValue) > 1e-6 {
			t.Fatalf("Float64(%s, %g) returned %g instead of %g", tt.unit, tt.value, scaledValue, tt.expectedValue)
		}
	}
}
