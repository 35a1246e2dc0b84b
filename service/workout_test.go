// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import "testing"

func TestComputeCalories(t *testing.T) {
	tests := []struct {
		name        string
		workoutType string
		duration    int
		expected    int
	}{
		{"running", "running", 30, 360},
		{"cycling uppercase", "CYCLING", 45, 315},
		{"swimming", "swimming", 60, 480},
		{"yoga", "yoga", 10, 40},
		{"unknown activity uses default rate", "unknown-activity", 20, 100},
		{"mixed case", "Running", 10, 120},
		{"zero duration", "running", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCalories(tt.workoutType, tt.duration)
			if got != tt.expected {
				t.Errorf("ComputeCalories(%q, %d) = %d, expected %d",
					tt.workoutType, tt.duration, got, tt.expected)
			}
		})
	}
}
