package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestLerpEndpointsExact(t *testing.T) {
	a, b := 102.0, 163.0
	if got := Lerp(a, b, 0); got != a {
		t.Fatalf("Lerp(t=0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Fatalf("Lerp(t=1) = %v, want %v", got, b)
	}
	if got := Lerp(0, 10, 0.25); got != 2.5 {
		t.Fatalf("Lerp(0, 10, 0.25) = %v, want 2.5", got)
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		index, count, want int
	}{
		{0, 4, 1},
		{2, 4, 3},
		{3, 4, 0},
		{0, 1, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := WrapIndex(tt.index, tt.count); got != tt.want {
			t.Fatalf("WrapIndex(%d, %d) = %d, want %d", tt.index, tt.count, got, tt.want)
		}
	}
}

func TestWrapPhase(t *testing.T) {
	if got := WrapPhase(2 * math.Pi); got != 0 {
		t.Fatalf("WrapPhase(2π) = %v, want 0", got)
	}
	got := WrapPhase(-math.Pi / 2)
	if !NearlyEqual(got, 1.5*math.Pi, 1e-12) {
		t.Fatalf("WrapPhase(-π/2) = %v, want 3π/2", got)
	}
}

func TestLinearToDB(t *testing.T) {
	if !NearlyEqual(LinearToDB(10), 20, 1e-12) {
		t.Fatalf("LinearToDB(10) = %v, want 20", LinearToDB(10))
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}
