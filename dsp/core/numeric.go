package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Lerp interpolates linearly between a and b.
// Lerp(a, b, 0) == a and Lerp(a, b, 1) == b exactly.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// WrapIndex returns (index + 1) % count, the next position of a circular
// cursor. It returns 0 when count is not positive.
func WrapIndex(index, count int) int {
	if count <= 0 {
		return 0
	}
	return (index + 1) % count
}

// WrapPhase folds a phase in radians into [0, 2π).
func WrapPhase(phase float64) float64 {
	p := math.Mod(phase, 2*math.Pi)
	if p < 0 {
		p += 2 * math.Pi
	}
	return p
}

// IsNonFinite reports whether x is NaN or ±Inf.
func IsNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
