package math3d

import "math"

// Epsilon is the absolute tolerance used throughout the core for float
// comparisons (spec.md §4.A) and for the over/under-point nudge (§ GLOSSARY).
const Epsilon = 1e-5

// FloatEqual compares two floats with the spec's absolute tolerance.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
