package emwave

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Real = float64

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Linspace returns n evenly spaced samples over [start, stop], both ends included.
func Linspace(start, stop Real, n int) []Real {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Real{start}
	}
	xs := floats.Span(make([]Real, n), start, stop)
	xs[n-1] = stop
	return xs
}
