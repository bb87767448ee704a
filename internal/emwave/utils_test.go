package emwave

import (
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	if !isFinite(1) || isFinite(math.Inf(1)) || isFinite(math.NaN()) {
		t.Fatal("isFinite failed")
	}
}

func TestIMax(t *testing.T) {
	if imax(3, 5) != 5 || imax(5, 3) != 5 {
		t.Fatal("imax failed")
	}
}

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 2*math.Pi, 100)
	if len(xs) != 100 || xs[0] != 0 || xs[99] != 2*math.Pi {
		t.Fatalf("linspace ends: %d [%g, %g]", len(xs), xs[0], xs[len(xs)-1])
	}
	step := 2 * math.Pi / 99
	for i := 1; i < len(xs); i++ {
		if math.Abs(xs[i]-xs[i-1]-step) > 1e-12 {
			t.Fatalf("uneven step at %d", i)
		}
	}
	if got := Linspace(3, 4, 1); len(got) != 1 || got[0] != 3 {
		t.Fatalf("single sample: %v", got)
	}
	if got := Linspace(0, 1, 0); got != nil {
		t.Fatalf("zero samples: %v", got)
	}
}
