package emwave

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, name string, got, want, tol Real) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.12g, want %.12g", name, got, want)
	}
}

func TestSummarizeLinear(t *testing.T) {
	xs := Linspace(0, 4, 400)
	s, err := Evaluate(xs, 0, DefaultWaveParams())
	if err != nil {
		t.Fatal(err)
	}
	sum := Summarize(s, Vacuum)
	if sum.Medium != "Vacuum" {
		t.Fatalf("medium %q", sum.Medium)
	}
	assertNear(t, "max E", sum.MaxElectric, 1, 1e-4)
	assertNear(t, "max B", sum.MaxMagnetic, 1, 1e-4)
	assertNear(t, "rms E", sum.RMSElectric, 1/math.Sqrt2, 1e-2)
	assertNear(t, "rms B", sum.RMSMagnetic, 1/math.Sqrt2, 1e-2)
	assertNear(t, "energy", sum.MeanEnergyDensity, 0.5, 1e-2)
	assertNear(t, "wavelength", sum.DominantWavelength, 1, 0.02)
	assertNear(t, "flux", sum.MeanPowerFlux, 0.5, 1e-2)
	if d := sum.FluxDirection; math.Abs(d.X-1) > 1e-12 || d.Y != 0 || d.Z != 0 {
		t.Fatalf("flux direction %+v, want +x", d)
	}
}

func TestSummarizeMedium(t *testing.T) {
	xs := Linspace(0, 4, 400)
	p := DefaultWaveParams()
	p.Wavelength = 0.5
	p.Medium = Glass
	p.Polarization = CircularRight
	s, err := Evaluate(xs, 0.3, p)
	if err != nil {
		t.Fatal(err)
	}
	sum := Summarize(s, Glass)
	// circular: |E| = A everywhere
	assertNear(t, "rms E", sum.RMSElectric, 1, 1e-9)
	assertNear(t, "max B", sum.MaxMagnetic, 1.5, 1e-9)
	assertNear(t, "energy", sum.MeanEnergyDensity, 0.5*(2.25+2.25), 1e-9)
	assertNear(t, "wavelength", sum.DominantWavelength, 0.5, 0.01)
	// |E×B| = A·A/v at every sample
	assertNear(t, "flux", sum.MeanPowerFlux, 1.5, 1e-9)
	assertNear(t, "flux x", sum.FluxDirection.X, 1, 1e-12)
}

func TestSummarizeEmpty(t *testing.T) {
	s, err := Evaluate(nil, 0, DefaultWaveParams())
	if err != nil {
		t.Fatal(err)
	}
	sum := Summarize(s, Water)
	if sum != (FieldSummary{Medium: "Water"}) {
		t.Fatalf("empty summary %+v", sum)
	}
}

func TestDominantWavelengthDegenerate(t *testing.T) {
	if got := dominantWavelength([]Real{0, 1, 2}, []Real{1, 0, -1}); got != 0 {
		t.Fatalf("short input: %g", got)
	}
	xs := Linspace(0, 1, 16)
	if got := dominantWavelength(xs, make([]Real, 16)); got != 0 {
		t.Fatalf("flat input: %g", got)
	}
}
