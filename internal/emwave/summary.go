package emwave

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FieldSummary condenses one snapshot into a few scalar figures.
type FieldSummary struct {
	Medium             string  `json:"medium"`
	MaxElectric        Real    `json:"maxElectric"`
	MaxMagnetic        Real    `json:"maxMagnetic"`
	RMSElectric        Real    `json:"rmsElectric"`
	RMSMagnetic        Real    `json:"rmsMagnetic"`
	MeanEnergyDensity  Real    `json:"meanEnergyDensity"` // ½(εr·|E|² + |B|²/μr)
	MeanPowerFlux      Real    `json:"meanPowerFlux"`     // |⟨E × B⟩|/μr
	FluxDirection      Vector3 `json:"fluxDirection"`
	DominantWavelength Real    `json:"dominantWavelength"`
}

// Summarize computes field magnitudes and the dominant spatial wavelength of s,
// taking εr and μr from m. Positions are assumed evenly spaced.
func Summarize(s *FieldSnapshot, m Medium) FieldSummary {
	n := s.Len()
	if n == 0 {
		return FieldSummary{Medium: m.Name()}
	}
	e2 := make([]Real, n)
	b2 := make([]Real, n)
	u := make([]Real, n)
	var flux Vector3
	for i := 0; i < n; i++ {
		ev, bv := s.ElectricAt(i), s.MagneticAt(i)
		e2[i] = ev.Dot(ev)
		b2[i] = bv.Dot(bv)
		u[i] = 0.5 * (m.PermittivityRelative()*e2[i] + b2[i]/m.PermeabilityRelative())
		flux = flux.Add(ev.Cross(bv))
	}
	flux = flux.Mul(1 / (Real(n) * m.PermeabilityRelative()))
	sum := FieldSummary{
		Medium:            m.Name(),
		MaxElectric:       math.Sqrt(floats.Max(e2)),
		MaxMagnetic:       math.Sqrt(floats.Max(b2)),
		RMSElectric:       math.Sqrt(stat.Mean(e2, nil)),
		RMSMagnetic:       math.Sqrt(stat.Mean(b2, nil)),
		MeanEnergyDensity: stat.Mean(u, nil),
		MeanPowerFlux:     flux.Len(),
		FluxDirection:     flux.Norm(),
	}

	// analyse the transverse component carrying the most energy
	_, ey, ez := s.Components()
	comp := ey
	if floats.Dot(ez, ez) > floats.Dot(ey, ey) {
		comp = ez
	}
	sum.DominantWavelength = dominantWavelength(s.positions, comp)
	return sum
}

// dominantWavelength returns the spatial period of the strongest non-DC Fourier
// bin of samples, or 0 when there are too few samples or no signal.
func dominantWavelength(x, samples []Real) Real {
	n := len(samples)
	if n < 4 {
		return 0
	}
	spectrum := fft.FFTReal(samples)
	best, bestMag := 0, 0.0
	for k := 1; k <= n/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > bestMag {
			best, bestMag = k, mag
		}
	}
	if best == 0 || bestMag < 1e-12 {
		return 0
	}
	dx := (x[n-1] - x[0]) / Real(n-1)
	return Real(n) * dx / Real(best)
}
