package emwave

import (
	"fmt"
	"math"
)

// Animation is a sequence of field snapshots sampled at t = i/fps for one
// medium, or for every preset side by side in comparison mode.
type Animation struct {
	Duration  Real
	FPS       int
	Start     Real
	Stop      Real
	Positions []Real
	Wave      WaveParams // Wave.Medium is ignored; see Mediums
	Mediums   []Medium
	Compare   bool
}

// Frame holds one snapshot per animated medium, in Animation.Mediums order.
type Frame struct {
	Index     int
	Time      Real
	Snapshots []*FieldSnapshot
}

// AxisLimits are the plot ranges of the x, y and z axes.
type AxisLimits struct {
	X, Y, Z [2]Real
}

func NewAnimation(cfg *Config) (*Animation, error) {
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidAnimation, cfg.FPS)
	}
	if len(cfg.Extent) != 2 {
		return nil, fmt.Errorf("%w: extent needs exactly [start, stop], got %v", ErrInvalidAnimation, cfg.Extent)
	}
	start, stop := cfg.Start(), cfg.Stop()
	if !(stop > start) {
		return nil, fmt.Errorf("%w: extent must have stop > start, got [%g, %g]", ErrInvalidAnimation, start, stop)
	}
	if cfg.Points < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidAnimation, cfg.Points)
	}
	if !cfg.Polarization.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPolarization, cfg.Polarization)
	}
	a := &Animation{
		Duration:  cfg.Duration,
		FPS:       cfg.FPS,
		Start:     start,
		Stop:      stop,
		Positions: Linspace(start, stop, cfg.Points),
		Wave: WaveParams{
			Phase:        cfg.Phase,
			Wavelength:   cfg.Wavelength,
			Amplitude:    cfg.Amplitude,
			Medium:       cfg.Medium,
			Polarization: cfg.Polarization,
		},
		Compare: cfg.Compare,
	}
	if cfg.Compare {
		a.Mediums = Mediums()
	} else {
		a.Mediums = []Medium{cfg.Medium}
	}
	if a.FrameCount() < 1 {
		return nil, fmt.Errorf("%w: duration %g at %d fps yields no frames", ErrInvalidAnimation, cfg.Duration, cfg.FPS)
	}
	DebugLog("Animation: %d frames, %d points, %d mediums, polarization=%s", a.FrameCount(), len(a.Positions), len(a.Mediums), a.Wave.Polarization)
	return a, nil
}

// FrameCount is int(duration·fps).
func (a *Animation) FrameCount() int { return int(a.Duration * Real(a.FPS)) }

// FrameTime returns the time of frame i.
func (a *Animation) FrameTime(i int) Real { return Real(i) / Real(a.FPS) }

// Frame evaluates frame i for every animated medium.
func (a *Animation) Frame(i int) (*Frame, error) {
	t := a.FrameTime(i)
	f := &Frame{Index: i, Time: t, Snapshots: make([]*FieldSnapshot, len(a.Mediums))}
	for m, med := range a.Mediums {
		p := a.Wave
		p.Medium = med
		s, err := Evaluate(a.Positions, t, p)
		if err != nil {
			return nil, fmt.Errorf("frame %d, %s: %w", i, med.Name(), err)
		}
		f.Snapshots[m] = s
	}
	return f, nil
}

// Title is the plot heading.
func (a *Animation) Title() string {
	if a.Compare {
		return "EM Wave Comparison: Different Propagation Mediums"
	}
	return "Electromagnetic Plane Wave in " + a.Mediums[0].Name()
}

// Limits returns the axis ranges, padded by LimitPadding·A, large enough to hold
// the slowest medium's magnetic field.
func (a *Animation) Limits() AxisLimits {
	amp := math.Abs(a.Wave.Amplitude)
	minSpeed := math.Inf(1)
	for _, m := range a.Mediums {
		minSpeed = math.Min(minSpeed, m.PropagationSpeedRelative())
	}
	bAmp := amp / minSpeed
	pad := LimitPadding * amp
	l := AxisLimits{X: [2]Real{a.Start, a.Stop}}
	switch a.Wave.Polarization {
	case LinearZ:
		l.Y = [2]Real{-bAmp - pad, bAmp + pad}
		l.Z = [2]Real{-amp - pad, amp + pad}
	case CircularRight, CircularLeft:
		r := math.Max(amp, bAmp) + pad
		l.Y = [2]Real{-r, r}
		l.Z = [2]Real{-r, r}
	default:
		l.Y = [2]Real{-amp - pad, amp + pad}
		l.Z = [2]Real{-bAmp - pad, bAmp + pad}
	}
	return l
}

// Traces returns the electric and magnetic polylines in plot space. Linear modes
// keep each field in its own plane; circular modes trace the full y-z vector.
func Traces(s *FieldSnapshot, pol Polarization) (e, b []Vector3) {
	n := s.Len()
	e = make([]Vector3, n)
	b = make([]Vector3, n)
	for i, x := range s.positions {
		ev, bv := s.ElectricAt(i), s.MagneticAt(i)
		switch pol {
		case LinearY:
			e[i] = Vector3{x, ev.Y, 0}
			b[i] = Vector3{x, 0, bv.Z}
		case LinearZ:
			e[i] = Vector3{x, 0, ev.Z}
			b[i] = Vector3{x, bv.Y, 0}
		default:
			e[i] = Vector3{x, ev.Y, ev.Z}
			b[i] = Vector3{x, bv.Y, bv.Z}
		}
	}
	return e, b
}
