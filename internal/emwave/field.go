package emwave

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Field component rows.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// WaveParams describes a monochromatic plane wave travelling along +x.
type WaveParams struct {
	Phase        Real // radians
	Wavelength   Real // zero means the default of 1
	Amplitude    Real // peak electric field
	Medium       Medium
	Polarization Polarization
}

func DefaultWaveParams() WaveParams {
	return WaveParams{
		Wavelength:   Wavelength,
		Amplitude:    Amplitude,
		Medium:       Vacuum,
		Polarization: LinearY,
	}
}

// withDefaults fills the zero-valued wavelength and medium; amplitude and phase
// are taken as given since zero is meaningful for both.
func (p WaveParams) withDefaults() WaveParams {
	if p.Wavelength == 0 {
		p.Wavelength = Wavelength
	}
	if p.Medium == (Medium{}) {
		p.Medium = Vacuum
	}
	return p
}

// Wavenumber returns k = 2π/λ.
func (p WaveParams) Wavenumber() Real {
	p = p.withDefaults()
	return 2 * math.Pi / p.Wavelength
}

// AngularFrequency returns ω = k·v for the medium's relative speed.
func (p WaveParams) AngularFrequency() Real {
	p = p.withDefaults()
	return p.Wavenumber() * p.Medium.PropagationSpeedRelative()
}

// MagneticAmplitude is A/v, the peak of every non-zero magnetic component.
func (p WaveParams) MagneticAmplitude() Real {
	p = p.withDefaults()
	return p.Amplitude / p.Medium.PropagationSpeedRelative()
}

// FieldSnapshot is the electric and magnetic field along a 1D slice at one instant.
// Rows of both 3×N matrices are the x, y and z components.
type FieldSnapshot struct {
	positions []Real
	electric  *mat.Dense
	magnetic  *mat.Dense
}

// Evaluate returns the fields of the plane wave at the given x positions and time t.
// It has no side effects and is safe for concurrent use.
func Evaluate(positions []Real, t Real, p WaveParams) (*FieldSnapshot, error) {
	if !p.Polarization.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPolarization, p.Polarization)
	}
	p = p.withDefaults()

	k := p.Wavenumber()
	v := p.Medium.PropagationSpeedRelative()
	omega := k * v

	n := len(positions)
	if n == 0 {
		return &FieldSnapshot{positions: []Real{}, electric: &mat.Dense{}, magnetic: &mat.Dense{}}, nil
	}
	theta := make([]Real, n)
	copy(theta, positions)
	floats.Scale(k, theta)
	floats.AddConst(p.Phase-omega*t, theta)

	a := p.Amplitude
	ab := a / v
	e := mat.NewDense(3, n, nil)
	b := mat.NewDense(3, n, nil)
	for i, th := range theta {
		sin, cos := math.Sin(th), math.Cos(th)
		switch p.Polarization {
		case LinearY:
			e.Set(AxisY, i, a*sin)
			b.Set(AxisZ, i, ab*sin)
		case LinearZ:
			e.Set(AxisZ, i, a*sin)
			b.Set(AxisY, i, -ab*sin)
		case CircularRight:
			e.Set(AxisY, i, a*cos)
			e.Set(AxisZ, i, a*sin)
			b.Set(AxisY, i, -ab*sin)
			b.Set(AxisZ, i, ab*cos)
		case CircularLeft:
			e.Set(AxisY, i, a*cos)
			e.Set(AxisZ, i, -a*sin)
			b.Set(AxisY, i, ab*sin)
			b.Set(AxisZ, i, ab*cos)
		}
	}

	pos := make([]Real, n)
	copy(pos, positions)
	return &FieldSnapshot{positions: pos, electric: e, magnetic: b}, nil
}

// EvaluateMatrix is Evaluate for positions held in a gonum row or column vector.
// Any other shape fails with ErrInvalidShape.
func EvaluateMatrix(positions mat.Matrix, t Real, p WaveParams) (*FieldSnapshot, error) {
	r, c := positions.Dims()
	switch {
	case r == 1:
		return Evaluate(mat.Row(nil, 0, positions), t, p)
	case c == 1:
		return Evaluate(mat.Col(nil, 0, positions), t, p)
	}
	return nil, fmt.Errorf("%w: got %d×%d matrix", ErrInvalidShape, r, c)
}

// Len returns the number of sample points.
func (s *FieldSnapshot) Len() int { return len(s.positions) }

// Positions returns a copy of the sampled x coordinates.
func (s *FieldSnapshot) Positions() []Real {
	return append([]Real(nil), s.positions...)
}

// Electric returns a copy of the 3×N electric field matrix. It is empty when
// the snapshot has no samples.
func (s *FieldSnapshot) Electric() *mat.Dense { return copyField(s.electric) }

// Magnetic returns a copy of the 3×N magnetic field matrix.
func (s *FieldSnapshot) Magnetic() *mat.Dense { return copyField(s.magnetic) }

func copyField(m *mat.Dense) *mat.Dense {
	if m.IsEmpty() {
		return &mat.Dense{}
	}
	return mat.DenseCopyOf(m)
}

// Components returns the rows of the electric field as (Ex, Ey, Ez).
func (s *FieldSnapshot) Components() (ex, ey, ez []Real) { return fieldRows(s.electric) }

// MagneticComponents returns the rows of the magnetic field as (Bx, By, Bz).
func (s *FieldSnapshot) MagneticComponents() (bx, by, bz []Real) { return fieldRows(s.magnetic) }

func fieldRows(m *mat.Dense) (x, y, z []Real) {
	if m.IsEmpty() {
		return []Real{}, []Real{}, []Real{}
	}
	return mat.Row(nil, AxisX, m), mat.Row(nil, AxisY, m), mat.Row(nil, AxisZ, m)
}

func (s *FieldSnapshot) ElectricAt(i int) Vector3 {
	return Vector3{s.electric.At(AxisX, i), s.electric.At(AxisY, i), s.electric.At(AxisZ, i)}
}

func (s *FieldSnapshot) MagneticAt(i int) Vector3 {
	return Vector3{s.magnetic.At(AxisX, i), s.magnetic.At(AxisY, i), s.magnetic.At(AxisZ, i)}
}

// SnapshotData is the plain, serializable form of a FieldSnapshot.
type SnapshotData struct {
	Positions []Real    `json:"positions"`
	Electric  [3][]Real `json:"electric"`
	Magnetic  [3][]Real `json:"magnetic"`
}

func (s *FieldSnapshot) Data() SnapshotData {
	var d SnapshotData
	d.Positions = s.Positions()
	d.Electric[0], d.Electric[1], d.Electric[2] = s.Components()
	d.Magnetic[0], d.Magnetic[1], d.Magnetic[2] = s.MagneticComponents()
	return d
}
