package emwave

import (
	"fmt"
	"math"
	"strings"
)

// Medium holds the optical properties of a propagation medium.
// Fields are read through accessors so a Medium cannot change after construction.
type Medium struct {
	name         string
	index        Real
	permittivity Real // ε_r
	permeability Real // μ_r
}

// Common mediums.
var (
	Vacuum  = Medium{"Vacuum", 1.0, 1.0, 1.0}
	Air     = Medium{"Air", 1.0003, 1.0006, 1.0000004}
	Water   = Medium{"Water", 1.33, 1.77, 1.0}
	Glass   = Medium{"Glass", 1.5, 2.25, 1.0}
	Diamond = Medium{"Diamond", 2.4, 5.76, 1.0}
)

// NewMedium validates and constructs a medium. Zero permittivity or permeability
// means the vacuum value 1.
func NewMedium(name string, refractiveIndex, permittivity, permeability Real) (Medium, error) {
	if permittivity == 0 {
		permittivity = 1
	}
	if permeability == 0 {
		permeability = 1
	}
	if !(refractiveIndex > 0) || math.IsInf(refractiveIndex, 0) {
		return Medium{}, fmt.Errorf("%w: refractive index must be > 0, got %g", ErrInvalidMedium, refractiveIndex)
	}
	if !(permittivity > 0) || !(permeability > 0) {
		return Medium{}, fmt.Errorf("%w: relative permittivity and permeability must be > 0, got %g and %g", ErrInvalidMedium, permittivity, permeability)
	}
	return Medium{name: name, index: refractiveIndex, permittivity: permittivity, permeability: permeability}, nil
}

func (m Medium) Name() string               { return m.name }
func (m Medium) RefractiveIndex() Real      { return m.index }
func (m Medium) PermittivityRelative() Real { return m.permittivity }
func (m Medium) PermeabilityRelative() Real { return m.permeability }
func (m Medium) String() string             { return m.name }

// PropagationSpeedRelative is the phase speed relative to vacuum (c = 1).
func (m Medium) PropagationSpeedRelative() Real { return 1.0 / m.index }

// ImpedanceRelative is the wave impedance relative to vacuum.
func (m Medium) ImpedanceRelative() Real { return math.Sqrt(m.permeability / m.permittivity) }

// Mediums returns the built-in presets in display order.
func Mediums() []Medium {
	return []Medium{Vacuum, Air, Water, Glass, Diamond}
}

// MediumByName resolves "vacuum", "air", "water", "glass" or "diamond".
func MediumByName(name string) (Medium, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "vacuum":
		return Vacuum, nil
	case "air":
		return Air, nil
	case "water":
		return Water, nil
	case "glass":
		return Glass, nil
	case "diamond":
		return Diamond, nil
	}
	return Medium{}, fmt.Errorf("%w: %q (want vacuum, air, water, glass or diamond)", ErrUnknownMedium, name)
}

// UnmarshalText lets config files name a preset.
func (m *Medium) UnmarshalText(text []byte) error {
	med, err := MediumByName(string(text))
	if err != nil {
		return err
	}
	*m = med
	return nil
}

func (m Medium) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.name)), nil
}

func (m *Medium) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(s))
}
