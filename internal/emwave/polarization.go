package emwave

import "fmt"

// Polarization selects the geometry of the electric field vector.
type Polarization uint8

const (
	LinearY       Polarization = iota // E along +y, B along +z
	LinearZ                           // E along +z, B along -y
	CircularRight                     // right-handed circular
	CircularLeft                      // left-handed circular
)

var polarizationNames = [...]string{
	LinearY:       "linear-y",
	LinearZ:       "linear-z",
	CircularRight: "circular-right",
	CircularLeft:  "circular-left",
}

// Polarizations lists every recognized mode.
func Polarizations() []Polarization {
	return []Polarization{LinearY, LinearZ, CircularRight, CircularLeft}
}

func (p Polarization) Valid() bool { return int(p) < len(polarizationNames) }

func (p Polarization) IsCircular() bool { return p == CircularRight || p == CircularLeft }

func (p Polarization) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Polarization(%d)", uint8(p))
	}
	return polarizationNames[p]
}

// ParsePolarization accepts exactly "linear-y", "linear-z", "circular-right" or "circular-left".
func ParsePolarization(s string) (Polarization, error) {
	for i, name := range polarizationNames {
		if s == name {
			return Polarization(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPolarization, s)
}

func (p Polarization) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolarization, uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *Polarization) UnmarshalText(text []byte) error {
	v, err := ParsePolarization(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p *Polarization) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
