package emwave

import (
	"errors"
	"testing"
)

func TestParsePolarization(t *testing.T) {
	for _, p := range Polarizations() {
		got, err := ParsePolarization(p.String())
		if err != nil || got != p {
			t.Fatalf("ParsePolarization(%q) = %v, %v", p.String(), got, err)
		}
	}
	want := []string{"linear-y", "linear-z", "circular-right", "circular-left"}
	for i, p := range Polarizations() {
		if p.String() != want[i] {
			t.Fatalf("name %d = %q, want %q", i, p.String(), want[i])
		}
	}
	for _, bad := range []string{"elliptical", "", "Linear-Y", "circular"} {
		if _, err := ParsePolarization(bad); !errors.Is(err, ErrInvalidPolarization) {
			t.Fatalf("ParsePolarization(%q): expected ErrInvalidPolarization, got %v", bad, err)
		}
	}
}

func TestPolarizationValidity(t *testing.T) {
	var zero Polarization
	if zero != LinearY {
		t.Fatal("zero value should be linear-y")
	}
	if Polarization(4).Valid() {
		t.Fatal("Polarization(4) must be invalid")
	}
	if _, err := Polarization(4).MarshalText(); !errors.Is(err, ErrInvalidPolarization) {
		t.Fatalf("expected ErrInvalidPolarization, got %v", err)
	}
	if !CircularLeft.IsCircular() || LinearZ.IsCircular() {
		t.Fatal("IsCircular wrong")
	}
	var p Polarization
	if err := p.UnmarshalText([]byte("circular-left")); err != nil || p != CircularLeft {
		t.Fatalf("UnmarshalText = %v, %v", p, err)
	}
}
