package emwave

import "errors"

var (
	// ErrInvalidShape is returned when sample positions are not a flat 1D sequence.
	ErrInvalidShape = errors.New("emwave: invalid input: positions must be a 1D sequence")

	// ErrInvalidPolarization is returned for anything outside the four known modes.
	ErrInvalidPolarization = errors.New("emwave: invalid input: unknown polarization")

	ErrInvalidMedium = errors.New("emwave: invalid medium")

	// ErrUnknownMedium is returned when a preset name does not resolve.
	ErrUnknownMedium = errors.New("emwave: unknown medium")

	ErrInvalidAnimation  = errors.New("emwave: invalid animation settings")
	ErrUnsupportedOutput = errors.New("emwave: unsupported output format")
)
