package emwave

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Duration != Duration || cfg.FPS != FPS || cfg.Points != Points {
		t.Fatalf("timing defaults: %+v", cfg)
	}
	if cfg.Start() != ExtentStart || cfg.Stop() != ExtentStop {
		t.Fatalf("extent defaults: %v", cfg.Extent)
	}
	if cfg.Medium != Vacuum || cfg.Polarization != LinearY {
		t.Fatalf("wave defaults: %s %s", cfg.Medium, cfg.Polarization)
	}
	if cfg.Listen != ListenAddr || cfg.Width != ImageWidth || cfg.Height != ImageHeight {
		t.Fatalf("output defaults: %+v", cfg)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeConfig(t, "wave.json", `{
  "duration": 2,
  "fps": 24,
  "extent": [-1, 3],
  "wavelength": 0.5,
  "medium": "Glass",
  "polarization": "circular-left",
  "compare": true,
  "noShow": true,
  "save": "out.gif"
}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duration != 2 || cfg.FPS != 24 || cfg.Start() != -1 || cfg.Stop() != 3 {
		t.Fatalf("timing: %+v", cfg)
	}
	if cfg.Wavelength != 0.5 || cfg.Amplitude != Amplitude || cfg.Points != Points {
		t.Fatalf("wave: %+v", cfg)
	}
	if cfg.Medium != Glass || cfg.Polarization != CircularLeft {
		t.Fatalf("medium=%s polarization=%s", cfg.Medium, cfg.Polarization)
	}
	if !cfg.Compare || !cfg.NoShow || cfg.Save != "out.gif" {
		t.Fatalf("flags: %+v", cfg)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "wave.yaml", `
duration: 1.5
fps: 12
extent: [0, 2]
points: 64
amplitude: 2
medium: diamond
polarization: linear-z
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duration != 1.5 || cfg.FPS != 12 || cfg.Stop() != 2 || cfg.Points != 64 || cfg.Amplitude != 2 {
		t.Fatalf("values: %+v", cfg)
	}
	if cfg.Medium != Diamond || cfg.Polarization != LinearZ {
		t.Fatalf("medium=%s polarization=%s", cfg.Medium, cfg.Polarization)
	}
	if cfg.Wavelength != Wavelength || cfg.Listen != ListenAddr {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if _, err := LoadConfig(writeConfig(t, "bad.json", `{"medium": "mud"}`)); !errors.Is(err, ErrUnknownMedium) {
		t.Fatalf("expected ErrUnknownMedium, got %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, "bad.json", `{"polarization": "elliptical"}`)); !errors.Is(err, ErrInvalidPolarization) {
		t.Fatalf("expected ErrInvalidPolarization, got %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, "bad.yml", "medium: mud\n")); err == nil {
		t.Fatal("expected an error for an unknown YAML medium")
	}
	if _, err := LoadConfig(writeConfig(t, "bad.json", `{"extent": [0, 1, 2]}`)); !errors.Is(err, ErrInvalidAnimation) {
		t.Fatalf("expected ErrInvalidAnimation, got %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, "bad.json", `{"fps": "fast"}`)); err == nil {
		t.Fatal("expected a parse error")
	}
}
