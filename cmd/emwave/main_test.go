package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lukaszgryglicki/emwave/internal/emwave"
	"github.com/lukaszgryglicki/emwave/internal/log"
)

func TestExtentFlag(t *testing.T) {
	var e extentFlag
	if err := e.Set("-1.5, 3"); err != nil {
		t.Fatal(err)
	}
	if len(e) != 2 || e[0] != -1.5 || e[1] != 3 {
		t.Fatalf("parsed %v", e)
	}
	if s := e.String(); s != "-1.5,3" {
		t.Fatalf("String() = %q", s)
	}
	for _, bad := range []string{"", "1", "1,2,3", "a,2", "1,b"} {
		if err := e.Set(bad); err == nil {
			t.Fatalf("Set(%q) should fail", bad)
		}
	}
	var empty *extentFlag
	if empty.String() != "" {
		t.Fatal("nil flag should print empty")
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigureFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "wave.json", `{"fps": 24, "medium": "glass", "points": 64, "extent": [0, 2]}`)
	fs := flag.NewFlagSet("emwave", flag.ContinueOnError)
	cfg, err := configure(fs, []string{"-config", path, "-fps", "12", "-extent", "-1,1", "-no-show"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FPS != 12 || cfg.Start() != -1 || cfg.Stop() != 1 || !cfg.NoShow {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Medium != emwave.Glass || cfg.Points != 64 {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.Duration != emwave.Duration {
		t.Fatalf("default duration not applied: %g", cfg.Duration)
	}
}

func TestConfigureErrors(t *testing.T) {
	fs := flag.NewFlagSet("emwave", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := configure(fs, []string{"-medium", "mud"}); err == nil {
		t.Fatal("expected an error for an unknown medium")
	}
	fs = flag.NewFlagSet("emwave", flag.ContinueOnError)
	bad := writeFile(t, "bad.json", `{"polarization": "elliptical"}`)
	if _, err := configure(fs, []string{"-config", bad}); !errors.Is(err, emwave.ErrInvalidPolarization) {
		t.Fatalf("expected ErrInvalidPolarization, got %v", err)
	}
}

func TestConfigureLogsConfigLoad(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stderr := os.Stderr
	os.Stderr = w
	emwave.Debug = true
	defer func() {
		os.Stderr = stderr
		emwave.Debug = false
		_ = log.Init(false)
	}()
	out := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		out <- string(b)
	}()

	path := writeFile(t, "wave.yaml", "fps: 5\n")
	fs := flag.NewFlagSet("emwave", flag.ContinueOnError)
	if _, err := configure(fs, []string{"-config", path}); err != nil {
		t.Fatal(err)
	}
	log.Sync()
	os.Stderr = stderr
	_ = w.Close()
	if got := <-out; !strings.Contains(got, "Loaded config from "+path) {
		t.Fatalf("debug output missing config load line: %q", got)
	}
}
