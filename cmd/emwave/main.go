package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"

	"github.com/lukaszgryglicki/emwave/internal/emwave"
	"github.com/lukaszgryglicki/emwave/internal/log"
)

// extentFlag parses "START,STOP".
type extentFlag []float64

func (e *extentFlag) String() string {
	if e == nil || len(*e) != 2 {
		return ""
	}
	return fmt.Sprintf("%g,%g", (*e)[0], (*e)[1])
}

func (e *extentFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fmt.Errorf("extent must be START,STOP")
	}
	out := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return err
		}
		out[i] = v
	}
	*e = out
	return nil
}

// configure parses args into a Config. The logger is initialized before any
// config file is read so its debug output is kept.
func configure(fs *flag.FlagSet, args []string) (*emwave.Config, error) {
	fc := emwave.DefaultConfig()
	extent := extentFlag(fc.Extent)
	configPath := fs.String("config", "", "Optional JSON or YAML config file; flags override its values.")
	fs.Float64Var(&fc.Duration, "duration", fc.Duration, "Animation duration in seconds.")
	fs.IntVar(&fc.FPS, "fps", fc.FPS, "Frames per second for the animation.")
	fs.Var(&extent, "extent", "Spatial extent START,STOP along the propagation direction (x-axis).")
	fs.Float64Var(&fc.Wavelength, "wavelength", fc.Wavelength, "Wavelength of the wave.")
	fs.Float64Var(&fc.Amplitude, "amplitude", fc.Amplitude, "Electric field amplitude.")
	fs.TextVar(&fc.Medium, "medium", fc.Medium, "Propagation medium: vacuum, air, water, glass or diamond.")
	fs.TextVar(&fc.Polarization, "polarization", fc.Polarization, "Polarization: linear-y, linear-z, circular-right or circular-left.")
	fs.Float64Var(&fc.Phase, "phase", fc.Phase, "Initial phase offset in radians.")
	fs.IntVar(&fc.Points, "points", fc.Points, "Number of spatial samples used to draw the wave.")
	fs.StringVar(&fc.Save, "save", fc.Save, "Optional output file (.gif, .png sequence, .raw or .msgpack).")
	fs.BoolVar(&fc.Compare, "compare", fc.Compare, "Show waves in all available mediums simultaneously.")
	fs.BoolVar(&fc.NoShow, "no-show", fc.NoShow, "Do not serve the preview (useful for headless environments).")
	fs.StringVar(&fc.Listen, "listen", fc.Listen, "Preview server address.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fc.Extent = extent

	if err := log.Init(emwave.Debug); err != nil {
		return nil, err
	}
	if *configPath == "" {
		return fc, nil
	}

	cfg, err := emwave.LoadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	// explicit flags win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Duration = fc.Duration
		case "fps":
			cfg.FPS = fc.FPS
		case "extent":
			cfg.Extent = fc.Extent
		case "wavelength":
			cfg.Wavelength = fc.Wavelength
		case "amplitude":
			cfg.Amplitude = fc.Amplitude
		case "medium":
			cfg.Medium = fc.Medium
		case "polarization":
			cfg.Polarization = fc.Polarization
		case "phase":
			cfg.Phase = fc.Phase
		case "points":
			cfg.Points = fc.Points
		case "save":
			cfg.Save = fc.Save
		case "compare":
			cfg.Compare = fc.Compare
		case "no-show":
			cfg.NoShow = fc.NoShow
		case "listen":
			cfg.Listen = fc.Listen
		}
	})
	return cfg, nil
}

func main() {
	emwave.Debug = os.Getenv("DEBUG") != ""
	emwave.ShowStats = os.Getenv("NO_STATS") == ""
	profile := os.Getenv("PROFILE") != ""

	cfg, err := configure(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := emwave.Run(ctx, cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Save != "" {
		fmt.Printf("Animation saved to %s\n", cfg.Save)
	}
}
