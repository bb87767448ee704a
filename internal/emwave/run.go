package emwave

import (
	"context"
	"image"
	"time"

	"github.com/google/uuid"

	"github.com/lukaszgryglicki/emwave/internal/log"
)

// Run evaluates, renders and exports the animation described by cfg. Unless
// cfg.NoShow is set it then serves a preview until ctx is cancelled.
func Run(ctx context.Context, cfg *Config) error {
	runID := uuid.New().String()
	if cfg.Save != "" {
		if _, err := OutputFormat(cfg.Save); err != nil {
			return err
		}
	}
	anim, err := NewAnimation(cfg)
	if err != nil {
		return err
	}
	log.Infow("starting run", "run", runID, "frames", anim.FrameCount(), "points", len(anim.Positions),
		"mediums", len(anim.Mediums), "polarization", anim.Wave.Polarization.String())

	start := time.Now()
	frames, err := anim.Frames(ctx)
	if err != nil {
		return err
	}
	DebugLog("Evaluated %d frames in %s", len(frames), time.Since(start))

	summaries := make([]FieldSummary, len(anim.Mediums))
	for i, m := range anim.Mediums {
		summaries[i] = Summarize(frames[0].Snapshots[i], m)
		if ShowStats {
			s := summaries[i]
			log.Infow("field summary", "medium", s.Medium, "maxE", s.MaxElectric, "maxB", s.MaxMagnetic,
				"rmsE", s.RMSElectric, "energy", s.MeanEnergyDensity, "flux", s.MeanPowerFlux, "wavelength", s.DominantWavelength)
		}
	}

	var images []*image.Paletted
	if !cfg.NoShow || NeedsImages(cfg.Save) {
		start = time.Now()
		r := NewRenderer(cfg.Width, cfg.Height, anim.Limits())
		if images, err = r.RenderAll(ctx, anim, frames); err != nil {
			return err
		}
		DebugLog("Rendered %d frames in %s", len(images), time.Since(start))
	}

	if cfg.Save != "" {
		if err := SaveAnimation(cfg.Save, anim, frames, images); err != nil {
			return err
		}
		log.Infow("saved animation", "run", runID, "path", cfg.Save)
	}

	if cfg.NoShow {
		return nil
	}
	preview, err := NewPreview(runID, anim, images, summaries)
	if err != nil {
		return err
	}
	return preview.ListenAndServe(ctx, cfg.Listen)
}
