package emwave

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"image"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/lukaszgryglicki/emwave/internal/log"
)

// Preview serves a rendered animation, its frames and on-demand snapshots over HTTP.
type Preview struct {
	RunID     string
	anim      *Animation
	images    []*image.Paletted
	gif       []byte
	summaries []FieldSummary
	router    *mux.Router
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<img src="/animation.gif" alt="{{.Title}}">
<p>{{.Frames}} frames at {{.FPS}} fps, polarization {{.Polarization}}, run {{.RunID}}</p>
</body>
</html>
`))

// NewPreview encodes the animated GIF once and wires the routes.
func NewPreview(runID string, a *Animation, images []*image.Paletted, summaries []FieldSummary) (*Preview, error) {
	var buf bytes.Buffer
	if err := EncodeAnimatedGIF(&buf, images, a.FPS); err != nil {
		return nil, fmt.Errorf("encode preview gif: %w", err)
	}
	p := &Preview{
		RunID:     runID,
		anim:      a,
		images:    images,
		gif:       buf.Bytes(),
		summaries: summaries,
	}

	router := mux.NewRouter()
	router.HandleFunc("/", p.serveIndex).Methods(http.MethodGet)
	router.HandleFunc("/animation.gif", p.serveGIF).Methods(http.MethodGet)
	router.HandleFunc("/frames/{index:[0-9]+}.png", p.serveFrame).Methods(http.MethodGet)
	router.HandleFunc("/snapshot", p.serveSnapshot).Methods(http.MethodGet)
	router.HandleFunc("/summary", p.serveSummary).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", MetricsHandler()).Methods(http.MethodGet)
	router.Use(metricsMiddleware)
	router.Use(p.runIDMiddleware)
	p.router = router
	return p, nil
}

func (p *Preview) Handler() http.Handler { return p.router }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (p *Preview) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           p.router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Infow("preview listening", "url", "http://"+addr+"/", "run", p.RunID)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down the preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (p *Preview) runIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Run-ID", p.RunID)
		next.ServeHTTP(w, r)
	})
}

func (p *Preview) serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, map[string]any{
		"Title":        p.anim.Title(),
		"Frames":       len(p.images),
		"FPS":          p.anim.FPS,
		"Polarization": p.anim.Wave.Polarization,
		"RunID":        p.RunID,
	})
	if err != nil {
		log.Errorf("error executing index template: %v", err)
	}
}

func (p *Preview) serveGIF(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Content-Length", strconv.Itoa(len(p.gif)))
	_, _ = w.Write(p.gif)
}

func (p *Preview) serveFrame(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || idx < 0 || idx >= len(p.images) {
		http.Error(w, fmt.Sprintf("frame must be in [0, %d)", len(p.images)), http.StatusNotFound)
		return
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, p.images[idx]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

// serveSnapshot evaluates the wave of this animation at ?t=, optionally for another
// ?medium= and ?polarization=, as JSON or ?format=msgpack.
func (p *Preview) serveSnapshot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := p.anim.Wave
	params.Medium = p.anim.Mediums[0]

	t := 0.0
	if s := q.Get("t"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			http.Error(w, "invalid t: "+err.Error(), http.StatusBadRequest)
			return
		}
		if !isFinite(v) {
			http.Error(w, "invalid t: must be finite", http.StatusBadRequest)
			return
		}
		t = v
	}
	if s := q.Get("medium"); s != "" {
		m, err := MediumByName(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		params.Medium = m
	}
	if s := q.Get("polarization"); s != "" {
		pol, err := ParsePolarization(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		params.Polarization = pol
	}

	snap, err := Evaluate(p.anim.Positions, t, params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p.write(w, q.Get("format"), snap.Data())
}

func (p *Preview) serveSummary(w http.ResponseWriter, r *http.Request) {
	p.write(w, r.URL.Query().Get("format"), p.summaries)
}

func (p *Preview) write(w http.ResponseWriter, format string, data any) {
	var err error
	if format == "msgpack" {
		w.Header().Set("Content-Type", "application/x-msgpack")
		err = EncodeMsgPack(w, data)
	} else {
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(data)
	}
	if err != nil {
		log.Errorf("error writing response: %v", err)
	}
}
