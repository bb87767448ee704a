package emwave

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	framesEvaluated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "emwave_frames_evaluated_total",
			Help: "Total number of animation frames whose fields were evaluated.",
		},
	)

	framesRendered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "emwave_frames_rendered_total",
			Help: "Total number of animation frames rasterized.",
		},
	)

	renderDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "emwave_render_duration_seconds",
			Help:    "Time to rasterize one animation frame.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emwave_http_requests_total",
			Help: "Total number of preview HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "emwave_http_duration_seconds",
			Help:    "Preview HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)

func init() {
	prometheus.MustRegister(framesEvaluated)
	prometheus.MustRegister(framesRendered)
	prometheus.MustRegister(renderDurationSeconds)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
}

// MetricsHandler returns the Prometheus metrics HTTP handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware records request count and duration, labelled by route template.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}
		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(path, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(path, r.Method).Observe(duration)
	})
}
