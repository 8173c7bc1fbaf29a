// Package web serves the generated AsyncAPI document over HTTP.
package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/artpar/asyncdoc/adapters/metrics"
	"github.com/artpar/asyncdoc/app"
	"github.com/artpar/asyncdoc/core/formatter"
)

// Handler serves the current document in YAML and JSON form, plus health
// and metrics endpoints.
type Handler struct {
	docs        *app.DocumentService
	logger      zerolog.Logger
	collector   *metrics.Collector
	metricsPath string
}

// Options configures the web handler.
type Options struct {
	// Docs supplies the current document.
	Docs *app.DocumentService

	// Logger for request-level events.
	Logger zerolog.Logger

	// Collector records request metrics; nil disables the metrics endpoint.
	Collector *metrics.Collector

	// MetricsPath is where the Prometheus endpoint is mounted.
	MetricsPath string
}

// NewHandler creates a new web handler.
func NewHandler(opts Options) *Handler {
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	return &Handler{
		docs:        opts.Docs,
		logger:      opts.Logger,
		collector:   opts.Collector,
		metricsPath: opts.MetricsPath,
	}
}

// Router returns the documentation server router.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", h.Health)
	r.Get("/asyncapi.yaml", h.DocumentYAML)
	r.Get("/asyncapi.json", h.DocumentJSON)

	if h.collector != nil {
		r.Handle(h.metricsPath, promhttp.Handler())
	}

	return r
}

// Health reports server liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// DocumentYAML serves the document as YAML.
func (h *Handler) DocumentYAML(w http.ResponseWriter, r *http.Request) {
	h.serveDocument(w, r, "yaml", "application/yaml")
}

// DocumentJSON serves the document as JSON.
func (h *Handler) DocumentJSON(w http.ResponseWriter, r *http.Request) {
	h.serveDocument(w, r, "json", "application/json")
}

func (h *Handler) serveDocument(w http.ResponseWriter, r *http.Request, format, contentType string) {
	start := time.Now()

	f, ok := formatter.Get(format)
	if !ok {
		h.observe(r.URL.Path, http.StatusInternalServerError, start)
		http.Error(w, "formatter not available", http.StatusInternalServerError)
		return
	}

	doc := h.docs.Document()
	if doc == nil {
		h.observe(r.URL.Path, http.StatusServiceUnavailable, start)
		http.Error(w, "document not generated yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", contentType)
	if err := f.FormatDocument(w, doc, formatter.Options{}); err != nil {
		h.logger.Error().Err(err).Str("format", format).Msg("serve document failed")
		h.observe(r.URL.Path, http.StatusInternalServerError, start)
		return
	}

	h.observe(r.URL.Path, http.StatusOK, start)
}

func (h *Handler) observe(path string, status int, start time.Time) {
	if h.collector == nil {
		return
	}
	code := strconv.Itoa(status)
	h.collector.RequestsTotal.WithLabelValues(path, code).Inc()
	h.collector.RequestDuration.WithLabelValues(path, code).Observe(time.Since(start).Seconds())
}
