package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/artpar/asyncdoc/adapters/metrics"
	"github.com/artpar/asyncdoc/app"
	"github.com/artpar/asyncdoc/config"
	"github.com/artpar/asyncdoc/core/schema"
	"github.com/artpar/asyncdoc/web"
)

func newTestHandler(t *testing.T, collector *metrics.Collector) *web.Handler {
	t.Helper()

	cfg := &config.Config{
		Messages: []schema.Definition{
			{
				Name:   "Ping",
				Fields: map[string]schema.Field{"seq": {Type: schema.FieldTypeInt}},
			},
		},
		Channels: config.ChannelsConfig{
			Senders: map[string]string{"pings": "Ping"},
		},
	}

	docs, err := app.NewDocumentService(cfg, zerolog.Nop(), collector)
	if err != nil {
		t.Fatalf("NewDocumentService returned error: %v", err)
	}

	return web.NewHandler(web.Options{
		Docs:      docs,
		Logger:    zerolog.Nop(),
		Collector: collector,
	})
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, nil)
	srv := httptest.NewServer(h.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestDocumentYAML(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := httptest.NewRecorder()

	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/asyncapi.yaml", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/yaml" {
		t.Errorf("expected application/yaml, got %q", got)
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("response is not valid YAML: %v", err)
	}
	if parsed["asyncapi"] != "3.0.0" {
		t.Errorf("expected asyncapi 3.0.0, got %v", parsed["asyncapi"])
	}
}

func TestDocumentJSON(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := httptest.NewRecorder()

	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/asyncapi.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var parsed struct {
		Channels map[string]struct {
			Address string `json:"address"`
		} `json:"channels"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if _, ok := parsed.Channels["pings"]; !ok {
		t.Error("expected pings channel in served document")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewWithRegistry(reg)
	h := newTestHandler(t, collector)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/asyncapi.yaml", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Request metrics were recorded against the custom registry.
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	var found bool
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), "asyncdoc_requests_total") {
			found = true
		}
	}
	if !found {
		t.Error("expected asyncdoc_requests_total metric after a request")
	}
}

func TestMetricsDisabled(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := httptest.NewRecorder()

	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 with metrics disabled, got %d", rec.Code)
	}
}
