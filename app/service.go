// Package app wires configuration, message definitions, and the document
// generator together. All I/O (definition files) happens here; generation
// itself is pure.
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/artpar/asyncdoc/adapters/metrics"
	"github.com/artpar/asyncdoc/config"
	"github.com/artpar/asyncdoc/core/asyncapi"
	"github.com/artpar/asyncdoc/core/schema"
)

// BuildLibrary collects message definitions from the config: inline
// definitions first, then everything under messages_dir.
func BuildLibrary(cfg *config.Config) (*schema.Library, error) {
	lib := schema.NewLibrary()

	if err := lib.AddAll(cfg.Messages); err != nil {
		return nil, fmt.Errorf("inline messages: %w", err)
	}

	if cfg.MessagesDir != "" {
		defs, err := schema.ParseDir(cfg.MessagesDir)
		if err != nil {
			return nil, fmt.Errorf("messages dir: %w", err)
		}
		if err := lib.AddAll(defs); err != nil {
			return nil, fmt.Errorf("messages dir: %w", err)
		}
	}

	return lib, nil
}

// BuildGenerator resolves the config's channel mappings against the message
// library and returns a configured generator. Channels referencing
// unregistered messages are a configuration error.
func BuildGenerator(cfg *config.Config, logger zerolog.Logger) (*asyncapi.Generator, error) {
	lib, err := BuildLibrary(cfg)
	if err != nil {
		return nil, err
	}

	senders, err := resolveChannels(lib, cfg.Channels.Senders, "senders")
	if err != nil {
		return nil, err
	}
	receivers, err := resolveChannels(lib, cfg.Channels.Receivers, "receivers")
	if err != nil {
		return nil, err
	}

	g := asyncapi.NewGenerator(senders, receivers)
	g.SetLogger(logger)

	if cfg.Info.Title != "" || cfg.Info.Version != "" {
		info := asyncapi.Info{
			Title:       cfg.Info.Title,
			Version:     cfg.Info.Version,
			Description: cfg.Info.Description,
		}
		if info.Title == "" {
			info.Title = "Asyncdoc API"
		}
		if info.Version == "" {
			info.Version = "1.0.0"
		}
		g.SetInfo(info)
	}

	return g, nil
}

func resolveChannels(lib *schema.Library, channels map[string]string, section string) (map[string]any, error) {
	resolved := make(map[string]any, len(channels))
	for channel, message := range channels {
		d, ok := lib.Descriptor(message)
		if !ok {
			return nil, fmt.Errorf("channels.%s: channel %q references unknown message %q", section, channel, message)
		}
		resolved[channel] = d
	}
	return resolved, nil
}

// DocumentService holds the current generated document for the serve path
// and regenerates it when the configuration changes.
type DocumentService struct {
	mu        sync.RWMutex
	doc       *asyncapi.Document
	diags     []asyncapi.Diagnostic
	logger    zerolog.Logger
	collector *metrics.Collector
}

// NewDocumentService generates the initial document from cfg. The collector
// may be nil when metrics are disabled.
func NewDocumentService(cfg *config.Config, logger zerolog.Logger, collector *metrics.Collector) (*DocumentService, error) {
	s := &DocumentService{logger: logger, collector: collector}
	if err := s.Regenerate(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate rebuilds the document from cfg, keeping the previous document
// on failure.
func (s *DocumentService) Regenerate(cfg *config.Config) error {
	g, err := BuildGenerator(cfg, s.logger)
	if err != nil {
		if s.collector != nil {
			s.collector.ConfigReloadErrors.Inc()
		}
		return err
	}

	start := time.Now()
	doc := g.Generate()
	elapsed := time.Since(start)

	diags := g.Diagnostics()
	for _, d := range diags {
		s.logger.Warn().
			Str("kind", d.Kind).
			Str("subject", d.Subject).
			Msg(d.Detail)
	}

	if s.collector != nil {
		s.collector.DocumentsGenerated.Inc()
		s.collector.GenerationDuration.Observe(elapsed.Seconds())
		s.collector.SchemasGenerated.Set(float64(len(doc.Components.Schemas)))
		for _, d := range diags {
			s.collector.DiagnosticsTotal.WithLabelValues(d.Kind).Inc()
		}
	}

	s.mu.Lock()
	s.doc = doc
	s.diags = diags
	s.mu.Unlock()

	s.logger.Info().
		Int("channels", len(doc.Channels)).
		Int("operations", len(doc.Operations)).
		Int("schemas", len(doc.Components.Schemas)).
		Dur("elapsed", elapsed).
		Msg("document generated")

	return nil
}

// Document returns the current document.
func (s *DocumentService) Document() *asyncapi.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Diagnostics returns the diagnostics from the last successful generation.
func (s *DocumentService) Diagnostics() []asyncapi.Diagnostic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.diags
}
