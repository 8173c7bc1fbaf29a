package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/artpar/asyncdoc/app"
	"github.com/artpar/asyncdoc/config"
	"github.com/artpar/asyncdoc/core/schema"
)

func testConfig() *config.Config {
	return &config.Config{
		Messages: []schema.Definition{
			{
				Name: "OrderCreated",
				Fields: map[string]schema.Field{
					"id":     {Type: schema.FieldTypeUUID},
					"amount": {Type: schema.FieldTypeNumber},
				},
			},
		},
		Channels: config.ChannelsConfig{
			Senders:   map[string]string{"order_events": "OrderCreated"},
			Receivers: map[string]string{"order_commands": "OrderCreated"},
		},
	}
}

func TestBuildLibrary(t *testing.T) {
	lib, err := app.BuildLibrary(testConfig())
	if err != nil {
		t.Fatalf("BuildLibrary returned error: %v", err)
	}

	if _, ok := lib.Get("OrderCreated"); !ok {
		t.Error("expected OrderCreated in library")
	}
}

func TestBuildLibraryWithDir(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "customer.yaml"), []byte(`
message: Customer
fields:
  name: string
`), 0o644)
	if err != nil {
		t.Fatalf("write definition: %v", err)
	}

	cfg := testConfig()
	cfg.MessagesDir = dir

	lib, err := app.BuildLibrary(cfg)
	if err != nil {
		t.Fatalf("BuildLibrary returned error: %v", err)
	}

	for _, name := range []string{"OrderCreated", "Customer"} {
		if _, ok := lib.Get(name); !ok {
			t.Errorf("expected %s in library", name)
		}
	}
}

func TestBuildGenerator(t *testing.T) {
	g, err := app.BuildGenerator(testConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildGenerator returned error: %v", err)
	}

	doc := g.Generate()
	if len(doc.Channels) != 2 {
		t.Errorf("expected 2 channels, got %d", len(doc.Channels))
	}
	if _, ok := doc.Operations["produceOrderCreated"]; !ok {
		t.Error("expected produceOrderCreated operation")
	}
	if _, ok := doc.Operations["consumeOrderCreated"]; !ok {
		t.Error("expected consumeOrderCreated operation")
	}
}

func TestBuildGeneratorInfoOverride(t *testing.T) {
	cfg := testConfig()
	cfg.Info = config.InfoConfig{Title: "Orders API", Version: "2.0.0"}

	g, err := app.BuildGenerator(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildGenerator returned error: %v", err)
	}

	doc := g.Generate()
	if doc.Info.Title != "Orders API" || doc.Info.Version != "2.0.0" {
		t.Errorf("expected overridden info, got %+v", doc.Info)
	}
}

func TestBuildGeneratorUnknownMessage(t *testing.T) {
	cfg := testConfig()
	cfg.Channels.Senders["bad_channel"] = "Missing"

	if _, err := app.BuildGenerator(cfg, zerolog.Nop()); err == nil {
		t.Error("expected error for unknown message reference")
	}
}

func TestDocumentServiceRegenerate(t *testing.T) {
	svc, err := app.NewDocumentService(testConfig(), zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("NewDocumentService returned error: %v", err)
	}

	if svc.Document() == nil {
		t.Fatal("expected initial document")
	}

	// Regeneration with a broken config keeps the old document.
	bad := testConfig()
	bad.Channels.Senders["x"] = "Missing"
	if err := svc.Regenerate(bad); err == nil {
		t.Fatal("expected error for broken config")
	}
	if svc.Document() == nil {
		t.Error("previous document should survive failed regeneration")
	}

	// A valid config refreshes the document.
	updated := testConfig()
	updated.Channels.Senders["more_events"] = "OrderCreated"
	if err := svc.Regenerate(updated); err != nil {
		t.Fatalf("Regenerate returned error: %v", err)
	}
	if len(svc.Document().Channels) != 3 {
		t.Errorf("expected 3 channels after regeneration, got %d", len(svc.Document().Channels))
	}
}
