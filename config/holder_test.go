package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/artpar/asyncdoc/config"
)

func TestHolderGet(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	h, err := config.NewHolder(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHolder returned error: %v", err)
	}
	defer h.Stop()

	if got := h.Get().Info.Title; got != "Orders API" {
		t.Errorf("expected Orders API, got %q", got)
	}
}

func TestHolderReload(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	h, err := config.NewHolder(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHolder returned error: %v", err)
	}
	defer h.Stop()

	var notified bool
	h.OnChange(func(*config.Config) { notified = true })

	updated := sampleConfig + "\nmessages_dir: " + t.TempDir() + "\n"
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	if err := h.Reload(); err != nil {
		t.Fatalf("Reload returned error: %v", err)
	}
	if h.Get().MessagesDir == "" {
		t.Error("expected reloaded config to carry messages_dir")
	}
	if !notified {
		t.Error("expected OnChange callback to fire")
	}
}

func TestHolderReloadKeepsOldOnError(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	h, err := config.NewHolder(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHolder returned error: %v", err)
	}
	defer h.Stop()

	if err := os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	if err := h.Reload(); err == nil {
		t.Fatal("expected reload error for invalid config")
	}
	if got := h.Get().Info.Title; got != "Orders API" {
		t.Errorf("old config should survive failed reload, got title %q", got)
	}
}

func TestNewHolderMissingFile(t *testing.T) {
	if _, err := config.NewHolder(filepath.Join(t.TempDir(), "nope.yaml"), zerolog.Nop()); err == nil {
		t.Error("expected error for missing config file")
	}
}
