package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/artpar/asyncdoc/core/schema"
)

const orderYAML = `
message: OrderCreated
description: Emitted when an order is placed.
fields:
  id:         { type: uuid }
  amount:     { type: number }
  name:       string
  birth_date: { type: date, nullable: true }
  tags:       { type: array, items: string }
  attributes: { type: map, key: string, value: string }
  customer:   { type: ref, to: Customer }
`

func TestParse(t *testing.T) {
	defs, err := schema.Parse([]byte(orderYAML))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}

	def := defs[0]
	if def.Name != "OrderCreated" {
		t.Errorf("expected name OrderCreated, got %q", def.Name)
	}
	if len(def.Fields) != 7 {
		t.Errorf("expected 7 fields, got %d", len(def.Fields))
	}

	if got := def.Fields["name"].Type; got != schema.FieldTypeString {
		t.Errorf("scalar shorthand should parse as string type, got %q", got)
	}
	if !def.Fields["birth_date"].Nullable {
		t.Error("expected birth_date to be nullable")
	}
	if items := def.Fields["tags"].Items; items == nil || items.Type != schema.FieldTypeString {
		t.Errorf("expected string items for tags, got %+v", items)
	}
	if got := def.Fields["customer"].To; got != "Customer" {
		t.Errorf("expected ref target Customer, got %q", got)
	}
}

func TestParseMultiDocument(t *testing.T) {
	input := `
message: A
fields:
  x: int
---
message: B
fields:
  y: string
`
	defs, err := schema.Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if defs[0].Name != "A" || defs[1].Name != "B" {
		t.Errorf("expected A then B, got %q and %q", defs[0].Name, defs[1].Name)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"missing name", "fields:\n  x: int\n"},
		{"no fields", "message: Empty\n"},
		{"unknown type", "message: Bad\nfields:\n  x: widget\n"},
		{"array without items", "message: Bad\nfields:\n  x: { type: array }\n"},
		{"map without value", "message: Bad\nfields:\n  x: { type: map, key: string }\n"},
		{"ref without target", "message: Bad\nfields:\n  x: { type: ref }\n"},
		{"bad field name", "message: Bad\nfields:\n  2x: int\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := schema.Parse([]byte(tc.input)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "order.yaml"), orderYAML)
	writeFile(t, filepath.Join(dir, "nested", "customer.yml"), `
message: Customer
fields:
  id: uuid
`)
	writeFile(t, filepath.Join(dir, "readme.txt"), "not yaml")

	defs, err := schema.ParseDir(dir)
	if err != nil {
		t.Fatalf("ParseDir returned error: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := schema.ParseFile("/does/not/exist.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}
