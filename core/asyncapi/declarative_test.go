package asyncapi_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/artpar/asyncdoc/core/asyncapi"
	"github.com/artpar/asyncdoc/core/schema"
)

// Event declared both as a Go struct and as a YAML definition; the two
// inputs must generate identical documents.
type Event struct {
	ID    uuid.UUID `json:"id"`
	Topic string    `json:"topic"`
	Count int       `json:"count"`
}

const eventYAML = `
message: Event
fields:
  id:    uuid
  topic: string
  count: int
`

func TestDeclarativeMatchesReflective(t *testing.T) {
	lib := schema.NewLibrary()
	defs, err := schema.Parse([]byte(eventYAML))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if err := lib.AddAll(defs); err != nil {
		t.Fatalf("AddAll returned error: %v", err)
	}

	declared, ok := lib.Descriptor("Event")
	if !ok {
		t.Fatal("expected descriptor for Event")
	}

	fromDecl, err := asyncapi.GenerateDocument(map[string]any{"events": declared}, nil)
	if err != nil {
		t.Fatalf("GenerateDocument (declarative) returned error: %v", err)
	}
	fromReflect, err := asyncapi.GenerateDocument(map[string]any{"events": Event{}}, nil)
	if err != nil {
		t.Fatalf("GenerateDocument (reflective) returned error: %v", err)
	}

	if fromDecl != fromReflect {
		t.Errorf("declarative and reflective documents differ:\n--- declarative ---\n%s\n--- reflective ---\n%s", fromDecl, fromReflect)
	}
}

func TestDeclarativeCyclicRefs(t *testing.T) {
	lib := schema.NewLibrary()
	defs, err := schema.Parse([]byte(`
message: Parent
fields:
  name:     string
  children: { type: array, items: { type: ref, to: Child } }
---
message: Child
fields:
  name:   string
  parent: { type: ref, to: Parent }
`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if err := lib.AddAll(defs); err != nil {
		t.Fatalf("AddAll returned error: %v", err)
	}

	parent, _ := lib.Descriptor("Parent")
	doc := asyncapi.NewGenerator(map[string]any{"tree": parent}, nil).Generate()

	if len(doc.Components.Schemas) != 2 {
		t.Fatalf("expected 2 schemas, got %d", len(doc.Components.Schemas))
	}

	children := doc.Components.Schemas["Parent"].Properties["children"]
	if children.Items == nil || children.Items.Ref != "#/components/schemas/Child" {
		t.Errorf("expected array items referencing Child, got %+v", children.Items)
	}
	back := doc.Components.Schemas["Child"].Properties["parent"]
	if back == nil || back.Ref != "#/components/schemas/Parent" {
		t.Errorf("expected back reference to Parent, got %+v", back)
	}
}
