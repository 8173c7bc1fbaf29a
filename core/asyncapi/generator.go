package asyncapi

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/artpar/asyncdoc/core/descriptor"
)

// Generator generates AsyncAPI documents from sender and receiver channel
// mappings. Each Generate call builds a fresh schema registry; a Generator
// is not safe for concurrent use, but independent Generators are.
type Generator struct {
	senders   map[string]descriptor.Type
	receivers map[string]descriptor.Type
	info      Info
	logger    zerolog.Logger
	diags     []Diagnostic
}

// NewGenerator creates a generator from channel-name to payload mappings.
// Values may be sample payload values, reflect.Types, or pre-built
// descriptors; nil maps are treated as empty.
func NewGenerator(senders, receivers map[string]any) *Generator {
	g := &Generator{
		senders:   make(map[string]descriptor.Type, len(senders)),
		receivers: make(map[string]descriptor.Type, len(receivers)),
		info: Info{
			Title:       "Asyncdoc API",
			Version:     "1.0.0",
			Description: "Auto-generated AsyncAPI documentation from message payload types",
		},
		logger: zerolog.Nop(),
	}

	for channel, v := range senders {
		g.senders[channel] = descriptor.Of(v)
	}
	for channel, v := range receivers {
		g.receivers[channel] = descriptor.Of(v)
	}

	return g
}

// SetInfo overrides the document info block.
func (g *Generator) SetInfo(info Info) {
	g.info = info
}

// SetLogger sets the logger used for diagnostic events.
func (g *Generator) SetLogger(logger zerolog.Logger) {
	g.logger = logger
}

// Generate builds the document: one channel and one operation per mapping,
// with every referenced payload type expanded into components.schemas.
func (g *Generator) Generate() *Document {
	doc := &Document{
		AsyncAPI:   Version,
		Info:       g.info,
		Channels:   make(map[string]Channel),
		Operations: make(map[string]Operation),
	}

	b := &builder{reg: NewRegistry(), logger: g.logger}

	// Senders first, receivers second: a channel present in both maps keeps
	// the receiver's entry.
	g.addAll(doc, b, g.senders, ActionSend)
	g.addAll(doc, b, g.receivers, ActionReceive)

	doc.Components.Schemas = b.reg.Schemas()
	g.diags = b.diags
	return doc
}

// Diagnostics returns the degradations recorded by the last Generate call.
func (g *Generator) Diagnostics() []Diagnostic {
	return g.diags
}

func (g *Generator) addAll(doc *Document, b *builder, channels map[string]descriptor.Type, action string) {
	// Sorted iteration keeps repeated generations byte-identical.
	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, channel := range names {
		g.add(doc, b, channel, channels[channel], action)
	}
}

func (g *Generator) add(doc *Document, b *builder, channel string, t descriptor.Type, action string) {
	typeName := t.Name()
	if typeName == "" {
		b.report(DiagUnresolvedField, channel, "payload type has no name; channel omitted")
		return
	}

	if existing, ok := doc.Channels[channel]; ok {
		if _, same := existing.Messages[typeName]; !same {
			b.report(DiagNameCollision, channel,
				fmt.Sprintf("channel bound to a different payload type; %s replaces the earlier entry", typeName))
		}
	}

	doc.Channels[channel] = Channel{
		Description: fmt.Sprintf("Channel for %s messages", typeName),
		Address:     channel,
		Messages: map[string]Message{
			typeName: {
				Name:    typeName,
				Payload: SchemaRef(typeName),
			},
		},
	}

	opName := operationName(action, typeName)
	if _, ok := doc.Operations[opName]; ok {
		b.report(DiagNameCollision, opName, "derived operation name already in use; last write wins")
	}
	doc.Operations[opName] = Operation{
		Action:  action,
		Channel: ChannelRef(channel),
	}

	b.expand(t)
}

// operationName derives produce<Type> for senders and consume<Type> for
// receivers.
func operationName(action, typeName string) string {
	if action == ActionSend {
		return "produce" + typeName
	}
	return "consume" + typeName
}

// GenerateDocument renders the AsyncAPI document for the given sender and
// receiver mappings as block-style YAML. Absent mappings are treated as
// empty; generation itself never fails, only serialization can.
func GenerateDocument(senders, receivers map[string]any) (string, error) {
	doc := NewGenerator(senders, receivers).Generate()
	out, err := doc.ToYAML()
	if err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return string(out), nil
}
