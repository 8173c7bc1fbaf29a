// Package asyncapi generates AsyncAPI 3.0 documents from message payload
// type descriptors. It auto-generates channels, operations, and component
// schemas from the sender/receiver channel mappings.
package asyncapi

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Version is the AsyncAPI specification version emitted in documents.
const Version = "3.0.0"

// Document represents an AsyncAPI 3.0 document.
type Document struct {
	AsyncAPI   string               `yaml:"asyncapi" json:"asyncapi"`
	Info       Info                 `yaml:"info" json:"info"`
	Channels   map[string]Channel   `yaml:"channels" json:"channels"`
	Operations map[string]Operation `yaml:"operations" json:"operations"`
	Components Components           `yaml:"components" json:"components"`
}

// Info provides API metadata.
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Channel is a named addressable topic through which messages flow.
type Channel struct {
	Description string             `yaml:"description" json:"description"`
	Address     string             `yaml:"address" json:"address"`
	Messages    map[string]Message `yaml:"messages" json:"messages"`
}

// Message binds a payload schema to a channel.
type Message struct {
	Name    string `yaml:"name" json:"name"`
	Payload Ref    `yaml:"payload" json:"payload"`
}

// Operation is a send or receive action bound to a channel.
type Operation struct {
	Action  string `yaml:"action" json:"action"`
	Channel Ref    `yaml:"channel" json:"channel"`
}

// Ref is a JSON reference to another document node.
type Ref struct {
	Ref string `yaml:"$ref" json:"$ref"`
}

// Components contains reusable schemas.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas" json:"schemas"`
}

// Actions for operations.
const (
	ActionSend    = "send"
	ActionReceive = "receive"
)

// Reference path prefixes.
const (
	SchemaRefPrefix  = "#/components/schemas/"
	ChannelRefPrefix = "#/channels/"
)

// SchemaRef returns the reference to a named component schema.
func SchemaRef(name string) Ref {
	return Ref{Ref: SchemaRefPrefix + name}
}

// ChannelRef returns the reference to a named channel.
func ChannelRef(name string) Ref {
	return Ref{Ref: ChannelRefPrefix + name}
}

// ToYAML renders the document in block style with 2-space indentation.
func (d *Document) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(d); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSON converts the document to indented JSON.
func (d *Document) ToJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// ToJSONCompact converts the document to compact JSON.
func (d *Document) ToJSONCompact() ([]byte, error) {
	return json.Marshal(d)
}
