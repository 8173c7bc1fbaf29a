package asyncapi

import (
	"github.com/rs/zerolog"

	"github.com/artpar/asyncdoc/core/descriptor"
)

// Schema is a structural description of a type: an object with properties,
// an array with an item schema, a primitive, or a reference to another
// component schema. Type holds either a bare type string or a
// ["null", <type>] pair for nullable primitives.
type Schema struct {
	Type       any                `yaml:"type,omitempty" json:"type,omitempty"`
	Format     string             `yaml:"format,omitempty" json:"format,omitempty"`
	Properties map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items      *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	Ref        string             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
}

// Schema type names.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Schema format hints.
const (
	FormatDate     = "date"
	FormatDateTime = "date-time"
	FormatUUID     = "uuid"
)

// Registry collects component schemas keyed by type name. At most one entry
// exists per name; entries are first-write-wins. During expansion the
// registry doubles as the recursion memo: a type's slot is reserved before
// its fields are walked, so self-referential types resolve to a reference
// instead of recursing without bound.
type Registry struct {
	entries map[string]*Schema
}

// NewRegistry creates an empty schema registry. Registries are per
// generation call and must not be shared across concurrent generations.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Schema)}
}

// Schemas returns the collected schemas keyed by type name.
func (r *Registry) Schemas() map[string]*Schema {
	return r.entries
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	return len(r.entries)
}

// builder walks type descriptors and writes normalized schema entries into
// the registry, recording diagnostics for anything it has to drop.
type builder struct {
	reg    *Registry
	logger zerolog.Logger
	diags  []Diagnostic
}

// expand writes the schema for t (and every type reachable from it) into
// the registry. Already-registered names and non-object leaves are never
// expanded as objects.
func (b *builder) expand(t descriptor.Type) {
	name := t.Name()
	if name == "" {
		b.report(DiagUnresolvedField, "<anonymous>", "type has no name and cannot be registered")
		return
	}
	if _, ok := b.reg.entries[name]; ok {
		return
	}

	if t.Kind() != descriptor.KindObject {
		// Opaque leaf: register its primitive mapping, never its fields.
		if s := b.resolveField(t); s != nil {
			b.reg.entries[name] = s
		} else {
			b.report(DiagUnresolvedField, name, "type structure could not be determined")
		}
		return
	}

	// Reserve the slot before walking fields. A field of type t (direct or
	// transitive) then hits the guard above and resolves to a $ref.
	entry := &Schema{Type: TypeObject, Properties: make(map[string]*Schema)}
	b.reg.entries[name] = entry

	for _, field := range t.Fields() {
		s := b.resolveField(field.Type)
		if s == nil {
			b.report(DiagUnresolvedField, name+"."+field.Name, "field type could not be resolved; field omitted")
			continue
		}
		entry.Properties[field.Name] = s
	}
}

// resolveField maps a field's type to its schema, expanding nested object
// types into the registry as a side effect. A nil result means the field
// cannot be represented and should be omitted.
func (b *builder) resolveField(t descriptor.Type) *Schema {
	switch t.Kind() {
	case descriptor.KindSequence:
		return &Schema{Type: TypeArray, Items: b.resolveArg(t.Args(), 0)}

	case descriptor.KindMap:
		args := t.Args()
		return &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"key":   b.resolveArg(args, 0),
				"value": b.resolveArg(args, 1),
			},
		}

	case descriptor.KindObject:
		name := t.Name()
		if name == "" {
			return nil
		}
		b.expand(t)
		// References never carry nullability; a nullable nested object
		// loses the null marker at the reference site.
		return &Schema{Ref: SchemaRefPrefix + name}

	case descriptor.KindUnknown:
		return nil

	default:
		return b.leafSchema(t.Kind(), t.Nullable())
	}
}

// resolveArg resolves a container type argument, degrading to a generic
// object placeholder when the argument is missing or unresolvable.
func (b *builder) resolveArg(args []descriptor.Type, i int) *Schema {
	if i >= len(args) {
		return &Schema{Type: TypeObject}
	}
	if s := b.resolveField(args[i]); s != nil {
		return s
	}
	return &Schema{Type: TypeObject}
}

// leafSchema returns the primitive mapping for a non-object kind, or nil if
// the kind has no mapping.
func (b *builder) leafSchema(kind descriptor.Kind, nullable bool) *Schema {
	switch kind {
	case descriptor.KindDate:
		return &Schema{Type: schemaType(TypeString, nullable), Format: FormatDate}
	case descriptor.KindDateTime:
		return &Schema{Type: schemaType(TypeString, nullable), Format: FormatDateTime}
	case descriptor.KindUUID:
		return &Schema{Type: schemaType(TypeString, nullable), Format: FormatUUID}
	case descriptor.KindBool:
		return &Schema{Type: schemaType(TypeBoolean, nullable)}
	case descriptor.KindString:
		return &Schema{Type: schemaType(TypeString, nullable)}
	case descriptor.KindInteger:
		return &Schema{Type: schemaType(TypeInteger, nullable)}
	case descriptor.KindNumber:
		return &Schema{Type: schemaType(TypeNumber, nullable)}
	default:
		return nil
	}
}

// schemaType returns the type value for a primitive: the bare type name, or
// the ["null", <type>] pair when the field is nullable.
func schemaType(name string, nullable bool) any {
	if nullable {
		return []string{"null", name}
	}
	return name
}

func (b *builder) report(kind, subject, detail string) {
	b.diags = append(b.diags, Diagnostic{Kind: kind, Subject: subject, Detail: detail})
	b.logger.Debug().
		Str("kind", kind).
		Str("subject", subject).
		Msg(detail)
}
