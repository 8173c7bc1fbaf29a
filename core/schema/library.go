package schema

import (
	"fmt"
	"sort"

	"github.com/artpar/asyncdoc/core/descriptor"
)

// Library holds registered message definitions and exposes them as type
// descriptors. Refs between definitions resolve lazily through the library,
// so mutually referential messages register in any order.
type Library struct {
	defs map[string]Definition
}

// NewLibrary creates an empty definition library.
func NewLibrary() *Library {
	return &Library{defs: make(map[string]Definition)}
}

// Add validates and registers a definition. Returns an error if the name is
// already taken.
func (l *Library) Add(def Definition) error {
	if err := Validate(def); err != nil {
		return err
	}

	if _, exists := l.defs[def.Name]; exists {
		return fmt.Errorf("message %q already registered", def.Name)
	}

	l.defs[def.Name] = def
	return nil
}

// AddAll registers a batch of definitions, stopping at the first error.
func (l *Library) AddAll(defs []Definition) error {
	for _, def := range defs {
		if err := l.Add(def); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the definition registered under name.
func (l *Library) Get(name string) (Definition, bool) {
	def, ok := l.defs[name]
	return def, ok
}

// Names returns the registered message names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptor returns the type descriptor for a registered message.
func (l *Library) Descriptor(name string) (descriptor.Type, bool) {
	if _, ok := l.defs[name]; !ok {
		return nil, false
	}
	return messageType{lib: l, name: name}, true
}

// messageType exposes a registered definition as an object descriptor. The
// definition is looked up at call time so refs added later still resolve.
type messageType struct {
	lib  *Library
	name string
}

func (m messageType) Name() string { return m.name }

func (m messageType) Kind() descriptor.Kind { return descriptor.KindObject }

func (m messageType) Nullable() bool { return false }

func (m messageType) Args() []descriptor.Type { return nil }

func (m messageType) Fields() []descriptor.Field {
	def, ok := m.lib.defs[m.name]
	if !ok {
		return nil
	}

	// Definitions hold fields in a map; sorted order stands in for
	// declaration order and keeps generation deterministic.
	names := make([]string, 0, len(def.Fields))
	for name := range def.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]descriptor.Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, descriptor.Field{
			Name: name,
			Type: fieldType{lib: m.lib, field: def.Fields[name]},
		})
	}
	return fields
}

// fieldType exposes a declared field's type as a descriptor.
type fieldType struct {
	lib   *Library
	field Field
}

func (f fieldType) Name() string {
	if f.field.Type == FieldTypeRef {
		return f.field.To
	}
	return string(f.field.Type)
}

func (f fieldType) Nullable() bool {
	return f.field.Nullable
}

func (f fieldType) Kind() descriptor.Kind {
	switch f.field.Type {
	case FieldTypeString, FieldTypeBytes:
		return descriptor.KindString
	case FieldTypeBool:
		return descriptor.KindBool
	case FieldTypeInt, FieldTypeLong:
		return descriptor.KindInteger
	case FieldTypeFloat, FieldTypeNumber, FieldTypeDecimal:
		return descriptor.KindNumber
	case FieldTypeUUID:
		return descriptor.KindUUID
	case FieldTypeDate:
		return descriptor.KindDate
	case FieldTypeTimestamp:
		return descriptor.KindDateTime
	case FieldTypeArray:
		return descriptor.KindSequence
	case FieldTypeMap:
		return descriptor.KindMap
	case FieldTypeRef:
		if _, ok := f.lib.defs[f.field.To]; ok {
			return descriptor.KindObject
		}
		return descriptor.KindUnknown
	default:
		return descriptor.KindUnknown
	}
}

func (f fieldType) Args() []descriptor.Type {
	switch f.field.Type {
	case FieldTypeArray:
		if f.field.Items == nil {
			return nil
		}
		return []descriptor.Type{fieldType{lib: f.lib, field: *f.field.Items}}
	case FieldTypeMap:
		args := make([]descriptor.Type, 2)
		for i, arg := range []*Field{f.field.Key, f.field.Value} {
			if arg != nil {
				args[i] = fieldType{lib: f.lib, field: *arg}
			} else {
				args[i] = fieldType{lib: f.lib}
			}
		}
		return args
	default:
		return nil
	}
}

func (f fieldType) Fields() []descriptor.Field {
	if f.field.Type != FieldTypeRef {
		return nil
	}
	return messageType{lib: f.lib, name: f.field.To}.Fields()
}
