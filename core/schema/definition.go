package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition declares one message payload type: a name and its fields.
type Definition struct {
	// Name is the message type name, used as the schema key.
	Name string `yaml:"message"`

	// Description is optional human-readable documentation.
	Description string `yaml:"description,omitempty"`

	// Fields maps field names to their declared types.
	Fields map[string]Field `yaml:"fields"`
}

// Field declares a field's type. For containers it carries the type
// arguments; for refs the target message name.
type Field struct {
	// Type is the field type. See FieldType constants.
	Type FieldType `yaml:"type"`

	// Nullable marks the field as accepting null values.
	Nullable bool `yaml:"nullable,omitempty"`

	// Items is the element type for array fields.
	Items *Field `yaml:"items,omitempty"`

	// Key is the key type for map fields.
	Key *Field `yaml:"key,omitempty"`

	// Value is the value type for map fields.
	Value *Field `yaml:"value,omitempty"`

	// To is the target message name for ref fields.
	To string `yaml:"to,omitempty"`
}

// UnmarshalYAML accepts either a full mapping or a bare type name, so
// `tags: { type: array, items: string }` and `name: string` both parse.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Type = FieldType(node.Value)
		return nil
	}

	type plain Field
	return node.Decode((*plain)(f))
}

// FieldType represents the declared type of a message field.
type FieldType string

const (
	FieldTypeString    FieldType = "string"
	FieldTypeBytes     FieldType = "bytes"
	FieldTypeBool      FieldType = "bool"
	FieldTypeInt       FieldType = "int"
	FieldTypeLong      FieldType = "long"
	FieldTypeFloat     FieldType = "float"
	FieldTypeNumber    FieldType = "number"
	FieldTypeDecimal   FieldType = "decimal"
	FieldTypeUUID      FieldType = "uuid"
	FieldTypeDate      FieldType = "date"
	FieldTypeTimestamp FieldType = "timestamp"
	FieldTypeArray     FieldType = "array"
	FieldTypeMap       FieldType = "map"
	FieldTypeRef       FieldType = "ref"
)

// isValidFieldType checks whether t is a known field type.
func isValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeString, FieldTypeBytes, FieldTypeBool, FieldTypeInt,
		FieldTypeLong, FieldTypeFloat, FieldTypeNumber, FieldTypeDecimal,
		FieldTypeUUID, FieldTypeDate, FieldTypeTimestamp, FieldTypeArray,
		FieldTypeMap, FieldTypeRef:
		return true
	default:
		return false
	}
}

// Validate validates a message definition.
func Validate(def Definition) error {
	var errs []string

	if def.Name == "" {
		errs = append(errs, "message name is required")
	} else if !isValidIdentifier(def.Name) {
		errs = append(errs, fmt.Sprintf("message name %q is not a valid identifier", def.Name))
	}

	if len(def.Fields) == 0 {
		errs = append(errs, "message must have at least one field")
	}

	for name, field := range def.Fields {
		if !isValidIdentifier(name) {
			errs = append(errs, fmt.Sprintf("field name %q is not a valid identifier", name))
		}
		if err := validateField(name, field); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// validateField validates a single field definition, including container
// type arguments.
func validateField(name string, field Field) error {
	if !isValidFieldType(field.Type) {
		return fmt.Errorf("field %q: unknown type %q", name, field.Type)
	}

	switch field.Type {
	case FieldTypeArray:
		if field.Items == nil {
			return fmt.Errorf("field %q: array type requires items", name)
		}
		if err := validateField(name+".items", *field.Items); err != nil {
			return err
		}
	case FieldTypeMap:
		if field.Key == nil || field.Value == nil {
			return fmt.Errorf("field %q: map type requires key and value", name)
		}
		if err := validateField(name+".key", *field.Key); err != nil {
			return err
		}
		if err := validateField(name+".value", *field.Value); err != nil {
			return err
		}
	case FieldTypeRef:
		if field.To == "" {
			return fmt.Errorf("field %q: ref type requires 'to' target", name)
		}
	}

	return nil
}

// isValidIdentifier checks if a string is a valid identifier.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, c := range s {
		if i == 0 {
			if !isLetter(c) && c != '_' {
				return false
			}
		} else {
			if !isLetter(c) && !isDigit(c) && c != '_' {
				return false
			}
		}
	}

	return true
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
