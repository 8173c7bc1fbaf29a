package descriptor

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artpar/asyncdoc/pkg/date"
)

var (
	timeType = reflect.TypeOf(time.Time{})
	dateType = reflect.TypeOf(date.Date{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

// Of returns the descriptor for a sample value. Values that already are
// descriptors or reflect.Types pass through, so callers can mix sample
// payloads with pre-built descriptors.
func Of(v any) Type {
	switch t := v.(type) {
	case Type:
		return t
	case reflect.Type:
		return ForType(t)
	default:
		return ForType(reflect.TypeOf(v))
	}
}

// ForType returns the descriptor for a reflect.Type.
func ForType(t reflect.Type) Type {
	return reflectType{rt: t}
}

// reflectType is the reflection-backed Type implementation. A pointer type
// is presented as its element type with Nullable set.
type reflectType struct {
	rt       reflect.Type
	nullable bool
}

func (r reflectType) base() reflect.Type {
	t := r.rt
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func (r reflectType) Name() string {
	t := r.base()
	if t == nil {
		return ""
	}
	return t.Name()
}

func (r reflectType) Nullable() bool {
	return r.nullable || (r.rt != nil && r.rt.Kind() == reflect.Pointer)
}

func (r reflectType) Kind() Kind {
	t := r.base()
	if t == nil {
		return KindUnknown
	}

	// Well-known named types first; their reflect kind is struct or array.
	switch t {
	case timeType:
		return KindDateTime
	case dateType:
		return KindDate
	case uuidType:
		return KindUUID
	}

	switch t.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		// Byte strings are textual, not sequences.
		if t.Elem().Kind() == reflect.Uint8 {
			return KindString
		}
		return KindSequence
	case reflect.Map:
		return KindMap
	case reflect.Struct:
		if t.Name() == "" {
			return KindUnknown
		}
		return KindObject
	default:
		// Interfaces, channels, functions: no structure to describe.
		return KindUnknown
	}
}

func (r reflectType) Args() []Type {
	t := r.base()
	if t == nil {
		return nil
	}

	switch r.Kind() {
	case KindSequence:
		return []Type{reflectType{rt: t.Elem()}}
	case KindMap:
		return []Type{
			reflectType{rt: t.Key()},
			reflectType{rt: t.Elem()},
		}
	default:
		return nil
	}
}

func (r reflectType) Fields() []Field {
	t := r.base()
	if t == nil || r.Kind() != KindObject {
		return nil
	}

	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}

		name := fieldName(sf)
		if name == "" {
			continue
		}

		fields = append(fields, Field{
			Name: name,
			Type: reflectType{rt: sf.Type},
		})
	}
	return fields
}

// fieldName returns the wire name of a struct field: the json tag name when
// present, otherwise the Go field name. Fields tagged "-" are excluded.
func fieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}
