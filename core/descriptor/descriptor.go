// Package descriptor classifies structural payload types into type
// descriptors: a name, a structural kind, an ordered field list, type
// arguments for containers, and nullability. Descriptors are the input to
// schema generation and can be backed by Go reflection (this package) or by
// declarative message definitions (core/schema).
package descriptor

// Kind is the structural classification of a type.
type Kind int

const (
	// KindObject is a user-defined structural type with named fields.
	KindObject Kind = iota

	// KindSequence is an ordered collection with one type argument.
	KindSequence

	// KindMap is an associative collection with key and value arguments.
	KindMap

	// KindString covers textual and byte-string types.
	KindString

	// KindBool is a boolean.
	KindBool

	// KindInteger covers the integer family.
	KindInteger

	// KindNumber covers the floating-point and decimal family.
	KindNumber

	// KindDate is a calendar date without time-of-day.
	KindDate

	// KindDateTime is an instant in time.
	KindDateTime

	// KindUUID is a universally unique identifier.
	KindUUID

	// KindUnknown marks a type whose structure cannot be determined.
	// Fields of unknown types are omitted from generated schemas.
	KindUnknown
)

// String returns the kind name for logging and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "map"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindDateTime:
		return "date-time"
	case KindUUID:
		return "uuid"
	default:
		return "unknown"
	}
}

// Type describes a structural type.
type Type interface {
	// Name returns the bare type name. Empty for anonymous types.
	Name() string

	// Kind returns the structural classification.
	Kind() Kind

	// Nullable reports whether values of this type may be null.
	Nullable() bool

	// Fields returns the ordered field list. Empty unless Kind is KindObject.
	Fields() []Field

	// Args returns the type arguments: one item type for sequences,
	// key and value types for maps, nil otherwise.
	Args() []Type
}

// Field is a named field of an object type.
type Field struct {
	Name string
	Type Type
}
