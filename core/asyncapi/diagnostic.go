package asyncapi

import "fmt"

// Diagnostic kinds.
const (
	// DiagUnresolvedField marks a field whose type metadata could not be
	// resolved. The field is omitted from the generated schema.
	DiagUnresolvedField = "unresolved_field"

	// DiagNameCollision marks two distinct inputs competing for the same
	// derived key. The last write wins in the generated document.
	DiagNameCollision = "name_collision"
)

// Diagnostic records a degradation applied during generation. Generation
// never fails; anything it cannot represent is dropped or overwritten and
// reported here.
type Diagnostic struct {
	Kind    string
	Subject string
	Detail  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Kind, d.Subject, d.Detail)
}
