package schema

import (
	"fmt"
	"strings"
)

// SchemaError represents an invalid schema definition
// (mismatched column/name counts, duplicate or empty names).
type SchemaError struct {
	Shape    string // shape name or hint (empty if not yet assigned)
	Name     string // offending column name (empty if count-level problem)
	Reason   string // human-readable explanation
	Count    int    // actual count for count mismatches (-1 if not applicable)
	Expected int    // expected count for count mismatches (-1 if not applicable)
}

func (e *SchemaError) Error() string {
	var parts []string

	parts = append(parts, "schema error")

	if e.Shape != "" {
		parts = append(parts, fmt.Sprintf("in shape %q", e.Shape))
	}

	if e.Name != "" {
		parts = append(parts, fmt.Sprintf("column %q", e.Name))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Expected >= 0 && e.Count >= 0 {
		parts = append(parts, fmt.Sprintf("got %d, expected %d", e.Count, e.Expected))
	}

	return strings.Join(parts, " - ")
}

func NewCountMismatch(shape string, count, expected int) *SchemaError {
	return &SchemaError{
		Shape:    shape,
		Reason:   "column/name count mismatch",
		Count:    count,
		Expected: expected,
	}
}

func NewDuplicateName(shape, name string) *SchemaError {
	return &SchemaError{
		Shape:    shape,
		Name:     name,
		Reason:   "duplicate column name",
		Count:    -1,
		Expected: -1,
	}
}

func NewEmptyName(shape string, position int) *SchemaError {
	return &SchemaError{
		Shape:    shape,
		Reason:   fmt.Sprintf("empty column name at position %d", position),
		Count:    -1,
		Expected: -1,
	}
}
