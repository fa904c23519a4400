package table

import (
	"fmt"
	"strings"
)

// IndexError represents an invalid row or column selector
// (unknown name, out-of-range position, mask length mismatch).
type IndexError struct {
	Kind     string // "row", "column" or "mask"
	Name     string // offending column name (empty for positional problems)
	Position int    // offending position (-1 if unknown)
	Length   int    // actual length/bound involved (-1 if not applicable)
	Expected int    // expected length/bound (-1 if not applicable)
	Reason   string // human-readable explanation
}

func (e *IndexError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("index error (%s)", e.Kind))

	if e.Name != "" {
		parts = append(parts, fmt.Sprintf("column %q", e.Name))
	}

	if e.Position >= 0 {
		parts = append(parts, fmt.Sprintf("position %d", e.Position))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Length >= 0 && e.Expected >= 0 {
		parts = append(parts, fmt.Sprintf("got %d, expected %d", e.Length, e.Expected))
	}

	return strings.Join(parts, " - ")
}

func NewUnknownColumn(name string) *IndexError {
	return &IndexError{
		Kind:     "column",
		Name:     name,
		Position: -1,
		Length:   -1,
		Expected: -1,
		Reason:   "unknown column name",
	}
}

func NewColumnOutOfRange(position, ncol int) *IndexError {
	return &IndexError{
		Kind:     "column",
		Position: position,
		Length:   -1,
		Expected: -1,
		Reason:   fmt.Sprintf("out of valid range [0..%d)", ncol),
	}
}

func NewRowOutOfRange(position, nrow int) *IndexError {
	return &IndexError{
		Kind:     "row",
		Position: position,
		Length:   -1,
		Expected: -1,
		Reason:   fmt.Sprintf("out of valid range [0..%d)", nrow),
	}
}

func NewMaskLength(length, nrow int) *IndexError {
	return &IndexError{
		Kind:     "mask",
		Position: -1,
		Length:   length,
		Expected: nrow,
		Reason:   "boolean mask length mismatch",
	}
}

func NewDuplicateSelector(name string) *IndexError {
	return &IndexError{
		Kind:     "column",
		Name:     name,
		Position: -1,
		Length:   -1,
		Expected: -1,
		Reason:   "duplicate column selector",
	}
}

// DimensionError represents a row-count mismatch when composing
// columns or tables of unequal length.
type DimensionError struct {
	Context string // operation where the mismatch occurred
	Left    int    // row count of the first operand
	Right   int    // row count of the second operand
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension error in %s - row counts %d and %d do not match", e.Context, e.Left, e.Right)
}

func NewRowCountMismatch(context string, left, right int) *DimensionError {
	return &DimensionError{Context: context, Left: left, Right: right}
}

// OrderError represents a key relation whose row count does not
// match the table being ordered.
type OrderError struct {
	Rows    int // row count of the table
	KeyRows int // row count of the key relation
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("order error - key relation has %d rows, table has %d", e.KeyRows, e.Rows)
}

func NewKeyRowMismatch(rows, keyRows int) *OrderError {
	return &OrderError{Rows: rows, KeyRows: keyRows}
}
