// Package relation defines the minimal capability set for interop between
// the type-stable table and the dynamic, schema-free baseline table.
package relation

import (
	"fmt"

	"github.com/leengari/typedframe/column"
)

// Relation is the minimal relational capability set: ordered named columns
// plus a row count. Both the type-stable table and the dynamic Buffer
// satisfy it, so operators that only need this much can take either.
type Relation interface {
	// ColumnNames returns the ordered column names
	ColumnNames() []string

	// NumColumns returns the number of columns
	NumColumns() int

	// ColumnAt returns the column at position i
	ColumnAt(i int) column.Column

	// NumRows returns the number of rows
	NumRows() int
}

// Buffer is the dynamic baseline table: a mutable bag of named columns
// with no schema binding, no registry, and no name-uniqueness guarantee.
// Cell access is boxed. It exists for interop at the boundary, not for
// bulk columnar work.
type Buffer struct {
	names []string
	cols  []column.Column
}

// NewBuffer creates an empty dynamic relation
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds a named column to the end of the buffer.
// Fails if the column length does not match the current row count.
func (b *Buffer) Append(name string, col column.Column) error {
	if len(b.cols) > 0 && col.Len() != b.NumRows() {
		return fmt.Errorf("relation: column %q has %d rows, buffer has %d", name, col.Len(), b.NumRows())
	}
	b.names = append(b.names, name)
	b.cols = append(b.cols, col)
	return nil
}

// ColumnNames returns the ordered column names
func (b *Buffer) ColumnNames() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// NumColumns returns the number of columns
func (b *Buffer) NumColumns() int { return len(b.cols) }

// ColumnAt returns the column at position i
func (b *Buffer) ColumnAt(i int) column.Column { return b.cols[i] }

// NumRows returns the number of rows (0 if there are no columns)
func (b *Buffer) NumRows() int {
	if len(b.cols) == 0 {
		return 0
	}
	return b.cols[0].Len()
}

// Value returns the cell at the given row and column, boxed
func (b *Buffer) Value(row, col int) interface{} {
	return b.cols[col].Value(row)
}

// Row returns the boxed values of one row, in column order
func (b *Buffer) Row(i int) []interface{} {
	out := make([]interface{}, len(b.cols))
	for c, col := range b.cols {
		out[c] = col.Value(i)
	}
	return out
}
