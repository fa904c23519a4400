// Package table implements a type-stable table: a columnar container whose
// per-column element types are fixed at construction. Columns keep their
// concrete types, so bulk work runs on native typed slices, while the table
// itself satisfies the common relation capability set for polymorphic use.
package table

import (
	"fmt"

	"github.com/leengari/typedframe/column"
	"github.com/leengari/typedframe/relation"
	"github.com/leengari/typedframe/schema"
)

// Table is one type-stable table value bound to a shape. It owns its
// columns: constructors copy incoming columns, and every operator produces
// a fresh Table, so no two tables share mutable column storage.
type Table struct {
	shape *schema.Schema
	cols  []column.Column
	reg   *schema.Registry
}

// Pair is one (name, column) assignment for the named construction form
type Pair struct {
	Name string
	Col  column.Column
}

// Named returns a construction Pair
func Named(name string, col column.Column) Pair {
	return Pair{Name: name, Col: col}
}

// FromColumns creates a table owning copies of the given columns.
// If names is nil, names x1..xn are generated. Fails with SchemaError on
// count mismatch or duplicate names, and with DimensionError if the
// columns do not all have the same length.
func FromColumns(cols []column.Column, names []string) (*Table, error) {
	return FromColumnsIn(schema.Default(), cols, names)
}

// FromColumnsIn is FromColumns resolving shapes against an explicit registry
func FromColumnsIn(reg *schema.Registry, cols []column.Column, names []string) (*Table, error) {
	return fromColumns(reg, cols, names, "")
}

// FromColumnsAs is FromColumns with a shape-name hint, used for
// diagnostics only; the hint never affects shape identity.
func FromColumnsAs(hint string, cols []column.Column, names []string) (*Table, error) {
	return fromColumns(schema.Default(), cols, names, hint)
}

// FromColumnsAsIn is FromColumnsAs resolving shapes against an explicit registry
func FromColumnsAsIn(reg *schema.Registry, hint string, cols []column.Column, names []string) (*Table, error) {
	return fromColumns(reg, cols, names, hint)
}

// FromPairs creates a table from named columns, in the order given
func FromPairs(pairs ...Pair) (*Table, error) {
	return FromPairsIn(schema.Default(), pairs...)
}

// FromPairsIn is FromPairs resolving shapes against an explicit registry
func FromPairsIn(reg *schema.Registry, pairs ...Pair) (*Table, error) {
	cols := make([]column.Column, len(pairs))
	names := make([]string, len(pairs))
	for i, p := range pairs {
		cols[i] = p.Col
		names[i] = p.Name
	}
	return fromColumns(reg, cols, names, "")
}

// FromRelation creates a table from any relation source, copying its
// columns and names. If subset names are given, only those columns are
// copied, in the order given; an unknown subset name fails with IndexError.
func FromRelation(src relation.Relation, subset ...string) (*Table, error) {
	return FromRelationIn(schema.Default(), src, subset...)
}

// FromRelationIn is FromRelation resolving shapes against an explicit registry
func FromRelationIn(reg *schema.Registry, src relation.Relation, subset ...string) (*Table, error) {
	srcNames := src.ColumnNames()
	var cols []column.Column
	var names []string
	if len(subset) == 0 {
		names = srcNames
		cols = make([]column.Column, src.NumColumns())
		for i := range cols {
			cols[i] = src.ColumnAt(i)
		}
	} else {
		byName := make(map[string]int, len(srcNames))
		for i, n := range srcNames {
			byName[n] = i
		}
		names = subset
		cols = make([]column.Column, len(subset))
		for i, n := range subset {
			ci, ok := byName[n]
			if !ok {
				return nil, NewUnknownColumn(n)
			}
			cols[i] = src.ColumnAt(ci)
		}
	}
	return fromColumns(reg, cols, names, "")
}

// ToRelation exports the table as a dynamic relation with identical
// columns and names, for interop with the untyped collaborator.
func (t *Table) ToRelation() *relation.Buffer {
	out := relation.NewBuffer()
	for i, c := range t.cols {
		// lengths already agree, Append cannot fail here
		out.Append(t.shape.Field(i).Name, c.Clone())
	}
	return out
}

// fromColumns validates, copies and binds columns to a resolved shape
func fromColumns(reg *schema.Registry, cols []column.Column, names []string, hint string) (*Table, error) {
	if names == nil {
		names = make([]string, len(cols))
		for i := range cols {
			names[i] = fmt.Sprintf("x%d", i+1)
		}
	}
	types := make([]column.DataType, len(cols))
	for i, c := range cols {
		types[i] = c.DataType()
	}

	shape, err := reg.Resolve(types, names, hint)
	if err != nil {
		return nil, err
	}

	owned := make([]column.Column, len(cols))
	for i, c := range cols {
		if i > 0 && c.Len() != cols[0].Len() {
			return nil, NewRowCountMismatch("construction", cols[0].Len(), c.Len())
		}
		owned[i] = c.Clone()
	}
	return &Table{shape: shape, cols: owned, reg: reg}, nil
}

// newTable binds already-owned columns to a shape without re-validation.
// Callers must guarantee the table invariants hold.
func newTable(shape *schema.Schema, cols []column.Column, reg *schema.Registry) *Table {
	return &Table{shape: shape, cols: cols, reg: reg}
}

// Schema returns the shape the table is bound to
func (t *Table) Schema() *schema.Schema { return t.shape }

// NumColumns returns the number of columns
func (t *Table) NumColumns() int { return len(t.cols) }

// NumRows returns the number of rows (0 if there are no columns)
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// ColumnNames returns the ordered column names
func (t *Table) ColumnNames() []string { return t.shape.Names() }

// ColumnAt returns the column at position i.
// Part of the relation capability set; position must be in range.
func (t *Table) ColumnAt(i int) column.Column { return t.cols[i] }

// Column returns the raw typed column with the given name.
// The result keeps its concrete type and is not wrapped in a table.
func (t *Table) Column(name string) (column.Column, error) {
	i, ok := t.shape.Index(name)
	if !ok {
		return nil, NewUnknownColumn(name)
	}
	return t.cols[i], nil
}

// ColumnIndex returns the raw typed column at position i,
// failing with IndexError if i is out of range.
func (t *Table) ColumnIndex(i int) (column.Column, error) {
	if i < 0 || i >= len(t.cols) {
		return nil, NewColumnOutOfRange(i, len(t.cols))
	}
	return t.cols[i], nil
}

// Row returns the boxed values of row i in column order,
// failing with IndexError if i is out of range.
func (t *Table) Row(i int) ([]interface{}, error) {
	if i < 0 || i >= t.NumRows() {
		return nil, NewRowOutOfRange(i, t.NumRows())
	}
	out := make([]interface{}, len(t.cols))
	for c, col := range t.cols {
		out[c] = col.Value(i)
	}
	return out, nil
}

// Clone returns a complete copy of the table sharing the same shape
func (t *Table) Clone() *Table {
	cols := make([]column.Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.Clone()
	}
	return newTable(t.shape, cols, t.reg)
}
