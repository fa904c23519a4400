package table

import (
	"github.com/leengari/typedframe/column"
	"github.com/leengari/typedframe/schema"
)

// RowSelector resolves to a set of row positions for a table of nrow rows.
// full is true when the selection is the complete sequential range, which
// lets Index skip materializing positions.
type RowSelector interface {
	rows(nrow int) (positions []int, full bool, err error)
}

// ColumnSelector resolves to a set of column positions within a shape.
// all is true when every column is selected in order.
type ColumnSelector interface {
	columns(s *schema.Schema) (positions []int, all bool, err error)
}

type allRows struct{}

// AllRows selects every row in order
func AllRows() RowSelector { return allRows{} }

func (allRows) rows(nrow int) ([]int, bool, error) {
	return nil, true, nil
}

type rowsAt []int

// RowsAt selects rows by position, in the order given
func RowsAt(positions ...int) RowSelector { return rowsAt(positions) }

func (r rowsAt) rows(nrow int) ([]int, bool, error) {
	for _, p := range r {
		if p < 0 || p >= nrow {
			return nil, false, NewRowOutOfRange(p, nrow)
		}
	}
	return r, false, nil
}

type rowRange struct {
	lo, hi int
}

// RowRange selects the half-open row range [lo, hi)
func RowRange(lo, hi int) RowSelector { return rowRange{lo: lo, hi: hi} }

func (r rowRange) rows(nrow int) ([]int, bool, error) {
	if r.lo < 0 || r.lo > r.hi || r.hi > nrow {
		return nil, false, NewRowOutOfRange(r.lo, nrow)
	}
	if r.lo == 0 && r.hi == nrow {
		return nil, true, nil
	}
	positions := make([]int, r.hi-r.lo)
	for i := range positions {
		positions[i] = r.lo + i
	}
	return positions, false, nil
}

type rowMask []bool

// Mask selects the rows whose mask entry is true.
// The mask length must equal the table row count.
func Mask(mask []bool) RowSelector { return rowMask(mask) }

func (m rowMask) rows(nrow int) ([]int, bool, error) {
	if len(m) != nrow {
		return nil, false, NewMaskLength(len(m), nrow)
	}
	var positions []int
	for i, keep := range m {
		if keep {
			positions = append(positions, i)
		}
	}
	return positions, false, nil
}

type allColumns struct{}

// AllColumns selects every column in order
func AllColumns() ColumnSelector { return allColumns{} }

func (allColumns) columns(s *schema.Schema) ([]int, bool, error) {
	return nil, true, nil
}

type byName []string

// ByName selects columns by name, in the order given
func ByName(names ...string) ColumnSelector { return byName(names) }

func (b byName) columns(s *schema.Schema) ([]int, bool, error) {
	positions := make([]int, len(b))
	seen := make(map[string]bool, len(b))
	for i, n := range b {
		ci, ok := s.Index(n)
		if !ok {
			return nil, false, NewUnknownColumn(n)
		}
		if seen[n] {
			return nil, false, NewDuplicateSelector(n)
		}
		seen[n] = true
		positions[i] = ci
	}
	return positions, false, nil
}

type byIndex []int

// ByIndex selects columns by position, in the order given
func ByIndex(positions ...int) ColumnSelector { return byIndex(positions) }

func (b byIndex) columns(s *schema.Schema) ([]int, bool, error) {
	seen := make(map[int]bool, len(b))
	for _, p := range b {
		if p < 0 || p >= s.Len() {
			return nil, false, NewColumnOutOfRange(p, s.Len())
		}
		if seen[p] {
			return nil, false, NewDuplicateSelector(s.Field(p).Name)
		}
		seen[p] = true
	}
	return b, false, nil
}

// Index resolves the given row and column selectors into a new table.
//
// Selecting all rows and all columns reuses the table's shape unchanged
// (the no-schema-change fast path); any strict column subset is a true
// re-projection bound to a new shape. An empty column selection yields the
// zero-column table, whose row count is 0 by definition.
func (t *Table) Index(rows RowSelector, cols ColumnSelector) (*Table, error) {
	colPos, allCols, err := cols.columns(t.shape)
	if err != nil {
		return nil, err
	}
	if !allCols && len(colPos) == 0 {
		shape, err := t.reg.Resolve(nil, nil, "")
		if err != nil {
			return nil, err
		}
		return newTable(shape, nil, t.reg), nil
	}

	rowPos, fullRows, err := rows.rows(t.NumRows())
	if err != nil {
		return nil, err
	}

	shape := t.shape
	src := t.cols
	if !allCols {
		names := make([]string, len(colPos))
		types := make([]column.DataType, len(colPos))
		src = make([]column.Column, len(colPos))
		for i, p := range colPos {
			f := t.shape.Field(p)
			names[i] = f.Name
			types[i] = f.Type
			src[i] = t.cols[p]
		}
		shape, err = t.reg.Resolve(types, names, "")
		if err != nil {
			return nil, err
		}
	}

	out := make([]column.Column, len(src))
	for i, c := range src {
		if fullRows {
			out[i] = c.Clone()
		} else {
			out[i] = c.Take(rowPos)
		}
	}
	return newTable(shape, out, t.reg), nil
}

// Project returns a new table with the named columns, in the given order
func (t *Table) Project(names ...string) (*Table, error) {
	return t.Index(AllRows(), ByName(names...))
}

// Filter returns a new table keeping the rows whose mask entry is true
func (t *Table) Filter(mask []bool) (*Table, error) {
	return t.Index(Mask(mask), AllColumns())
}
