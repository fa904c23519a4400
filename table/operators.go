package table

import (
	"fmt"
	"slices"

	"github.com/leengari/typedframe/column"
	"github.com/leengari/typedframe/relation"
)

// Expr is a computed column assignment: a pure function of the whole
// table, applied once, producing a column.
type Expr func(t *Table) (column.Column, error)

// Assignment is one (name, column-or-expression) entry for Select and
// Transform. Exactly one of Col and Fn is set.
type Assignment struct {
	Name string
	Col  column.Column
	Fn   Expr
}

// Assign names an existing column
func Assign(name string, col column.Column) Assignment {
	return Assignment{Name: name, Col: col}
}

// Compute names a column computed from the table
func Compute(name string, fn Expr) Assignment {
	return Assignment{Name: name, Fn: fn}
}

func (a Assignment) eval(t *Table) (column.Column, error) {
	if a.Fn != nil {
		col, err := a.Fn(t)
		if err != nil {
			return nil, fmt.Errorf("computing column %q: %w", a.Name, err)
		}
		return col, nil
	}
	return a.Col, nil
}

// Select builds an entirely new table whose columns are exactly the given
// assignments, in the order given. Columns of t not re-listed are dropped.
// Assignments are evaluated sequentially against the original table.
func Select(t *Table, assignments ...Assignment) (*Table, error) {
	cols := make([]column.Column, len(assignments))
	names := make([]string, len(assignments))
	for i, a := range assignments {
		col, err := a.eval(t)
		if err != nil {
			return nil, err
		}
		cols[i] = col
		names[i] = a.Name
	}
	return fromColumns(t.reg, cols, names, "")
}

// Transform returns the original table's columns, in original order, with
// the given assignments applied. An assignment whose name matches an
// existing column replaces that column in place; fresh names are appended
// at the end. Every assigned column must match the table's row count.
func Transform(t *Table, assignments ...Assignment) (*Table, error) {
	cols := make([]column.Column, len(t.cols))
	names := t.shape.Names()
	copy(cols, t.cols)

	for _, a := range assignments {
		col, err := a.eval(t)
		if err != nil {
			return nil, err
		}
		if col.Len() != t.NumRows() {
			return nil, NewRowCountMismatch("transform", t.NumRows(), col.Len())
		}
		if i, ok := t.shape.Index(a.Name); ok {
			cols[i] = col
		} else {
			cols = append(cols, col)
			names = append(names, a.Name)
		}
	}
	return fromColumns(t.reg, cols, names, "")
}

// KeyFunc derives a key relation from a table, for Order
type KeyFunc func(t *Table) (relation.Relation, error)

// ByColumns derives the key relation by projecting the named columns
func ByColumns(names ...string) KeyFunc {
	return func(t *Table) (relation.Relation, error) {
		out := relation.NewBuffer()
		for _, n := range names {
			col, err := t.Column(n)
			if err != nil {
				return nil, err
			}
			if err := out.Append(n, col); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
}

// Order returns a new table with all columns and rows reordered by a
// stable sort over the key relation derived from t: lexicographic by key
// column order, ascending, ties preserving original relative order.
// Fails with OrderError if the key relation's row count differs from t's.
func Order(t *Table, key KeyFunc) (*Table, error) {
	kr, err := key(t)
	if err != nil {
		return nil, err
	}
	if kr.NumRows() != t.NumRows() {
		return nil, NewKeyRowMismatch(t.NumRows(), kr.NumRows())
	}

	perm := make([]int, t.NumRows())
	for i := range perm {
		perm[i] = i
	}
	nk := kr.NumColumns()
	slices.SortStableFunc(perm, func(a, b int) int {
		for c := 0; c < nk; c++ {
			if v := kr.ColumnAt(c).Compare(a, b); v != 0 {
				return v
			}
		}
		return 0
	})

	cols := make([]column.Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.Take(perm)
	}
	return newTable(t.shape, cols, t.reg), nil
}

// HCat concatenates two type-stable tables column-wise, by position.
// Row counts must match or it fails with DimensionError. Name collisions
// are resolved deterministically: the first occurrence keeps its name and
// later ones get _1, _2, ... suffixes.
func HCat(a, b *Table) (*Table, error) {
	if a.NumRows() != b.NumRows() {
		return nil, NewRowCountMismatch("hcat", a.NumRows(), b.NumRows())
	}
	names := uniquify(append(a.ColumnNames(), b.ColumnNames()...))
	cols := make([]column.Column, 0, len(names))
	cols = append(cols, a.cols...)
	cols = append(cols, b.cols...)
	return fromColumns(a.reg, cols, names, "")
}

// HCatRelations concatenates two relations of any kind column-wise.
// When either operand is a dynamic relation the result is dynamic too;
// type-stability is not preserved across a mixed-kind concatenation.
func HCatRelations(a, b relation.Relation) (*relation.Buffer, error) {
	if a.NumRows() != b.NumRows() {
		return nil, NewRowCountMismatch("hcat", a.NumRows(), b.NumRows())
	}
	names := uniquify(append(a.ColumnNames(), b.ColumnNames()...))
	out := relation.NewBuffer()
	n := a.NumColumns()
	for i, name := range names {
		var col column.Column
		if i < n {
			col = a.ColumnAt(i)
		} else {
			col = b.ColumnAt(i - n)
		}
		if err := out.Append(name, col.Clone()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// uniquify renames later occurrences of colliding names with _1, _2, ...
// suffixes so the result has unique names.
func uniquify(names []string) []string {
	used := make(map[string]bool, len(names))
	out := make([]string, len(names))
	for i, n := range names {
		name := n
		for k := 1; used[name]; k++ {
			name = fmt.Sprintf("%s_%d", n, k)
		}
		used[name] = true
		out[i] = name
	}
	return out
}
