package table_test

import (
	"errors"
	"testing"

	"github.com/leengari/typedframe/column"
	"github.com/leengari/typedframe/internal/testutil"
	"github.com/leengari/typedframe/relation"
	"github.com/leengari/typedframe/schema"
	"github.com/leengari/typedframe/table"
)

func TestSelect_DropsUnlistedColumns(t *testing.T) {
	tb := testutil.SmallTable(t)

	x, err := tb.Column("x")
	testutil.AssertNoError(t, err, "Column")
	out, err := table.Select(tb, table.Assign("z", x))
	testutil.AssertNoError(t, err, "Select")

	testutil.AssertColumnNames(t, out, []string{"z"}, "Select")
	testutil.AssertColumnEquals(t, out, "z", []interface{}{int64(1), int64(2), int64(3)}, "Select")
	if _, err := out.Column("y"); err == nil {
		t.Error("Expected column 'y' to be absent after select")
	}
}

func TestSelect_ComputedColumn(t *testing.T) {
	tb := testutil.SmallTable(t)

	out, err := table.Select(tb,
		table.Compute("sum", func(t *table.Table) (column.Column, error) {
			x, err := t.Column("x")
			if err != nil {
				return nil, err
			}
			y, err := t.Column("y")
			if err != nil {
				return nil, err
			}
			vals := make([]int64, x.Len())
			for i := range vals {
				vals[i] = x.(*column.Int).At(i) + y.(*column.Int).At(i)
			}
			return column.NewInt(vals...), nil
		}),
	)
	testutil.AssertNoError(t, err, "Select computed")
	testutil.AssertColumnEquals(t, out, "sum", []interface{}{int64(5), int64(7), int64(9)}, "computed")
}

func TestTransform_AppendsFreshNames(t *testing.T) {
	tb := testutil.SmallTable(t)

	out, err := table.Transform(tb, table.Assign("z", column.NewString("a", "b", "c")))
	testutil.AssertNoError(t, err, "Transform")

	testutil.AssertColumnNames(t, out, []string{"x", "y", "z"}, "Transform append")
	testutil.AssertColumnEquals(t, out, "x", []interface{}{int64(1), int64(2), int64(3)}, "original preserved")
}

func TestTransform_ReplacesCollidingName(t *testing.T) {
	tb := testutil.SmallTable(t)

	out, err := table.Transform(tb, table.Assign("x", column.NewInt(7, 8, 9)))
	testutil.AssertNoError(t, err, "Transform")

	// Colliding assignment replaces in place; order and uniqueness are kept
	testutil.AssertColumnNames(t, out, []string{"x", "y"}, "Transform replace")
	testutil.AssertColumnEquals(t, out, "x", []interface{}{int64(7), int64(8), int64(9)}, "Transform replace")
}

func TestTransform_RowCountMismatch(t *testing.T) {
	tb := testutil.SmallTable(t)

	_, err := table.Transform(tb, table.Assign("z", column.NewInt(1)))
	var de *table.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("Expected DimensionError, got: %v", err)
	}
}

func TestOrder_StableSort(t *testing.T) {
	tb, err := table.FromColumnsIn(schema.NewRegistry(),
		[]column.Column{
			column.NewInt(2, 1, 2),
			column.NewString("a", "b", "c"),
		},
		[]string{"k", "v"},
	)
	testutil.AssertNoError(t, err, "FromColumns")

	out, err := table.Order(tb, table.ByColumns("k"))
	testutil.AssertNoError(t, err, "Order")

	// Ties keep their original relative order
	testutil.AssertColumnEquals(t, out, "k", []interface{}{int64(1), int64(2), int64(2)}, "Order keys")
	testutil.AssertColumnEquals(t, out, "v", []interface{}{"b", "a", "c"}, "Order stability")
	if out.Schema() != tb.Schema() {
		t.Error("Expected order to preserve the shape")
	}
}

func TestOrder_Lexicographic(t *testing.T) {
	tb, err := table.FromColumnsIn(schema.NewRegistry(),
		[]column.Column{
			column.NewString("b", "a", "a"),
			column.NewInt(1, 9, 3),
		},
		[]string{"k1", "k2"},
	)
	testutil.AssertNoError(t, err, "FromColumns")

	out, err := table.Order(tb, table.ByColumns("k1", "k2"))
	testutil.AssertNoError(t, err, "Order")
	testutil.AssertColumnEquals(t, out, "k2", []interface{}{int64(3), int64(9), int64(1)}, "lexicographic order")
}

func TestOrder_KeyRowMismatch(t *testing.T) {
	tb := testutil.SmallTable(t)

	_, err := table.Order(tb, func(t *table.Table) (relation.Relation, error) {
		out := relation.NewBuffer()
		if err := out.Append("k", column.NewInt(1)); err != nil {
			return nil, err
		}
		return out, nil
	})

	var oe *table.OrderError
	if !errors.As(err, &oe) {
		t.Fatalf("Expected OrderError, got: %v", err)
	}
}

func TestOrder_DerivedKeyRelation(t *testing.T) {
	tb := testutil.SmallTable(t)

	// Key computed from the table rather than projected from it
	out, err := table.Order(tb, func(t *table.Table) (relation.Relation, error) {
		x, err := t.Column("x")
		if err != nil {
			return nil, err
		}
		vals := make([]int64, x.Len())
		for i := range vals {
			vals[i] = -x.(*column.Int).At(i)
		}
		kr := relation.NewBuffer()
		if err := kr.Append("neg", column.NewInt(vals...)); err != nil {
			return nil, err
		}
		return kr, nil
	})
	testutil.AssertNoError(t, err, "Order derived")
	testutil.AssertColumnEquals(t, out, "x", []interface{}{int64(3), int64(2), int64(1)}, "descending via derived key")
}

func TestHCat_RenamesCollisions(t *testing.T) {
	reg := schema.NewRegistry()
	a, err := table.FromColumnsIn(reg,
		[]column.Column{column.NewInt(1, 2)}, []string{"x"})
	testutil.AssertNoError(t, err, "FromColumns a")
	b, err := table.FromColumnsIn(reg,
		[]column.Column{column.NewInt(3, 4), column.NewInt(5, 6)}, []string{"x", "y"})
	testutil.AssertNoError(t, err, "FromColumns b")

	out, err := table.HCat(a, b)
	testutil.AssertNoError(t, err, "HCat")

	testutil.AssertColumnCount(t, out, 3, "HCat")
	testutil.AssertColumnNames(t, out, []string{"x", "x_1", "y"}, "HCat rename")
	testutil.AssertColumnEquals(t, out, "x", []interface{}{int64(1), int64(2)}, "HCat left")
	testutil.AssertColumnEquals(t, out, "x_1", []interface{}{int64(3), int64(4)}, "HCat right")
	testutil.AssertColumnEquals(t, out, "y", []interface{}{int64(5), int64(6)}, "HCat unchanged")
}

func TestHCat_RowMismatch(t *testing.T) {
	reg := schema.NewRegistry()
	a, err := table.FromColumnsIn(reg,
		[]column.Column{column.NewInt(1, 2)}, []string{"x"})
	testutil.AssertNoError(t, err, "FromColumns a")
	b, err := table.FromColumnsIn(reg,
		[]column.Column{column.NewInt(3, 4, 5)}, []string{"y"})
	testutil.AssertNoError(t, err, "FromColumns b")

	_, err = table.HCat(a, b)
	var de *table.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("Expected DimensionError, got: %v", err)
	}
}

func TestHCatRelations_MixedKind(t *testing.T) {
	tb := testutil.SmallTable(t)

	dyn := relation.NewBuffer()
	testutil.AssertNoError(t, dyn.Append("x", column.NewString("a", "b", "c")), "append")

	out, err := table.HCatRelations(tb, dyn)
	testutil.AssertNoError(t, err, "HCatRelations")

	names := out.ColumnNames()
	if len(names) != 3 || names[0] != "x" || names[1] != "y" || names[2] != "x_1" {
		t.Fatalf("Expected names [x y x_1], got %v", names)
	}
	if out.Value(0, 2) != "a" {
		t.Errorf("Expected 'a' at (0,2), got %v", out.Value(0, 2))
	}
}

func TestHCatRelations_RowMismatch(t *testing.T) {
	tb := testutil.SmallTable(t)
	dyn := relation.NewBuffer()
	testutil.AssertNoError(t, dyn.Append("x", column.NewString("a")), "append")

	_, err := table.HCatRelations(tb, dyn)
	var de *table.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("Expected DimensionError, got: %v", err)
	}
}
