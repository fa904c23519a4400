package testutil

import (
	"testing"

	"github.com/leengari/typedframe/column"
	"github.com/leengari/typedframe/table"
)

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected an error, got nil", context)
	}
}

// AssertRowCount checks if the table has the expected number of rows
func AssertRowCount(t *testing.T, tb *table.Table, expected int, context string) {
	t.Helper()
	if tb.NumRows() != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, tb.NumRows())
	}
}

// AssertColumnCount checks if the table has the expected number of columns
func AssertColumnCount(t *testing.T, tb *table.Table, expected int, context string) {
	t.Helper()
	if tb.NumColumns() != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, tb.NumColumns())
	}
}

// AssertColumnNames checks the table's column names and order
func AssertColumnNames(t *testing.T, tb *table.Table, expected []string, context string) {
	t.Helper()
	names := tb.ColumnNames()
	if len(names) != len(expected) {
		t.Fatalf("%s: expected names %v, got %v", context, expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("%s: expected name %q at position %d, got %q", context, expected[i], i, names[i])
		}
	}
}

// AssertColumnEquals checks a named column against expected boxed values
func AssertColumnEquals(t *testing.T, tb *table.Table, name string, expected []interface{}, context string) {
	t.Helper()
	col, err := tb.Column(name)
	if err != nil {
		t.Fatalf("%s: column %q: %v", context, name, err)
	}
	AssertValues(t, col, expected, context)
}

// AssertValues checks a column against expected boxed values
func AssertValues(t *testing.T, col column.Column, expected []interface{}, context string) {
	t.Helper()
	if col.Len() != len(expected) {
		t.Fatalf("%s: expected %d values, got %d", context, len(expected), col.Len())
	}
	for i, want := range expected {
		if got := col.Value(i); got != want {
			t.Errorf("%s: expected %v at position %d, got %v", context, want, i, got)
		}
	}
}
