package relation_test

import (
	"testing"

	"github.com/leengari/typedframe/column"
	"github.com/leengari/typedframe/relation"
)

func TestBuffer_AppendAndAccess(t *testing.T) {
	b := relation.NewBuffer()
	if err := b.Append("id", column.NewInt(1, 2)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := b.Append("name", column.NewString("alice", "bob")); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if b.NumColumns() != 2 {
		t.Errorf("Expected 2 columns, got %d", b.NumColumns())
	}
	if b.NumRows() != 2 {
		t.Errorf("Expected 2 rows, got %d", b.NumRows())
	}
	if b.Value(1, 1) != "bob" {
		t.Errorf("Expected 'bob' at (1,1), got %v", b.Value(1, 1))
	}

	row := b.Row(0)
	if row[0] != int64(1) || row[1] != "alice" {
		t.Errorf("Expected row [1 alice], got %v", row)
	}
}

func TestBuffer_AppendLengthMismatch(t *testing.T) {
	b := relation.NewBuffer()
	if err := b.Append("id", column.NewInt(1, 2)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := b.Append("name", column.NewString("alice")); err == nil {
		t.Fatal("Expected an error appending a shorter column, got nil")
	}
}

func TestBuffer_DuplicateNamesAllowed(t *testing.T) {
	// The dynamic baseline has no schema; duplicate names are legal here
	b := relation.NewBuffer()
	if err := b.Append("x", column.NewInt(1)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := b.Append("x", column.NewInt(2)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if b.NumColumns() != 2 {
		t.Errorf("Expected 2 columns, got %d", b.NumColumns())
	}
}

func TestBuffer_EmptyHasZeroRows(t *testing.T) {
	b := relation.NewBuffer()
	if b.NumRows() != 0 {
		t.Errorf("Expected 0 rows, got %d", b.NumRows())
	}
	if len(b.ColumnNames()) != 0 {
		t.Errorf("Expected no names, got %v", b.ColumnNames())
	}
}
