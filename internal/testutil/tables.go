package testutil

import (
	"testing"

	"github.com/leengari/typedframe/column"
	"github.com/leengari/typedframe/schema"
	"github.com/leengari/typedframe/table"
)

// UsersTable creates a users table with sample data for testing,
// bound to its own fresh registry.
func UsersTable(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.FromColumnsAsIn(schema.NewRegistry(), "users",
		[]column.Column{
			column.NewInt(1, 2, 3),
			column.NewString("alice", "bob", "charlie"),
			column.NewFloat(89.0, 64.25, 72.5),
			column.NewBool(true, false, true),
		},
		[]string{"id", "username", "score", "active"},
	)
	if err != nil {
		t.Fatalf("building users table: %v", err)
	}
	return tb
}

// SmallTable creates a two-column x/y table for operator tests,
// bound to its own fresh registry.
func SmallTable(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.FromColumnsIn(schema.NewRegistry(),
		[]column.Column{
			column.NewInt(1, 2, 3),
			column.NewInt(4, 5, 6),
		},
		[]string{"x", "y"},
	)
	if err != nil {
		t.Fatalf("building small table: %v", err)
	}
	return tb
}
