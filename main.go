package main

import (
	"os"

	"github.com/leengari/typedframe/column"
	"github.com/leengari/typedframe/internal/logging"
	"github.com/leengari/typedframe/schema"
	"github.com/leengari/typedframe/table"
)

func main() {
	logger, closeFn := logging.SetupLogger()
	defer closeFn()

	logger.Info("Starting demo...")

	// Log shape creation and reuse in the default registry
	schema.Default().AddObserver(schema.NewLoggingObserver())

	// 1. Build a typed table of users
	users, err := table.FromColumnsAs("users",
		[]column.Column{
			column.NewInt(3, 1, 2),
			column.NewString("charlie", "alice", "bob"),
			column.NewFloat(72.5, 89.0, 64.25),
			column.NewBool(true, true, false),
		},
		[]string{"id", "name", "score", "active"},
	)
	if err != nil {
		logger.Error("failed to build users table", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Info("built table",
		"shape", users.Schema().Name(),
		"rows", users.NumRows(),
		"columns", users.NumColumns(),
	)

	// 2. Order by id ascending
	byID, err := table.Order(users, table.ByColumns("id"))
	if err != nil {
		logger.Error("order failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	ids, _ := byID.Column("id")
	logger.Info("ordered by id", "first", ids.Value(0), "last", ids.Value(ids.Len()-1))

	// 3. Keep only active users
	active, _ := byID.Column("active")
	mask := make([]bool, active.Len())
	for i := range mask {
		mask[i] = active.(*column.Bool).At(i)
	}
	activeUsers, err := byID.Filter(mask)
	if err != nil {
		logger.Error("filter failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Info("filtered active users", "rows", activeUsers.NumRows())

	// 4. Build a derived table through select: rename + computed column
	name, _ := activeUsers.Column("name")
	scores, err := table.Select(activeUsers,
		table.Assign("who", name),
		table.Compute("bonus", func(t *table.Table) (column.Column, error) {
			src, err := t.Column("score")
			if err != nil {
				return nil, err
			}
			out := make([]float64, src.Len())
			for i := range out {
				out[i] = src.(*column.Float).At(i) * 1.1
			}
			return column.NewFloat(out...), nil
		}),
	)
	if err != nil {
		logger.Error("select failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Info("computed bonus table",
		"shape", scores.Schema().Name(),
		"columns", scores.ColumnNames(),
	)

	// 5. Horizontal concatenation with an untyped relation
	combined, err := table.HCatRelations(scores, activeUsers.ToRelation())
	if err != nil {
		logger.Error("hcat failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Info("combined with dynamic relation",
		"columns", combined.ColumnNames(),
		"rows", combined.NumRows(),
	)

	logger.Info("demo complete", "shapes_registered", schema.Default().Len())
}
