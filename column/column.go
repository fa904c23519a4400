package column

// DataType identifies the element type of a column
type DataType string

const (
	TypeInt   DataType = "INT"
	TypeFloat DataType = "FLOAT"
	TypeText  DataType = "TEXT"
	TypeBool  DataType = "BOOL"
)

// Element is the set of element types a typed column can hold
type Element interface {
	int64 | float64 | string | bool
}

// Column is the common capability set shared by all typed columns.
// Concrete columns keep their element type; this interface only exists so
// tables and operators can handle columns of different types uniformly.
// Typed, non-boxing access goes through the concrete *Values[T] type.
type Column interface {
	// Len returns the number of elements in the column
	Len() int

	// DataType returns the element type of the column
	DataType() DataType

	// Value returns the element at position i, boxed.
	// Used for interop with the dynamic relation boundary, not for bulk work.
	Value(i int) interface{}

	// Compare compares the elements at positions i and j without boxing.
	// Returns a negative number when i < j, positive when i > j, zero when equal.
	// Bools order false before true.
	Compare(i, j int) int

	// Slice returns a new column holding a copy of the elements in [lo, hi)
	Slice(lo, hi int) Column

	// Take returns a new column holding copies of the elements at the
	// given positions, in the given order. Positions must be in range.
	Take(positions []int) Column

	// Clone returns a full copy of the column
	Clone() Column
}

// Equal reports whether two columns have the same type, length and elements
func Equal(a, b Column) bool {
	if a.DataType() != b.DataType() || a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.Value(i) != b.Value(i) {
			return false
		}
	}
	return true
}
