package column

import "cmp"

// Values is a typed column: an ordered sequence of elements of one fixed type.
// The Data slice is the backing storage; constructors wrap the given slice
// without copying, and tables copy columns when they take ownership.
type Values[T Element] struct {
	Data []T
}

// Int is a column of int64 values.
type Int = Values[int64]

// Float is a column of float64 values.
type Float = Values[float64]

// String is a column of string values.
type String = Values[string]

// Bool is a column of bool values.
type Bool = Values[bool]

// New returns a new typed column wrapping the given values (not copied)
func New[T Element](vals ...T) *Values[T] {
	return &Values[T]{Data: vals}
}

// NewInt returns a new Int column wrapping the given values
func NewInt(vals ...int64) *Int { return New(vals...) }

// NewFloat returns a new Float column wrapping the given values
func NewFloat(vals ...float64) *Float { return New(vals...) }

// NewString returns a new String column wrapping the given values
func NewString(vals ...string) *String { return New(vals...) }

// NewBool returns a new Bool column wrapping the given values
func NewBool(vals ...bool) *Bool { return New(vals...) }

// Len returns the number of elements in the column
func (c *Values[T]) Len() int { return len(c.Data) }

// At returns the element at position i with its concrete type
func (c *Values[T]) At(i int) T { return c.Data[i] }

// DataType returns the element type of the column
func (c *Values[T]) DataType() DataType {
	var zero T
	switch any(zero).(type) {
	case int64:
		return TypeInt
	case float64:
		return TypeFloat
	case string:
		return TypeText
	default:
		return TypeBool
	}
}

// Value returns the element at position i, boxed
func (c *Values[T]) Value(i int) interface{} { return c.Data[i] }

// Compare compares the elements at positions i and j.
// Bools order false before true.
func (c *Values[T]) Compare(i, j int) int {
	switch a := any(c.Data[i]).(type) {
	case int64:
		return cmp.Compare(a, any(c.Data[j]).(int64))
	case float64:
		return cmp.Compare(a, any(c.Data[j]).(float64))
	case string:
		return cmp.Compare(a, any(c.Data[j]).(string))
	default:
		b := any(c.Data[j]).(bool)
		switch {
		case a.(bool) == b:
			return 0
		case b:
			return -1
		default:
			return 1
		}
	}
}

// Slice returns a new column holding a copy of the elements in [lo, hi)
func (c *Values[T]) Slice(lo, hi int) Column {
	out := make([]T, hi-lo)
	copy(out, c.Data[lo:hi])
	return &Values[T]{Data: out}
}

// Take returns a new column with copies of the elements at the given positions
func (c *Values[T]) Take(positions []int) Column {
	out := make([]T, len(positions))
	for i, p := range positions {
		out[i] = c.Data[p]
	}
	return &Values[T]{Data: out}
}

// Clone returns a full copy of the column
func (c *Values[T]) Clone() Column {
	return c.Slice(0, len(c.Data))
}
