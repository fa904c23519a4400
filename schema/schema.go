package schema

import (
	"strings"

	"github.com/leengari/typedframe/column"
)

// Field is one (name, element type) slot of a schema
type Field struct {
	Name string          `json:"name"`
	Type column.DataType `json:"type"`
}

// Schema is an ordered sequence of uniquely named, typed fields.
// Order is significant and defines column position. A Schema is immutable
// once created; tables bind to it and never modify it.
type Schema struct {
	name   string
	fields []Field
	byName map[string]int
}

// New creates a schema from the given fields, validating name uniqueness.
// The name tags the shape for diagnostics only; it carries no semantic
// weight for schema identity.
func New(name string, fields []Field) (*Schema, error) {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, NewEmptyName(name, i)
		}
		if _, dup := byName[f.Name]; dup {
			return nil, NewDuplicateName(name, f.Name)
		}
		byName[f.Name] = i
	}
	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		byName: byName,
	}
	copy(s.fields, fields)
	return s, nil
}

// Name returns the diagnostic name of the shape
func (s *Schema) Name() string { return s.name }

// Len returns the number of fields
func (s *Schema) Len() int { return len(s.fields) }

// Field returns the field at position i
func (s *Schema) Field(i int) Field { return s.fields[i] }

// Fields returns a copy of the ordered field list
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Index returns the position of the named field and whether it exists
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.byName[name]
	return i, ok
}

// Names returns the ordered field names
func (s *Schema) Names() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// Types returns the ordered field element types
func (s *Schema) Types() []column.DataType {
	out := make([]column.DataType, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Type
	}
	return out
}

// Fingerprint returns the identity key of the schema: the ordered
// (name, type) pairs. Two schemas with equal fingerprints are equivalent
// regardless of their diagnostic names.
func (s *Schema) Fingerprint() string {
	return fingerprint(s.Types(), s.Names())
}

// Equivalent reports whether two schemas have identical (name, type) sequences
func (s *Schema) Equivalent(other *Schema) bool {
	return s.Fingerprint() == other.Fingerprint()
}

func fingerprint(types []column.DataType, names []string) string {
	var b strings.Builder
	for i, n := range names {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n)
		b.WriteByte(':')
		b.WriteString(string(types[i]))
	}
	return b.String()
}
