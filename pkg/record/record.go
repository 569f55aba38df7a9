// Package record implements the generic record layer: static per-type field
// descriptors, conversion between records and their transport mappings, a
// gorm-backed store for the CRUD operations, and pagination normalization.
package record

import (
	"fmt"
	"net/url"
)

// Field describes one declared field of a record type. Fields drive the
// transport mapping in declaration order.
type Field[T any] struct {
	// Name is the mapping key.
	Name string
	// Value reads the field for serialization. Relation fields return the
	// nested target mapping here.
	Value func(*T) any
	// Sensitive fields are removed from the mapping before it is returned.
	Sensitive bool
}

// Setter assigns one writable field from its form-encoded value.
type Setter[T any] func(*T, string) error

// Type is the static descriptor for one record type. It replaces per-type
// controller code: the generic store and resource handlers are parameterized
// by a Type value.
type Type[T any] struct {
	// Name is the lowercased type name, used as the URL path segment.
	Name string

	// ID reads the storage-assigned identifier.
	ID func(*T) int64

	// Fields lists the declared fields in declaration order.
	Fields []Field[T]

	// Setters maps writable form keys to field assignments. Relation fields
	// are writable only under their "<relation>_id" key.
	Setters map[string]Setter[T]

	// OnCreate, when set, rewrites the incoming form values before a new
	// record is constructed (the api-user type hashes its password here).
	// It runs only on create, never on update.
	OnCreate func(values url.Values) error

	// Preloads names the relations loaded before serialization.
	Preloads []string
}

// Mapping converts a record to its transport mapping. Sensitive fields are
// omitted from the result.
func (t *Type[T]) Mapping(rec *T) map[string]any {
	result := make(map[string]any, len(t.Fields))
	for _, field := range t.Fields {
		if field.Sensitive {
			continue
		}
		result[field.Name] = field.Value(rec)
	}
	return result
}

// Apply assigns every supplied form key that names a writable field.
// Unknown keys are ignored.
func (t *Type[T]) Apply(rec *T, values url.Values) error {
	for key := range values {
		setter, ok := t.Setters[key]
		if !ok {
			continue
		}
		if err := setter(rec, values.Get(key)); err != nil {
			return fmt.Errorf("%s: invalid value for %q: %w", t.Name, key, err)
		}
	}
	return nil
}
