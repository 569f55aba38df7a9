package record

import (
	"net/url"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store runs the persistence operations for one record type. Every method
// takes the *gorm.DB for the current operation; the resource handlers pass a
// transaction handle so that each HTTP operation runs inside a single
// short-lived transaction.
type Store[T any] struct {
	typ *Type[T]
}

// NewStore returns a store bound to one record type descriptor.
func NewStore[T any](typ *Type[T]) *Store[T] {
	return &Store[T]{typ: typ}
}

// Type returns the bound descriptor.
func (s *Store[T]) Type() *Type[T] {
	return s.typ
}

// Count returns the number of persisted records of the bound type.
func (s *Store[T]) Count(db *gorm.DB) (int, error) {
	var total int64
	if err := db.Model(new(T)).Count(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

// Select fetches one page of records ordered by identifier. The ordering
// keeps pagination stable across requests.
func (s *Store[T]) Select(db *gorm.DB, offset, limit int) ([]T, error) {
	var records []T
	query := s.preloaded(db).Order("id").Offset(offset).Limit(limit)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID fetches one record with its relations loaded. The error satisfies
// IsNotFound when no record has the identifier.
func (s *Store[T]) GetByID(db *gorm.DB, id int64) (*T, error) {
	rec := new(T)
	if err := s.preloaded(db).First(rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// Create constructs a new record from form values and persists it. The
// type's OnCreate hook runs first against a copy of the values, then every
// known field is assigned and the record inserted. The stored record is
// re-read so relation fields are populated for serialization.
func (s *Store[T]) Create(db *gorm.DB, values url.Values) (*T, error) {
	prepared := make(url.Values, len(values))
	for key, vals := range values {
		prepared[key] = append([]string(nil), vals...)
	}
	if s.typ.OnCreate != nil {
		if err := s.typ.OnCreate(prepared); err != nil {
			return nil, err
		}
	}

	rec := new(T)
	if err := s.typ.Apply(rec, prepared); err != nil {
		return nil, err
	}
	if err := db.Omit(clause.Associations).Create(rec).Error; err != nil {
		return nil, err
	}
	return s.GetByID(db, s.typ.ID(rec))
}

// Update assigns the supplied fields on an already-fetched record and
// persists it. Fields not present in values are untouched. The record is
// re-read so relation fields reflect any reassigned foreign keys.
func (s *Store[T]) Update(db *gorm.DB, rec *T, values url.Values) (*T, error) {
	if err := s.typ.Apply(rec, values); err != nil {
		return nil, err
	}
	if err := db.Omit(clause.Associations).Save(rec).Error; err != nil {
		return nil, err
	}
	return s.GetByID(db, s.typ.ID(rec))
}

// Delete removes a record. Storage enforces restrict-on-delete: the error
// satisfies IsConstraintViolation while other records still reference this
// one.
func (s *Store[T]) Delete(db *gorm.DB, rec *T) error {
	return db.Delete(rec).Error
}

func (s *Store[T]) preloaded(db *gorm.DB) *gorm.DB {
	query := db
	for _, relation := range s.typ.Preloads {
		query = query.Preload(relation)
	}
	return query
}
