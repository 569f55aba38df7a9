// Package model defines the persisted record types of the registry and the
// descriptors that expose them through the generic resource engine.
//
// Each type pairs a gorm struct (with explicit table and constraint tags)
// with a record.Type descriptor listing its fields, writable keys and
// relation preloads. The descriptors are the only per-type code the CRUD
// surface needs.
package model
