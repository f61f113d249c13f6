package storage

import (
	"maps"
	"slices"

	"github.com/adv-linalg/advec/vectors"
)

// Record is the unit of storage: an identified numeric vector plus a
// free form set of metadata attributes.
type Record struct {
	ID     uint64            `json:"id"`
	Values []float64         `json:"values"`
	Meta   map[string]string `json:"meta,omitempty"`
}

// Vector returns the record data as an immutable vector, detached from
// the stored copy.
func (r *Record) Vector() *vectors.Vector[float64] {
	return vectors.FromSlice(slices.Clone(r.Values))
}

// MutVector returns the record data as a mutable vector, detached from
// the stored copy.
func (r *Record) MutVector() *vectors.MutVector[float64] {
	return vectors.MutFromSlice(slices.Clone(r.Values))
}

// RecordDriver is the specialized implementation of a
// storage.Driver interface, used to access the internal
// fields of Record objects in the index.
type RecordDriver struct {
}

// Make returns a new Record object.
func (d RecordDriver) Make() *Record {
	return new(Record)
}

// GetID returns the unique identifier of the Record object.
func (d RecordDriver) GetID(m *Record) uint64 {
	return m.ID
}

// SetID sets the unique identifier of the Record object.
func (d RecordDriver) SetID(m *Record, id uint64) {
	m.ID = id
}

// Copy copies the Values and Meta fields from the source
// object to the destination one.
func (d RecordDriver) Copy(dst *Record, src *Record) error {
	dst.Values = slices.Clone(src.Values)
	dst.Meta = maps.Clone(src.Meta)
	return nil
}
