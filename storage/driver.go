package storage

// Driver is the generic interface for a module handling
// internal details of a specific stored object type. It is used
// by the storage.Index in order to access object identifiers
// and internal fields.
type Driver[M any] interface {
	// Make must allocate and return a new object
	// when the index needs to.
	Make() M
	// GetID must access the object and return a
	// unique integer identifier that the index will use to
	// map that type of objects.
	GetID(m M) uint64
	// SetID must access the object and set its
	// unique integer identifier. This is generally called
	// by instances of storage.Index when a new object is
	// created and a unique id is associated to it for the
	// first time.
	SetID(m M, id uint64)
	// Copy must copy the contents of the src object into
	// the dst object. An error can be returned to signal
	// the index that something went wrong during the copy.
	Copy(dst M, src M) error
}
