package storage

import (
	"maps"
	"sync"
)

type metaIndex map[string][]uint64

// Records is the specialized version of a storage.Index
// used to map, store and persist Record objects. On top of the
// identifier mapping it maintains an inverted index of the records
// by each of their metadata attributes.
type Records struct {
	sync.RWMutex
	*Index[*Record]

	metaBy map[string]metaIndex
}

// LoadRecords loads and indexes the records from
// the data files found in a given path.
func LoadRecords(dataPath string) (*Records, error) {
	recs := &Records{
		Index:  WithDriver[*Record](dataPath, RecordDriver{}),
		metaBy: make(map[string]metaIndex),
	}

	if err := recs.Load(); err != nil {
		return nil, err
	}

	for _, rec := range recs.Objects() {
		recs.metaIndexCreate(rec)
	}

	return recs, nil
}

func (r *Records) _metaIndexCreate(rec *Record) {
	for key, val := range rec.Meta {
		// create the index by this key if not there already
		metaIdx, found := r.metaBy[key]
		if !found {
			metaIdx = make(metaIndex)
			r.metaBy[key] = metaIdx
		}
		metaIdx[val] = append(metaIdx[val], rec.ID)
	}
}

func (r *Records) metaIndexCreate(rec *Record) {
	r.Lock()
	defer r.Unlock()

	r._metaIndexCreate(rec)
}

func (r *Records) _metaIndexRemove(rec *Record) {
	for key, val := range rec.Meta {
		// find the bucket for this meta
		metaIdx, found := r.metaBy[key]
		if !found {
			continue
		}
		// find the bucket by value
		bucket := metaIdx[val]
		for i, elemID := range bucket {
			// find the record by id
			if elemID == rec.ID {
				// remove it
				metaIdx[val] = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
	}
}

func (r *Records) metaIndexRemove(rec *Record) {
	r.Lock()
	defer r.Unlock()

	r._metaIndexRemove(rec)
}

// Find returns the instance of a stored Record given its
// identifier or nil if the object can not be found.
func (r *Records) Find(id uint64) *Record {
	if rec, found := r.Index.Find(id); found {
		return rec
	}
	return nil
}

// FindBy returns the list of Record objects
// indexed by a specific meta value.
func (r *Records) FindBy(meta string, val string) []*Record {
	r.RLock()
	defer r.RUnlock()

	metaIdx, found := r.metaBy[meta]
	if !found {
		return nil
	}

	records := []*Record{}
	if bucket, found := metaIdx[val]; found {
		for _, recID := range bucket {
			if rec, found := r.Index.Find(recID); found {
				records = append(records, rec)
			}
		}
	}

	return records
}

// Create stores a new record and indexes its metadata.
func (r *Records) Create(record *Record) error {
	if err := r.Index.Create(record); err != nil {
		return err
	}
	// create the meta index for this new record
	r.metaIndexCreate(record)
	return nil
}

// CreateMulti stores a batch of records at once.
func (r *Records) CreateMulti(records []*Record) error {
	if err := r.Index.CreateMulti(records); err != nil {
		return err
	}

	r.Lock()
	defer r.Unlock()

	for _, record := range records {
		r._metaIndexCreate(record)
	}

	return nil
}

// CreateWithID stores a new record keeping the identifier it
// already carries.
func (r *Records) CreateWithID(record *Record) error {
	if err := r.Index.CreateWithID(record); err != nil {
		return err
	}
	r.metaIndexCreate(record)
	return nil
}

// CreateManyWithID stores a batch of records keeping their
// identifiers.
func (r *Records) CreateManyWithID(records []*Record) error {
	if err := r.Index.CreateManyWithID(records); err != nil {
		return err
	}

	r.Lock()
	defer r.Unlock()

	for _, record := range records {
		r._metaIndexRemove(record)
		r._metaIndexCreate(record)
	}

	return nil
}

// Update changes the contents of a stored record and refreshes
// its metadata index. The old metadata is snapshotted before the copy
// overwrites it, so that entries under values the update changed do not
// linger in the index.
func (r *Records) Update(record *Record) error {
	var oldMeta map[string]string
	if stored := r.Find(record.ID); stored != nil {
		oldMeta = maps.Clone(stored.Meta)
	}

	if err := r.Index.Update(record); err != nil {
		return err
	}

	r.Lock()
	defer r.Unlock()

	r._metaIndexRemove(&Record{ID: record.ID, Meta: oldMeta})
	r._metaIndexCreate(record)
	return nil
}

// Delete removes a stored Record from the index given its identifier,
// it will return the removed object itself if found, or nil.
func (r *Records) Delete(id uint64) *Record {
	rec, found := r.Index.Delete(id)
	if !found {
		return nil
	}
	// remove the record from the meta index
	r.metaIndexRemove(rec)
	return rec
}

// DeleteMany removes multiple records at once.
func (r *Records) DeleteMany(ids []uint64) []*Record {
	deleted := r.Index.DeleteMany(ids)
	if len(deleted) == 0 {
		return deleted
	}

	r.Lock()
	defer r.Unlock()

	for _, record := range deleted {
		r._metaIndexRemove(record)
	}

	return deleted
}
