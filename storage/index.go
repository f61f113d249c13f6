package storage

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/evilsocket/islazy/log"
)

var (
	// ErrInvalidID is returned when the system detects a collision of
	// identifiers, usually due to multiple instances running on the
	// same data path.
	ErrInvalidID = errors.New("identifier is not unique")
	// ErrRecordNotFound is returned when the storage
	// manager can't find an object mapped to the queried identifier.
	ErrRecordNotFound = errors.New("record not found")

	pathSep = string(os.PathSeparator)
)

// Index is a generic data structure used to map objects of one type
// to unique integer identifiers and persist them on disk
// transparently.
type Index[M any] struct {
	sync.RWMutex
	dataPath string
	index    map[uint64]M
	nextID   uint64
	driver   Driver[M]
}

// WithDriver creates a new Index object with the specified storage.Driver
// used to handle the specifics of the objects being handled by this
// instance of the index.
func WithDriver[M any](dataPath string, driver Driver[M]) *Index[M] {
	if !strings.HasSuffix(dataPath, pathSep) {
		dataPath += pathSep
	}
	return &Index[M]{
		dataPath: dataPath,
		index:    make(map[uint64]M),
		nextID:   1,
		driver:   driver,
	}
}

func (i *Index[M]) GetNextID() uint64 {
	i.RLock()
	defer i.RUnlock()
	return i.nextID
}

// NOTE: pathSep is added if needed when the index object is created,
// this spares us a third string concatenation or worse a Sprintf call.
func (i *Index[M]) pathForID(id uint64) string {
	return i.dataPath + strconv.FormatUint(id, 10) + DatFileExt
}

// Load enumerates files in the data folder while deserializing them
// and mapping them into the index by their identifiers.
func (i *Index[M]) Load() error {
	i.Lock()
	defer i.Unlock()

	absPath, files, err := ListPath(i.dataPath)
	if err != nil {
		return err
	}

	i.dataPath = absPath + pathSep
	i.nextID = 1
	if nfiles := len(files); nfiles > 0 {
		log.Info("loading %d data files from %s ...", nfiles, i.dataPath)
		for _, fileName := range files {
			record := i.driver.Make()
			if err := Load(fileName, record); err != nil {
				return err
			}
			recID := i.driver.GetID(record)
			i.index[recID] = record
			// the list 'files' returned by ListPath is not sorted,
			// so if the last 2 loaded files have the last sequential ids (4 and 5 for example)
			// the id will be increased with the second-last record but not with the last one.
			if recID >= i.nextID {
				i.nextID = recID + 1
			}
		}
	}

	return nil
}

// ForEach executes a callback passing as argument every
// element of the index, it interrupts the loop if the
// callback returns an error, the same error will be returned.
func (i *Index[M]) ForEach(cb func(record M) error) error {
	i.RLock()
	defer i.RUnlock()
	for _, record := range i.index {
		if err := cb(record); err != nil {
			return err
		}
	}
	return nil
}

// Objects returns a list of the objects stored in this
// index.
func (i *Index[M]) Objects() []M {
	i.RLock()
	defer i.RUnlock()

	asSlice := make([]M, 0, len(i.index))
	for _, record := range i.index {
		asSlice = append(asSlice, record)
	}
	return asSlice
}

// Size returns the number of elements stored in this index.
func (i *Index[M]) Size() int {
	i.RLock()
	defer i.RUnlock()
	return len(i.index)
}

// NextID sets the value of the integer identifier to use for
// every future record. NOTE: This method is just for internal
// use and the only reason why it's exposed is because of unit
// tests, do not use.
func (i *Index[M]) NextID(next uint64) {
	i.Lock()
	defer i.Unlock()
	i.nextID = next
}

// createUnlocked is the bare creation step shared by Create and
// CreateMulti, the caller must hold the write lock.
func (i *Index[M]) createUnlocked(record M) error {
	recID := i.nextID
	i.driver.SetID(record, recID)
	if _, found := i.index[recID]; found {
		return ErrInvalidID
	} else if err := Flush(record, i.pathForID(recID)); err != nil {
		return err
	}

	i.nextID++
	i.index[recID] = record

	return nil
}

// Create stores the object in the index, setting its
// identifier to a new, unique value. Once created the object
// will be used in memory and persisted on disk.
func (i *Index[M]) Create(record M) error {
	i.Lock()
	defer i.Unlock()
	return i.createUnlocked(record)
}

// CreateMulti stores a batch of objects with a single lock
// round trip.
func (i *Index[M]) CreateMulti(records []M) error {
	i.Lock()
	defer i.Unlock()

	for _, record := range records {
		if err := i.createUnlocked(record); err != nil {
			return err
		}
	}
	return nil
}

// CreateWithID stores the object in the index keeping the
// identifier it already carries.
func (i *Index[M]) CreateWithID(record M) error {
	i.Lock()
	defer i.Unlock()

	recID := i.driver.GetID(record)
	if _, found := i.index[recID]; found {
		return ErrInvalidID
	} else if err := Flush(record, i.pathForID(recID)); err != nil {
		return err
	}

	i.index[recID] = record

	return nil
}

// CreateManyWithID stores a batch of objects keeping their
// identifiers, rolling the whole batch back if any of them fails.
func (i *Index[M]) CreateManyWithID(records []M) (err error) {
	rollbackOnError := func(e *error) {
		if *e == nil {
			return
		}
		// rollback
		for _, record := range records {
			id := i.driver.GetID(record)
			delete(i.index, id)
			os.Remove(i.pathForID(id))
		}
	}

	i.Lock()
	defer i.Unlock()

	defer rollbackOnError(&err)

	for _, record := range records {
		id := i.driver.GetID(record)
		if err = Flush(record, i.pathForID(id)); err != nil {
			break
		}

		i.index[id] = record
	}

	return
}

// Update changes the contents of a stored object given an object
// with its identifier and the new values to use. This operation
// will flush the record on disk.
func (i *Index[M]) Update(record M) error {
	i.Lock()
	defer i.Unlock()

	recID := i.driver.GetID(record)
	stored, found := i.index[recID]
	if !found {
		return ErrRecordNotFound
	} else if err := i.driver.Copy(stored, record); err != nil {
		return err
	}
	return Flush(stored, i.pathForID(recID))
}

// Find returns the instance of a stored object given its identifier.
func (i *Index[M]) Find(id uint64) (M, bool) {
	i.RLock()
	defer i.RUnlock()

	record, found := i.index[id]
	return record, found
}

// Delete removes a stored object from the index given its identifier,
// it will return the removed object itself if found.
// This operation will also remove the object data file from disk.
func (i *Index[M]) Delete(id uint64) (M, bool) {
	i.Lock()
	defer i.Unlock()

	record, found := i.index[id]
	if !found {
		return record, false
	}

	delete(i.index, id)

	os.Remove(i.pathForID(id))

	return record, true
}

// DeleteMany removes multiple records at once.
func (i *Index[M]) DeleteMany(ids []uint64) []M {
	res := make([]M, 0, len(ids))

	i.Lock()
	defer i.Unlock()

	for _, id := range ids {
		record, found := i.index[id]
		if !found {
			continue
		}
		delete(i.index, id)
		os.Remove(i.pathForID(id))
		res = append(res, record)
	}

	return res
}
