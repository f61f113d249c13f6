package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const (
	indexFolder = "/tmp/advec.index.test"
	brokenPath  = "/lulz/i/do/not/exist/"
)

func setupIndex(t testing.TB) *Index[*Record] {
	teardownIndex(t)
	if err := os.MkdirAll(indexFolder, 0755); err != nil {
		t.Fatalf("Error creating %s: %s", indexFolder, err)
	}
	return WithDriver[*Record](indexFolder, RecordDriver{})
}

func teardownIndex(t testing.TB) {
	if err := os.RemoveAll(indexFolder); err != nil {
		t.Fatalf("Error deleting %s: %s", indexFolder, err)
	}
}

func testRec(values ...float64) *Record {
	return &Record{Values: values}
}

func TestWithDriver(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	if i.dataPath != indexFolder+pathSep {
		t.Fatalf("unexpected data path %s", i.dataPath)
	} else if i.GetNextID() != 1 {
		t.Fatalf("unexpected next identifier %d", i.GetNextID())
	} else if i.Size() != 0 {
		t.Fatalf("expected an empty index, got %d elements", i.Size())
	}
}

func TestIndexPathForID(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	if path := i.pathForID(4); path != filepath.Join(indexFolder, "4.dat") {
		t.Fatalf("unexpected path %s", path)
	}
}

func TestIndexCreate(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	rec := testRec(1, 2, 3)
	if err := i.Create(rec); err != nil {
		t.Fatal(err)
	} else if rec.ID != 1 {
		t.Fatalf("unexpected identifier %d", rec.ID)
	} else if i.Size() != 1 {
		t.Fatalf("unexpected size %d", i.Size())
	} else if i.GetNextID() != 2 {
		t.Fatalf("unexpected next identifier %d", i.GetNextID())
	} else if _, err := os.Stat(i.pathForID(1)); err != nil {
		t.Fatalf("expected the data file on disk: %s", err)
	}
}

func TestIndexCreateWithBrokenDataPath(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	i.dataPath = brokenPath
	if err := i.Create(testRec(1)); err == nil {
		t.Fatal("expected error")
	} else if i.GetNextID() != 1 {
		t.Fatal("a failed creation should not consume an identifier")
	} else if i.Size() != 0 {
		t.Fatal("a failed creation should not be indexed")
	}
}

func TestIndexCreateMulti(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	batch := []*Record{testRec(1), testRec(2), testRec(3)}
	if err := i.CreateMulti(batch); err != nil {
		t.Fatal(err)
	} else if i.Size() != 3 {
		t.Fatalf("unexpected size %d", i.Size())
	}

	for n, rec := range batch {
		if rec.ID != uint64(n+1) {
			t.Fatalf("unexpected identifier %d for record %d", rec.ID, n)
		}
	}
}

func TestIndexCreateWithID(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	rec := testRec(1, 2, 3)
	rec.ID = 666
	if err := i.CreateWithID(rec); err != nil {
		t.Fatal(err)
	} else if _, found := i.Find(666); !found {
		t.Fatal("expected the record to be indexed by its identifier")
	}

	if err := i.CreateWithID(rec); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected an identifier collision, got %v", err)
	}
}

func TestIndexCreateManyWithID(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	a, b := testRec(1), testRec(2)
	a.ID, b.ID = 10, 11
	if err := i.CreateManyWithID([]*Record{a, b}); err != nil {
		t.Fatal(err)
	} else if i.Size() != 2 {
		t.Fatalf("unexpected size %d", i.Size())
	}
}

func TestIndexCreateManyWithIDRollsBack(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	if err := i.Create(testRec(1)); err != nil {
		t.Fatal(err)
	}

	a, b := testRec(2), testRec(3)
	a.ID, b.ID = 20, 21

	dataPath := i.dataPath
	i.dataPath = brokenPath
	if err := i.CreateManyWithID([]*Record{a, b}); err == nil {
		t.Fatal("expected error")
	}
	i.dataPath = dataPath

	if _, found := i.Find(20); found {
		t.Fatal("expected the batch to be rolled back")
	} else if _, found := i.Find(21); found {
		t.Fatal("expected the batch to be rolled back")
	} else if i.Size() != 1 {
		t.Fatalf("unexpected size %d", i.Size())
	}
}

func TestIndexLoad(t *testing.T) {
	i := setupIndex(t)

	for n := 0; n < 3; n++ {
		if err := i.Create(testRec(float64(n))); err != nil {
			t.Fatal(err)
		}
	}
	i.Delete(2)

	defer teardownIndex(t)

	loaded := WithDriver[*Record](indexFolder, RecordDriver{})
	if err := loaded.Load(); err != nil {
		t.Fatal(err)
	} else if loaded.Size() != 2 {
		t.Fatalf("unexpected size %d", loaded.Size())
	} else if loaded.GetNextID() != 4 {
		t.Fatalf("unexpected next identifier %d", loaded.GetNextID())
	}

	if rec, found := loaded.Find(3); !found {
		t.Fatal("expected to find record 3")
	} else if rec.Values[0] != 2 {
		t.Fatalf("unexpected values %v", rec.Values)
	}
}

func TestIndexLoadWithNoFolder(t *testing.T) {
	i := WithDriver[*Record](brokenPath, RecordDriver{})
	if err := i.Load(); err == nil {
		t.Fatal("expected error")
	}
}

func TestIndexLoadWithBrokenData(t *testing.T) {
	setupIndex(t)
	defer teardownIndex(t)

	fileName := filepath.Join(indexFolder, "1.dat")
	if err := os.WriteFile(fileName, []byte(testBrokenData), 0644); err != nil {
		t.Fatal(err)
	}

	i := WithDriver[*Record](indexFolder, RecordDriver{})
	if err := i.Load(); err == nil {
		t.Fatal("expected error for broken data")
	}
}

func TestIndexUpdate(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	rec := testRec(1, 2, 3)
	if err := i.Create(rec); err != nil {
		t.Fatal(err)
	}

	if err := i.Update(&Record{ID: 1, Values: []float64{6, 6, 6}}); err != nil {
		t.Fatal(err)
	}

	// the stored instance is updated in place and flushed
	if stored, found := i.Find(1); !found {
		t.Fatal("expected to find the record")
	} else if stored != rec {
		t.Fatal("expected the stored instance to keep its identity")
	} else if stored.Values[0] != 6 {
		t.Fatalf("unexpected values %v", stored.Values)
	}

	var back Record
	if err := Load(i.pathForID(1), &back); err != nil {
		t.Fatal(err)
	} else if back.Values[0] != 6 {
		t.Fatalf("expected the update on disk, got %v", back.Values)
	}
}

func TestIndexUpdateNotFound(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	err := i.Update(&Record{ID: 666})
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected a not found error, got %v", err)
	}
}

func TestIndexFind(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	if err := i.Create(testRec(1)); err != nil {
		t.Fatal(err)
	}

	if _, found := i.Find(1); !found {
		t.Fatal("expected to find the record")
	} else if _, found := i.Find(666); found {
		t.Fatal("expected record 666 not to be found")
	}
}

func TestIndexDelete(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	if err := i.Create(testRec(1)); err != nil {
		t.Fatal(err)
	}

	fileName := i.pathForID(1)
	if rec, found := i.Delete(1); !found {
		t.Fatal("expected the deleted record")
	} else if rec.ID != 1 {
		t.Fatalf("unexpected identifier %d", rec.ID)
	} else if _, err := os.Stat(fileName); !os.IsNotExist(err) {
		t.Fatal("expected the data file to be removed")
	} else if _, found := i.Find(1); found {
		t.Fatal("expected the record to be gone")
	}

	if _, found := i.Delete(1); found {
		t.Fatal("expected a second delete to find nothing")
	}
}

func TestIndexDeleteMany(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	for n := 0; n < 5; n++ {
		if err := i.Create(testRec(float64(n))); err != nil {
			t.Fatal(err)
		}
	}

	deleted := i.DeleteMany([]uint64{2, 4, 666})
	if len(deleted) != 2 {
		t.Fatalf("expected 2 deleted records, got %d", len(deleted))
	} else if i.Size() != 3 {
		t.Fatalf("unexpected size %d", i.Size())
	}
}

func TestIndexForEach(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	for n := 0; n < 3; n++ {
		if err := i.Create(testRec(float64(n))); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	if err := i.ForEach(func(rec *Record) error {
		visited++
		return nil
	}); err != nil {
		t.Fatal(err)
	} else if visited != 3 {
		t.Fatalf("expected 3 records visited, got %d", visited)
	}

	// an error from the callback interrupts the loop
	visited = 0
	wanted := errors.New("stop")
	if err := i.ForEach(func(rec *Record) error {
		visited++
		return wanted
	}); !errors.Is(err, wanted) {
		t.Fatalf("expected the callback error, got %v", err)
	} else if visited != 1 {
		t.Fatalf("expected the loop to stop after 1 record, got %d", visited)
	}
}

func TestIndexObjects(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	for n := 0; n < 3; n++ {
		if err := i.Create(testRec(float64(n))); err != nil {
			t.Fatal(err)
		}
	}

	if objects := i.Objects(); len(objects) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(objects))
	}
}

func TestIndexNextID(t *testing.T) {
	i := setupIndex(t)
	defer teardownIndex(t)

	i.NextID(666)
	if i.GetNextID() != 666 {
		t.Fatalf("unexpected next identifier %d", i.GetNextID())
	}

	rec := testRec(1)
	if err := i.Create(rec); err != nil {
		t.Fatal(err)
	} else if rec.ID != 666 {
		t.Fatalf("unexpected identifier %d", rec.ID)
	}
}
