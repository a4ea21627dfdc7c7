// Package catalog stores scan results in a pebble database.
//
// Each parsed file is one JSON record under "file:<path>". Each scan run
// gets a ksuid shared by the records it wrote and a summary under
// "run:<ksuid>"; ksuids sort by time, so runs list oldest first.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// ErrNotFound is returned by Get for paths that were never stored.
var ErrNotFound = errors.New("catalog: record not found")

const (
	filePrefix = "file:"
	runPrefix  = "run:"
)

// Record summarizes one parsed file.
type Record struct {
	ScanID    ksuid.KSUID `json:"scan_id"`
	Path      string      `json:"path"`
	Size      int64       `json:"size"`
	Format    string      `json:"format"`
	DRM       bool        `json:"drm"`
	Duration  int64       `json:"duration_seconds"`
	Bitrate   float64     `json:"bitrate_kbps"`
	Title     string      `json:"title,omitempty"`
	Author    string      `json:"author,omitempty"`
	Objects   int         `json:"objects"`
	ScannedAt time.Time   `json:"scanned_at"`
}

// Run summarizes one scan.
type Run struct {
	ID        ksuid.KSUID   `json:"id"`
	Root      string        `json:"root"`
	Files     int           `json:"files"`
	Errors    int           `json:"errors"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Index is a handle to an open catalog database.
type Index struct {
	db *pebble.DB
}

// Open opens or creates the database in dir.
func Open(dir string) (*Index, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", dir, err)
	}
	return &Index{db: db}, nil
}

// NewRun starts a run rooted at root with a fresh ksuid.
func NewRun(root string) Run {
	id := ksuid.New()
	return Run{ID: id, Root: root, StartedAt: id.Time()}
}

// Put stores r, replacing any record for the same path.
func (x *Index) Put(r Record) error {
	return x.set(filePrefix+r.Path, r)
}

// PutBatch stores records atomically.
func (x *Index) PutBatch(records []Record) error {
	b := x.db.NewBatch()
	defer b.Close()

	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode record %s: %w", r.Path, err)
		}
		if err := b.Set([]byte(filePrefix+r.Path), data, nil); err != nil {
			return err
		}
	}
	return b.Commit(pebble.Sync)
}

// Get returns the record stored for path.
func (x *Index) Get(path string) (Record, error) {
	var r Record
	err := x.get(filePrefix+path, &r)
	return r, err
}

// Delete removes the record for path. Deleting a missing path is not an
// error.
func (x *Index) Delete(path string) error {
	return x.db.Delete([]byte(filePrefix+path), pebble.Sync)
}

// List returns every record in path order.
func (x *Index) List() ([]Record, error) {
	var out []Record
	err := scan(x.db, filePrefix, func(r Record) {
		out = append(out, r)
	})
	return out, err
}

// PutRun stores a run summary.
func (x *Index) PutRun(r Run) error {
	return x.set(runPrefix+r.ID.String(), r)
}

// Runs returns every run summary, oldest first.
func (x *Index) Runs() ([]Run, error) {
	var out []Run
	err := scan(x.db, runPrefix, func(r Run) {
		out = append(out, r)
	})
	return out, err
}

// Close closes the database.
func (x *Index) Close() error {
	return x.db.Close()
}

func (x *Index) set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return x.db.Set([]byte(key), data, pebble.Sync)
}

func (x *Index) get(key string, v any) error {
	data, closer, err := x.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// scan decodes every value under prefix in key order.
func scan[T any](db *pebble.DB, prefix string, fn func(T)) error {
	iter, err := db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: prefixEnd(prefix),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		var v T
		if err := json.Unmarshal(iter.Value(), &v); err != nil {
			return fmt.Errorf("decode %s: %w", iter.Key(), err)
		}
		fn(v)
	}
	return iter.Error()
}

// prefixEnd returns the smallest key greater than every key with prefix.
// Prefixes here are ASCII and end in ':', so incrementing the last byte
// cannot overflow.
func prefixEnd(prefix string) []byte {
	end := []byte(prefix)
	end[len(end)-1]++
	return end
}
