// Package storage persists named JSON records in a data directory, one
// file per record. Writes replace the whole record; records are read
// back at process start. There is no coordination across processes.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type Records struct {
	mu  sync.Mutex
	dir string
}

func NewRecords(dir string) (*Records, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Records{dir: dir}, nil
}

// Load reads the named record into v. It reports false with a nil
// error when the record has never been written.
func (r *Records) Load(name string, v any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read record %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode record %s: %w", name, err)
	}
	return true, nil
}

// Save replaces the named record with the JSON encoding of v. The
// write goes through a temp file and rename so a crash never leaves a
// half-written record behind.
func (r *Records) Save(name string, v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", name, err)
	}

	tmp := r.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write record %s: %w", name, err)
	}
	if err := os.Rename(tmp, r.path(name)); err != nil {
		return fmt.Errorf("replace record %s: %w", name, err)
	}
	return nil
}

// Delete removes the named record. Deleting an absent record is not an
// error.
func (r *Records) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete record %s: %w", name, err)
	}
	return nil
}

func (r *Records) path(name string) string {
	return filepath.Join(r.dir, name+".json")
}
