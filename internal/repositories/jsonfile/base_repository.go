package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	entriesFile  = "entries.json"
	expensesFile = "expenses.json"
	clientsFile  = "clients.json"
	configFile   = "config.json"
)

// BaseRepository provides the file access shared by every JSON repository.
// All repositories of one provider share the mutex, so a read-modify-write
// on one file never interleaves with another on the same data directory.
type BaseRepository struct {
	Dir string
	mu  *sync.Mutex
}

func (r *BaseRepository) path(name string) string {
	return filepath.Join(r.Dir, name)
}

// readJSON decodes the named file into v. A missing or empty file leaves v
// untouched and reports false.
func (r *BaseRepository) readJSON(name string, v any) (bool, error) {
	data, err := os.ReadFile(r.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return true, nil
}

// writeJSON replaces the named file with the indented encoding of v. The
// data goes to a temp file in the same directory first and is renamed over
// the target, so readers see either the old or the new document.
func (r *BaseRepository) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(r.Dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, r.path(name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
