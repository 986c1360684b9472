// Package save persists simulation snapshots as a JSON file. Failures here
// are the caller's to log; they never feed back into simulation state.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"sparselife/internal/sim"
)

// DefaultPath is where the snapshot lives unless overridden by a flag.
const DefaultPath = "save.json"

// File reads and writes snapshots at a fixed path.
type File struct {
	path string
}

// NewFile returns a store at path, falling back to DefaultPath when empty.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Load reads the stored snapshot. A missing file is not an error: it returns
// a zero snapshot and ok=false so a fresh grid starts instead.
func (f *File) Load() (sim.Snapshot, bool, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return sim.Snapshot{}, false, nil
		}
		return sim.Snapshot{}, false, fmt.Errorf("read %s: %w", f.path, err)
	}

	var snap sim.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return sim.Snapshot{}, false, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return snap, true, nil
}

// Write stores the snapshot, replacing any previous one.
func (f *File) Write(snap sim.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}
