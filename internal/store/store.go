// Package store reads and writes the persistent JSON record collections.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Load reads a persisted collection. A missing file yields the fallback;
// an unparsable file is logged as a warning and also yields the fallback,
// so a corrupt store never blocks a run (its content is discarded at
// write time). Any other read failure is returned to the caller.
func Load[T any](path string, fallback []T) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fallback, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		logrus.WithField("path", path).WithError(err).Warn("could not parse collection, resetting")
		return fallback, nil
	}
	return records, nil
}

// Save serializes the whole collection with stable key order, two-space
// indentation and a trailing newline.
func Save[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}
	return Write(path, records)
}

// Write marshals any value as indented JSON and renames a temp file over
// the target, so concurrent readers never observe a partial write.
func Write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
