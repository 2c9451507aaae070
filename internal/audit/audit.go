// Package audit persists one JSON report per ingest run so past runs can
// be inspected after the fact.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Auditor struct {
	Dir string
}

func NewAuditor(dir string) *Auditor {
	return &Auditor{Dir: dir}
}

// Enabled reports whether an audit directory is configured.
func (a *Auditor) Enabled() bool {
	return a.Dir != ""
}

// SaveReport writes the report under a fresh UUID4 filename and returns
// the filename.
func (a *Auditor) SaveReport(report any) (string, error) {
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audit directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')

	filename := fmt.Sprintf("%s.json", uuid.New().String())
	if err := os.WriteFile(filepath.Join(a.Dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}
	return filename, nil
}
