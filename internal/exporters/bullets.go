// Package exporters converts parsed highlight exports into other on-disk
// formats. The bullet exporter rewrites Kindle notebook CSVs as bulleted
// text files in the plain-text ingest format.
package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/srinidhibhat/booknotes-v2/internal/kindlecsv"
)

// ConvertResult summarizes a conversion pass.
type ConvertResult struct {
	FilesConverted int `json:"files_converted"`
	FilesSkipped   int `json:"files_skipped"`
}

// BulletExporter writes one .txt per source .csv, next to the source.
type BulletExporter struct {
	parser *kindlecsv.Parser
}

func NewBulletExporter() *BulletExporter {
	return &BulletExporter{parser: kindlecsv.NewParser()}
}

// ConvertPath converts a single CSV file, or every CSV in a directory.
// Windows Zone.Identifier artifacts are ignored.
func (e *BulletExporter) ConvertPath(target string) (ConvertResult, error) {
	result := ConvertResult{}

	info, err := os.Stat(target)
	if err != nil {
		return result, fmt.Errorf("failed to stat %s: %w", target, err)
	}
	if !info.IsDir() {
		converted, err := e.convertFile(target)
		if err != nil {
			return result, err
		}
		if converted {
			result.FilesConverted++
		} else {
			result.FilesSkipped++
		}
		return result, nil
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return result, fmt.Errorf("failed to read directory %s: %w", target, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		lower := strings.ToLower(name)
		if entry.IsDir() || !strings.HasSuffix(lower, ".csv") || strings.Contains(lower, "zone.identifier") {
			continue
		}
		converted, err := e.convertFile(filepath.Join(target, name))
		if err != nil {
			return result, err
		}
		if converted {
			result.FilesConverted++
		} else {
			result.FilesSkipped++
		}
	}
	return result, nil
}

func (e *BulletExporter) convertFile(path string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	export := e.parser.Parse(string(raw))
	if len(export.Rows) == 0 {
		logrus.WithField("file", path).Info("no highlight rows, skipping")
		return false, nil
	}

	var b strings.Builder
	b.WriteString(export.Title + "\n")
	if export.Author != "" {
		b.WriteString("by " + export.Author + "\n")
	} else {
		b.WriteString("\n")
	}
	for _, row := range export.Rows {
		text := strings.TrimSpace(row.Annotation)
		if text == "" {
			continue
		}
		b.WriteString("- " + capitalize(text) + "\n")
	}

	if err := os.WriteFile(outPathFor(path), []byte(b.String()), 0o644); err != nil {
		return false, fmt.Errorf("failed to write converted file: %w", err)
	}
	return true, nil
}

// outPathFor swaps the extension for .txt, tolerating stray suffixes like
// ".csv?Zone.Identifier" where the real extension sits mid-name.
func outPathFor(csvPath string) string {
	base := strings.TrimSuffix(csvPath, filepath.Ext(csvPath))
	base = strings.TrimSuffix(base, ".csv")
	return base + ".txt"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
