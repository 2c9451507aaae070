package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var filenameSeparators = regexp.MustCompile(`[._-]+`)

// TitleFromFilename guesses a book title from a raw file name when the
// file content carries none: the extension is dropped and separator
// characters become spaces.
func TitleFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimSpace(filenameSeparators.ReplaceAllString(base, " "))
}
