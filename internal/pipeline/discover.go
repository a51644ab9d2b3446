package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Supported image file extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".heic": true,
}

// Entry describes one eligible image file in the target directory.
type Entry struct {
	Name string // On-disk basename, exact.
	Stem string // Basename without extension, exact.
	Ext  string // Extension, lowercased, with leading dot.
}

// Discover lists the eligible image files in dir: regular files only
// (symlinks and directories excluded) whose lowercased extension is on the
// allow-list. The result follows os.ReadDir's lexicographic byte order of
// filenames, so processing order and sequential numbering are reproducible.
func Discover(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, de := range dirents {
		if !de.Type().IsRegular() {
			continue
		}
		rawExt := filepath.Ext(de.Name())
		ext := strings.ToLower(rawExt)
		if !imageExtensions[ext] {
			continue
		}
		entries = append(entries, Entry{
			Name: de.Name(),
			Stem: strings.TrimSuffix(de.Name(), rawExt),
			Ext:  ext,
		})
	}
	return entries, nil
}

// SupportedExtensions returns the allow-list in sorted order, for the
// no-eligible-files diagnostic.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(imageExtensions))
	for ext := range imageExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
