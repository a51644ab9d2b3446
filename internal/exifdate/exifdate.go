// Package exifdate extracts capture timestamps from image EXIF metadata.
package exifdate

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// Capture returns the EXIF capture time of the image at path (DateTime /
// DateTimeOriginal). It fails for files without a usable EXIF block (PNG,
// GIF, stripped JPEGs); callers are expected to fall back to the file
// modification time.
func Capture(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}
	return x.DateTime()
}
