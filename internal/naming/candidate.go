package naming

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxSlugLen caps the slug portion of a slug-mode candidate; the hash tag
// keeps truncated names distinguishable.
const maxSlugLen = 30

// dateLayout renders capture times as YYYYMMDD_HHMMSS.
const dateLayout = "20060102_150405"

// SlugName builds the slug-mode candidate basename: the (truncated) slug of
// the stem, an underscore, the short hash of the exact on-disk filename, and
// the lowercased original extension.
func SlugName(stem, originalName, ext string) string {
	slug := Slugify(stem)
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return slug + "_" + ShortHash(originalName) + strings.ToLower(ext)
}

// SequentialName builds the sequential-mode candidate basename for the
// 1-based index, zero-padded to width.
func SequentialName(index, width int, ext string) string {
	return fmt.Sprintf("img_%0*d%s", width, index, strings.ToLower(ext))
}

// DateName builds the date-mode candidate basename from a capture time.
func DateName(t time.Time, ext string) string {
	return "img_" + t.Format(dateLayout) + strings.ToLower(ext)
}

// SequenceWidth returns the zero-padding width for sequential naming:
// at least 4 digits, growing with the total file count so numbering stays
// aligned past 9999 files.
func SequenceWidth(total int) int {
	w := len(strconv.Itoa(total))
	if w < 4 {
		w = 4
	}
	return w
}
