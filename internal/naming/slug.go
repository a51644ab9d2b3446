package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugFallback is returned when nothing of the input survives normalization
// (e.g. a purely CJK name). The short hash tag carries the identity then.
const slugFallback = "img"

var (
	reNonAlnum       = regexp.MustCompile(`[^a-z0-9]+`)
	reUnderscoreRuns = regexp.MustCompile(`_+`)
	dropNonASCII     = runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII }))
	asciiDecomposer  = transform.Chain(norm.NFKD, dropNonASCII)
)

// Slugify converts an arbitrary string into a safe ASCII filename token.
// It NFKD-decomposes the input so accented letters shed their combining
// marks, drops everything non-ASCII (accents, CJK, emoji, symbols; no
// transliteration), lowercases, replaces each run outside [a-z0-9] with a
// single underscore, trims and collapses underscores.
//
// The result always matches ^[a-z0-9_]+$ and is never empty; Slugify is
// idempotent on its own output.
func Slugify(s string) string {
	if out, _, err := transform.String(asciiDecomposer, s); err == nil {
		s = out
	}
	s = strings.ToLower(s)
	s = reNonAlnum.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	s = reUnderscoreRuns.ReplaceAllString(s, "_")
	if s == "" {
		return slugFallback
	}
	return s
}
