// Package naming derives destination filenames for the rename pipeline:
// ASCII slug normalization, short hash tags, candidate building for the
// slug/sequential/date policies, and collision resolution.
//
// Split along these boundaries: slug.go, hash.go, candidate.go, collision.go.
package naming
