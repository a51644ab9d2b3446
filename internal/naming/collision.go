package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Resolver returns collision-free destination paths. A path is free when it
// neither exists on the filesystem nor has been claimed earlier in the run;
// the claim set keeps dry-run previews accurate even though nothing is
// renamed. All methods are goroutine-safe.
type Resolver struct {
	mu      sync.Mutex
	claimed map[string]bool
}

// NewResolver creates a ready-to-use resolver.
func NewResolver() *Resolver {
	return &Resolver{claimed: make(map[string]bool)}
}

// Resolve returns path unchanged when it is free, otherwise the first free
// probe of base_1.ext, base_2.ext, ... in increasing order. The returned
// path is claimed for the remainder of the run.
//
// The probe loop has no upper bound: every candidate is distinct and the
// directory holds finitely many entries, so it terminates.
func (r *Resolver) Resolve(path string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.free(path) {
		r.claimed[path] = true
		return path
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if r.free(candidate) {
			r.claimed[candidate] = true
			return candidate
		}
	}
}

// free reports whether path is unclaimed and absent from the filesystem.
// A stat error other than "not exist" counts as occupied; probing moves on
// rather than risking an overwrite.
func (r *Resolver) free(path string) bool {
	if r.claimed[path] {
		return false
	}
	_, err := os.Lstat(path)
	return errors.Is(err, fs.ErrNotExist)
}
