// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation. Configuration is passed explicitly (by pointer) to the
// packages that need it; there is no module-level state.
package config

import (
	"errors"
	"strings"
)

// --- Enum types for validated string fields ---

// NamingMode selects the rename policy.
type NamingMode string

const (
	ModeSlug       NamingMode = "slug" // ASCII slug + short hash (default).
	ModeSequential NamingMode = "seq"  // img_0001.ext over the sorted list.
	ModeDate       NamingMode = "date" // img_YYYYMMDD_HHMMSS.ext from EXIF.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to the
// packages that need it.
type Config struct {
	// Target directory (from --dir). Resolved to an absolute path by the
	// entrypoint before the pipeline runs.
	Dir string

	// Naming policy.
	Mode NamingMode

	// Behavior flags.
	DryRun bool // Preview only; never touch the filesystem.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Dir:       ".",
		Mode:      ModeSlug,
		DryRun:    false,
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that a target
// directory is set.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeSlug, ModeSequential, ModeDate:
		// valid
	default:
		return errors.New("invalid mode (use 'slug', 'seq' or 'date')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Dir == "" {
		return errors.New("target directory must not be empty")
	}
	return nil
}
