package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/imgrename/internal/config"
	"github.com/backmassage/imgrename/internal/display"
	"github.com/backmassage/imgrename/internal/exifdate"
	"github.com/backmassage/imgrename/internal/logging"
	"github.com/backmassage/imgrename/internal/naming"
)

// Run is the top-level batch entry point. It scans cfg.Dir, builds one
// collision-resolved candidate per entry in sorted order, and either
// previews (dry-run) or executes each rename, printing one line per file
// to stdout.
//
// Zero eligible files is not an error: a single diagnostic naming the
// supported extensions is printed and the run ends normally. A failed
// rename aborts the remaining batch; completed renames stay (no rollback).
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	entries, err := Discover(cfg.Dir)
	if err != nil {
		return stats, fmt.Errorf("scan %s: %w", cfg.Dir, err)
	}
	stats.Total = len(entries)

	if stats.Total == 0 {
		fmt.Fprintf(os.Stdout, "No image files found (supported extensions: %s)\n",
			strings.Join(SupportedExtensions(), ", "))
		return stats, nil
	}

	logRunHeader(cfg, log, &stats)

	resolver := naming.NewResolver()
	width := naming.SequenceWidth(stats.Total)

	for i, e := range entries {
		stats.Current = i + 1

		if ctx.Err() != nil {
			stats.Interrupted = true
			log.Warn("Interrupted after %d of %d files", i, stats.Total)
			return stats, nil
		}

		src := filepath.Join(cfg.Dir, e.Name)
		candidate, err := candidateName(cfg, e, src, i+1, width)
		if err != nil {
			return stats, err
		}
		dst := resolver.Resolve(filepath.Join(cfg.Dir, candidate))

		if cfg.DryRun {
			fmt.Fprintln(os.Stdout, display.RenameLine(e.Name, filepath.Base(dst), true))
			stats.Renamed++
			continue
		}

		if err := os.Rename(src, dst); err != nil {
			return stats, fmt.Errorf("rename %s: %w", e.Name, err)
		}
		fmt.Fprintln(os.Stdout, display.RenameLine(e.Name, filepath.Base(dst), false))
		stats.Renamed++
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// candidateName builds the destination basename for one entry according to
// the configured naming policy.
func candidateName(cfg *config.Config, e Entry, src string, index, width int) (string, error) {
	switch cfg.Mode {
	case config.ModeSequential:
		return naming.SequentialName(index, width, e.Ext), nil
	case config.ModeDate:
		return dateCandidate(src, e.Ext)
	default:
		return naming.SlugName(e.Stem, e.Name, e.Ext), nil
	}
}

// dateCandidate prefers the EXIF capture time and falls back to the file
// modification time when no usable EXIF block is present.
func dateCandidate(src, ext string) (string, error) {
	if t, err := exifdate.Capture(src); err == nil {
		return naming.DateName(t, ext), nil
	}
	fi, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", filepath.Base(src), err)
	}
	return naming.DateName(fi.ModTime(), ext), nil
}

// --- Logging helpers (verbose only, so default stdout stays one line per file) ---

func logRunHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Debug(cfg.Verbose, "Found %d image files in %s", stats.Total, cfg.Dir)
	log.Debug(cfg.Verbose, "Mode: %s", cfg.Mode)
	if cfg.DryRun {
		log.Debug(cfg.Verbose, "DRY RUN: no files will be renamed")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	if cfg.DryRun {
		log.Debug(cfg.Verbose, "Done: %d of %d renames previewed", stats.Renamed, stats.Total)
		return
	}
	log.Debug(cfg.Verbose, "Done: %d of %d files renamed", stats.Renamed, stats.Total)
}
