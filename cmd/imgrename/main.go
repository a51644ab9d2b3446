// Command imgrename is the CLI entrypoint for the batch image renamer.
//
// It parses flags, validates configuration, resolves the target directory,
// and runs the rename pipeline (slug, sequential, or capture-date naming,
// with optional dry-run preview).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/imgrename/internal/config"
	"github.com/backmassage/imgrename/internal/logging"
	"github.com/backmassage/imgrename/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// Exit codes: 0 normal (including no eligible files), 1 fatal error,
// 130 interrupted.
const exitInterrupted = 130

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr via fmt. Once NewLogger succeeds, output goes through the
	// logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "imgrename: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "imgrename: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "imgrename: %v\n", err)
		return 1
	}
	defer log.Close()

	// Resolve the target to an absolute, symlink-free path before scanning.
	dirAbs, err := absPath(cfg.Dir)
	if err != nil {
		log.Error("Directory not found: %s", cfg.Dir)
		return 1
	}
	fi, err := os.Stat(dirAbs)
	if err != nil || !fi.IsDir() {
		log.Error("Not a directory: %s", dirAbs)
		return 1
	}
	cfg.Dir = dirAbs

	log.Debug(cfg.Verbose, "=== imgrename v%s (%s) ===", version, commit)

	// Cancel the context on SIGINT/SIGTERM so the pipeline stops between
	// files; the in-progress rename always completes.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file")
		cancel()
	}()

	stats, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if stats.Interrupted {
		return exitInterrupted
	}
	return 0
}

// absPath returns the absolute path with symlinks resolved.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
