package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into naming, behavior, display, and utility.
// Mode flags (--seq, --date) are captured as bools and applied after Parse
// so the Config default (slug) holds unless the user passes one.

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, conflicting modes,
// unexpected positional argument).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("imgrename", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var modes modeFlags

	defineNamingFlags(fs, cfg, &modes)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &modes)
	defineUtilityFlags(fs, &modes)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if modes.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if modes.showVersion {
		fmt.Fprintln(os.Stdout, "imgrename v"+version)
		os.Exit(0)
	}

	if err := applyModeFlags(cfg, &modes); err != nil {
		return err
	}

	if args := fs.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument %q (use --dir to set the target directory)", args[0])
	}

	cfg.Dir = NormalizeDirArg(cfg.Dir)
	return nil
}

// modeFlags holds boolean flags that are applied after Parse.
// The naming-mode pair maps onto cfg.Mode; the color pair onto cfg.ColorMode;
// showHelp and showVersion trigger exit.
type modeFlags struct {
	seq         bool
	date        bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineNamingFlags registers --dir, --seq, --date.
func defineNamingFlags(fs *flag.FlagSet, cfg *Config, m *modeFlags) {
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "Target directory (default: current directory)")
	fs.BoolVar(&m.seq, "seq", false, "Sequential naming: img_0001.ext over the sorted file list")
	fs.BoolVar(&m.date, "date", false, "Capture-date naming: img_20240131_142501.ext (EXIF, mtime fallback)")
}

// defineBehaviorFlags registers -n/--dry-run.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not rename anything")
	fs.BoolVar(&cfg.DryRun, "n", false, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, m *modeFlags) {
	fs.BoolVar(&m.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&m.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose run header and summary")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, m *modeFlags) {
	fs.BoolVar(&m.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&m.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&m.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&m.showHelp, "h", false, "Same as --help")
}

// applyModeFlags maps the captured bools onto cfg.Mode and cfg.ColorMode.
func applyModeFlags(cfg *Config, m *modeFlags) error {
	if m.seq && m.date {
		return errors.New("choose one of --seq or --date")
	}
	if m.seq {
		cfg.Mode = ModeSequential
	}
	if m.date {
		cfg.Mode = ModeDate
	}
	if m.noColor {
		cfg.ColorMode = ColorNever
	} else if m.forceColor {
		cfg.ColorMode = ColorAlways
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "imgrename v" + version + " -- batch image renamer"},
		{"", ""},
		{"  imgrename [OPTIONS]", ""},
		{"", ""},
		{"Naming", ""},
		{"  --dir <path>", "Target directory (default: current directory)"},
		{"  --seq", "Sequential naming: img_0001.ext"},
		{"  --date", "Capture-date naming: img_20240131_142501.ext"},
		{"", "Default: ASCII slug of the name plus a 6-hex tag"},
		{"", ""},
		{"Behavior", ""},
		{"  -n, --dry-run", "Preview only; do not rename anything"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose run header and summary"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, "  "+l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
