package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/dynbind/glu"
	"github.com/wippyai/dynbind/symtab"
)

// config is the TOML file layout. Flags override file values.
type config struct {
	LogLevel    string   `toml:"log_level"`
	Wasm        string   `toml:"wasm"`
	Symbols     string   `toml:"symbols"`
	Preload     []string `toml:"preload"`
	Interactive bool     `toml:"interactive"`
}

func defaultConfig() config {
	return config{
		LogLevel: "warn",
		Preload:  []string{"core"},
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

type flags struct {
	config      string
	preload     string
	wasm        string
	symbols     string
	logLevel    string
	list        bool
	interactive bool
	demo        bool
}

func parseFlags(args []string) (flags, *flag.FlagSet, error) {
	var f flags
	fs := flag.NewFlagSet("glu-info", flag.ContinueOnError)
	fs.StringVar(&f.config, "config", "", "Path to a TOML config file")
	fs.StringVar(&f.preload, "preload", "", "Exports to preload: comma list, core, all or none")
	fs.StringVar(&f.wasm, "wasm", "", "Bind against a wasm module instead of the native library")
	fs.StringVar(&f.symbols, "symbols", "", "Extra TOML symbol table merged into the GLU table")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&f.list, "list", false, "List the symbol table and exit")
	fs.BoolVar(&f.interactive, "i", false, "Interactive mode with TUI")
	fs.BoolVar(&f.demo, "demo", true, "Run the GLU demo sections")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage: glu-info [-config file.toml] [-preload names] [-wasm file.wasm] [-symbols extra.toml]")
		fmt.Fprintln(out, "       glu-info -list")
		fmt.Fprintln(out, "       glu-info -i  (interactive mode)")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return f, fs, err
	}
	return f, fs, nil
}

// apply overrides cfg with every flag set on the command line.
func (f flags) apply(fs *flag.FlagSet, cfg *config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "preload":
			cfg.Preload = splitList(f.preload)
		case "wasm":
			cfg.Wasm = f.wasm
		case "symbols":
			cfg.Symbols = f.symbols
		case "log-level":
			cfg.LogLevel = f.logLevel
		case "i":
			cfg.Interactive = f.interactive
		}
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// preloadNames expands the preload list against table. "all" and "*" mean
// every export, "core" the exports every GLU build has, "none" nothing.
func preloadNames(list []string, table *symtab.Table) []string {
	var names []string
	for _, item := range list {
		switch item {
		case "none":
			return nil
		case "all", "*":
			names = append(names, table.Names()...)
		case "core":
			names = append(names, glu.CoreNames()...)
		default:
			names = append(names, item)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func loadTable(path string) (*symtab.Table, error) {
	if path == "" {
		return glu.Symbols, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbols: %w", err)
	}
	defer f.Close()

	extra, err := symtab.DecodeTOML(f)
	if err != nil {
		return nil, fmt.Errorf("symbols %s: %w", path, err)
	}
	return glu.Symbols.Merge(extra)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
