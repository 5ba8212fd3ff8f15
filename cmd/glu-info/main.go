package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/dynbind/binder"
	"github.com/wippyai/dynbind/glu"
	"github.com/wippyai/dynbind/loader"
	"github.com/wippyai/dynbind/loader/dl"
	"github.com/wippyai/dynbind/loader/wasm"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	f, fs, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	f.apply(fs, &cfg)

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	binder.SetLogger(log)
	wasm.SetLogger(log)

	table, err := loadTable(cfg.Symbols)
	if err != nil {
		return err
	}
	ld, closeLoader, err := newLoader(ctx, cfg.Wasm)
	if err != nil {
		return err
	}
	defer closeLoader()

	cache := binder.NewWithOptions(table, ld, glu.LibraryName, binder.Options{Name: "glu-info"})

	switch {
	case f.list:
		printTable(out, cache)
		return nil
	case cfg.Interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("interactive mode needs a terminal")
		}
		return runInteractive(cache)
	}

	names := preloadNames(cfg.Preload, table)
	if len(names) > 0 {
		start := time.Now()
		if err := cache.Preload(names...); err != nil {
			return fmt.Errorf("preload: %w", err)
		}
		took := time.Since(start)
		log.Info("preloaded", zap.Int("symbols", len(names)), zap.Duration("took", took))
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Preloaded %d symbols in %s", len(names), took.Round(time.Microsecond))))
	}

	if !f.demo {
		return nil
	}
	return runDemo(out, glu.Wrap(cache))
}

func newLoader(ctx context.Context, wasmFile string) (loader.Loader, func(), error) {
	if wasmFile == "" {
		return dl.New(), func() {}, nil
	}
	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	rt := wazero.NewRuntime(ctx)
	ld := wasm.New(ctx, rt).Register(glu.LibraryName, wasm.Binary(data))
	return ld, func() { _ = rt.Close(ctx) }, nil
}
