package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	dynerrors "github.com/wippyai/dynbind/errors"
	"github.com/wippyai/dynbind/glu"
	"github.com/wippyai/dynbind/symtab"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig("")
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := writeFile(t, "glu.toml", `
log_level = "debug"
preload = ["gluSphere", "gluDisk"]
interactive = true
wasm = "glu.wasm"
symbols = "extra.toml"
`)
		cfg, err := loadConfig(path)
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		want := config{
			LogLevel:    "debug",
			Preload:     []string{"gluSphere", "gluDisk"},
			Interactive: true,
			Wasm:        "glu.wasm",
			Symbols:     "extra.toml",
		}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, "glu.toml", "log_levle = \"debug\"\n")
		if _, err := loadConfig(path); err == nil || !strings.Contains(err.Error(), "log_levle") {
			t.Errorf("loadConfig error = %v, want unknown key log_levle", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := writeFile(t, "glu.toml", `
log_level = "debug"
preload = ["all"]
wasm = "glu.wasm"
`)
	f, fs, err := parseFlags([]string{"-config", path, "-preload", "gluSphere, gluDisk", "-log-level", "error"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg, err := loadConfig(f.config)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	f.apply(fs, &cfg)

	want := config{
		LogLevel: "error",
		Preload:  []string{"gluSphere", "gluDisk"},
		Wasm:     "glu.wasm",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if !f.demo {
		t.Error("-demo should default to true")
	}
}

func TestPreloadNames(t *testing.T) {
	tests := []struct {
		name string
		list []string
		want []string
	}{
		{"empty", nil, nil},
		{"none", []string{"gluSphere", "none"}, nil},
		{"explicit", []string{"gluSphere", "gluDisk", "gluSphere"}, []string{"gluDisk", "gluSphere"}},
		{"all", []string{"all"}, glu.Symbols.Names()},
		{"star", []string{"*"}, glu.Symbols.Names()},
		{"core", []string{"core"}, glu.CoreNames()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preloadNames(tt.list, glu.Symbols)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("preloadNames mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadTable(t *testing.T) {
	table, err := loadTable("")
	if err != nil {
		t.Fatalf("loadTable: %v", err)
	}
	if table != glu.Symbols {
		t.Error("empty path should return the GLU table")
	}

	path := writeFile(t, "extra.toml", `
[[symbol]]
name = "cos"
args = ["f64"]
returns = "f64"

[[symbol]]
name = "gluNewQuadric"
returns = "ptr"
`)
	table, err = loadTable(path)
	if err != nil {
		t.Fatalf("loadTable: %v", err)
	}
	if table.Len() != glu.Symbols.Len()+1 {
		t.Errorf("merged Len = %d, want %d", table.Len(), glu.Symbols.Len()+1)
	}
	if !table.Has("cos") {
		t.Error("extra symbol missing from merged table")
	}

	conflict := writeFile(t, "conflict.toml", `
[[symbol]]
name = "gluNewQuadric"
returns = "i32"
`)
	_, err = loadTable(conflict)
	if !errors.Is(err, dynerrors.ErrInvalidTable) {
		t.Errorf("conflicting table error = %v, want invalid table", err)
	}
}

func TestParseArg(t *testing.T) {
	tests := []struct {
		in   string
		want any
		kind symtab.Kind
	}{
		{"-3", int64(-3), symtab.I32},
		{"0x10", uint64(16), symtab.Ptr},
		{"2.5", 2.5, symtab.F64},
		{"1.5", 1.5, symtab.F32},
		{"true", true, symtab.U8},
		{" 7 ", uint64(7), symtab.U32},
	}
	for _, tt := range tests {
		got, err := parseArg(tt.kind, tt.in)
		if err != nil {
			t.Errorf("parseArg(%s, %q): %v", tt.kind, tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseArg(%s, %q) = %#v, want %#v", tt.kind, tt.in, got, tt.want)
		}
	}

	for _, bad := range []struct {
		in   string
		kind symtab.Kind
	}{
		{"x", symtab.I32},
		{"-1", symtab.U32},
		{"1", symtab.Void},
	} {
		if _, err := parseArg(bad.kind, bad.in); err == nil {
			t.Errorf("parseArg(%s, %q) succeeded", bad.kind, bad.in)
		}
	}
}

func TestFormatResult(t *testing.T) {
	if got := formatResult(symtab.Ptr, uintptr(0xbeef)); got != "0xbeef" {
		t.Errorf("ptr = %q", got)
	}
	if got := formatResult(symtab.Void, nil); got != "(void)" {
		t.Errorf("void = %q", got)
	}
	if got := formatResult(symtab.I32, int32(-4)); got != "-4" {
		t.Errorf("i32 = %q", got)
	}
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-list"}, &out); err != nil {
		t.Fatalf("run -list: %v", err)
	}
	for _, want := range []string{"gluSphere", "gluUnProject", "52 symbols, 0 bound, 0 opens"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunWasmMissingExport(t *testing.T) {
	empty := writeFile(t, "empty.wasm", "\x00asm\x01\x00\x00\x00")
	var out bytes.Buffer
	err := run(context.Background(), []string{"-wasm", empty, "-preload", "gluSphere", "-demo=false"}, &out)
	if !errors.Is(err, dynerrors.ErrSymbolNotFound) {
		t.Fatalf("run error = %v, want symbol not found", err)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad log level", []string{"-log-level", "loud", "-list"}},
		{"missing wasm", []string{"-wasm", "/nonexistent/glu.wasm", "-list"}},
		{"bad flag", []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(context.Background(), tt.args, &out); err == nil {
				t.Error("expected error")
			}
		})
	}
}
