// Package config decodes the optional wave.toml file that holds a
// project's CLI preferences: color mode, diagnostic snippet context lines,
// maximum diagnostics and tab width. TabWidth is decoded but nothing reads
// it; columns are reported in bytes. An absent file is not an error — the
// zero Config is a perfectly usable default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ColorMode selects when diagnostic output is colorised.
type ColorMode string

const (
	ColorAuto ColorMode = "auto" // colorise only when stdout is a terminal
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// Config is wave.toml's decoded shape. The zero value (every field at
// its Go zero) is valid: Color defaults to "auto", ContextLines to 2,
// MaxDiagnostics to unbounded, TabWidth to 4 — resolve applies those
// defaults to whatever the file (or its absence) left unset.
type Config struct {
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
}

type diagnosticsConfig struct {
	Color          string `toml:"color"`
	ContextLines   int    `toml:"context_lines"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	TabWidth       int    `toml:"tab_width"`
}

// Resolved is Config with every default filled in, the shape callers
// (cmd/wave, internal/diagfmt) actually consume.
type Resolved struct {
	Color          ColorMode
	ContextLines   uint8
	MaxDiagnostics int
	TabWidth       int
}

const (
	defaultContextLines   = 2
	defaultTabWidth       = 4
	defaultMaxDiagnostics = 0 // unbounded, matching diag.NewBag(0)
)

// Default returns Resolved's zero-file defaults, the same values Load
// falls back to for any field wave.toml leaves unset.
func Default() Resolved {
	return Resolved{
		Color:          ColorAuto,
		ContextLines:   defaultContextLines,
		MaxDiagnostics: defaultMaxDiagnostics,
		TabWidth:       defaultTabWidth,
	}
}

// Load reads wave.toml from dir (or its current defaults if the file
// does not exist) and returns the resolved configuration.
func Load(dir string) (Resolved, error) {
	path := filepath.Join(dir, "wave.toml")
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Resolved{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Resolved{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return resolve(cfg)
}

func resolve(cfg Config) (Resolved, error) {
	r := Default()

	if mode := strings.TrimSpace(cfg.Diagnostics.Color); mode != "" {
		switch ColorMode(mode) {
		case ColorAuto, ColorOn, ColorOff:
			r.Color = ColorMode(mode)
		default:
			return Resolved{}, fmt.Errorf("wave.toml: invalid [diagnostics].color %q (want auto, on, or off)", mode)
		}
	}
	if cfg.Diagnostics.ContextLines > 0 {
		if cfg.Diagnostics.ContextLines > 255 {
			return Resolved{}, fmt.Errorf("wave.toml: [diagnostics].context_lines %d exceeds the maximum of 255", cfg.Diagnostics.ContextLines)
		}
		r.ContextLines = uint8(cfg.Diagnostics.ContextLines)
	}
	if cfg.Diagnostics.MaxDiagnostics > 0 {
		r.MaxDiagnostics = cfg.Diagnostics.MaxDiagnostics
	}
	if cfg.Diagnostics.TabWidth > 0 {
		r.TabWidth = cfg.Diagnostics.TabWidth
	}
	return r, nil
}

// ShouldColor reports whether output to a stream with the given
// "is this a terminal" status should be colorised under mode.
func (r Resolved) ShouldColor(isTerminal bool) bool {
	switch r.Color {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		return isTerminal
	}
}
