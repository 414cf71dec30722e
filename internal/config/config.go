// Package config loads the process-wide Config struct from a TOML file
// on disk, replacing any notion of global mutable configuration state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/input"
	"github.com/wayscriber/wayscriber/internal/wyerr"
	"github.com/wayscriber/wayscriber/internal/xdgpaths"
)

// Performance holds the clamp-bounded runtime tunables spec.md §8 names.
type Performance struct {
	DefaultThickness float64 `toml:"default_thickness"`
	DefaultFontSize  float64 `toml:"default_font_size"`
	ArrowLength      float64 `toml:"arrow_length"`
	ArrowAngle       float64 `toml:"arrow_angle"`
	HistoryDelayMs   int     `toml:"history_delay_ms"`
	CustomSteps      int     `toml:"custom_steps"`
	BufferCount      int     `toml:"buffer_count"`
	UiAnimationFps   int     `toml:"ui_animation_fps"`
}

// Clamp applies every boundary in spec.md §8 to p's fields in place.
func (p *Performance) Clamp() {
	p.DefaultThickness = clampF(p.DefaultThickness, input.MinThickness, input.MaxThickness)
	p.DefaultFontSize = clampF(p.DefaultFontSize, input.MinFontSize, input.MaxFontSize)
	p.ArrowLength = clampF(p.ArrowLength, input.MinArrowLength, input.MaxArrowLength)
	p.ArrowAngle = clampF(p.ArrowAngle, input.MinArrowAngle, input.MaxArrowAngle)
	p.HistoryDelayMs = clampI(p.HistoryDelayMs, input.MinHistoryDelayMs, input.MaxHistoryDelayMs)
	p.CustomSteps = clampI(p.CustomSteps, input.MinCustomSteps, input.MaxCustomSteps)
	p.BufferCount = clampI(p.BufferCount, input.MinBufferCount, input.MaxBufferCount)
	p.UiAnimationFps = clampI(p.UiAnimationFps, input.MinUIAnimationFps, input.MaxUIAnimationFps)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DefaultPerformance returns mid-range defaults for every clamped field.
func DefaultPerformance() Performance {
	return Performance{
		DefaultThickness: 4,
		DefaultFontSize:  16,
		ArrowLength:      20,
		ArrowAngle:       30,
		HistoryDelayMs:   400,
		CustomSteps:      1,
		BufferCount:      3,
		UiAnimationFps:   60,
	}
}

// Capture configures the frozen/screenshot pipeline.
type Capture struct {
	SaveDirectory string `toml:"save_directory"`
}

// Config is the single process-wide configuration struct, loaded once
// at startup and passed down rather than read from globals anywhere
// else in the program.
type Config struct {
	Performance Performance       `toml:"performance"`
	Capture     Capture           `toml:"capture"`
	Keybindings map[string]string `toml:"keybindings"`
}

// Default returns a Config with every section at its documented
// default.
func Default() Config {
	return Config{
		Performance: DefaultPerformance(),
		Capture:     Capture{SaveDirectory: xdgpaths.PicturesDir()},
	}
}

// DefaultPath returns ~/.config/wayscriber/config.toml (honoring
// XDG_CONFIG_HOME).
func DefaultPath() string {
	return filepath.Join(xdgpaths.ConfigDir(), "wayscriber", "config.toml")
}

// Load reads and parses path, falling back to Default() (merged with
// whatever is present) when the file does not exist.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, wyerr.Wrap(wyerr.IO, err, "read config file")
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, wyerr.Wrap(wyerr.Configuration, err, "parse config file "+path)
	}
	cfg.Performance.Clamp()
	return cfg, nil
}

// ParseColor parses a "#RGB", "#RGBA", "#RRGGBB", or "#RRGGBBAA" hex
// string into a geom.Color, short forms expanded by doubling each
// digit.
func ParseColor(s string) (geom.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = doubleEach(s) + "ff"
	case 4:
		s = doubleEach(s)
	case 6:
		s += "ff"
	case 8:
		// already full form
	default:
		return geom.Color{}, fmt.Errorf("invalid color %q", s)
	}
	r, err := hexByte(s[0:2])
	if err != nil {
		return geom.Color{}, err
	}
	g, err := hexByte(s[2:4])
	if err != nil {
		return geom.Color{}, err
	}
	b, err := hexByte(s[4:6])
	if err != nil {
		return geom.Color{}, err
	}
	a, err := hexByte(s[6:8])
	if err != nil {
		return geom.Color{}, err
	}
	return geom.Color{R: r, G: g, B: b, A: a}, nil
}

func doubleEach(s string) string {
	var b strings.Builder
	for _, c := range s {
		b.WriteRune(c)
		b.WriteRune(c)
	}
	return b.String()
}

func hexByte(s string) (float64, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid color component %q: %w", s, err)
	}
	return float64(v) / 255.0, nil
}
