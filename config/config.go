// Package config loads a layered base24gen configuration: struct-tag
// defaults, then an optional TOML file, then CLI flag overrides applied
// by the caller, mirroring cogentcore's cli.SetFromDefaults → cli.Open →
// flag-override layering (cogentcore-core/cli/defaults.go, cli/io.go).
package config

import (
	"fmt"
	"log/slog"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/jonathantroyer/base24gen/base/iox/tomlx"
)

// HueOverrides holds optional per-slot hue degrees for the eight accent
// colors (base08..base0F); nil means "use the default hue".
type HueOverrides struct {
	Base08 *float32 `toml:"base08,omitempty"`
	Base09 *float32 `toml:"base09,omitempty"`
	Base0A *float32 `toml:"base0a,omitempty"`
	Base0B *float32 `toml:"base0b,omitempty"`
	Base0C *float32 `toml:"base0c,omitempty"`
	Base0D *float32 `toml:"base0d,omitempty"`
	Base0E *float32 `toml:"base0e,omitempty"`
	Base0F *float32 `toml:"base0f,omitempty"`
}

// ToArray returns the eight overrides in base08..base0F order, the shape
// palette.HueOverrides consumes directly.
func (h HueOverrides) ToArray() [8]*float32 {
	return [8]*float32{h.Base08, h.Base09, h.Base0A, h.Base0B, h.Base0C, h.Base0D, h.Base0E, h.Base0F}
}

// ThemeMeta carries the scheme's display metadata.
type ThemeMeta struct {
	Name    string `toml:"name"`
	Author  string `toml:"author,omitempty"`
	Variant string `toml:"variant,omitempty"` // "dark", "light", or "" for auto
}

// ColorConfig holds the two endpoint colors (any CSS color syntax, see
// the cssinput package) and hue overrides.
type ColorConfig struct {
	Background   string       `toml:"background" default:"#1a1a2e"`
	Foreground   string       `toml:"foreground" default:"#eaeaea"`
	HueOverrides HueOverrides `toml:"hue_overrides"`
}

// ContrastConfig holds the Lc floors for the two accent passes.
type ContrastConfig struct {
	Minimum         float32 `toml:"minimum" default:"75"`
	ExtendedMinimum float32 `toml:"extended_minimum" default:"60"`
}

// AccentOptSettings mirrors accent.Settings as a serializable struct.
type AccentOptSettings struct {
	TargetJ        float32 `toml:"target_j"`
	TargetM        float32 `toml:"target_m"`
	DeltaJ         float32 `toml:"delta_j"`
	DeltaM         float32 `toml:"delta_m"`
	JWeight        float32 `toml:"j_weight"`
	ContrastWeight float32 `toml:"contrast_weight"`
}

// EasingConfig names the ramp's easing curve (one of "linear",
// "smoothstep", "smootherstep", "ease-in", "ease-out", "sigmoid",
// "bspline", matched case-insensitively) plus an optional sigmoid
// strength.
type EasingConfig struct {
	Curve    string  `toml:"curve" default:"smoothstep"`
	Strength float32 `toml:"strength" default:"1"`
}

// File is the root TOML configuration document.
type File struct {
	Theme               ThemeMeta         `toml:"theme"`
	Colors              ColorConfig       `toml:"colors"`
	Curves              EasingConfig      `toml:"curves"`
	Contrast            ContrastConfig    `toml:"contrast"`
	Optimization        AccentOptSettings `toml:"optimization"`
	ExtendedOptimization AccentOptSettings `toml:"extended_optimization"`
}

// Default returns the struct-tag defaults layer: the first of the three
// layers config.Load applies.
func Default() File {
	return File{
		Colors: ColorConfig{
			Background: "#1a1a2e",
			Foreground: "#eaeaea",
		},
		Curves: EasingConfig{
			Curve:    "smoothstep",
			Strength: 1,
		},
		Contrast: ContrastConfig{
			Minimum:         75,
			ExtendedMinimum: 60,
		},
		Optimization: AccentOptSettings{
			TargetJ: 82, TargetM: 12, DeltaJ: 15, DeltaM: 15, JWeight: 0.5, ContrastWeight: 0.6,
		},
		ExtendedOptimization: AccentOptSettings{
			TargetJ: 82, TargetM: 15, DeltaJ: 15, DeltaM: 15, JWeight: 0.5, ContrastWeight: 0.6,
		},
	}
}

// DefaultPath returns ~/.config/base24gen/config.toml, resolved via
// go-homedir so it also works under cross-compiled and CGO-less builds.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home + "/.config/base24gen/config.toml", nil
}

// Load layers defaults, then an optional TOML file at path (skipped if
// path is empty), matching cli.SetFromDefaults → cli.Open.
func Load(path string) (File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := tomlx.Open(&cfg, path); err != nil {
		return File{}, fmt.Errorf("loading config %q: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML.
func Save(cfg File, path string) error {
	return tomlx.Save(&cfg, path)
}
