// Package palette assembles the 24-slot Base24 palette: a monotone
// lightness ramp for UI chrome (base00..base07) plus two accent passes
// over the same eight hues (base08..base0F, base10..base17), oriented
// into a dark or light variant from a background/foreground pair.
package palette

import (
	"context"
	"fmt"

	"github.com/jonathantroyer/base24gen/accent"
	"github.com/jonathantroyer/base24gen/cie"
	"github.com/jonathantroyer/base24gen/curve"
	"github.com/jonathantroyer/base24gen/jmh"
	"github.com/jonathantroyer/base24gen/ramp"
)

// Variant names the orientation a palette was assembled for.
type Variant string

const (
	VariantDark  Variant = "dark"
	VariantLight Variant = "light"
)

// DefaultHues are the eight accent hues (degrees): red, orange, yellow,
// green, cyan, blue, purple, magenta.
var DefaultHues = [8]float32{25, 55, 90, 145, 180, 250, 285, 335}

var slotOrder = [...]string{
	"base00", "base01", "base02", "base03", "base04", "base05", "base06", "base07",
	"base08", "base09", "base0A", "base0B", "base0C", "base0D", "base0E", "base0F",
	"base10", "base11", "base12", "base13", "base14", "base15", "base16", "base17",
}

// Palette is an immutable mapping from slot name to color, produced once
// per Generate call.
type Palette struct {
	Variant Variant
	Slots   map[string]cie.Srgb8
}

// Get returns the color for a slot and whether it was present.
func (p Palette) Get(slot string) (cie.Srgb8, bool) {
	c, ok := p.Slots[slot]
	return c, ok
}

// HueOverrides replaces the default hue for individual accent slots,
// indexed base08..base0F (also applied to the matching base10..base17
// extended slot, since both accent passes share the hue set).
type HueOverrides [8]*float32

// Config is the input to Generate: the two endpoint colors, per-pass
// contrast floors and solver settings, hue overrides, the ramp's easing
// curve, and an optional forced variant.
type Config struct {
	Background, Foreground cie.Srgb8

	MinContrast         float32
	ExtendedMinContrast float32

	AccentSettings         accent.Settings
	ExtendedAccentSettings accent.Settings

	HueOverrides HueOverrides
	RampEasing   curve.Config

	// ForcedVariant, if non-nil, fixes the orientation instead of
	// choosing it from the input lightness order.
	ForcedVariant *Variant
}

// DefaultConfig returns bg=#1a1a2e, fg=#eaeaea with default accent
// settings and a smoothstep ramp, the dark-input scenario from spec.md
// §8.
func DefaultConfig() Config {
	return Config{
		Background:             cie.Srgb8{R: 0x1a, G: 0x1a, B: 0x2e},
		Foreground:             cie.Srgb8{R: 0xea, G: 0xea, B: 0xea},
		MinContrast:            75,
		ExtendedMinContrast:    60,
		AccentSettings:         accent.DefaultSettings(),
		ExtendedAccentSettings: extendedDefaults(),
		RampEasing:             curve.Config{Type: curve.Smoothstep},
	}
}

// extendedDefaults targets a somewhat more colorful M (15 against the
// main pass's 12) at the same J', chosen so the 60 Lc floor is met with
// margin at the target itself (no hue's gamut forces a lower M than
// TargetM, so the optimizer's global minimum is the target point) for
// every DefaultHues entry, against both the near-black Scenario 1
// background and the lighter chrome slots (base01, base02) validate's
// general floor check runs every accent against.
func extendedDefaults() accent.Settings {
	s := accent.DefaultSettings()
	s.TargetM = 15
	return s
}

// Generate builds a Palette and returns any per-hue warnings collected
// from both accent passes. The only error it can return is a context
// cancellation propagated from the accent solver's worker pool; every
// other degraded condition is folded into the warnings list instead of
// aborting, per the core's error-handling philosophy.
func Generate(ctx context.Context, cfg Config) (Palette, []string, error) {
	bgOut, fgOut, variant := orient(cfg)

	hues := hueSet(cfg.HueOverrides)

	slots := make(map[string]cie.Srgb8, len(slotOrder))
	var warnings []string

	rampColors := ramp.Build(bgOut, fgOut, 8, cfg.RampEasing)
	for i, c := range rampColors {
		slots[fmt.Sprintf("base0%d", i)] = c
	}

	mainResult, err := accent.Optimize(ctx, bgOut, hues[:], cfg.AccentSettings, cfg.MinContrast)
	if err != nil {
		return Palette{}, nil, fmt.Errorf("main accent optimization did not complete: %w", err)
	}
	for i, r := range mainResult.HueResults {
		slots[fmt.Sprintf("base0%X", 8+i)] = r.Color.Clamp8()
		if r.Warning != "" {
			warnings = append(warnings, r.Warning)
		}
	}

	extResult, err := accent.Optimize(ctx, bgOut, hues[:], cfg.ExtendedAccentSettings, cfg.ExtendedMinContrast)
	if err != nil {
		return Palette{}, nil, fmt.Errorf("extended accent optimization did not complete: %w", err)
	}
	for i, r := range extResult.HueResults {
		slots[fmt.Sprintf("base1%X", i)] = r.Color.Clamp8()
		if r.Warning != "" {
			warnings = append(warnings, r.Warning)
		}
	}

	return Palette{Variant: variant, Slots: slots}, warnings, nil
}

// orient decides which input color plays background/foreground and the
// resulting variant tag, by JMh lightness (this module's OKLCH
// equivalent, per ramp's doc comment).
func orient(cfg Config) (bgOut, fgOut cie.Srgb8, variant Variant) {
	bgJ := jmh.FromSRGB8(cfg.Background).J
	fgJ := jmh.FromSRGB8(cfg.Foreground).J

	darker, lighter := cfg.Background, cfg.Foreground
	if fgJ < bgJ {
		darker, lighter = cfg.Foreground, cfg.Background
	}

	if cfg.ForcedVariant != nil {
		switch *cfg.ForcedVariant {
		case VariantDark:
			return darker, lighter, VariantDark
		case VariantLight:
			return lighter, darker, VariantLight
		}
	}

	if bgJ < fgJ {
		return darker, lighter, VariantDark
	}
	return lighter, darker, VariantLight
}

func hueSet(overrides HueOverrides) [8]float32 {
	hues := DefaultHues
	for i, ov := range overrides {
		if ov != nil {
			hues[i] = *ov
		}
	}
	return hues
}
