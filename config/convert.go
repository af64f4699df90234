package config

import (
	"strings"

	"github.com/jonathantroyer/base24gen/accent"
	"github.com/jonathantroyer/base24gen/cssinput"
	"github.com/jonathantroyer/base24gen/curve"
	"github.com/jonathantroyer/base24gen/palette"
	"github.com/jonathantroyer/base24gen/xerrors"
)

var curveNames = map[string]curve.Type{
	"linear":       curve.Linear,
	"smoothstep":   curve.Smoothstep,
	"smootherstep": curve.Smootherstep,
	"ease-in":      curve.SmoothStart,
	"ease-out":     curve.SmoothEnd,
	"sigmoid":      curve.Sigmoid,
	"bspline":      curve.BSpline,
}

func parseCurveName(name string) (curve.Type, error) {
	t, ok := curveNames[strings.ToLower(name)]
	if !ok {
		return 0, xerrors.New(xerrors.InvalidInput, "unknown easing curve \""+name+"\"")
	}
	return t, nil
}

// ToPaletteConfig resolves f's CSS color strings via cssinput and builds
// a palette.Config ready for palette.Generate.
func (f File) ToPaletteConfig() (palette.Config, error) {
	bg, err := cssinput.Parse(f.Colors.Background)
	if err != nil {
		return palette.Config{}, err
	}
	fg, err := cssinput.Parse(f.Colors.Foreground)
	if err != nil {
		return palette.Config{}, err
	}

	curveType, err := parseCurveName(f.Curves.Curve)
	if err != nil {
		return palette.Config{}, err
	}

	var forced *palette.Variant
	switch strings.ToLower(f.Theme.Variant) {
	case "dark":
		v := palette.VariantDark
		forced = &v
	case "light":
		v := palette.VariantLight
		forced = &v
	}

	return palette.Config{
		Background:             bg,
		Foreground:             fg,
		MinContrast:            f.Contrast.Minimum,
		ExtendedMinContrast:    f.Contrast.ExtendedMinimum,
		AccentSettings:         f.Optimization.toSettings(),
		ExtendedAccentSettings: f.ExtendedOptimization.toSettings(),
		HueOverrides:           palette.HueOverrides(f.Colors.HueOverrides.ToArray()),
		RampEasing:             curve.Config{Type: curveType, Strength: f.Curves.Strength},
		ForcedVariant:          forced,
	}, nil
}

func (s AccentOptSettings) toSettings() accent.Settings {
	return accent.Settings{
		TargetJ:        s.TargetJ,
		TargetM:        s.TargetM,
		DeltaJ:         s.DeltaJ,
		DeltaM:         s.DeltaM,
		JWeight:        s.JWeight,
		ContrastWeight: s.ContrastWeight,
	}
}
