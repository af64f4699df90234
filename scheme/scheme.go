// Package scheme turns a palette.Palette into the Base24 exchange
// format: lowercase hex colors, canonical slot-key casing, and a
// generated slug, serialized as YAML or JSON.
package scheme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathantroyer/base24gen/base/iox/jsonx"
	"github.com/jonathantroyer/base24gen/base/iox/yamlx"
	"github.com/jonathantroyer/base24gen/base/strcase"
	"github.com/jonathantroyer/base24gen/cie"
	"github.com/jonathantroyer/base24gen/palette"
	"github.com/jonathantroyer/base24gen/xerrors"
)

// canonicalSlots lists the 24 slot keys in their exchange-format casing:
// base00..base07 lowercase, base08..base0F uppercase last nibble,
// base10..base17 lowercase.
var canonicalSlots = [...]string{
	"base00", "base01", "base02", "base03", "base04", "base05", "base06", "base07",
	"base08", "base09", "base0A", "base0B", "base0C", "base0D", "base0E", "base0F",
	"base10", "base11", "base12", "base13", "base14", "base15", "base16", "base17",
}

// Scheme is the serializable Base24 exchange document.
type Scheme struct {
	System  string            `yaml:"system" json:"system"`
	Name    string            `yaml:"name" json:"name"`
	Slug    string            `yaml:"slug" json:"slug"`
	Author  string            `yaml:"author,omitempty" json:"author,omitempty"`
	Variant string            `yaml:"variant" json:"variant"`
	Palette map[string]string `yaml:"palette" json:"palette"`
}

// FromPalette builds a Scheme from a generated palette, a display name,
// and an optional author.
func FromPalette(p palette.Palette, name, author string) Scheme {
	pal := make(map[string]string, len(canonicalSlots))
	for _, slot := range canonicalSlots {
		if c, ok := p.Get(slot); ok {
			pal[slot] = hex(c)
		}
	}

	return Scheme{
		System:  "base24",
		Name:    name,
		Slug:    Slug(name, string(p.Variant)),
		Author:  author,
		Variant: string(p.Variant),
		Palette: pal,
	}
}

func hex(c cie.Srgb8) string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// Slug lowercases name, replaces spaces with dashes, drops
// non-alphanumeric/dash characters, and appends "-dark" or "-light".
func Slug(name, variant string) string {
	base := strcase.ToKebab(name)
	base = strings.ReplaceAll(base, " ", "-")

	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return fmt.Sprintf("%s-%s", b.String(), variant)
}

// WriteYAML marshals s as YAML bytes, the primary exchange format
// (base/iox/yamlx wraps gopkg.in/yaml.v3).
func WriteYAML(s Scheme) ([]byte, error) {
	return yamlx.WriteBytes(s)
}

// WriteJSON marshals s as JSON bytes.
func WriteJSON(s Scheme) ([]byte, error) {
	return jsonx.WriteBytesIndent(s)
}

// ReadYAML decodes a Scheme from a YAML file, the inverse of WriteYAML --
// used by the validate and preview commands to reload a scheme produced
// by a previous generate run.
func ReadYAML(path string) (Scheme, error) {
	var s Scheme
	if err := yamlx.Open(&s, path); err != nil {
		return Scheme{}, xerrors.Wrap(xerrors.InvalidInput, fmt.Sprintf("reading scheme %q", path), err)
	}
	return s, nil
}

// ReadJSON decodes a Scheme from a JSON file.
func ReadJSON(path string) (Scheme, error) {
	var s Scheme
	if err := jsonx.Open(&s, path); err != nil {
		return Scheme{}, xerrors.Wrap(xerrors.InvalidInput, fmt.Sprintf("reading scheme %q", path), err)
	}
	return s, nil
}

// ToPalette reconstructs a palette.Palette from a Scheme's hex strings,
// the inverse of FromPalette's hex encoding. Slots the scheme doesn't
// carry are simply absent from the result, matching validate's
// "missing slot" handling.
func (s Scheme) ToPalette() (palette.Palette, error) {
	slots := make(map[string]cie.Srgb8, len(s.Palette))
	for key, hexStr := range s.Palette {
		c, err := parseHex6(hexStr)
		if err != nil {
			return palette.Palette{}, xerrors.Wrap(xerrors.InvalidInput, fmt.Sprintf("scheme slot %q", key), err)
		}
		slots[key] = c
	}
	return palette.Palette{Variant: palette.Variant(s.Variant), Slots: slots}, nil
}

func parseHex6(s string) (cie.Srgb8, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return cie.Srgb8{}, fmt.Errorf("expected 6 hex digits, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return cie.Srgb8{}, err
	}
	return cie.Srgb8{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
