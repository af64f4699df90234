package scheme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathantroyer/base24gen/palette"
)

func TestSlugLowercasesAndDashesSpaces(t *testing.T) {
	assert.Equal(t, "gruvbox-dark-hard-dark", Slug("Gruvbox Dark, Hard!", "dark"))
}

func TestSlugDropsNonAlphanumerics(t *testing.T) {
	assert.Equal(t, "my-theme-123-light", Slug("My_Theme #123", "light"))
}

func TestFromPaletteProducesAllCanonicalKeys(t *testing.T) {
	p, _, err := palette.Generate(context.Background(), palette.DefaultConfig())
	require.NoError(t, err)

	s := FromPalette(p, "Test Scheme", "someone")
	assert.Equal(t, "base24", s.System)
	assert.Equal(t, "test-scheme-dark", s.Slug)
	assert.Len(t, s.Palette, 24)
	for _, key := range canonicalSlots {
		v, ok := s.Palette[key]
		assert.True(t, ok, "missing key %s", key)
		assert.Len(t, v, 6)
	}
}

func TestWriteYAMLRoundTrips(t *testing.T) {
	p, _, err := palette.Generate(context.Background(), palette.DefaultConfig())
	require.NoError(t, err)
	s := FromPalette(p, "Round Trip", "")

	data, err := WriteYAML(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), "system: base24")
	assert.Contains(t, string(data), "base0A")
}

func TestToPaletteRoundTrips(t *testing.T) {
	p, _, err := palette.Generate(context.Background(), palette.DefaultConfig())
	require.NoError(t, err)
	s := FromPalette(p, "Round Trip", "")

	back, err := s.ToPalette()
	require.NoError(t, err)
	assert.Equal(t, p.Variant, back.Variant)
	for _, key := range canonicalSlots {
		want, _ := p.Get(key)
		got, ok := back.Get(key)
		assert.True(t, ok, "missing key %s", key)
		assert.Equal(t, want, got)
	}
}

func TestWriteJSONIncludesSlug(t *testing.T) {
	p, _, err := palette.Generate(context.Background(), palette.DefaultConfig())
	require.NoError(t, err)
	s := FromPalette(p, "Json Scheme", "")

	data, err := WriteJSON(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"slug"`)
}
