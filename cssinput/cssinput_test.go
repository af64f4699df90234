package cssinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathantroyer/base24gen/cie"
)

func TestParseHexLongAndShortForm(t *testing.T) {
	long, err := Parse("#1a1a2e")
	require.NoError(t, err)
	assert.Equal(t, cie.Srgb8{R: 0x1a, G: 0x1a, B: 0x2e}, long)

	short, err := Parse("#fff")
	require.NoError(t, err)
	assert.Equal(t, cie.Srgb8{R: 0xff, G: 0xff, B: 0xff}, short)
}

func TestParseRGBFunctionForms(t *testing.T) {
	c, err := Parse("rgb(26, 26, 46)")
	require.NoError(t, err)
	assert.Equal(t, cie.Srgb8{R: 26, G: 26, B: 46}, c)

	withPercent, err := Parse("rgba(100%, 0%, 0%, 1)")
	require.NoError(t, err)
	assert.Equal(t, cie.Srgb8{R: 255, G: 0, B: 0}, withPercent)

	slashAlpha, err := Parse("rgb(10 20 30 / 0.5)")
	require.NoError(t, err)
	assert.Equal(t, cie.Srgb8{R: 10, G: 20, B: 30}, slashAlpha)
}

func TestParseHSLFunctionForm(t *testing.T) {
	c, err := Parse("hsl(0, 100%, 50%)")
	require.NoError(t, err)
	assert.Equal(t, cie.Srgb8{R: 255, G: 0, B: 0}, c)
}

func TestParseOklchFunctionForm(t *testing.T) {
	c, err := Parse("oklch(1 0 0)")
	require.NoError(t, err)
	assert.Equal(t, cie.Srgb8{R: 255, G: 255, B: 255}, c)

	black, err := Parse("oklch(0 0 0)")
	require.NoError(t, err)
	assert.Equal(t, cie.Srgb8{R: 0, G: 0, B: 0}, black)
}

func TestParseNamedColor(t *testing.T) {
	c, err := Parse("RebeccaPurple")
	require.NoError(t, err)
	assert.Equal(t, namedColors["rebeccapurple"], c)

	c2, err := Parse("  tomato  ")
	require.NoError(t, err)
	assert.Equal(t, namedColors["tomato"], c2)
}

func TestParseRejectsEmptyString(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
}

func TestParseRejectsUnknownColor(t *testing.T) {
	_, err := Parse("not-a-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized color")
}

func TestParseRejectsMalformedHex(t *testing.T) {
	_, err := Parse("#zzzzzz")
	assert.Error(t, err)
}

func TestNamedColorsTableHasExpectedSize(t *testing.T) {
	assert.Greater(t, len(namedColors), 100)
	assert.Contains(t, namedColors, "transparent")
	assert.Contains(t, namedColors, "aliceblue")
}
