package preview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathantroyer/base24gen/palette"
)

func testPalette(t *testing.T) palette.Palette {
	t.Helper()
	p, _, err := palette.Generate(context.Background(), palette.DefaultConfig())
	require.NoError(t, err)
	return p
}

func TestHighlightContainsSampleText(t *testing.T) {
	out, err := Highlight(testPalette(t))
	require.NoError(t, err)
	assert.Contains(t, out, "greet")
	assert.Contains(t, out, "Hello")
}

func TestSwatchesRendersThreeRows(t *testing.T) {
	out := Swatches(testPalette(t))
	lines := 0
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, 3, lines)
}
