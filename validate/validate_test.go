package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathantroyer/base24gen/cie"
	"github.com/jonathantroyer/base24gen/palette"
)

func generatedPalette(t *testing.T) palette.Palette {
	t.Helper()
	p, _, err := palette.Generate(context.Background(), palette.DefaultConfig())
	require.NoError(t, err)
	return p
}

func TestDefaultPairsCount(t *testing.T) {
	pairs := DefaultPairs()
	assert.Len(t, pairs, 4+8*3+8*3)
}

func TestReportCoversEveryPair(t *testing.T) {
	p := generatedPalette(t)
	results := Report(p)
	assert.Len(t, results, len(DefaultPairs()))
	for _, r := range results {
		assert.False(t, r.Missing)
	}
}

func TestReportDefaultPaletteMeetsFloors(t *testing.T) {
	p := generatedPalette(t)
	results := Report(p)
	for _, r := range results {
		assert.True(t, r.Passes, "%s on %s: Lc=%.1f < %.0f", r.Pair.Foreground, r.Pair.Background, r.Lc, r.Pair.MinLc)
	}
}

func TestReportMissingSlotFailsAtZero(t *testing.T) {
	p := palette.Palette{Variant: palette.VariantDark, Slots: map[string]cie.Srgb8{}}
	results := Report(p)
	for _, r := range results {
		assert.True(t, r.Missing)
		assert.False(t, r.Passes)
		assert.Equal(t, float32(0), r.Lc)
	}
}

func TestWarningsEmptyWhenAllPass(t *testing.T) {
	p := generatedPalette(t)
	assert.Empty(t, Warnings(p))
}

func TestPassesAggregates(t *testing.T) {
	p := generatedPalette(t)
	assert.True(t, Passes(Report(p)))
}
