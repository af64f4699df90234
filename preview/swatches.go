package preview

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jonathantroyer/base24gen/palette"
)

// swatchRows lists the 24 slots in the three-row layout the grid prints:
// UI ramp, main accents, extended accents.
var swatchRows = [3][8]string{
	{"base00", "base01", "base02", "base03", "base04", "base05", "base06", "base07"},
	{"base08", "base09", "base0A", "base0B", "base0C", "base0D", "base0E", "base0F"},
	{"base10", "base11", "base12", "base13", "base14", "base15", "base16", "base17"},
}

// Swatches renders p as three rows of eight colored blocks, degrading
// each color to the host terminal's profile (truecolor, 256-color, or
// plain text fallback) via termenv.
func Swatches(p palette.Palette) string {
	profile := termenv.ColorProfile()

	var b strings.Builder
	for _, row := range swatchRows {
		for _, slot := range row {
			c, ok := p.Get(slot)
			if !ok {
				b.WriteString("  ??  ")
				continue
			}
			hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
			block := termenv.String("      ").Background(profile.Color(hex))
			b.WriteString(block.String())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
