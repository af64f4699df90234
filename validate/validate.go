// Package validate reports pairwise APCA contrast for a fixed set of
// foreground/background slot pairs, the accessibility check every
// generated palette should pass.
package validate

import (
	"fmt"

	"github.com/jonathantroyer/base24gen/apca"
	"github.com/jonathantroyer/base24gen/palette"
)

// Pair names one foreground/background slot combination and the Lc
// floor it must clear.
type Pair struct {
	Foreground string
	Background string
	MinLc      float32
	Purpose    string
}

// DefaultPairs is the fixed validation table: body text on chrome at a
// high floor, and both accent sets on the first three chrome slots at a
// lower floor.
func DefaultPairs() []Pair {
	var pairs []Pair

	for _, fg := range []string{"base06", "base07"} {
		for _, bg := range []string{"base00", "base01"} {
			pairs = append(pairs, Pair{Foreground: fg, Background: bg, MinLc: 75, Purpose: "body text"})
		}
	}

	accents := []string{"base08", "base09", "base0A", "base0B", "base0C", "base0D", "base0E", "base0F"}
	extended := []string{"base10", "base11", "base12", "base13", "base14", "base15", "base16", "base17"}
	chrome := []string{"base00", "base01", "base02"}

	for _, fg := range accents {
		for _, bg := range chrome {
			pairs = append(pairs, Pair{Foreground: fg, Background: bg, MinLc: 60, Purpose: "accent text"})
		}
	}
	for _, fg := range extended {
		for _, bg := range chrome {
			pairs = append(pairs, Pair{Foreground: fg, Background: bg, MinLc: 60, Purpose: "extended accent text"})
		}
	}

	return pairs
}

// Result is one pair's outcome: the achieved |Lc| and whether it
// cleared the pair's floor. A missing slot is recorded as a failure at
// Lc=0 rather than skipped.
type Result struct {
	Pair    Pair
	Lc      float32
	Passes  bool
	Missing bool
}

// Report validates p against every pair in DefaultPairs.
func Report(p palette.Palette) []Result {
	pairs := DefaultPairs()
	results := make([]Result, len(pairs))
	for i, pair := range pairs {
		fg, fgOK := p.Get(pair.Foreground)
		bg, bgOK := p.Get(pair.Background)
		if !fgOK || !bgOK {
			results[i] = Result{Pair: pair, Lc: 0, Passes: false, Missing: true}
			continue
		}
		lc := apca.Contrast(fg, bg)
		if lc < 0 {
			lc = -lc
		}
		results[i] = Result{Pair: pair, Lc: lc, Passes: lc >= pair.MinLc}
	}
	return results
}

// Warnings runs Report and renders one human-readable line per failing
// pair.
func Warnings(p palette.Palette) []string {
	var warnings []string
	for _, r := range Report(p) {
		if r.Passes {
			continue
		}
		warnings = append(warnings, fmt.Sprintf(
			"%s on %s: Lc=%.1f (required: %.0f for %s)",
			r.Pair.Foreground, r.Pair.Background, r.Lc, r.Pair.MinLc, r.Pair.Purpose,
		))
	}
	return warnings
}

// Passes reports whether every pair in the report cleared its floor.
func Passes(results []Result) bool {
	for _, r := range results {
		if !r.Passes {
			return false
		}
	}
	return true
}
