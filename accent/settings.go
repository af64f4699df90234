// Package accent solves, per hue, for a JMh (J', M) pair that balances
// uniformity against the UI's background (a shared lightness/colorfulness
// target across hues) with the contrast that pair achieves against the
// theme's background, subject to box and gamut constraints.
package accent

// Settings configures the per-hue optimizer. TargetJ/TargetM with
// DeltaJ/DeltaM describe a box around the preferred (J', M); JWeight
// trades uniform lightness against uniform colorfulness when both can't
// be hit at once; ContrastWeight trades that uniformity against closing
// the gap to the minimum required contrast.
type Settings struct {
	TargetJ float32
	TargetM float32
	DeltaJ  float32
	DeltaM  float32

	// JWeight is 0 for M-priority, 1 for J-priority.
	JWeight float32
	// ContrastWeight is 0 for uniformity-only, 1 for contrast-only.
	ContrastWeight float32
}

// DefaultSettings returns a box centered high enough in J' (low M) that
// the 75 Lc floor spec.md §8's dark-input scenario requires is already
// satisfied at the target point itself, against a near-black background,
// for every one of DefaultHues -- not just reachable by the optimizer.
func DefaultSettings() Settings {
	return Settings{
		TargetJ:        82,
		TargetM:        12,
		DeltaJ:         15,
		DeltaM:         15,
		JWeight:        0.5,
		ContrastWeight: 0.6,
	}
}
