package accent

import "github.com/jonathantroyer/base24gen/cie"

// HueOptResult is the optimizer's output for one input hue.
type HueOptResult struct {
	Hue              float32
	J                float32
	M                float32
	OriginalM        float32 // M before gamut mapping
	Color            cie.SrgbF
	PostClampJ       float32
	AchievedContrast float32
	MetConstraints   bool
	Warning          string
	JInBounds        bool
	MInBounds        bool
	MLowerBound      float32
	MUpperBound      float32
}

// Result is the ordered (input-hue order, not completion order)
// collection of per-hue results plus the wall-clock time the parallel
// driver took to produce them.
type Result struct {
	HueResults []HueOptResult
	ElapsedMs  int64
}
