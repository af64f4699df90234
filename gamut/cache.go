package gamut

import (
	"github.com/chewxy/math32"

	"github.com/jonathantroyer/base24gen/jmh"
)

const (
	jResolution   = float32(0.1)
	jBuckets      = 1000
	hueResolution = float32(0.1)
	hueBuckets    = 3600
)

// Cache is the per-worker gamut boundary cache: a two-dimensional grid
// keyed by (J'-bucket, h-bucket) storing the maximum in-gamut
// colorfulness computed so far at that bucket's center. It is not safe
// for concurrent use by design -- the accent solver's parallel driver
// gives each worker its own Cache, the Go analogue of a thread-local,
// so no lock guards the hot path.
type Cache struct {
	data [jBuckets][hueBuckets]float32
	set  [jBuckets][hueBuckets]bool
}

// NewCache returns an empty gamut cache.
func NewCache() *Cache {
	return &Cache{}
}

// Clear resets every bucket to unset. Gamut boundaries never change
// within a process, so this exists only for deterministic test setup.
func (c *Cache) Clear() {
	*c = Cache{}
}

func jBucket(j float32) int {
	b := int(j / jResolution)
	if b >= jBuckets {
		b = jBuckets - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}

func hueBucket(h float32) int {
	hue := sanitizeDegrees(h)
	b := int(hue/hueResolution) % hueBuckets
	return b
}

func bucketCenterJ(j float32) float32 {
	return (float32(jBucket(j)) + 0.5) * jResolution
}

func bucketCenterHue(h float32) float32 {
	return (float32(hueBucket(h)) + 0.5) * hueResolution
}

// MaxColorfulnessAt returns the maximum M such that JMh(j, M, h) stays
// in sRGB, quantizing the query to its bucket center so repeated lookups
// within a bucket are byte-identical regardless of order.
func (c *Cache) MaxColorfulnessAt(j, h float32) float32 {
	if j < minSafeJ || j > maxSafeJ {
		return 0
	}

	ji, hi := jBucket(j), hueBucket(h)
	if c.set[ji][hi] {
		return c.data[ji][hi]
	}

	jc, hc := bucketCenterJ(j), bucketCenterHue(h)
	m := computeBoundary(jc, hc)

	c.data[ji][hi] = m
	c.set[ji][hi] = true
	return m
}

// GamutMap projects an out-of-gamut color onto the sRGB boundary along
// its constant-J'/constant-h ray. Hue and lightness are preserved by
// construction; only colorfulness decreases.
func (c *Cache) GamutMap(color jmh.JMh) jmh.JMh {
	if color.IsInGamut() {
		return color
	}

	if color.J < minSafeJ || color.J > maxSafeJ {
		return jmh.JMh{J: math32.Clamp(color.J, 0, 100), M: 0, H: color.H}
	}

	mBoundary := c.MaxColorfulnessAt(color.J, color.H)
	if color.M < mBoundary {
		mBoundary = color.M
	}

	result := jmh.JMh{J: color.J, M: mBoundary, H: color.H}
	if !result.IsInGamut() {
		lo, hi := float32(0), mBoundary
		for hi-lo > 0.01 {
			mid := (lo + hi) / 2
			if (jmh.JMh{J: color.J, M: mid, H: color.H}).IsInGamut() {
				lo = mid
			} else {
				hi = mid
			}
		}
		result = jmh.JMh{J: color.J, M: lo, H: color.H}
	}

	return result
}
