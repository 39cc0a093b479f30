package campaign

import (
	"errors"
	"fmt"
	"math"
)

// MaxRadius bounds every sampling and map radius so HexesWithin stays
// well inside int range on 32-bit platforms.
const MaxRadius = 1000

var (
	ErrNegativeInput  = errors.New("negative density input")
	ErrRadiusTooLarge = errors.New("radius too large")
)

// Feature is a terrain feature whose frequency the density model tracks.
type Feature uint8

const (
	FeatureTown Feature = iota
	FeatureRiver
	FeatureMountain
	FeatureHill
)

// Features lists every tracked feature.
var Features = [4]Feature{FeatureTown, FeatureRiver, FeatureMountain, FeatureHill}

func (f Feature) String() string {
	switch f {
	case FeatureTown:
		return "town"
	case FeatureRiver:
		return "river"
	case FeatureMountain:
		return "mountain"
	case FeatureHill:
		return "hill"
	default:
		return fmt.Sprintf("Feature(%d)", uint8(f))
	}
}

// HexesWithin returns the number of hexes at distance <= radius from a center
// hex on an unbounded grid: 3r² + 3r + 1. radius must not exceed MaxRadius.
func HexesWithin(radius int) int {
	return 3*radius*radius + 3*radius + 1
}

// Density records how often each feature appears around a campaign location.
// It is immutable once built.
type Density struct {
	counts [4]int
	radius int
}

// NewDensity builds a density model from feature counts observed within radius.
func NewDensity(towns, rivers, mountains, hills, radius int) (Density, error) {
	for _, v := range [...]struct {
		name string
		n    int
	}{
		{"towns", towns},
		{"rivers", rivers},
		{"mountains", mountains},
		{"hills", hills},
		{"radius", radius},
	} {
		if v.n < 0 {
			return Density{}, fmt.Errorf("%w: %s = %d", ErrNegativeInput, v.name, v.n)
		}
	}
	if radius > MaxRadius {
		return Density{}, fmt.Errorf("%w: %d > %d", ErrRadiusTooLarge, radius, MaxRadius)
	}
	return Density{
		counts: [4]int{towns, rivers, mountains, hills},
		radius: radius,
	}, nil
}

func (d Density) Towns() int     { return d.counts[FeatureTown] }
func (d Density) Rivers() int    { return d.counts[FeatureRiver] }
func (d Density) Mountains() int { return d.counts[FeatureMountain] }
func (d Density) Hills() int     { return d.counts[FeatureHill] }
func (d Density) Radius() int    { return d.radius }

// Count returns the observed count of feature f.
func (d Density) Count(f Feature) int {
	return d.counts[f]
}

// Of returns the fraction of hexes within the search radius holding feature f.
func (d Density) Of(f Feature) float64 {
	return float64(d.counts[f]) / float64(HexesWithin(d.radius))
}

func (d Density) Town() float64     { return d.Of(FeatureTown) }
func (d Density) River() float64    { return d.Of(FeatureRiver) }
func (d Density) Mountain() float64 { return d.Of(FeatureMountain) }
func (d Density) Hill() float64     { return d.Of(FeatureHill) }

// FeatureCounts is a number of hexes per feature.
type FeatureCounts map[Feature]int

// Targets scales each density to a board of tileCount tiles, rounding to the
// nearest whole feature.
func (d Density) Targets(tileCount int) FeatureCounts {
	out := make(FeatureCounts, len(Features))
	for _, f := range Features {
		out[f] = int(math.Round(d.Of(f) * float64(tileCount)))
	}
	return out
}

// Total returns the sum of all feature counts.
func (fc FeatureCounts) Total() int {
	n := 0
	for _, c := range fc {
		n += c
	}
	return n
}
