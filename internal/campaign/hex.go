// Package campaign provides the campaign-level hex map that battles are fought on,
// and the terrain density model sampled from it.
// Uses axial coordinates (q, r) for the hex grid.
package campaign

import "math"

// HexCoord represents a position on the campaign map using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type HexCoord struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// Add returns h offset by d.
func (h HexCoord) Add(d HexCoord) HexCoord {
	return HexCoord{Q: h.Q + d.Q, R: h.R + d.R}
}

// Terrain types for campaign hexes.
type Terrain uint8

const (
	TerrainPlains   Terrain = iota // Open farmland
	TerrainForest                  // Timber, cover
	TerrainHill                    // Rolling high ground
	TerrainMountain                // Peaks, impassable to armies
	TerrainRiver                   // Freshwater, needs a crossing
	TerrainRoad                    // Built road between towns
	TerrainSwamp                   // Wet lowland
	TerrainTown                    // Settlement
	TerrainOutpost                 // Fortified hilltop
)

// Hex represents a single tile on the campaign map.
type Hex struct {
	Coord   HexCoord `json:"coord"`
	Terrain Terrain  `json:"terrain"`

	// Set during generation.
	Elevation float64 `json:"elevation"` // 0.0 (lowland) to 1.0 (peak)
	Rainfall  float64 `json:"rainfall"`  // 0.0 (arid) to 1.0 (wet)
}

// HexNeighborDirections defines the six neighbor offsets in axial coordinates,
// counter-clockwise starting east.
var HexNeighborDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range HexNeighborDirections {
		result[i] = h.Add(dir)
	}
	return result
}

// Neighbor returns the adjacent coordinate in direction dir (taken modulo 6).
func (h HexCoord) Neighbor(dir int) HexCoord {
	return h.Add(HexNeighborDirections[((dir%6)+6)%6])
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	return max(abs(a.Q-b.Q), abs(a.R-b.R), abs(a.S()-b.S()))
}

// Line returns the hexes on a straight line from a to b, both ends included.
func Line(a, b HexCoord) []HexCoord {
	n := Distance(a, b)
	if n == 0 {
		return []HexCoord{a}
	}
	out := make([]HexCoord, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		// Nudge off exact midpoints so ties round the same way every time.
		q := lerp(float64(a.Q)+1e-6, float64(b.Q)+1e-6, t)
		r := lerp(float64(a.R)+1e-6, float64(b.R)+1e-6, t)
		out = append(out, roundHex(q, r))
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// roundHex rounds fractional axial coordinates to the nearest hex.
func roundHex(q, r float64) HexCoord {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}
	return HexCoord{Q: int(rq), R: int(rr)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// TerrainName returns a human-readable name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainPlains:
		return "Plains"
	case TerrainForest:
		return "Forest"
	case TerrainHill:
		return "Hill"
	case TerrainMountain:
		return "Mountain"
	case TerrainRiver:
		return "River"
	case TerrainRoad:
		return "Road"
	case TerrainSwamp:
		return "Swamp"
	case TerrainTown:
		return "Town"
	case TerrainOutpost:
		return "Outpost"
	default:
		return "Unknown"
	}
}
