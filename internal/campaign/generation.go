// Campaign generation using layered simplex noise.
// Generates elevation and rainfall maps, derives terrain, then lays rivers,
// towns, outposts, and roads on top.
package campaign

import (
	"cmp"
	"log/slog"
	"math"
	"math/rand"
	"slices"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds campaign generation parameters.
type GenConfig struct {
	Radius      int     // Hex grid radius
	Seed        int64   // Random seed (0 = random)
	MountainLvl float64 // Elevation threshold for mountains (0.0–1.0)
	HillLvl     float64 // Elevation threshold for hills (0.0–1.0)
	ForestRain  float64 // Rainfall threshold for forest
	SwampRain   float64 // Rainfall threshold for swamp on low ground
	Rivers      int     // Rivers traced from high ground
	Towns       int     // Towns placed on the best land
	Outposts    int     // Outposts placed on high hills
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius:      12,
		Seed:        0,
		MountainLvl: 0.72,
		HillLvl:     0.58,
		ForestRain:  0.55,
		SwampRain:   0.72,
		Rivers:      4,
		Towns:       8,
		Outposts:    4,
	}
}

// SmallTestConfig returns a tiny campaign for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Radius:      5,
		Seed:        42,
		MountainLvl: 0.75,
		HillLvl:     0.6,
		ForestRain:  0.55,
		SwampRain:   0.75,
		Rivers:      2,
		Towns:       3,
		Outposts:    1,
	}
}

// Minimum spacing between placed features.
const (
	minTownDist    = 3
	minOutpostDist = 3
	maxRiverSteps  = 40
)

// Generate creates a complete campaign map. The same seed always yields the same map.
func Generate(cfg GenConfig) *Map {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Two noise generators for independent layers.
	elevNoise := opensimplex.NewNormalized(seed)
	rainNoise := opensimplex.NewNormalized(seed + 1)

	m := NewMap(cfg.Radius)

	for q := -cfg.Radius; q <= cfg.Radius; q++ {
		for r := -cfg.Radius; r <= cfg.Radius; r++ {
			coord := HexCoord{Q: q, R: r}
			if !m.InBounds(coord) {
				continue
			}

			// Hex axial → cartesian: x = q + r*0.5, y = r * sqrt(3)/2
			x := float64(q) + float64(r)*0.5
			y := float64(r) * math.Sqrt(3.0) / 2.0

			elev := octaveNoise(elevNoise, x, y, 4, 0.12, 0.5)
			rain := octaveNoise(rainNoise, x, y, 3, 0.09, 0.5)

			m.Set(&Hex{
				Coord:     coord,
				Terrain:   deriveTerrain(elev, rain, cfg),
				Elevation: elev,
				Rainfall:  rain,
			})
		}
	}

	rng := rand.New(rand.NewSource(seed + 100))
	placeRivers(m, rng, cfg.Rivers)
	towns := placeTowns(m, cfg.Towns)
	placeOutposts(m, cfg.Outposts)
	placeRoads(m, towns)

	slog.Debug("campaign generated", "seed", seed, "radius", cfg.Radius, "hexes", m.HexCount(), "towns", len(towns))
	return m
}

// deriveTerrain determines base terrain from elevation and rainfall.
func deriveTerrain(elev, rain float64, cfg GenConfig) Terrain {
	if elev > cfg.MountainLvl {
		return TerrainMountain
	}
	if elev > cfg.HillLvl {
		return TerrainHill
	}
	if rain > cfg.SwampRain && elev < 0.4 {
		return TerrainSwamp
	}
	if rain > cfg.ForestRain {
		return TerrainForest
	}
	return TerrainPlains
}

// sortedCoords returns every coordinate of m in a fixed order so that
// generation does not depend on map iteration order.
func sortedCoords(m *Map) []HexCoord {
	coords := make([]HexCoord, 0, len(m.Hexes))
	for c := range m.Hexes {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, func(a, b HexCoord) int {
		if c := cmp.Compare(a.Q, b.Q); c != 0 {
			return c
		}
		return cmp.Compare(a.R, b.R)
	})
	return coords
}

// placeRivers traces paths downhill from high ground, marking hexes as river.
func placeRivers(m *Map, rng *rand.Rand, count int) {
	var sources []HexCoord
	for _, coord := range sortedCoords(m) {
		if h := m.Get(coord); h.Terrain == TerrainHill || h.Terrain == TerrainMountain {
			sources = append(sources, coord)
		}
	}

	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})
	sources = sources[:min(len(sources), max(count, 0))]

	for _, start := range sources {
		traceRiver(m, start)
	}
}

// traceRiver follows the steepest descent from a source hex until it leaves
// the map or runs out of downhill path.
func traceRiver(m *Map, start HexCoord) {
	current := start
	visited := make(map[HexCoord]bool)

	for step := 0; step < maxRiverSteps; step++ {
		visited[current] = true
		hex := m.Get(current)
		if hex == nil {
			break
		}

		// Springs rise below the peaks.
		if hex.Terrain != TerrainMountain {
			hex.Terrain = TerrainRiver
		}

		var best *Hex
		bestElev := hex.Elevation
		for _, nc := range current.Neighbors() {
			if visited[nc] {
				continue
			}
			nh := m.Get(nc)
			if nh != nil && nh.Elevation < bestElev {
				bestElev = nh.Elevation
				best = nh
			}
		}

		if best == nil {
			break // No downhill path; the river pools here.
		}
		current = best.Coord
	}
}

// placeTowns puts towns on the most desirable hexes, keeping them apart.
// Returns the chosen coordinates best first.
func placeTowns(m *Map, count int) []HexCoord {
	type scored struct {
		coord HexCoord
		score float64
	}
	var candidates []scored
	for _, coord := range sortedCoords(m) {
		if s := townScore(m, coord); s > 0 {
			candidates = append(candidates, scored{coord, s})
		}
	}
	slices.SortStableFunc(candidates, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	var towns []HexCoord
	for _, c := range candidates {
		if len(towns) >= count {
			break
		}
		if tooClose(c.coord, towns, minTownDist) {
			continue
		}
		m.Get(c.coord).Terrain = TerrainTown
		towns = append(towns, c.coord)
	}
	return towns
}

// townScore evaluates how desirable a hex is for a town.
// Prefers open land next to water with varied terrain around it.
func townScore(m *Map, coord HexCoord) float64 {
	hex := m.Get(coord)
	score := 0.0
	switch hex.Terrain {
	case TerrainPlains:
		score += 3.0
	case TerrainForest:
		score += 1.5
	case TerrainHill:
		score += 1.0
	default:
		return 0
	}

	kinds := make(map[Terrain]bool)
	nearWater := false
	for _, nc := range coord.Neighbors() {
		nh := m.Get(nc)
		if nh == nil {
			continue
		}
		kinds[nh.Terrain] = true
		if nh.Terrain == TerrainRiver {
			nearWater = true
		}
	}
	score += float64(len(kinds)) * 0.3
	if nearWater {
		score += 1.0
	}
	return score
}

// placeOutposts fortifies the highest hills.
func placeOutposts(m *Map, count int) {
	var hills []*Hex
	for _, coord := range sortedCoords(m) {
		if h := m.Get(coord); h.Terrain == TerrainHill {
			hills = append(hills, h)
		}
	}
	slices.SortStableFunc(hills, func(a, b *Hex) int {
		return cmp.Compare(b.Elevation, a.Elevation)
	})

	var placed []HexCoord
	for _, h := range hills {
		if len(placed) >= count {
			break
		}
		if tooClose(h.Coord, placed, minOutpostDist) {
			continue
		}
		h.Terrain = TerrainOutpost
		placed = append(placed, h.Coord)
	}
}

// placeRoads links every town to its nearest neighbor town with a straight road.
// Roads do not replace rivers, mountains, or other settlements.
func placeRoads(m *Map, towns []HexCoord) {
	for i, from := range towns {
		nearest := -1
		for j, to := range towns {
			if i == j {
				continue
			}
			if nearest < 0 || Distance(from, to) < Distance(from, towns[nearest]) {
				nearest = j
			}
		}
		if nearest < 0 {
			return
		}
		for _, c := range Line(from, towns[nearest]) {
			h := m.Get(c)
			if h == nil {
				continue
			}
			switch h.Terrain {
			case TerrainPlains, TerrainForest, TerrainHill, TerrainSwamp:
				h.Terrain = TerrainRoad
			}
		}
	}
}

func tooClose(coord HexCoord, existing []HexCoord, minDist int) bool {
	for _, e := range existing {
		if Distance(coord, e) < minDist {
			return true
		}
	}
	return false
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// TerrainCounts returns a summary of terrain type distribution.
func TerrainCounts(m *Map) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, hex := range m.Hexes {
		counts[hex.Terrain]++
	}
	return counts
}
