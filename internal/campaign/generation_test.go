package campaign

import "testing"

// filledMap returns a map of the given radius with every hex set to terrain.
func filledMap(radius int, terrain Terrain) *Map {
	m := NewMap(radius)
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			c := HexCoord{Q: q, R: r}
			if m.InBounds(c) {
				m.Set(&Hex{Coord: c, Terrain: terrain})
			}
		}
	}
	return m
}

func TestGenerateCoversRadius(t *testing.T) {
	cfg := SmallTestConfig()
	m := Generate(cfg)

	if m.HexCount() != HexesWithin(cfg.Radius) {
		t.Fatalf("HexCount() = %d, want %d", m.HexCount(), HexesWithin(cfg.Radius))
	}
	for c, h := range m.Hexes {
		if !m.InBounds(c) {
			t.Errorf("hex %v outside radius %d", c, cfg.Radius)
		}
		if h.Coord != c {
			t.Errorf("hex keyed %v has coord %v", c, h.Coord)
		}
		if h.Elevation < 0 || h.Elevation > 1 || h.Rainfall < 0 || h.Rainfall > 1 {
			t.Errorf("hex %v elevation %v rainfall %v out of [0,1]", c, h.Elevation, h.Rainfall)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	a := Generate(cfg)
	b := Generate(cfg)

	for c, ha := range a.Hexes {
		hb := b.Get(c)
		if hb == nil || *ha != *hb {
			t.Fatalf("hex %v differs between runs: %+v vs %+v", c, ha, hb)
		}
	}
}

func TestGenerateSpacing(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 3
	m := Generate(cfg)

	var towns, outposts []HexCoord
	for c, h := range m.Hexes {
		switch h.Terrain {
		case TerrainTown:
			towns = append(towns, c)
		case TerrainOutpost:
			outposts = append(outposts, c)
		}
	}
	if len(towns) > cfg.Towns {
		t.Errorf("placed %d towns, limit %d", len(towns), cfg.Towns)
	}
	if len(outposts) > cfg.Outposts {
		t.Errorf("placed %d outposts, limit %d", len(outposts), cfg.Outposts)
	}
	for i := range towns {
		for j := i + 1; j < len(towns); j++ {
			if d := Distance(towns[i], towns[j]); d < minTownDist {
				t.Errorf("towns %v and %v only %d apart", towns[i], towns[j], d)
			}
		}
	}
	for i := range outposts {
		for j := i + 1; j < len(outposts); j++ {
			if d := Distance(outposts[i], outposts[j]); d < minOutpostDist {
				t.Errorf("outposts %v and %v only %d apart", outposts[i], outposts[j], d)
			}
		}
	}
}

func TestDeriveTerrain(t *testing.T) {
	cfg := DefaultGenConfig()
	tests := []struct {
		elev, rain float64
		want       Terrain
	}{
		{0.9, 0.5, TerrainMountain},
		{0.6, 0.9, TerrainHill},
		{0.3, 0.9, TerrainSwamp},
		{0.5, 0.8, TerrainForest},
		{0.5, 0.2, TerrainPlains},
	}
	for _, tc := range tests {
		if got := deriveTerrain(tc.elev, tc.rain, cfg); got != tc.want {
			t.Errorf("deriveTerrain(%v, %v) = %s, want %s", tc.elev, tc.rain, TerrainName(got), TerrainName(tc.want))
		}
	}
}

func TestPlaceRoadsKeepsRivers(t *testing.T) {
	m := filledMap(4, TerrainPlains)
	a, b := HexCoord{Q: -3, R: 0}, HexCoord{Q: 3, R: 0}
	m.Get(a).Terrain = TerrainTown
	m.Get(b).Terrain = TerrainTown
	m.Get(HexCoord{Q: 0, R: 0}).Terrain = TerrainRiver

	placeRoads(m, []HexCoord{a, b})

	for _, c := range Line(a, b) {
		got := m.Get(c).Terrain
		switch c {
		case a, b:
			if got != TerrainTown {
				t.Errorf("town %v became %s", c, TerrainName(got))
			}
		case HexCoord{Q: 0, R: 0}:
			if got != TerrainRiver {
				t.Errorf("river %v became %s", c, TerrainName(got))
			}
		default:
			if got != TerrainRoad {
				t.Errorf("%v on the road is %s", c, TerrainName(got))
			}
		}
	}
}

func TestGenerateNegativeCountsPlaceNothing(t *testing.T) {
	cfg := SmallTestConfig()
	cfg.Rivers, cfg.Towns, cfg.Outposts = -1, -3, -2

	counts := TerrainCounts(Generate(cfg))
	for _, terrain := range []Terrain{TerrainRiver, TerrainTown, TerrainOutpost, TerrainRoad} {
		if counts[terrain] != 0 {
			t.Errorf("%d %s hexes with negative counts, want 0", counts[terrain], TerrainName(terrain))
		}
	}
}
