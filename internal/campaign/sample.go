package campaign

import (
	"errors"
	"fmt"
)

var ErrOutOfBounds = errors.New("coordinate outside campaign map")

// SampleDensity counts towns, rivers, mountains, and hills within radius of center.
// Hexes past the map edge count as featureless, so the density of an edge
// location is diluted rather than inflated.
func SampleDensity(m *Map, center HexCoord, radius int) (Density, error) {
	if m.Get(center) == nil {
		return Density{}, fmt.Errorf("sample density at %v: %w", center, ErrOutOfBounds)
	}
	if radius < 0 {
		return Density{}, fmt.Errorf("sample density radius %d: %w", radius, ErrNegativeInput)
	}
	if radius > MaxRadius {
		return Density{}, fmt.Errorf("sample density radius %d: %w", radius, ErrRadiusTooLarge)
	}

	var towns, rivers, mountains, hills int
	for _, h := range m.Within(center, radius) {
		switch h.Terrain {
		case TerrainTown:
			towns++
		case TerrainRiver:
			rivers++
		case TerrainMountain:
			mountains++
		case TerrainHill, TerrainOutpost:
			hills++
		}
	}
	return NewDensity(towns, rivers, mountains, hills, radius)
}

// GenerationTiles are the campaign hexes a battle map is built from.
// Left and right flank are taken from the attacker's perspective.
type GenerationTiles struct {
	Attacker   Terrain
	Defender   Terrain
	LeftFlank  Terrain
	RightFlank Terrain
}

// NewGenerationTiles bundles the four campaign terrains of a battle.
func NewGenerationTiles(attacker, defender, leftFlank, rightFlank Terrain) GenerationTiles {
	return GenerationTiles{
		Attacker:   attacker,
		Defender:   defender,
		LeftFlank:  leftFlank,
		RightFlank: rightFlank,
	}
}

// GenerationTilesAt reads the generation tiles for a defender holding center
// against an attacker arriving from neighbor direction attackFrom.
// The attacker faces the center, so its left flank is the neighbor one
// direction before attackFrom and its right flank the one after.
// Neighbors past the map edge take the defender's terrain.
func GenerationTilesAt(m *Map, center HexCoord, attackFrom int) (GenerationTiles, error) {
	def := m.Get(center)
	if def == nil {
		return GenerationTiles{}, fmt.Errorf("generation tiles at %v: %w", center, ErrOutOfBounds)
	}

	terrainAt := func(dir int) Terrain {
		if h := m.Get(center.Neighbor(dir)); h != nil {
			return h.Terrain
		}
		return def.Terrain
	}

	return NewGenerationTiles(
		terrainAt(attackFrom),
		def.Terrain,
		terrainAt(attackFrom-1),
		terrainAt(attackFrom+1),
	), nil
}
