package battlemap

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/LafeWessel/BattleMapGenerator/internal/campaign"
)

// Battle is a generated battle map ready for feature placement.
type Battle struct {
	ID      uuid.UUID
	Grid    *Grid
	Plan    ZonePlan
	Targets campaign.FeatureCounts // Features the board should end up holding
}

// MapGenerator builds battle maps from the campaign hexes around a battle.
type MapGenerator struct {
	Base    campaign.GenerationTiles
	Density campaign.Density

	// FlankWidth overrides the standard flank width when non-nil.
	FlankWidth *int
}

// NewMapGenerator creates a generator for the given campaign inputs.
func NewMapGenerator(base campaign.GenerationTiles, density campaign.Density) *MapGenerator {
	return &MapGenerator{Base: base, Density: density}
}

// Generate creates a width × height board, paints deployment zones, and lays
// each zone's base terrain from the campaign tile it was drawn from.
// Feature counts are computed but no features are placed.
func (mg *MapGenerator) Generate(width, height int) (*Battle, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	plan := NewZonePlan(width, height)
	if mg.FlankWidth != nil {
		if plan, err = NewZonePlanWithFlank(width, height, *mg.FlankWidth); err != nil {
			return nil, err
		}
	}
	if err := plan.Paint(g); err != nil {
		return nil, err
	}

	g.Each(func(_ Address, t *Tile) {
		t.Terrain = mg.baseTerrain(t.Owner)
	})

	b := &Battle{
		ID:      uuid.New(),
		Grid:    g,
		Plan:    plan,
		Targets: mg.Density.Targets(g.TileCount()),
	}
	slog.Debug("battle map generated",
		"id", b.ID,
		"width", width,
		"height", height,
		"flank_width", plan.FlankWidth,
		"feature_targets", b.Targets.Total(),
	)
	return b, nil
}

// baseTerrain returns the terrain a zone starts with.
// The split row is no-man's land and starts as open ground.
func (mg *MapGenerator) baseTerrain(o Owner) Terrain {
	switch o {
	case OwnerAttacker:
		return FromCampaign(mg.Base.Attacker)
	case OwnerDefender:
		return FromCampaign(mg.Base.Defender)
	case OwnerLeftFlank:
		return FromCampaign(mg.Base.LeftFlank)
	case OwnerRightFlank:
		return FromCampaign(mg.Base.RightFlank)
	case OwnerSplitAttDef:
		return TerrainPlains
	default:
		return TerrainUnset
	}
}

// FromCampaign maps a campaign terrain onto the matching battle terrain.
func FromCampaign(t campaign.Terrain) Terrain {
	switch t {
	case campaign.TerrainForest:
		return TerrainForest
	case campaign.TerrainHill:
		return TerrainHill
	case campaign.TerrainMountain:
		return TerrainMountain
	case campaign.TerrainOutpost:
		return TerrainOutpost
	case campaign.TerrainPlains:
		return TerrainPlains
	case campaign.TerrainRiver:
		return TerrainRiver
	case campaign.TerrainRoad:
		return TerrainRoad
	case campaign.TerrainSwamp:
		return TerrainSwamp
	case campaign.TerrainTown:
		return TerrainTown
	default:
		return TerrainUnset
	}
}
