// Package battlemap provides the offset-row hex grid used for battles,
// ownership zone painting, and a console view of the board.
// Rows alternate parity; odd rows sit half a hex to the right of even rows.
package battlemap

// Address identifies one hex in the offset-row layout.
type Address struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Terrain types for battle map tiles.
type Terrain uint8

const (
	TerrainUnset    Terrain = iota // Not yet written by a generator
	TerrainForest                  // Cover, slows movement
	TerrainHill                    // Elevated ground
	TerrainMountain                // Impassable peaks
	TerrainOutpost                 // Fortified position
	TerrainPlains                  // Open ground
	TerrainRiver                   // Water, needs a crossing
	TerrainRoad                    // Fast movement
	TerrainSwamp                   // Slow, no cover
	TerrainTown                    // Buildings
)

// Symbol returns the single-character console symbol for a terrain type.
func (t Terrain) Symbol() string {
	switch t {
	case TerrainForest:
		return "F"
	case TerrainHill:
		return "H"
	case TerrainMountain:
		return "M"
	case TerrainOutpost:
		return "O"
	case TerrainPlains:
		return "P"
	case TerrainRiver:
		return "R"
	case TerrainRoad:
		return "V"
	case TerrainSwamp:
		return "S"
	case TerrainTown:
		return "T"
	default:
		return "."
	}
}

func (t Terrain) String() string {
	switch t {
	case TerrainForest:
		return "Forest"
	case TerrainHill:
		return "Hill"
	case TerrainMountain:
		return "Mountain"
	case TerrainOutpost:
		return "Outpost"
	case TerrainPlains:
		return "Plains"
	case TerrainRiver:
		return "River"
	case TerrainRoad:
		return "Road"
	case TerrainSwamp:
		return "Swamp"
	case TerrainTown:
		return "Town"
	default:
		return "Unset"
	}
}

// Owner tags which side deploys on a tile.
// OwnerUnset is the state before zone painting and is never a real owner.
type Owner uint8

const (
	OwnerUnset Owner = iota
	OwnerAttacker
	OwnerDefender
	OwnerLeftFlank
	OwnerRightFlank
	OwnerSplitAttDef // Middle row of an odd-height map
)

// Owners lists every real owner tag in declaration order.
var Owners = [5]Owner{OwnerAttacker, OwnerDefender, OwnerLeftFlank, OwnerRightFlank, OwnerSplitAttDef}

// Symbol returns the single-character console symbol for an owner.
func (o Owner) Symbol() string {
	switch o {
	case OwnerAttacker:
		return "A"
	case OwnerDefender:
		return "D"
	case OwnerLeftFlank:
		return "L"
	case OwnerRightFlank:
		return "R"
	case OwnerSplitAttDef:
		return "S"
	default:
		return "?"
	}
}

func (o Owner) String() string {
	switch o {
	case OwnerAttacker:
		return "Attacker"
	case OwnerDefender:
		return "Defender"
	case OwnerLeftFlank:
		return "LeftFlank"
	case OwnerRightFlank:
		return "RightFlank"
	case OwnerSplitAttDef:
		return "SplitAttDef"
	default:
		return "Unset"
	}
}

// Tile is a single hex on the battle map. The zero value has unset terrain
// and no owner.
type Tile struct {
	Terrain Terrain `json:"terrain"`
	Owner   Owner   `json:"owner"`
}
