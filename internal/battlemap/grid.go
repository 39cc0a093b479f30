package battlemap

import (
	"errors"
	"fmt"
)

// Minimum board dimensions.
const (
	MinWidth  = 4
	MinHeight = 2

	DefaultWidth  = 15
	DefaultHeight = 11
)

var (
	ErrGridTooSmall   = errors.New("grid too small")
	ErrInvalidAddress = errors.New("invalid hex address")
)

// Grid holds the battle map in offset rows.
// When the width is odd, odd rows are one tile shorter than even rows.
type Grid struct {
	rows   [][]Tile
	width  int
	height int
}

// NewGrid creates a width × height grid with every tile at its zero value.
func NewGrid(width, height int) (*Grid, error) {
	if width < MinWidth {
		return nil, fmt.Errorf("%w: width %d, need at least %d", ErrGridTooSmall, width, MinWidth)
	}
	if height < MinHeight {
		return nil, fmt.Errorf("%w: height %d, need at least %d", ErrGridTooSmall, height, MinHeight)
	}

	g := &Grid{
		rows:   make([][]Tile, height),
		width:  width,
		height: height,
	}
	for row := range g.rows {
		g.rows[row] = make([]Tile, g.WidthForRow(row))
	}
	return g, nil
}

// NewDefaultGrid creates a grid of the default battle size (15w × 11h).
func NewDefaultGrid() *Grid {
	g, _ := NewGrid(DefaultWidth, DefaultHeight)
	return g
}

// Width returns the number of tiles in an even row.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// WidthForRow returns how many tiles the given row holds.
// All column bounds checks go through here.
func (g *Grid) WidthForRow(row int) int {
	if g.width%2 == 0 || row%2 == 0 {
		return g.width
	}
	return g.width - 1
}

// TileCount returns the total number of tiles on the board.
func (g *Grid) TileCount() int {
	n := 0
	for row := 0; row < g.height; row++ {
		n += g.WidthForRow(row)
	}
	return n
}

// Valid reports whether (row, col) addresses a tile on this grid.
func (g *Grid) Valid(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.WidthForRow(row)
}

// Get returns the tile at (row, col), or nil if the address is off the board.
// The pointer refers to the grid's own storage.
func (g *Grid) Get(row, col int) *Tile {
	if !g.Valid(row, col) {
		return nil
	}
	return &g.rows[row][col]
}

// Set replaces the tile at (row, col).
func (g *Grid) Set(row, col int, t Tile) error {
	if !g.Valid(row, col) {
		return fmt.Errorf("set (%d,%d): %w", row, col, ErrInvalidAddress)
	}
	g.rows[row][col] = t
	return nil
}

// SetTerrain changes only the terrain of the tile at (row, col).
func (g *Grid) SetTerrain(row, col int, t Terrain) error {
	tile := g.Get(row, col)
	if tile == nil {
		return fmt.Errorf("set terrain (%d,%d): %w", row, col, ErrInvalidAddress)
	}
	tile.Terrain = t
	return nil
}

// SetOwner changes only the owner of the tile at (row, col).
func (g *Grid) SetOwner(row, col int, o Owner) error {
	tile := g.Get(row, col)
	if tile == nil {
		return fmt.Errorf("set owner (%d,%d): %w", row, col, ErrInvalidAddress)
	}
	tile.Owner = o
	return nil
}

// Each calls fn for every tile in row-major order.
func (g *Grid) Each(fn func(a Address, t *Tile)) {
	for row := range g.rows {
		for col := range g.rows[row] {
			fn(Address{Row: row, Col: col}, &g.rows[row][col])
		}
	}
}

// Unowned returns the addresses of tiles that zone painting has not reached.
func (g *Grid) Unowned() []Address {
	var out []Address
	g.Each(func(a Address, t *Tile) {
		if t.Owner == OwnerUnset {
			out = append(out, a)
		}
	})
	return out
}

// TerrainCounts returns a summary of terrain type distribution.
func (g *Grid) TerrainCounts() map[Terrain]int {
	counts := make(map[Terrain]int)
	g.Each(func(_ Address, t *Tile) {
		counts[t.Terrain]++
	})
	return counts
}

// OwnerCounts returns how many tiles each owner holds.
func (g *Grid) OwnerCounts() map[Owner]int {
	counts := make(map[Owner]int)
	g.Each(func(_ Address, t *Tile) {
		counts[t.Owner]++
	})
	return counts
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dw x %dh, tiles=%d)", g.width, g.height, g.TileCount())
}
