package battlemap

import "fmt"

// Direction names one of the six sides of a hex, clockwise from the left.
type Direction uint8

const (
	DirLeft Direction = iota
	DirUpperLeft
	DirUpperRight
	DirRight
	DirLowerRight
	DirLowerLeft
)

// Directions lists all six directions in clockwise order starting at the left.
var Directions = [6]Direction{DirLeft, DirUpperLeft, DirUpperRight, DirRight, DirLowerRight, DirLowerLeft}

// Opposite returns the direction pointing back at the source hex.
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUpperLeft:
		return "upper_left"
	case DirUpperRight:
		return "upper_right"
	case DirRight:
		return "right"
	case DirLowerRight:
		return "lower_right"
	case DirLowerLeft:
		return "lower_left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Neighbors is the set of hexes around one source tile.
// Tiles point into the grid, so they reflect its state when read.
type Neighbors struct {
	Location Address
	Tile     *Tile

	tiles [6]*Tile
	addrs [6]Address
}

// In returns the neighbor in direction d, or nil if it is off the board.
func (n Neighbors) In(d Direction) *Tile { return n.tiles[d] }

// AddressIn returns the address of the neighbor in direction d.
// ok is false when the neighbor is off the board.
func (n Neighbors) AddressIn(d Direction) (a Address, ok bool) {
	if n.tiles[d] == nil {
		return Address{}, false
	}
	return n.addrs[d], true
}

func (n Neighbors) Left() *Tile       { return n.tiles[DirLeft] }
func (n Neighbors) UpperLeft() *Tile  { return n.tiles[DirUpperLeft] }
func (n Neighbors) UpperRight() *Tile { return n.tiles[DirUpperRight] }
func (n Neighbors) Right() *Tile      { return n.tiles[DirRight] }
func (n Neighbors) LowerRight() *Tile { return n.tiles[DirLowerRight] }
func (n Neighbors) LowerLeft() *Tile  { return n.tiles[DirLowerLeft] }

// Count returns how many of the six neighbors exist.
func (n Neighbors) Count() int {
	c := 0
	for _, t := range n.tiles {
		if t != nil {
			c++
		}
	}
	return c
}

// Neighbors resolves the six hexes adjacent to (row, col).
// Candidates that fall off the board come back nil.
func (g *Grid) Neighbors(row, col int) (Neighbors, error) {
	tile := g.Get(row, col)
	if tile == nil {
		return Neighbors{}, fmt.Errorf("neighbors of (%d,%d): %w", row, col, ErrInvalidAddress)
	}

	var addrs [6]Address
	if row%2 == 0 {
		addrs = evenRowNeighbors(row, col)
	} else {
		addrs = oddRowNeighbors(row, col)
	}

	n := Neighbors{
		Location: Address{Row: row, Col: col},
		Tile:     tile,
		addrs:    addrs,
	}
	for i, a := range addrs {
		n.tiles[i] = g.Get(a.Row, a.Col)
	}
	return n, nil
}

// oddRowNeighbors returns candidate addresses for a hex on an odd row.
// Odd rows are shifted right, so the rows above and below reach one column further.
func oddRowNeighbors(row, col int) [6]Address {
	return [6]Address{
		DirLeft:       {row, col - 1},
		DirUpperLeft:  {row - 1, col},
		DirUpperRight: {row - 1, col + 1},
		DirRight:      {row, col + 1},
		DirLowerRight: {row + 1, col + 1},
		DirLowerLeft:  {row + 1, col},
	}
}

// evenRowNeighbors is oddRowNeighbors with the diagonals moved one column left.
func evenRowNeighbors(row, col int) [6]Address {
	addrs := oddRowNeighbors(row, col)
	for _, d := range [4]Direction{DirUpperLeft, DirUpperRight, DirLowerRight, DirLowerLeft} {
		addrs[d].Col--
	}
	return addrs
}
