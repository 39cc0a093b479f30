package battlemap

import (
	"errors"
	"testing"
)

// wantNeighbors lists expected neighbor addresses by direction; nil means absent.
type wantNeighbors map[Direction]*Address

func at(row, col int) *Address { return &Address{Row: row, Col: col} }

func checkNeighbors(t *testing.T, g *Grid, row, col int, expect wantNeighbors) {
	t.Helper()
	n, err := g.Neighbors(row, col)
	if err != nil {
		t.Fatalf("Neighbors(%d, %d): %v", row, col, err)
	}
	if n.Location != (Address{Row: row, Col: col}) {
		t.Errorf("Neighbors(%d, %d).Location = %v", row, col, n.Location)
	}
	if n.Tile != g.Get(row, col) {
		t.Errorf("Neighbors(%d, %d).Tile does not point at the source tile", row, col)
	}
	for _, d := range Directions {
		got, ok := n.AddressIn(d)
		exp := expect[d]
		switch {
		case exp == nil && ok:
			t.Errorf("(%d,%d) %s = %v, want absent", row, col, d, got)
		case exp != nil && !ok:
			t.Errorf("(%d,%d) %s absent, want %v", row, col, d, *exp)
		case exp != nil && got != *exp:
			t.Errorf("(%d,%d) %s = %v, want %v", row, col, d, got, *exp)
		case exp != nil && n.In(d) != g.Get(exp.Row, exp.Col):
			t.Errorf("(%d,%d) %s tile does not point at %v", row, col, d, *exp)
		}
	}
}

func TestNeighborsOddRowInterior(t *testing.T) {
	g, _ := NewGrid(4, 3)
	checkNeighbors(t, g, 1, 1, wantNeighbors{
		DirLeft:       at(1, 0),
		DirUpperLeft:  at(0, 1),
		DirUpperRight: at(0, 2),
		DirRight:      at(1, 2),
		DirLowerRight: at(2, 2),
		DirLowerLeft:  at(2, 1),
	})
}

func TestNeighborsEvenRowInterior(t *testing.T) {
	g, _ := NewGrid(6, 5)
	checkNeighbors(t, g, 2, 3, wantNeighbors{
		DirLeft:       at(2, 2),
		DirUpperLeft:  at(1, 2),
		DirUpperRight: at(1, 3),
		DirRight:      at(2, 4),
		DirLowerRight: at(3, 3),
		DirLowerLeft:  at(3, 2),
	})
}

func TestNeighborsEvenRowEdges(t *testing.T) {
	g, _ := NewGrid(4, 3)

	// Top-left corner.
	checkNeighbors(t, g, 0, 0, wantNeighbors{
		DirRight:      at(0, 1),
		DirLowerRight: at(1, 0),
	})
	// Top-right corner: the odd row below reaches under it.
	checkNeighbors(t, g, 0, 3, wantNeighbors{
		DirLeft:       at(0, 2),
		DirLowerRight: at(1, 3),
		DirLowerLeft:  at(1, 2),
	})
	// Bottom row, left edge.
	checkNeighbors(t, g, 2, 0, wantNeighbors{
		DirUpperRight: at(1, 0),
		DirRight:      at(2, 1),
	})
	// Bottom row, right edge.
	checkNeighbors(t, g, 2, 3, wantNeighbors{
		DirLeft:       at(2, 2),
		DirUpperLeft:  at(1, 2),
		DirUpperRight: at(1, 3),
	})
}

func TestNeighborsOddRowEdges(t *testing.T) {
	g, _ := NewGrid(4, 3)

	// Left edge: the shifted row still touches column 0 above and below.
	checkNeighbors(t, g, 1, 0, wantNeighbors{
		DirUpperLeft:  at(0, 0),
		DirUpperRight: at(0, 1),
		DirRight:      at(1, 1),
		DirLowerRight: at(2, 1),
		DirLowerLeft:  at(2, 0),
	})
	// Right edge: nothing further right above or below.
	checkNeighbors(t, g, 1, 3, wantNeighbors{
		DirLeft:      at(1, 2),
		DirUpperLeft: at(0, 3),
		DirLowerLeft: at(2, 3),
	})
	// Last row is odd on an even-height board.
	g2, _ := NewGrid(4, 2)
	checkNeighbors(t, g2, 1, 1, wantNeighbors{
		DirLeft:       at(1, 0),
		DirUpperLeft:  at(0, 1),
		DirUpperRight: at(0, 2),
		DirRight:      at(1, 2),
	})
}

func TestNeighborsOddWidth(t *testing.T) {
	g, _ := NewGrid(5, 3)

	// Last column of a long even row has no lower-right: the odd row is short.
	checkNeighbors(t, g, 0, 4, wantNeighbors{
		DirLeft:      at(0, 3),
		DirLowerLeft: at(1, 3),
	})
	// Last column of a short odd row reaches the long rows' last column.
	checkNeighbors(t, g, 1, 3, wantNeighbors{
		DirLeft:       at(1, 2),
		DirUpperLeft:  at(0, 3),
		DirUpperRight: at(0, 4),
		DirLowerRight: at(2, 4),
		DirLowerLeft:  at(2, 3),
	})
}

func TestNeighborsInvalidSource(t *testing.T) {
	g, _ := NewGrid(5, 3)
	for _, a := range []Address{{3, 0}, {1, 4}, {-1, 0}, {0, 5}} {
		if _, err := g.Neighbors(a.Row, a.Col); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("Neighbors(%d, %d) error = %v, want ErrInvalidAddress", a.Row, a.Col, err)
		}
	}
}

func TestNeighborsReflectCurrentState(t *testing.T) {
	g, _ := NewGrid(4, 3)
	n, err := g.Neighbors(1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = g.Set(0, 2, Tile{Terrain: TerrainTown, Owner: OwnerAttacker})
	if got := n.UpperRight().Terrain; got != TerrainTown {
		t.Fatalf("UpperRight().Terrain = %s after set, want Town", got)
	}
}

func TestNeighborsAccessors(t *testing.T) {
	g, _ := NewGrid(4, 3)
	n, _ := g.Neighbors(1, 1)
	accessors := map[Direction]*Tile{
		DirLeft:       n.Left(),
		DirUpperLeft:  n.UpperLeft(),
		DirUpperRight: n.UpperRight(),
		DirRight:      n.Right(),
		DirLowerRight: n.LowerRight(),
		DirLowerLeft:  n.LowerLeft(),
	}
	for d, tile := range accessors {
		if tile != n.In(d) {
			t.Errorf("accessor for %s disagrees with In(%s)", d, d)
		}
	}
	if n.Count() != 6 {
		t.Fatalf("Count() = %d, want 6", n.Count())
	}
}

func TestNeighborSymmetry(t *testing.T) {
	for width := 4; width <= 9; width++ {
		for height := 2; height <= 9; height++ {
			g, _ := NewGrid(width, height)
			g.Each(func(a Address, _ *Tile) {
				n, err := g.Neighbors(a.Row, a.Col)
				if err != nil {
					t.Fatalf("Neighbors(%v): %v", a, err)
				}
				for _, d := range Directions {
					b, ok := n.AddressIn(d)
					if !ok {
						continue
					}
					back, err := g.Neighbors(b.Row, b.Col)
					if err != nil {
						t.Fatalf("Neighbors(%v): %v", b, err)
					}
					if got, ok := back.AddressIn(d.Opposite()); !ok || got != a {
						t.Errorf("%dx%d: %v -%s-> %v but %s of %v = %v (present %v)",
							width, height, a, d, b, d.Opposite(), b, got, ok)
					}
				}
			})
		}
	}
}

func TestBoundaryAbsence(t *testing.T) {
	for width := 4; width <= 9; width++ {
		for height := 2; height <= 9; height++ {
			g, _ := NewGrid(width, height)
			g.Each(func(a Address, _ *Tile) {
				n, _ := g.Neighbors(a.Row, a.Col)
				if a.Row == 0 && (n.UpperLeft() != nil || n.UpperRight() != nil) {
					t.Errorf("%dx%d %v: top row has an upper neighbor", width, height, a)
				}
				if a.Col == 0 && n.Left() != nil {
					t.Errorf("%dx%d %v: first column has a left neighbor", width, height, a)
				}
				if a.Row == height-1 && (n.LowerLeft() != nil || n.LowerRight() != nil) {
					t.Errorf("%dx%d %v: last row has a lower neighbor", width, height, a)
				}
				if a.Col == g.WidthForRow(a.Row)-1 && n.Right() != nil {
					t.Errorf("%dx%d %v: last column has a right neighbor", width, height, a)
				}
			})
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirLeft:       DirRight,
		DirUpperLeft:  DirLowerRight,
		DirUpperRight: DirLowerLeft,
		DirRight:      DirLeft,
		DirLowerRight: DirUpperLeft,
		DirLowerLeft:  DirUpperRight,
	}
	for d, opp := range pairs {
		if got := d.Opposite(); got != opp {
			t.Errorf("%s.Opposite() = %s, want %s", d, got, opp)
		}
	}
}
