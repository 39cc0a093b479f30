package battlemap

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// RenderTiles draws the board with one terrain symbol per hex.
func RenderTiles(w io.Writer, g *Grid) error {
	return render(w, g, func(t *Tile) string { return t.Terrain.Symbol() })
}

// RenderOwners draws the board with one owner symbol per hex.
func RenderOwners(w io.Writer, g *Grid) error {
	return render(w, g, func(t *Tile) string { return t.Owner.Symbol() })
}

// render lays hexes out on a character canvas. Each hex is four columns wide;
// odd rows are shifted right by two so their edges meet the rows around them.
//
//	 / \ / \
//	| P | F |
//	 \ / \ / \
//	  | H | P |
//	   \ / \ /
func render(w io.Writer, g *Grid, symbol func(*Tile) string) error {
	lines := make([][]byte, 2*g.Height()+1)
	for i := range lines {
		lines[i] = bytes.Repeat([]byte{' '}, 4*g.Width()+5)
	}

	g.Each(func(a Address, t *Tile) {
		x := 4*a.Col + 2 + 2*(a.Row%2)
		top, mid, bottom := lines[2*a.Row], lines[2*a.Row+1], lines[2*a.Row+2]

		top[x-1], top[x+1] = '/', '\\'
		mid[x-2], mid[x+2] = '|', '|'
		mid[x] = symbol(t)[0]
		bottom[x-1], bottom[x+1] = '\\', '/'
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Board: %dw x %dh\n", g.Width(), g.Height())
	for _, line := range lines {
		b.Write(bytes.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
