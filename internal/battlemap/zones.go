package battlemap

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFlankWidth = errors.New("invalid flank width")
	ErrPlanMismatch      = errors.New("zone plan does not match board")
)

// ZonePlan divides a board into deployment zones from its dimensions alone.
//
// The first and last FlankWidth columns of every row belong to the flanks.
// Between them, the first VerticalDepth rows are the attacker's, the last
// VerticalDepth rows are the defender's, and the middle row left over on an
// odd-height board is split between them.
type ZonePlan struct {
	Width         int
	Height        int
	FlankWidth    int
	VerticalDepth int
}

// NewZonePlan returns the standard plan: flanks a quarter of the width wide,
// attacker and defender each half the height deep. Both round down.
func NewZonePlan(width, height int) ZonePlan {
	return ZonePlan{
		Width:         width,
		Height:        height,
		FlankWidth:    width / 4,
		VerticalDepth: height / 2,
	}
}

// NewZonePlanWithFlank returns the standard plan with the flank width overridden.
// Both flanks must fit side by side in the shortest row.
func NewZonePlanWithFlank(width, height, flankWidth int) (ZonePlan, error) {
	narrowest := width
	if width%2 != 0 {
		narrowest = width - 1
	}
	if flankWidth < 0 || 2*flankWidth > narrowest {
		return ZonePlan{}, fmt.Errorf("%w: %d on a board %d wide", ErrInvalidFlankWidth, flankWidth, width)
	}
	p := NewZonePlan(width, height)
	p.FlankWidth = flankWidth
	return p, nil
}

// Owner returns the zone of (row, col) in a row holding rowWidth tiles.
func (p ZonePlan) Owner(row, col, rowWidth int) Owner {
	switch {
	case col < p.FlankWidth:
		return OwnerLeftFlank
	case col >= rowWidth-p.FlankWidth:
		return OwnerRightFlank
	case row < p.VerticalDepth:
		return OwnerAttacker
	case row >= p.Height-p.VerticalDepth:
		return OwnerDefender
	default:
		return OwnerSplitAttDef
	}
}

// HasSplitRow reports whether the board has a middle row between attacker and defender.
func (p ZonePlan) HasSplitRow() bool {
	return p.Height%2 != 0
}

// Paint overwrites the owner of every tile on g. Terrain is left untouched.
// It fails without touching g when g's dimensions differ from the plan's.
func (p ZonePlan) Paint(g *Grid) error {
	if g.Width() != p.Width || g.Height() != p.Height {
		return fmt.Errorf("%w: plan %dx%d, board %dx%d", ErrPlanMismatch, p.Width, p.Height, g.Width(), g.Height())
	}
	p.paint(g)
	return nil
}

func (p ZonePlan) paint(g *Grid) {
	for row := 0; row < g.Height(); row++ {
		rw := g.WidthForRow(row)
		for col := 0; col < rw; col++ {
			g.rows[row][col].Owner = p.Owner(row, col, rw)
		}
	}
}

// PaintZones assigns every tile on g to its standard deployment zone.
func PaintZones(g *Grid) {
	NewZonePlan(g.Width(), g.Height()).paint(g)
}

// PaintZonesWithFlank paints g using a custom flank width.
func PaintZonesWithFlank(g *Grid, flankWidth int) error {
	p, err := NewZonePlanWithFlank(g.Width(), g.Height(), flankWidth)
	if err != nil {
		return err
	}
	p.paint(g)
	return nil
}
