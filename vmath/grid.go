package vmath

import "math"

// Grid maps terminal cells to surface units; rows above Top belong to the HUD
type Grid struct {
	CellW, CellH float64
	Top          int
}

// Surface returns the play surface size for a screen of cols x rows cells
func (g Grid) Surface(cols, rows int) (w, h float64) {
	playRows := rows - g.Top
	if cols <= 0 || playRows <= 0 {
		return 0, 0
	}
	return float64(cols) * g.CellW, float64(playRows) * g.CellH
}

// CellCenter returns the surface point at the center of a screen cell
func (g Grid) CellCenter(col, row int) Vec2 {
	return Vec2{
		X: (float64(col) + 0.5) * g.CellW,
		Y: (float64(row-g.Top) + 0.5) * g.CellH,
	}
}

// Cell returns the screen cell containing surface point p
func (g Grid) Cell(p Vec2) (col, row int) {
	return int(math.Floor(p.X / g.CellW)), int(math.Floor(p.Y/g.CellH)) + g.Top
}

// InPlay reports whether a screen cell lies on the play surface
func (g Grid) InPlay(col, row, cols, rows int) bool {
	return col >= 0 && col < cols && row >= g.Top && row < rows
}
