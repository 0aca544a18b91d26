package render

import (
	"github.com/lixenwraith/vinyl-slasher/component"
	"github.com/lixenwraith/vinyl-slasher/core"
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

// drawTarget rasterizes one disc into the cells its bounding box covers
func (r *Renderer) drawTarget(t *component.Target) {
	var (
		base  = colorFallbackDisc
		thumb *Thumb
	)
	switch look := t.Appearance.(type) {
	case component.Plain:
		base = look.Color
	case component.Special:
		if look.Album != nil {
			thumb, _ = r.art.Get(look.Album.File)
		}
	}

	cols, rows := r.buf.Size()
	reach := vmath.V(t.Radius, t.Radius)
	c0, r0 := r.grid.Cell(t.Pos.Sub(reach))
	c1, r1 := r.grid.Cell(t.Pos.Add(reach))
	holeCol, holeRow := r.grid.Cell(t.Pos)
	grooveCol, grooveRow := r.grid.Cell(t.Pos.Add(
		vmath.FromAngle(t.Rotation, t.Radius*parameter.DiscGrooveAt),
	))

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !r.grid.InPlay(col, row, cols, rows) {
				continue
			}
			d := r.grid.CellCenter(col, row).Sub(t.Pos)
			dist := d.Len() / t.Radius
			if dist > 1 {
				continue
			}

			if thumb != nil {
				r.buf.SetBg(col, row, artworkShade(thumb, vmath.RotateVector(d, -t.Rotation), dist, t.Radius))
			} else {
				r.buf.SetBg(col, row, plainShade(base, dist))
				if col == grooveCol && row == grooveRow && dist > parameter.DiscLabelRadius {
					r.buf.SetRune(col, row, parameter.GlyphGroove, plainShade(base, dist).Blend(colorGroove, 0.45))
				}
			}

			if col == holeCol && row == holeRow {
				r.buf.SetRune(col, row, parameter.GlyphHole, colorHole)
			}
		}
	}
}

// plainShade is the vinyl color with a pink label inside and a rim fading to black
func plainShade(base core.RGB, dist float64) core.RGB {
	switch {
	case dist <= parameter.DiscLabelRadius:
		return colorLabel
	case dist > parameter.DiscRimStart:
		return base.Blend(colorHole, (dist-parameter.DiscRimStart)/(1-parameter.DiscRimStart))
	default:
		return base
	}
}

// artworkShade samples the rotated artwork inside a black rim
func artworkShade(thumb *Thumb, local vmath.Vec2, dist, radius float64) core.RGB {
	if dist > parameter.ArtworkRadius {
		return colorHole
	}
	span := radius * parameter.ArtworkRadius
	return thumb.At((local.X/span+1)/2, (local.Y/span+1)/2)
}
