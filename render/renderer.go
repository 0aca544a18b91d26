// Package render composites session views into a cell buffer and flushes it to a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vinyl-slasher/component"
	"github.com/lixenwraith/vinyl-slasher/game"
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

// Frame is everything drawn in one pass
type Frame struct {
	Session    game.View
	Collection *CollectionView
}

// Renderer owns the compositing buffer for one screen
type Renderer struct {
	screen tcell.Screen
	buf    *Buffer
	grid   vmath.Grid
	art    *ArtworkCache
}

// NewRenderer creates a renderer sized to the screen; art may be nil
func NewRenderer(screen tcell.Screen, grid vmath.Grid, art *ArtworkCache) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		buf:    NewBuffer(w, h),
		grid:   grid,
		art:    art,
	}
}

// Buffer exposes the composited cells of the last frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Draw composites f and shows it
func (r *Renderer) Draw(f Frame) {
	w, h := r.screen.Size()
	if bw, bh := r.buf.Size(); bw != w || bh != h {
		r.buf.Resize(w, h)
	}
	r.Compose(f)
	r.buf.Flush(r.screen)
	r.screen.Show()
}

// Compose fills the buffer without touching the screen
func (r *Renderer) Compose(f Frame) {
	r.buf.Fill(colorBackground)
	v := f.Session

	for i := range v.Targets {
		r.drawTarget(&v.Targets[i])
	}
	r.drawParticles(v.Particles)
	if v.Phase == game.PhasePlaying {
		r.drawTrail(v.Trail)
	}
	r.drawHUD(v)

	switch {
	case f.Collection != nil:
		r.drawCollection(f.Collection)
	case v.Phase == game.PhaseModeUnselected:
		r.drawMenu()
	case v.Phase == game.PhaseReady:
		r.drawReady(v)
	case v.Phase == game.PhaseGameOver:
		r.drawGameOver(v)
	}
}

// drawParticles tints each particle's glyph against whatever lies beneath
func (r *Renderer) drawParticles(particles []component.Particle) {
	cols, rows := r.buf.Size()
	for _, p := range particles {
		col, row := r.grid.Cell(p.Pos)
		if !r.grid.InPlay(col, row, cols, rows) {
			continue
		}
		under, _ := r.buf.At(col, row)
		r.buf.SetRune(col, row, parameter.GlyphParticle, under.Bg.Blend(p.Color, vmath.Clamp(p.Life, 0, 1)))
	}
}

// drawTrail fades each segment by age; points are oldest first and the tip marks the oldest
func (r *Renderer) drawTrail(points []vmath.Vec2) {
	n := len(points)
	if n < 2 {
		return
	}
	cols, rows := r.buf.Size()
	for i := 1; i < n; i++ {
		alpha := 1 - float64(n-i)/float64(n)
		r.traceSegment(points[i-1], points[i], alpha, cols, rows)
	}
	col, row := r.grid.Cell(points[0])
	if r.grid.InPlay(col, row, cols, rows) {
		r.buf.SetRune(col, row, parameter.GlyphTrailTip, colorTrail)
	}
}

// traceSegment blends every cell a segment passes through, sampled at half-cell steps
func (r *Renderer) traceSegment(a, b vmath.Vec2, alpha float64, cols, rows int) {
	step := min(r.grid.CellW, r.grid.CellH) / 2
	steps := int(vmath.Distance(a, b)/step) + 1
	lastCol, lastRow := -1, -1
	for s := 0; s <= steps; s++ {
		p := a.Add(b.Sub(a).Scale(float64(s) / float64(steps)))
		col, row := r.grid.Cell(p)
		if col == lastCol && row == lastRow {
			continue
		}
		lastCol, lastRow = col, row
		if r.grid.InPlay(col, row, cols, rows) {
			r.buf.BlendBg(col, row, colorTrail, alpha)
		}
	}
}
