package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vinyl-slasher/core"
)

// continuation marks the right half of a wide rune
const continuation rune = -1

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
}

// Buffer is a compositor over a cell array, flushed to the screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Fill(colorBackground)
}

// Size returns the buffer dimensions in cells
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Fill resets all cells to a blank of the given background using exponential copy
func (b *Buffer) Fill(bg core.RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: colorHUD, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at x, y
func (b *Buffer) At(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// SetBg replaces the background, keeping the glyph
func (b *Buffer) SetBg(x, y int, bg core.RGB) {
	if b.inBounds(x, y) {
		b.cells[y*b.width+x].Bg = bg
	}
}

// BlendBg composites c over the background with alpha
func (b *Buffer) BlendBg(x, y int, c core.RGB, alpha float64) {
	if b.inBounds(x, y) {
		cell := &b.cells[y*b.width+x]
		cell.Bg = cell.Bg.Blend(c, alpha)
	}
}

// SetRune writes a glyph, keeping the background
func (b *Buffer) SetRune(x, y int, r rune, fg core.RGB) {
	if b.inBounds(x, y) {
		cell := &b.cells[y*b.width+x]
		cell.Rune = r
		cell.Fg = fg
	}
}

// FillRect paints a rectangle background and clears its glyphs
func (b *Buffer) FillRect(x, y, w, h int, bg core.RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if b.inBounds(col, row) {
				b.cells[row*b.width+col] = Cell{Rune: ' ', Fg: colorHUD, Bg: bg}
			}
		}
	}
}

// Text writes s from x, y keeping backgrounds; returns the columns consumed
func (b *Buffer) Text(x, y int, s string, fg core.RGB) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > b.width {
			break
		}
		b.SetRune(col, y, r, fg)
		if w == 2 {
			b.SetRune(col+1, y, continuation, fg)
		}
		col += w
	}
	return col - x
}

// TextCentered writes s centered on row y
func (b *Buffer) TextCentered(y int, s string, fg core.RGB) {
	x := (b.width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	b.Text(x, y, s, fg)
}

// Flush copies every cell to the screen; the caller shows the screen
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.Rune == continuation {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, StyleOf(c.Fg, c.Bg))
		}
	}
}
