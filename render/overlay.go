package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/core"
	"github.com/lixenwraith/vinyl-slasher/game"
)

// CollectionEntry is one album row of the collection overlay
type CollectionEntry struct {
	Album    *catalog.Album
	Unlocked bool
}

// CollectionView is the collection overlay state owned by the app
type CollectionView struct {
	Entries      []CollectionEntry
	Order        catalog.SortOrder
	Unlocked     int
	Total        int
	Scroll       int
	ConfirmErase bool
}

// EntryLabel is the row text of an album, hidden while locked
func EntryLabel(e CollectionEntry) string {
	if !e.Unlocked {
		return "???"
	}
	label := e.Album.Artist + " - " + e.Album.Album
	if e.Album.Tag != "" {
		label += " [" + e.Album.Tag + "]"
	}
	return label
}

// panel draws a centered box of w x h cells and returns its origin
func (r *Renderer) panel(w, h int) (int, int) {
	cols, rows := r.buf.Size()
	w = min(w, cols)
	h = min(h, rows-r.grid.Top)
	x := (cols - w) / 2
	y := r.grid.Top + (rows-r.grid.Top-h)/2
	r.buf.FillRect(x, y, w, h, colorPanel)
	return x, y
}

// line writes s truncated to width w
func (r *Renderer) line(x, y, w int, s string, fg core.RGB) {
	r.buf.Text(x, y, runewidth.Truncate(s, w, "…"), fg)
}

// centered writes s centered within a panel of width w at x
func (r *Renderer) centered(x, y, w int, s string, fg core.RGB) {
	s = runewidth.Truncate(s, w, "…")
	r.buf.Text(x+(w-runewidth.StringWidth(s))/2, y, s, fg)
}

func (r *Renderer) drawMenu() {
	const w, h = 40, 9
	x, y := r.panel(w, h)
	r.centered(x, y+1, w, title, colorAccent)
	r.centered(x, y+3, w, "[1] Score Target  reach 1000", colorHUD)
	r.centered(x, y+4, w, "[2] Time Limit    60 seconds", colorHUD)
	r.centered(x, y+6, w, "[c] Collection    [q] Quit", colorMuted)
}

func (r *Renderer) drawReady(v game.View) {
	const w, h = 40, 7
	x, y := r.panel(w, h)
	r.centered(x, y+1, w, "Mode: "+modeTitle(v.Mode), colorAccent)
	r.centered(x, y+3, w, "Press Enter to start", colorHUD)
	r.centered(x, y+5, w, "[1]/[2] switch  [m] menu", colorMuted)
}

func (r *Renderer) drawGameOver(v game.View) {
	w := 44
	h := 9 + len(v.NewlyCut)
	if len(v.NewlyCut) > 0 {
		h++
	}
	x, y := r.panel(w, h)
	r.centered(x, y+1, w, "GAME OVER", colorAccent)

	var result string
	if v.Mode == game.ModeScoreTarget {
		result = "Final time " + FormatClock(v.FinalTime)
	} else {
		result = fmt.Sprintf("Final score %d", v.Score)
	}
	r.centered(x, y+3, w, result, colorHUD)

	row := y + 5
	if len(v.NewlyCut) > 0 {
		r.centered(x, row, w, "Unlocked", colorLabel)
		row++
		for _, a := range v.NewlyCut {
			r.centered(x, row, w-2, a.Artist+" - "+a.Album, colorHUD)
			row++
		}
		row++
	}
	r.centered(x, row+1, w, "[r] play again  [m] menu", colorMuted)
}

func (r *Renderer) drawCollection(c *CollectionView) {
	cols, rows := r.buf.Size()
	w := min(max(cols-4, 20), 72)
	h := rows - r.grid.Top - 2
	if h < 5 {
		return
	}
	x, y := r.panel(w, h)

	header := fmt.Sprintf("Collection %d / %d  (sort: %s)", c.Unlocked, c.Total, c.Order)
	r.line(x+1, y, w-2, header, colorAccent)

	footer := "[s] sort  [x] erase  [Esc] back"
	if c.ConfirmErase {
		footer = "Erase all unlocks? [y] yes  [n] no"
	}
	r.line(x+1, y+h-1, w-2, footer, colorMuted)

	visible := h - 2
	start := min(max(c.Scroll, 0), max(len(c.Entries)-visible, 0))
	for i := 0; i < visible && start+i < len(c.Entries); i++ {
		e := c.Entries[start+i]
		fg := colorHUD
		if !e.Unlocked {
			fg = colorLocked
		}
		r.line(x+1, y+1+i, w-2, fmt.Sprintf("%3d. %s", start+i+1, EntryLabel(e)), fg)
	}
}

func modeTitle(m game.Mode) string {
	switch m {
	case game.ModeScoreTarget:
		return "Score Target"
	case game.ModeTimeLimit:
		return "Time Limit"
	}
	return "none"
}
