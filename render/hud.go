package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vinyl-slasher/game"
	"github.com/lixenwraith/vinyl-slasher/parameter"
)

const title = "VINYL SLASHER"

// FormatClock renders a duration as m:ss, truncating to whole seconds
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// ScoreText is the HUD score: progress toward the goal or a plain tally
func ScoreText(v game.View) string {
	if v.Mode == game.ModeScoreTarget {
		return fmt.Sprintf("Score %d / %d", v.Score, v.Goal)
	}
	return fmt.Sprintf("%d points", v.Score)
}

func clockText(v game.View) string {
	label := "Time"
	if v.Mode == game.ModeTimeLimit && !v.GameOver() {
		label = "Left"
	}
	return label + " " + FormatClock(v.Clock())
}

// drawHUD fills the rows above the play surface
func (r *Renderer) drawHUD(v game.View) {
	cols, _ := r.buf.Size()
	for row := 0; row < r.grid.Top; row++ {
		r.buf.FillRect(0, row, cols, 1, colorHUDBar)
	}

	if v.Phase != game.PhasePlaying && v.Phase != game.PhaseGameOver {
		r.buf.Text(1, 0, title, colorAccent)
		return
	}

	r.buf.Text(1, 0, ScoreText(v), colorHUD)

	clock := clockText(v)
	r.buf.Text((cols-runewidth.StringWidth(clock))/2, 0, clock, colorHUD)

	lives := strings.Repeat(string(parameter.GlyphLife), v.Lives)
	lost := strings.Repeat(string(parameter.GlyphLife), max(v.MaxLives-v.Lives, 0))
	x := cols - runewidth.StringWidth(lives+lost) - 1
	x += r.buf.Text(x, 0, lives, colorLife)
	r.buf.Text(x, 0, lost, colorLifeLost)
}
