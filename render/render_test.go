package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/component"
	"github.com/lixenwraith/vinyl-slasher/core"
	"github.com/lixenwraith/vinyl-slasher/game"
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/physics"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

var testGrid = vmath.Grid{CellW: 8, CellH: 16, Top: 1}

func newTestRenderer(t *testing.T, w, h int) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return NewRenderer(screen, testGrid, nil), screen
}

func playingView(targets ...component.Target) game.View {
	return game.View{
		Phase:    game.PhasePlaying,
		Mode:     game.ModeScoreTarget,
		Score:    120,
		Goal:     parameter.ScoreTargetGoal,
		Lives:    2,
		MaxLives: parameter.StartingLives,
		Elapsed:  75 * time.Second,
		Surface:  physics.Surface{W: 640, H: 384},
		Targets:  targets,
	}
}

// rowText reads one screen row back as a string
func rowText(screen tcell.SimulationScreen, row int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, row)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{999 * time.Millisecond, "0:00"},
		{59 * time.Second, "0:59"},
		{60 * time.Second, "1:00"},
		{125*time.Second + 500*time.Millisecond, "2:05"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestScoreText(t *testing.T) {
	v := playingView()
	if got, want := ScoreText(v), "Score 120 / 1000"; got != want {
		t.Errorf("score-target: got %q, want %q", got, want)
	}
	v.Mode = game.ModeTimeLimit
	if got, want := ScoreText(v), "120 points"; got != want {
		t.Errorf("time-limit: got %q, want %q", got, want)
	}
}

func TestHUDRow(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)
	r.Draw(Frame{Session: playingView()})

	hud := rowText(screen, 0)
	for _, want := range []string{"Score 120 / 1000", "Time 1:15", "●●●"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	// Third life is drawn in the lost color
	w, _ := screen.Size()
	x := w - 2
	_, _, style, _ := screen.GetContent(x, 0)
	fg, _, _ := style.Decompose()
	if got := TcellToRGB(fg); got != colorLifeLost {
		t.Errorf("last life color: got %v, want %v", got, colorLifeLost)
	}
}

func TestHUDTimeLimitCountsDown(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)
	v := playingView()
	v.Mode = game.ModeTimeLimit
	v.Elapsed = 15 * time.Second
	r.Draw(Frame{Session: v})

	if hud := rowText(screen, 0); !strings.Contains(hud, "Left 0:45") {
		t.Errorf("HUD %q missing countdown", hud)
	}
}

func TestPlainDisc(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)
	red := core.MustHex("#8b0000")
	target := component.Target{
		Kinetic:    component.Kinetic{Pos: vmath.V(324, 168)},
		Radius:     64,
		Appearance: component.Plain{Color: red},
	}
	r.Draw(Frame{Session: playingView(target)})

	holeCol, holeRow := testGrid.Cell(target.Pos)
	ch, _, style, _ := screen.GetContent(holeCol, holeRow)
	if ch != parameter.GlyphHole {
		t.Errorf("center glyph: got %q, want %q", ch, parameter.GlyphHole)
	}
	if _, bg, _ := style.Decompose(); TcellToRGB(bg) != colorLabel {
		t.Errorf("center bg: got %v, want label %v", TcellToRGB(bg), colorLabel)
	}

	// A cell at half radius shows the vinyl color
	col, row := testGrid.Cell(target.Pos.Add(vmath.V(0, -32)))
	_, _, style, _ = screen.GetContent(col, row)
	if _, bg, _ := style.Decompose(); TcellToRGB(bg) != red {
		t.Errorf("body bg: got %v, want %v", TcellToRGB(bg), red)
	}

	// Outside the radius stays background
	col, row = testGrid.Cell(target.Pos.Add(vmath.V(80, 0)))
	_, _, style, _ = screen.GetContent(col, row)
	if _, bg, _ := style.Decompose(); TcellToRGB(bg) != colorBackground {
		t.Errorf("outside bg: got %v, want %v", TcellToRGB(bg), colorBackground)
	}
}

func TestPlainShadeRim(t *testing.T) {
	base := core.MustHex("#808080")
	tests := []struct {
		dist float64
		want core.RGB
	}{
		{0, colorLabel},
		{parameter.DiscLabelRadius, colorLabel},
		{0.5, base},
		{parameter.DiscRimStart, base},
		{1, colorHole},
	}
	for _, tt := range tests {
		if got := plainShade(base, tt.dist); got != tt.want {
			t.Errorf("plainShade(%v): got %v, want %v", tt.dist, got, tt.want)
		}
	}
	if mid := plainShade(base, 0.85); mid == base || mid == colorHole {
		t.Errorf("rim at 0.85 should be between base and black, got %v", mid)
	}
}

func TestSpecialDiscFallsBackWithoutArtwork(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)
	target := component.Target{
		Kinetic:    component.Kinetic{Pos: vmath.V(324, 168)},
		Radius:     64,
		Appearance: component.Special{Album: &catalog.Album{Album: "A", Artist: "B", File: "missing.jpg"}},
	}
	r.Draw(Frame{Session: playingView(target)})

	col, row := testGrid.Cell(target.Pos.Add(vmath.V(0, -32)))
	_, _, style, _ := screen.GetContent(col, row)
	if _, bg, _ := style.Decompose(); TcellToRGB(bg) != colorFallbackDisc {
		t.Errorf("fallback bg: got %v, want %v", TcellToRGB(bg), colorFallbackDisc)
	}
}

func solidPNG(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeThumb(t *testing.T) {
	data := solidPNG(t, color.RGBA{R: 10, G: 200, B: 30, A: 255})
	thumb, err := DecodeThumb(bytes.NewReader(data), 4)
	if err != nil {
		t.Fatalf("DecodeThumb: %v", err)
	}
	if len(thumb.Pix) != 16 {
		t.Fatalf("pixels: got %d, want 16", len(thumb.Pix))
	}
	want := core.RGB{R: 10, G: 200, B: 30}
	for _, uv := range [][2]float64{{0, 0}, {0.5, 0.5}, {1, 1}, {-1, 2}} {
		if got := thumb.At(uv[0], uv[1]); got != want {
			t.Errorf("At(%v): got %v, want %v", uv, got, want)
		}
	}

	if _, err := DecodeThumb(strings.NewReader("not an image"), 4); err == nil {
		t.Error("expected decode error for garbage input")
	}
}

func TestArtworkCache(t *testing.T) {
	dir := t.TempDir()
	data := solidPNG(t, color.RGBA{R: 255, A: 255})
	if err := writeFile(dir, "red.png", data); err != nil {
		t.Fatal(err)
	}
	albums := []*catalog.Album{{File: "red.png"}, {File: "absent.jpg"}}

	cache := NewArtworkCache(8, log.New(&bytes.Buffer{}))
	if _, ok := cache.Get("red.png"); ok {
		t.Error("Get before Load should miss")
	}
	cache.Load(dir, albums)

	select {
	case <-cache.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("artwork loader did not finish")
	}

	if got := cache.Ready(); got != 1 {
		t.Errorf("Ready: got %d, want 1", got)
	}
	thumb, ok := cache.Get("red.png")
	if !ok || thumb.At(0.5, 0.5) != (core.RGB{R: 255}) {
		t.Errorf("red.png thumb: got %v ok=%v", thumb, ok)
	}
	if _, ok := cache.Get("absent.jpg"); ok {
		t.Error("absent artwork should not be ready")
	}

	var nilCache *ArtworkCache
	if _, ok := nilCache.Get("red.png"); ok {
		t.Error("nil cache should miss")
	}
}

func TestSpecialDiscUsesArtwork(t *testing.T) {
	dir := t.TempDir()
	if err := writeFile(dir, "blue.png", solidPNG(t, color.RGBA{B: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	album := &catalog.Album{File: "blue.png"}
	cache := NewArtworkCache(8, log.New(&bytes.Buffer{}))
	cache.Load(dir, []*catalog.Album{album})
	<-cache.Done()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)
	r := NewRenderer(screen, testGrid, cache)

	target := component.Target{
		Kinetic:    component.Kinetic{Pos: vmath.V(324, 168)},
		Radius:     64,
		Rotation:   1.2,
		Appearance: component.Special{Album: album},
	}
	r.Draw(Frame{Session: playingView(target)})

	col, row := testGrid.Cell(target.Pos.Add(vmath.V(0, -32)))
	_, _, style, _ := screen.GetContent(col, row)
	if _, bg, _ := style.Decompose(); TcellToRGB(bg) != (core.RGB{B: 255}) {
		t.Errorf("artwork bg: got %v, want blue", TcellToRGB(bg))
	}
}

func TestTrail(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)
	v := playingView()
	v.Trail = []vmath.Vec2{vmath.V(4, 8), vmath.V(84, 8), vmath.V(164, 8)}
	r.Draw(Frame{Session: v})

	col, row := testGrid.Cell(v.Trail[0])
	if ch, _, _, _ := screen.GetContent(col, row); ch != parameter.GlyphTrailTip {
		t.Errorf("tip glyph: got %q, want %q", ch, parameter.GlyphTrailTip)
	}

	// Newer segments are drawn more opaque
	older, _ := r.Buffer().At(testGrid.Cell(vmath.V(44, 8)))
	newer, _ := r.Buffer().At(testGrid.Cell(vmath.V(124, 8)))
	if older.Bg == colorBackground || newer.Bg == colorBackground {
		t.Fatalf("trail cells not tinted: older=%v newer=%v", older.Bg, newer.Bg)
	}
	if newer.Bg.R <= older.Bg.R {
		t.Errorf("newer segment should be redder: older=%v newer=%v", older.Bg, newer.Bg)
	}

	v.Phase = game.PhaseGameOver
	r.Draw(Frame{Session: v})
	if ch, _, _, _ := screen.GetContent(col, row); ch == parameter.GlyphTrailTip {
		t.Error("trail drawn outside play")
	}
}

func TestParticles(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)
	v := playingView()
	v.Particles = []component.Particle{
		{Kinetic: component.Kinetic{Pos: vmath.V(100, 100)}, Life: 1, Color: core.MustHex("#00ffff")},
		{Kinetic: component.Kinetic{Pos: vmath.V(-50, 100)}, Life: 1, Color: core.MustHex("#00ffff")},
	}
	r.Draw(Frame{Session: v})

	col, row := testGrid.Cell(v.Particles[0].Pos)
	ch, _, style, _ := screen.GetContent(col, row)
	if ch != parameter.GlyphParticle {
		t.Fatalf("particle glyph: got %q", ch)
	}
	if fg, _, _ := style.Decompose(); TcellToRGB(fg) != core.MustHex("#00ffff") {
		t.Errorf("full-life particle fg: got %v", TcellToRGB(fg))
	}
}

func TestOverlays(t *testing.T) {
	tests := []struct {
		name  string
		view  game.View
		coll  *CollectionView
		wants []string
	}{
		{
			name:  "menu",
			view:  game.View{Phase: game.PhaseModeUnselected},
			wants: []string{"Score Target", "Time Limit"},
		},
		{
			name:  "ready",
			view:  game.View{Phase: game.PhaseReady, Mode: game.ModeTimeLimit},
			wants: []string{"Mode: Time Limit", "Press Enter"},
		},
		{
			name: "game over score target",
			view: game.View{
				Phase: game.PhaseGameOver, Mode: game.ModeScoreTarget, FinalTime: 83 * time.Second,
				NewlyCut: []*catalog.Album{{Album: "Blue", Artist: "Joni Mitchell"}},
			},
			wants: []string{"GAME OVER", "Final time 1:23", "Joni Mitchell - Blue"},
		},
		{
			name:  "game over time limit",
			view:  game.View{Phase: game.PhaseGameOver, Mode: game.ModeTimeLimit, Score: 340},
			wants: []string{"Final score 340"},
		},
		{
			name: "collection",
			view: game.View{Phase: game.PhaseModeUnselected},
			coll: &CollectionView{
				Entries: []CollectionEntry{
					{Album: &catalog.Album{Album: "Kind of Blue", Artist: "Miles Davis"}, Unlocked: true},
					{Album: &catalog.Album{Album: "Secret", Artist: "Hidden"}},
				},
				Unlocked: 1,
				Total:    2,
			},
			wants: []string{"Collection 1 / 2", "Miles Davis - Kind of Blue", "???"},
		},
		{
			name:  "erase confirm",
			view:  game.View{Phase: game.PhaseModeUnselected},
			coll:  &CollectionView{ConfirmErase: true},
			wants: []string{"Erase all unlocks?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, screen := newTestRenderer(t, 80, 24)
			r.Draw(Frame{Session: tt.view, Collection: tt.coll})

			var all strings.Builder
			for row := 0; row < 24; row++ {
				all.WriteString(rowText(screen, row))
				all.WriteByte('\n')
			}
			for _, want := range tt.wants {
				if !strings.Contains(all.String(), want) {
					t.Errorf("screen missing %q", want)
				}
			}
			if tt.coll != nil && strings.Contains(all.String(), "Hidden") {
				t.Error("locked album leaked its name")
			}
		})
	}
}

func TestResizeFollowsScreen(t *testing.T) {
	r, screen := newTestRenderer(t, 40, 12)
	r.Draw(Frame{Session: playingView()})
	screen.SetSize(100, 30)
	r.Draw(Frame{Session: playingView()})
	if w, h := r.Buffer().Size(); w != 100 || h != 30 {
		t.Errorf("buffer size: got %dx%d, want 100x30", w, h)
	}
}

func TestBufferText(t *testing.T) {
	b := NewBuffer(6, 1)
	if n := b.Text(0, 0, "ab漢字", colorHUD); n != 6 {
		t.Errorf("columns: got %d, want 6", n)
	}
	if c, _ := b.At(3, 0); c.Rune != continuation {
		t.Errorf("wide rune continuation: got %q", c.Rune)
	}
	if n := b.Text(4, 0, "漢", colorHUD); n != 2 {
		t.Errorf("fits exactly: got %d, want 2", n)
	}
	if n := b.Text(5, 0, "漢", colorHUD); n != 0 {
		t.Errorf("overflow: got %d, want 0", n)
	}
}

func writeFile(dir, name string, data []byte) error {
	return os.WriteFile(filepath.Join(dir, name), data, 0o644)
}
