package parameter

// Layout
const (
	// TopMargin is the HUD row above the play surface
	TopMargin = 1

	// DefaultCellWidth is the surface width covered by one terminal cell
	DefaultCellWidth = 8.0
	// DefaultCellHeight is the surface height covered by one terminal cell
	DefaultCellHeight = 16.0
)

// Disc Proportions (fractions of radius)
const (
	DiscRimStart    = 0.7
	DiscLabelRadius = 0.25
	DiscHoleRadius  = 0.1
	DiscGrooveAt    = 0.6
	ArtworkRadius   = 0.95
)

// ArtworkThumbSize is the edge of the downsampled album artwork grid
const ArtworkThumbSize = 16

// Glyphs
const (
	GlyphDisc     = ' '
	GlyphHole     = '·'
	GlyphGroove   = '◦'
	GlyphParticle = '•'
	GlyphTrailTip = '◆'
	GlyphLife     = '●'
)

// UI Colors
const (
	ColorBackground = "#1a1b26"
	ColorLabel      = "#ff0080"
	ColorHole       = "#000000"
	ColorTrail      = "#ff0000"
	ColorHUD        = "#c0caf5"
	ColorAccent     = "#ff00ff"
	ColorMuted      = "#565f89"
	ColorLife       = "#ff0080"
	ColorLifeLost   = "#3b3f5c"
	ColorPanel      = "#24283b"
	ColorHUDBar     = "#16161e"
	ColorLocked     = "#414868"
	ColorGroove     = "#ffffff"

	// ColorFallbackDisc paints special targets whose artwork is not ready
	ColorFallbackDisc = "#1a1a1a"
)
