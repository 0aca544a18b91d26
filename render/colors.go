package render

import (
	"github.com/lixenwraith/vinyl-slasher/core"
	"github.com/lixenwraith/vinyl-slasher/parameter"
)

var (
	colorBackground   = core.MustHex(parameter.ColorBackground)
	colorLabel        = core.MustHex(parameter.ColorLabel)
	colorHole         = core.MustHex(parameter.ColorHole)
	colorTrail        = core.MustHex(parameter.ColorTrail)
	colorHUD          = core.MustHex(parameter.ColorHUD)
	colorHUDBar       = core.MustHex(parameter.ColorHUDBar)
	colorAccent       = core.MustHex(parameter.ColorAccent)
	colorMuted        = core.MustHex(parameter.ColorMuted)
	colorLife         = core.MustHex(parameter.ColorLife)
	colorLifeLost     = core.MustHex(parameter.ColorLifeLost)
	colorPanel        = core.MustHex(parameter.ColorPanel)
	colorLocked       = core.MustHex(parameter.ColorLocked)
	colorGroove       = core.MustHex(parameter.ColorGroove)
	colorFallbackDisc = core.MustHex(parameter.ColorFallbackDisc)
)
