package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":        {IntentQuit, ScrollNone},
	"escape":      {IntentEscape, ScrollNone},
	"toggle_mute": {IntentToggleMute, ScrollNone},

	"score_target": {IntentSelectScoreTarget, ScrollNone},
	"time_limit":   {IntentSelectTimeLimit, ScrollNone},
	"start":        {IntentStart, ScrollNone},
	"play_again":   {IntentPlayAgain, ScrollNone},
	"menu":         {IntentMenu, ScrollNone},

	"collection":  {IntentToggleCollection, ScrollNone},
	"sort":        {IntentToggleSort, ScrollNone},
	"erase":       {IntentErase, ScrollNone},
	"scroll_up":   {IntentScroll, ScrollUp},
	"scroll_down": {IntentScroll, ScrollDown},
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
