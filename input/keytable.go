package input

import "github.com/gdamore/tcell/v2"

// KeyEntry is the intent a key produces
// The zero value unbinds the key when merged
type KeyEntry struct {
	IntentType IntentType
	ScrollDir  ScrollDir
}

// KeyTable maps keys to intents for each input mode
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	PlayKeys  map[tcell.Key]KeyEntry
	PlayRunes map[rune]KeyEntry

	// Collection overlay bindings
	CollectionKeys  map[tcell.Key]KeyEntry
	CollectionRunes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		PlayKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentQuit, ScrollNone},
			tcell.KeyCtrlS:  {IntentToggleMute, ScrollNone},
			tcell.KeyEscape: {IntentEscape, ScrollNone},
			tcell.KeyEnter:  {IntentStart, ScrollNone},
		},
		PlayRunes: map[rune]KeyEntry{
			'q': {IntentQuit, ScrollNone},
			'1': {IntentSelectScoreTarget, ScrollNone},
			'2': {IntentSelectTimeLimit, ScrollNone},
			' ': {IntentStart, ScrollNone},
			'r': {IntentPlayAgain, ScrollNone},
			'm': {IntentMenu, ScrollNone},
			'c': {IntentToggleCollection, ScrollNone},
		},
		CollectionKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentQuit, ScrollNone},
			tcell.KeyCtrlS:  {IntentToggleMute, ScrollNone},
			tcell.KeyEscape: {IntentEscape, ScrollNone},
			tcell.KeyUp:     {IntentScroll, ScrollUp},
			tcell.KeyDown:   {IntentScroll, ScrollDown},
			tcell.KeyPgUp:   {IntentScroll, ScrollUp},
			tcell.KeyPgDn:   {IntentScroll, ScrollDown},
		},
		CollectionRunes: map[rune]KeyEntry{
			'q': {IntentQuit, ScrollNone},
			'c': {IntentToggleCollection, ScrollNone},
			's': {IntentToggleSort, ScrollNone},
			'x': {IntentErase, ScrollNone},
			'k': {IntentScroll, ScrollUp},
			'j': {IntentScroll, ScrollDown},
		},
	}
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		PlayKeys:        cloneMap(kt.PlayKeys),
		PlayRunes:       cloneMap(kt.PlayRunes),
		CollectionKeys:  cloneMap(kt.CollectionKeys),
		CollectionRunes: cloneMap(kt.CollectionRunes),
	}
}

func cloneMap[K comparable](m map[K]KeyEntry) map[K]KeyEntry {
	out := make(map[K]KeyEntry, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
