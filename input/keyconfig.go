package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// keyNames resolves lowercased tcell key names ("enter", "esc", "ctrl-c")
var keyNames = func() map[string]tcell.Key {
	out := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		out[strings.ToLower(name)] = k
	}
	out["escape"] = tcell.KeyEscape
	out["ctrl+c"] = tcell.KeyCtrlC
	out["ctrl+s"] = tcell.KeyCtrlS
	return out
}()

// KeyConfig is the keymap file layout: one table per input mode
type KeyConfig struct {
	Play       map[string]string `toml:"play"`
	Collection map[string]string `toml:"collection"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var cfg KeyConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return cfg.Table()
}

// Table resolves the bindings into a sparse override KeyTable
func (c KeyConfig) Table() (*KeyTable, error) {
	kt := &KeyTable{}
	var err error
	if kt.PlayKeys, kt.PlayRunes, err = parseSection("play", c.Play); err != nil {
		return nil, err
	}
	if kt.CollectionKeys, kt.CollectionRunes, err = parseSection("collection", c.Collection); err != nil {
		return nil, err
	}
	return kt, nil
}

// parseSection splits a key → action section into special-key and rune maps
func parseSection(section string, data map[string]string) (map[tcell.Key]KeyEntry, map[rune]KeyEntry, error) {
	if len(data) == 0 {
		return nil, nil, nil
	}
	keys := make(map[tcell.Key]KeyEntry)
	runes := make(map[rune]KeyEntry)

	for keyStr, actionName := range data {
		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			runes[r] = entry
			continue
		}
		k, ok := keyNames[strings.ToLower(keyStr)]
		if !ok {
			return nil, nil, fmt.Errorf("[%s] unknown key name: %q", section, keyStr)
		}
		keys[k] = entry
	}
	return keys, runes, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.PlayKeys, override.PlayKeys)
	mergeMap(result.PlayRunes, override.PlayRunes)
	mergeMap(result.CollectionKeys, override.CollectionKeys)
	mergeMap(result.CollectionRunes, override.CollectionRunes)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.IntentType == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
