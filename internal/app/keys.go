package app

import "github.com/nhle/taskboard/internal/keys"

// KeyMap is re-exported from the keys package so callers can reference
// app.KeyMap directly.
type KeyMap = keys.KeyMap

// DefaultKeyMap delegates to keys.DefaultKeyMap.
func DefaultKeyMap() *KeyMap {
	return keys.DefaultKeyMap()
}
