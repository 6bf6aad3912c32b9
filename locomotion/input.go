package locomotion

import "strings"

// InputState is the held-key table. Key names are stored lowercased, the way
// browsers report KeyboardEvent.key.
type InputState struct {
	keys map[string]bool
}

func (in *InputState) set(key string, down bool) {
	if in.keys == nil {
		in.keys = make(map[string]bool)
	}
	in.keys[strings.ToLower(key)] = down
}

// Pressed reports whether any of the given keys is held.
func (in *InputState) Pressed(keys ...string) bool {
	for _, k := range keys {
		if in.keys[k] {
			return true
		}
	}
	return false
}

func (in *InputState) forward() bool { return in.Pressed("w", "arrowup") }
func (in *InputState) back() bool    { return in.Pressed("s", "arrowdown") }
func (in *InputState) left() bool    { return in.Pressed("a", "arrowleft") }
func (in *InputState) right() bool   { return in.Pressed("d", "arrowright") }

// Reset releases every key, e.g. when the window loses focus.
func (in *InputState) Reset() {
	clear(in.keys)
}
