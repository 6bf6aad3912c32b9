package protocol

// Payloads sent by the renderer.

type Hello struct {
	V    int    `json:"v"`              // version
	Code string `json:"code,omitempty"` // resume this session
}

type Key struct {
	Key  string `json:"key"` // KeyboardEvent.key
	Down bool   `json:"down"`
}

type Pointer struct {
	DX float64 `json:"dx"` // movementX
	DY float64 `json:"dy"` // movementY
}

type Lock struct {
	Locked bool `json:"locked"`
}

type Sit struct {
	Station int `json:"station"`
}

// Teleport names either a hotspot or raw floor coordinates.
type Teleport struct {
	Point string  `json:"point,omitempty"`
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
}

type MinimapClick struct {
	PX float64 `json:"px"`
	PY float64 `json:"py"`
}

type Inspect struct {
	Kind string `json:"kind"`
}
