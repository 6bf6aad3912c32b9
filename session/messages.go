package session

// Conn is the attached renderer. Send must not block the session for long.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Attach: issued once after hello parsed
type Attach struct {
	Conn  Conn
	Reply chan<- AttachResult
}

type AttachResult struct {
	Code string
	Err  error
}

// Detach: issued on disconnect. Ignored unless Conn is the attached one.
type Detach struct {
	Conn Conn
}

// Key: a key went down or up. Name is KeyboardEvent.key.
type Key struct {
	Name string
	Down bool
}

// Pointer: raw pointer movement while locked
type Pointer struct {
	DX, DY float64
}

// PointerLock: the host gained or lost pointer lock
type PointerLock struct {
	Locked bool
}

// Sit: chair clicked
type Sit struct {
	Station int
}

// StandUp: HUD button
type StandUp struct{}

// Teleport: jump to raw floor coordinates
type Teleport struct {
	X, Z float64
}

// TeleportTo: jump to a named hotspot
type TeleportTo struct {
	Point string
}

// MinimapClick: canvas pixel coordinates of a click on the minimap
type MinimapClick struct {
	PX, PY float64
}

// Inspect: open the info panel for a piece of equipment
type Inspect struct {
	Kind string
}

type CloseInfo struct{}

// GuideNext: the guide NPC was clicked
type GuideNext struct{}

type ToggleDoor struct{}
