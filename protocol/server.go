package protocol

// Payloads sent to the renderer.

type Welcome struct {
	Code   string `json:"code"`
	TickHz int    `json:"tickHz"`
}

type Pose struct {
	Tick  int     `json:"tick"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Mode  string  `json:"mode"`
}

type Minimap struct {
	X  float64 `json:"x"`
	Z  float64 `json:"z"`
	PX float64 `json:"px"`
	PY float64 `json:"py"`
}

type Seated struct {
	Seated  bool `json:"seated"`
	Station int  `json:"station,omitempty"`
}

type Info struct {
	Open        bool     `json:"open"`
	Kind        string   `json:"kind,omitempty"`
	Title       string   `json:"title,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Description string   `json:"description,omitempty"`
	Details     []string `json:"details,omitempty"`
}

type Guide struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
	Active  bool   `json:"active"`
}

type Door struct {
	Open    bool `json:"open"`
	Entered bool `json:"entered"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
