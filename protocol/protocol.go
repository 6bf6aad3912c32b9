package protocol

import (
	"encoding/json"
)

// client -> server
const (
	MsgHello    = "hello"
	MsgKey      = "key"
	MsgPointer  = "pointer"
	MsgLock     = "lock"
	MsgSit      = "sit"
	MsgStand    = "stand"
	MsgTeleport = "teleport"
	MsgMinimap  = "minimap"
	MsgInspect  = "inspect"
	MsgClose    = "close"
	MsgGuide    = "guide"
	MsgDoor     = "door"
)

// server -> client. MsgMinimap, MsgGuide and MsgDoor are reused for the
// matching updates.
const (
	MsgWelcome        = "welcome"
	MsgPose           = "pose"
	MsgSeated         = "seated"
	MsgReleasePointer = "release_pointer"
	MsgInfo           = "info"
	MsgError          = "error"
)

const (
	Version     = 1
	SimTickHz   = 60
	BroadcastHz = 30
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"` // raw payload bytes
}
