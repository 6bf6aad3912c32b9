package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Controller drives a first-person camera from key and pointer input.
//
// A Controller is not safe for concurrent use. Callers deliver input and call
// Tick from a single goroutine (see session.Session).
type Controller struct {
	tuning Tuning
	bounds Bounds

	input         InputState
	pointerLocked bool

	mode     Mode
	seat     Seat
	teleport mgl64.Vec2

	yaw, pitch float64
	target     mgl64.Vec3
	pose       Pose

	// OnPlanar receives the floor position after every tick.
	OnPlanar func(x, z float64)
	// OnReleasePointer asks the host to drop pointer lock.
	OnReleasePointer func()
}

func New(t Tuning, b Bounds) *Controller {
	c := &Controller{
		tuning: t,
		bounds: b,
	}
	c.Initialize(StartPosition)
	return c
}

// Initialize places both the camera and its walk target at start.
func (c *Controller) Initialize(start mgl64.Vec3) {
	c.target = start
	c.pose = Pose{Position: start, Yaw: c.yaw, Pitch: c.pitch}
}

func (c *Controller) KeyDown(key string) { c.input.set(key, true) }
func (c *Controller) KeyUp(key string)   { c.input.set(key, false) }

// ReleaseKeys forgets every held key.
func (c *Controller) ReleaseKeys() { c.input.Reset() }

func (c *Controller) SetPointerLock(locked bool) { c.pointerLocked = locked }

func (c *Controller) PointerLocked() bool { return c.pointerLocked }

// PointerDelta turns the camera. It does nothing without pointer lock or
// while seated.
func (c *Controller) PointerDelta(dx, dy float64) {
	if !c.pointerLocked || c.mode == ModeSeated {
		return
	}
	c.yaw -= dx * c.tuning.LookSensitivity
	c.pitch -= dy * c.tuning.LookSensitivity
	c.pitch = mgl64.Clamp(c.pitch, -c.tuning.PitchLimit, c.tuning.PitchLimit)
}

// RequestSit moves the camera into a chair. Any pending teleport is dropped.
func (c *Controller) RequestSit(position, lookAt mgl64.Vec3) {
	c.mode = ModeSeated
	c.seat = Seat{Position: position, LookAt: lookAt}
	c.teleport = mgl64.Vec2{}
	c.pointerLocked = false
	if c.OnReleasePointer != nil {
		c.OnReleasePointer()
	}
}

func (c *Controller) RequestStandUp() {
	if c.mode != ModeSeated {
		return
	}
	c.mode = ModeFree
	c.seat = Seat{}
}

// RequestTeleport schedules a jump to (x, z) for the next tick. Ignored while
// seated. Coordinates outside the bounds are clamped when applied.
func (c *Controller) RequestTeleport(x, z float64) {
	if c.mode == ModeSeated {
		return
	}
	c.mode = ModeTeleporting
	c.teleport = mgl64.Vec2{x, z}
}

func (c *Controller) Mode() Mode         { return c.mode }
func (c *Controller) Pose() Pose         { return c.pose }
func (c *Controller) Target() mgl64.Vec3 { return c.target }
func (c *Controller) Bounds() Bounds     { return c.bounds }
func (c *Controller) Tuning() Tuning     { return c.tuning }

// Look returns the free-walk look angles, independent of any seat.
func (c *Controller) Look() (yaw, pitch float64) { return c.yaw, c.pitch }

// Seat returns the active seat, if any.
func (c *Controller) Seat() (Seat, bool) {
	return c.seat, c.mode == ModeSeated
}
