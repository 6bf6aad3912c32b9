package locomotion

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Tick advances the camera by one frame of length dt and returns the new
// pose. dt only matters when Tuning.ReferenceHz is set.
func (c *Controller) Tick(dt time.Duration) Pose {
	switch c.mode {
	case ModeSeated:
		c.stepSeated(dt)
	case ModeTeleporting:
		c.stepTeleport()
	default:
		c.stepFree(dt)
	}

	if c.OnPlanar != nil {
		c.OnPlanar(c.pose.Planar())
	}
	return c.pose
}

func (c *Controller) stepSeated(dt time.Duration) {
	pos := approach(c.pose.Position, c.seat.Position, c.tuning.ease(c.tuning.SeatedEase, dt))
	yaw, pitch := lookAngles(pos, c.seat.LookAt)
	c.pose = Pose{Position: pos, Yaw: yaw, Pitch: pitch}
}

// stepTeleport lands on the requested spot in one tick; there is no flight.
func (c *Controller) stepTeleport() {
	dst := c.bounds.Clamp(mgl64.Vec3{c.teleport.X(), c.tuning.EyeHeight, c.teleport.Y()})
	c.target = dst
	c.pose = Pose{Position: dst, Yaw: c.yaw, Pitch: c.pitch}
	c.teleport = mgl64.Vec2{}
	c.mode = ModeFree
}

func (c *Controller) stepFree(dt time.Duration) {
	// Planar basis from yaw alone so looking up or down never lifts the walker.
	forward := mgl64.Vec3{-math.Sin(c.yaw), 0, -math.Cos(c.yaw)}
	right := mgl64.Vec3{math.Cos(c.yaw), 0, -math.Sin(c.yaw)}
	speed := c.tuning.MoveSpeed

	var move mgl64.Vec3
	if c.input.forward() {
		move = move.Add(forward.Mul(speed))
	}
	if c.input.back() {
		move = move.Add(forward.Mul(-speed))
	}
	if c.input.left() {
		move = move.Add(right.Mul(-speed))
	}
	if c.input.right() {
		move = move.Add(right.Mul(speed))
	}

	// Clamp the target, not the eased position, so easing never carries the
	// camera through a wall.
	c.target = c.bounds.Clamp(c.target.Add(move))
	c.target[1] = c.tuning.EyeHeight

	pos := approach(c.pose.Position, c.target, c.tuning.ease(c.tuning.FreeEase, dt))
	pos[1] = c.tuning.EyeHeight
	c.pose = Pose{Position: pos, Yaw: c.yaw, Pitch: c.pitch}
}
