package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Mode uint8

const (
	ModeFree Mode = iota
	ModeSeated
	ModeTeleporting
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeSeated:
		return "seated"
	case ModeTeleporting:
		return "teleporting"
	}
	return "unknown"
}

// Pose is where the camera is and where it looks. Yaw 0 faces -Z.
type Pose struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

// Forward is the unit look direction, yaw applied before pitch.
func (p Pose) Forward() mgl64.Vec3 {
	cp := math.Cos(p.Pitch)
	return mgl64.Vec3{
		-math.Sin(p.Yaw) * cp,
		math.Sin(p.Pitch),
		-math.Cos(p.Yaw) * cp,
	}
}

// View returns the world-to-camera matrix for renderers that want one.
func (p Pose) View() mgl64.Mat4 {
	eye := p.Position
	return mgl64.LookAtV(eye, eye.Add(p.Forward()), mgl64.Vec3{0, 1, 0})
}

// Planar is the floor position reported to the minimap.
func (p Pose) Planar() (x, z float64) {
	return p.Position.X(), p.Position.Z()
}

// Bounds is the walkable floor rectangle.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinZ float64 `yaml:"min_z"`
	MaxZ float64 `yaml:"max_z"`
}

func (b Bounds) Valid() bool {
	return b.MinX <= b.MaxX && b.MinZ <= b.MaxZ
}

func (b Bounds) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Clamp pulls x and z of v into the rectangle. y is left alone.
func (b Bounds) Clamp(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(v.X(), b.MinX, b.MaxX),
		v.Y(),
		mgl64.Clamp(v.Z(), b.MinZ, b.MaxZ),
	}
}

// Seat is the sit target handed over by a chair click.
type Seat struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

// lookAngles returns the yaw and pitch that aim from `from` at `to`.
func lookAngles(from, to mgl64.Vec3) (yaw, pitch float64) {
	d := to.Sub(from)
	yaw = math.Atan2(-d.X(), -d.Z())
	pitch = math.Atan2(d.Y(), math.Hypot(d.X(), d.Z()))
	return yaw, pitch
}

func approach(from, to mgl64.Vec3, f float64) mgl64.Vec3 {
	return from.Add(to.Sub(from).Mul(f))
}
