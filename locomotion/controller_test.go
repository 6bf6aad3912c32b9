package locomotion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAt(x, z float64) *Controller {
	c := New(DefaultTuning(), DefaultBounds)
	c.Initialize(mgl64.Vec3{x, EyeHeight, z})
	return c
}

func TestPointerDeltaIgnoredWithoutLock(t *testing.T) {
	c := newAt(0, 0)
	c.PointerDelta(100, 100)
	yaw, pitch := c.Look()
	if yaw != 0 || pitch != 0 {
		t.Fatalf("look changed without pointer lock: yaw=%f pitch=%f", yaw, pitch)
	}
}

func TestPointerDeltaTurnsCamera(t *testing.T) {
	c := newAt(0, 0)
	c.SetPointerLock(true)
	c.PointerDelta(10, -5)
	yaw, pitch := c.Look()
	assert.InDelta(t, -10*LookSensitivity, yaw, 1e-12)
	assert.InDelta(t, 5*LookSensitivity, pitch, 1e-12)
}

func TestPitchStaysClampedOnEveryDelta(t *testing.T) {
	c := newAt(0, 0)
	c.SetPointerLock(true)
	deltas := []float64{-5000, -1, 20000, 3, -1e9, 1e9, 7, -7}
	for _, dy := range deltas {
		c.PointerDelta(0, dy)
		_, pitch := c.Look()
		if pitch < -PitchLimit || pitch > PitchLimit {
			t.Fatalf("pitch %f escaped [-%f, %f] after dy=%f", pitch, PitchLimit, PitchLimit, dy)
		}
	}

	// Overshoot must not accumulate: one small delta back leaves the limit.
	c.PointerDelta(0, -1e6)
	c.PointerDelta(0, 10)
	_, pitch := c.Look()
	assert.InDelta(t, PitchLimit-10*LookSensitivity, pitch, 1e-12)
}

func TestPointerDeltaIgnoredWhileSeated(t *testing.T) {
	c := newAt(0, 0)
	c.RequestSit(mgl64.Vec3{1, 1.2, 1}, mgl64.Vec3{4, 1.2, 1})
	c.SetPointerLock(true)
	c.PointerDelta(300, 300)
	yaw, pitch := c.Look()
	if yaw != 0 || pitch != 0 {
		t.Fatalf("look changed while seated: yaw=%f pitch=%f", yaw, pitch)
	}
}

func TestRequestSitReleasesPointer(t *testing.T) {
	c := newAt(0, 0)
	released := 0
	c.OnReleasePointer = func() { released++ }
	c.SetPointerLock(true)

	c.RequestSit(mgl64.Vec3{1, 1.2, 1}, mgl64.Vec3{4, 1.2, 1})

	require.Equal(t, ModeSeated, c.Mode())
	require.Equal(t, 1, released)
	require.False(t, c.PointerLocked())
}

func TestStandUpWhileStandingIsNoop(t *testing.T) {
	c := newAt(0, 0)
	c.RequestStandUp()
	require.Equal(t, ModeFree, c.Mode())
	_, seated := c.Seat()
	require.False(t, seated)
}

func TestSitThenStandDropsSeat(t *testing.T) {
	c := newAt(0, 0)
	seat := mgl64.Vec3{3, 1.2, 3}
	c.RequestSit(seat, mgl64.Vec3{3, 1.2, 0})
	c.RequestStandUp()

	require.Equal(t, ModeFree, c.Mode())
	s, seated := c.Seat()
	require.False(t, seated)
	require.Equal(t, Seat{}, s)

	for i := 0; i < 50; i++ {
		p := c.Tick(0)
		if p.Position.ApproxEqualThreshold(seat, 1e-6) {
			t.Fatalf("tick %d moved toward stale seat: %v", i, p.Position)
		}
		if p.Position != (mgl64.Vec3{0, EyeHeight, 0}) {
			t.Fatalf("tick %d: position drifted to %v", i, p.Position)
		}
	}
}

func TestTeleportIgnoredWhileSeated(t *testing.T) {
	seat := mgl64.Vec3{-4.3, 1.2, 1}
	look := mgl64.Vec3{-0.5, 1.2, 1}

	a := newAt(0, 0)
	b := newAt(0, 0)
	a.RequestSit(seat, look)
	b.RequestSit(seat, look)
	for i := 0; i < 3; i++ {
		a.Tick(0)
		b.Tick(0)
	}

	a.RequestTeleport(0, -4)
	require.Equal(t, ModeSeated, a.Mode())

	pa := a.Tick(0)
	pb := b.Tick(0)
	require.Equal(t, pb, pa)
	require.Equal(t, b.Target(), a.Target())
}

func TestTeleportLandsExactlyOnNextTick(t *testing.T) {
	c := newAt(-4, 8)
	var gotX, gotZ float64
	c.OnPlanar = func(x, z float64) { gotX, gotZ = x, z }

	c.KeyDown("w")
	c.Tick(0)

	c.RequestTeleport(0, -4)
	require.Equal(t, ModeTeleporting, c.Mode())

	p := c.Tick(0)
	require.Equal(t, ModeFree, c.Mode())
	require.Equal(t, mgl64.Vec3{0, EyeHeight, -4}, p.Position)
	require.Equal(t, 0.0, gotX)
	require.Equal(t, -4.0, gotZ)
	require.Equal(t, mgl64.Vec3{0, EyeHeight, -4}, c.Target())
}

func TestTeleportOutsideBoundsIsClamped(t *testing.T) {
	c := newAt(0, 0)
	c.RequestTeleport(40, -40)
	p := c.Tick(0)
	require.Equal(t, mgl64.Vec3{DefaultBounds.MaxX, EyeHeight, DefaultBounds.MinZ}, p.Position)
}

func TestSitCancelsPendingTeleport(t *testing.T) {
	c := newAt(0, 0)
	c.RequestTeleport(2, 2)
	c.RequestSit(mgl64.Vec3{1, 1.2, 1}, mgl64.Vec3{4, 1.2, 1})
	c.RequestStandUp()
	p := c.Tick(0)
	require.Equal(t, mgl64.Vec3{0, EyeHeight, 0}, p.Position)
}

func TestKeyNamesAreCaseInsensitive(t *testing.T) {
	c := newAt(0, 0)
	c.KeyDown("ArrowUp")
	c.Tick(0)
	if c.Target().Z() >= 0 {
		t.Fatalf("expected ArrowUp to walk forward, target=%v", c.Target())
	}
	c.KeyUp("ARROWUP")
	before := c.Target()
	c.Tick(0)
	require.Equal(t, before, c.Target())
}

func TestReleaseKeysStopsWalking(t *testing.T) {
	c := newAt(0, 0)
	c.KeyDown("d")
	c.Tick(0)
	c.ReleaseKeys()
	before := c.Target()
	c.Tick(0)
	require.Equal(t, before, c.Target())
}

func TestPoseViewLooksDownNegativeZ(t *testing.T) {
	p := Pose{Position: mgl64.Vec3{0, EyeHeight, 0}}
	v := p.View().Mul4x1(mgl64.Vec4{0, EyeHeight, -5, 1})
	assert.InDelta(t, 0, v.X(), 1e-9)
	assert.InDelta(t, 0, v.Y(), 1e-9)
	assert.InDelta(t, -5, v.Z(), 1e-9)

	p.Pitch = math.Pi / 4
	f := p.Forward()
	assert.InDelta(t, 1, f.Len(), 1e-12)
	assert.Greater(t, f.Y(), 0.0)
}
