package locomotion

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkForwardEasesTowardTarget(t *testing.T) {
	c := newAt(-4, 8)
	c.KeyDown("w")

	prev := c.Pose().Position.Z()
	for i := 0; i < 60; i++ {
		p := c.Tick(0)
		z := p.Position.Z()
		if z >= prev {
			t.Fatalf("tick %d: z did not decrease (%f -> %f)", i, prev, z)
		}
		if z <= c.Target().Z() {
			t.Fatalf("tick %d: z=%f reached target %f in one step", i, z, c.Target().Z())
		}
		if p.Position.Y() != EyeHeight {
			t.Fatalf("tick %d: y=%f, want %f", i, p.Position.Y(), EyeHeight)
		}
		prev = z
	}
}

func TestFreeEaseIsFixedFraction(t *testing.T) {
	c := newAt(0, 0)
	c.KeyDown("s")
	p := c.Tick(0)
	// target moved +MoveSpeed along z, the camera covers FreeEase of that.
	assert.InDelta(t, MoveSpeed, c.Target().Z(), 1e-12)
	assert.InDelta(t, MoveSpeed*FreeEase, p.Position.Z(), 1e-12)
}

func TestMovementFollowsYaw(t *testing.T) {
	c := newAt(0, 0)
	c.SetPointerLock(true)
	// Turn a quarter left; forward becomes -X.
	c.PointerDelta(-(math.Pi/2)/LookSensitivity, 0)
	c.KeyDown("w")
	c.Tick(0)
	assert.InDelta(t, -MoveSpeed, c.Target().X(), 1e-9)
	assert.InDelta(t, 0, c.Target().Z(), 1e-9)

	c.KeyUp("w")
	c.KeyDown("d")
	before := c.Target()
	c.Tick(0)
	// Right of -X is -Z.
	assert.InDelta(t, before.X(), c.Target().X(), 1e-9)
	assert.InDelta(t, before.Z()-MoveSpeed, c.Target().Z(), 1e-9)
}

func TestPitchDoesNotAffectPlanarMovement(t *testing.T) {
	flat := newAt(0, 0)
	tilted := newAt(0, 0)
	tilted.SetPointerLock(true)
	tilted.PointerDelta(0, -1e6)

	flat.KeyDown("w")
	tilted.KeyDown("w")
	for i := 0; i < 10; i++ {
		flat.Tick(0)
		tilted.Tick(0)
	}
	require.Equal(t, flat.Target(), tilted.Target())
	require.Equal(t, flat.Pose().Position, tilted.Pose().Position)
}

func TestOpposingKeysCancel(t *testing.T) {
	c := newAt(1, 1)
	c.KeyDown("w")
	c.KeyDown("s")
	c.KeyDown("a")
	c.KeyDown("d")
	c.Tick(0)
	require.Equal(t, mgl64.Vec3{1, EyeHeight, 1}, c.Target())
}

func TestTargetStaysInBoundsForAnyKeySequence(t *testing.T) {
	keys := []string{"w", "a", "s", "d", "arrowup", "arrowdown", "arrowleft", "arrowright"}
	r := rand.New(rand.NewPCG(1, 2))
	b := DefaultBounds

	c := newAt(-4, 8)
	c.SetPointerLock(true)
	for i := 0; i < 5000; i++ {
		k := keys[r.IntN(len(keys))]
		if r.IntN(2) == 0 {
			c.KeyDown(k)
		} else {
			c.KeyUp(k)
		}
		if r.IntN(10) == 0 {
			c.PointerDelta(r.Float64()*400-200, r.Float64()*400-200)
		}
		c.Tick(0)

		tg := c.Target()
		if !b.Contains(tg.X(), tg.Z()) {
			t.Fatalf("tick %d: target %v outside bounds %+v", i, tg, b)
		}
		if tg.Y() != EyeHeight {
			t.Fatalf("tick %d: target y=%f", i, tg.Y())
		}
	}
}

func TestSeatedSuppressesMovement(t *testing.T) {
	c := newAt(0, 0)
	c.Tick(0)
	target := c.Target()

	c.RequestSit(mgl64.Vec3{-4.3, 1.2, 1}, mgl64.Vec3{-0.5, 1.2, 1})
	for _, k := range []string{"w", "a", "s", "d", "arrowup"} {
		c.KeyDown(k)
	}
	for i := 0; i < 30; i++ {
		c.Tick(0)
		if c.Target() != target {
			t.Fatalf("tick %d: target moved while seated: %v -> %v", i, target, c.Target())
		}
	}
}

func TestSeatedEasesIntoChairAndFacesLookAt(t *testing.T) {
	c := newAt(0, 0)
	seat := mgl64.Vec3{-4.3, 1.2, 1}
	look := mgl64.Vec3{-0.5, 1.2, 1}
	c.RequestSit(seat, look)

	start := c.Pose().Position
	p := c.Tick(0)
	want := start.Add(seat.Sub(start).Mul(SeatedEase))
	require.True(t, p.Position.ApproxEqualThreshold(want, 1e-12), "got %v want %v", p.Position, want)

	for i := 0; i < 200; i++ {
		p = c.Tick(0)
	}
	require.True(t, p.Position.ApproxEqualThreshold(seat, 1e-6), "did not settle: %v", p.Position)

	// The chair faces +X.
	f := p.Forward()
	assert.InDelta(t, 1, f.X(), 1e-6)
	assert.InDelta(t, 0, f.Y(), 1e-6)
	assert.InDelta(t, 0, f.Z(), 1e-6)
}

func TestStandUpSnapsBackToEyeHeight(t *testing.T) {
	c := newAt(0, 0)
	c.RequestSit(mgl64.Vec3{2, 1.2, 2}, mgl64.Vec3{2, 1.2, -2})
	for i := 0; i < 20; i++ {
		c.Tick(0)
	}
	c.RequestStandUp()
	p := c.Tick(0)
	require.Equal(t, EyeHeight, p.Position.Y())
}

func TestPlanarReportedEveryTick(t *testing.T) {
	c := newAt(0, 0)
	calls := 0
	c.OnPlanar = func(x, z float64) { calls++ }

	c.Tick(0)
	c.RequestSit(mgl64.Vec3{2, 1.2, 2}, mgl64.Vec3{2, 1.2, -2})
	c.Tick(0)
	c.RequestStandUp()
	c.RequestTeleport(1, 1)
	c.Tick(0)
	require.Equal(t, 3, calls)
}

func TestReferenceHzRescalesEase(t *testing.T) {
	tn := DefaultTuning()
	require.Equal(t, FreeEase, tn.ease(FreeEase, time.Second/60))

	tn.ReferenceHz = 60
	assert.InDelta(t, FreeEase, tn.ease(FreeEase, time.Second/60), 1e-6)
	assert.InDelta(t, 1-0.8*0.8, tn.ease(FreeEase, time.Second/30), 1e-6)
	require.Equal(t, SeatedEase, tn.ease(SeatedEase, 0))
}
