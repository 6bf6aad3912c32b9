package locomotion

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	EyeHeight       = 1.6
	MoveSpeed       = 0.08          // world units per tick per held key
	LookSensitivity = 0.002         // radians per pointer unit
	PitchLimit      = math.Pi / 3   // keeps the camera from flipping over
	FreeEase        = 0.2           // responsive walking
	SeatedEase      = 0.1           // slower glide into a chair
)

var (
	StartPosition = mgl64.Vec3{-4, EyeHeight, 8}
	DefaultBounds = Bounds{MinX: -5.5, MaxX: 5.5, MinZ: -5.5, MaxZ: 5.5}
)

// Tuning carries the controller's feel constants. The zero value is not
// useful; start from DefaultTuning.
type Tuning struct {
	MoveSpeed       float64 `yaml:"move_speed"`
	LookSensitivity float64 `yaml:"look_sensitivity"`
	PitchLimit      float64 `yaml:"pitch_limit"`
	EyeHeight       float64 `yaml:"eye_height"`
	FreeEase        float64 `yaml:"free_ease"`
	SeatedEase      float64 `yaml:"seated_ease"`

	// ReferenceHz, when positive, rescales both ease factors by the elapsed
	// tick duration so that convergence speed matches ReferenceHz regardless
	// of the actual tick rate. Zero keeps the fixed per-tick factors.
	ReferenceHz float64 `yaml:"reference_hz"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:       MoveSpeed,
		LookSensitivity: LookSensitivity,
		PitchLimit:      PitchLimit,
		EyeHeight:       EyeHeight,
		FreeEase:        FreeEase,
		SeatedEase:      SeatedEase,
	}
}

// ease returns the interpolation factor to apply for one tick of length dt.
func (t Tuning) ease(f float64, dt time.Duration) float64 {
	if t.ReferenceHz <= 0 || dt <= 0 {
		return f
	}
	return 1 - math.Pow(1-f, dt.Seconds()*t.ReferenceHz)
}
