package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"labwalk/locomotion"
	"labwalk/logger"
	"labwalk/protocol"
)

var (
	ErrMissingVariable = errors.New("config: variable not set")
	ErrInvalid         = errors.New("config: invalid")
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        logger.Config    `yaml:"log"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Layout     string           `yaml:"layout"` // optional lab layout file
}

type ServerConfig struct {
	Addr        string        `yaml:"addr"`
	TickHz      int           `yaml:"tick_hz"`
	BroadcastHz int           `yaml:"broadcast_hz"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

type LocomotionConfig struct {
	Tuning locomotion.Tuning `yaml:"tuning"`
	Bounds locomotion.Bounds `yaml:"bounds"`
	Start  Point             `yaml:"start"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (p Point) Vec3() mgl64.Vec3 { return mgl64.Vec3{p.X, p.Y, p.Z} }

func Default() Config {
	start := locomotion.StartPosition
	return Config{
		Server: ServerConfig{
			Addr:        ":8080",
			TickHz:      protocol.SimTickHz,
			BroadcastHz: protocol.BroadcastHz,
			IdleTimeout: 5 * time.Minute,
		},
		Log: logger.DefaultConfig(),
		Locomotion: LocomotionConfig{
			Tuning: locomotion.DefaultTuning(),
			Bounds: locomotion.DefaultBounds,
			Start:  Point{X: start.X(), Y: start.Y(), Z: start.Z()},
		},
	}
}

// LoadEnv loads a .env file into the process environment if there is one.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// Load starts from Default, overlays the YAML file at path (if any) and then
// the LABWALK_* environment variables, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, err := GetEnvVariable("LABWALK_ADDR"); err == nil {
		c.Server.Addr = v
	}
	if v, err := GetEnvVariable("LABWALK_LOG_LEVEL"); err == nil {
		c.Log.Level = v
	}
	if v, err := GetEnvVariable("LABWALK_LAYOUT"); err == nil {
		c.Layout = v
	}
	if v, err := GetEnvVariable("LABWALK_TICK_HZ"); err == nil {
		hz, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: LABWALK_TICK_HZ=%q: %v", ErrInvalid, v, err)
		}
		c.Server.TickHz = hz
	}
	return nil
}

func (c Config) Validate() error {
	s := c.Server
	if s.TickHz <= 0 || s.BroadcastHz <= 0 {
		return fmt.Errorf("%w: tick_hz and broadcast_hz must be > 0 (got %d, %d)", ErrInvalid, s.TickHz, s.BroadcastHz)
	}
	if s.BroadcastHz > s.TickHz || s.TickHz%s.BroadcastHz != 0 {
		return fmt.Errorf("%w: tick_hz %d is not a multiple of broadcast_hz %d", ErrInvalid, s.TickHz, s.BroadcastHz)
	}
	if !c.Locomotion.Bounds.Valid() {
		return fmt.Errorf("%w: bounds %+v are inverted", ErrInvalid, c.Locomotion.Bounds)
	}
	t := c.Locomotion.Tuning
	if t.FreeEase <= 0 || t.FreeEase > 1 || t.SeatedEase <= 0 || t.SeatedEase > 1 {
		return fmt.Errorf("%w: ease factors must be in (0, 1]", ErrInvalid)
	}
	return nil
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("%w: empty name", ErrMissingVariable)
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingVariable, v)
	}
	return b, nil
}
