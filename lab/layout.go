// Package lab holds the content of the network lab that the walker interacts
// with: chairs to sit in, teleport hotspots, equipment info panels and the
// guide's tips. Geometry lives in the renderer; only what the server needs to
// answer a click is kept here.
package lab

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownStation       = errors.New("lab: unknown station")
	ErrUnknownTeleportPoint = errors.New("lab: unknown teleport point")
	ErrUnknownInfo          = errors.New("lab: unknown info panel")
)

// SeatHeight is the camera height of a seated visitor.
const SeatHeight = 1.2

// Station is a computer on the U-shaped desk with a chair in front of it.
type Station struct {
	ID          int        `yaml:"id" json:"id"`
	Position    [3]float64 `yaml:"position" json:"position"`
	ChairOffset [3]float64 `yaml:"chair_offset" json:"chairOffset"`
	LookDir     [3]float64 `yaml:"look_dir" json:"lookDir"`
}

// Seat returns where the camera sits and what it looks at.
func (s Station) Seat() (position, lookAt mgl64.Vec3) {
	position = mgl64.Vec3{s.Position[0] + s.ChairOffset[0], SeatHeight, s.Position[2] + s.ChairOffset[2]}
	lookAt = mgl64.Vec3{s.Position[0] + s.LookDir[0]*3, SeatHeight, s.Position[2] + s.LookDir[2]*3}
	return position, lookAt
}

type TeleportPoint struct {
	ID    string  `yaml:"id" json:"id"`
	Name  string  `yaml:"name" json:"name"`
	X     float64 `yaml:"x" json:"x"`
	Z     float64 `yaml:"z" json:"z"`
	Color string  `yaml:"color" json:"color"`
}

type Info struct {
	Title       string   `yaml:"title" json:"title"`
	Icon        string   `yaml:"icon" json:"icon"`
	Description string   `yaml:"description" json:"description"`
	Details     []string `yaml:"details" json:"details"`
}

type Layout struct {
	Stations       []Station       `yaml:"stations" json:"stations"`
	TeleportPoints []TeleportPoint `yaml:"teleport_points" json:"teleportPoints"`
	Info           map[string]Info `yaml:"info" json:"info"`
	Guide          []string        `yaml:"guide" json:"guide"`
}

func (l *Layout) Station(id int) (Station, error) {
	for _, s := range l.Stations {
		if s.ID == id {
			return s, nil
		}
	}
	return Station{}, fmt.Errorf("%w: %d", ErrUnknownStation, id)
}

func (l *Layout) TeleportPoint(id string) (TeleportPoint, error) {
	for _, p := range l.TeleportPoints {
		if p.ID == id {
			return p, nil
		}
	}
	return TeleportPoint{}, fmt.Errorf("%w: %q", ErrUnknownTeleportPoint, id)
}

func (l *Layout) InfoFor(kind string) (Info, error) {
	info, ok := l.Info[kind]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownInfo, kind)
	}
	return info, nil
}

// Load reads a layout file. Sections the file leaves out keep the built-in
// content.
func Load(path string) (*Layout, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(b, &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	def := Default()
	if len(l.Stations) == 0 {
		l.Stations = def.Stations
	}
	if len(l.TeleportPoints) == 0 {
		l.TeleportPoints = def.TeleportPoints
	}
	if len(l.Info) == 0 {
		l.Info = def.Info
	}
	if len(l.Guide) == 0 {
		l.Guide = def.Guide
	}
	return &l, nil
}
