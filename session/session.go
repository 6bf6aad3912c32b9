package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"labwalk/lab"
	"labwalk/locomotion"
	"labwalk/protocol"
)

var (
	ErrSessionBusy   = errors.New("session: already has a driver")
	ErrSessionClosed = errors.New("session: closed")
)

type Options struct {
	TickHz      int
	BroadcastHz int
	// IdleTimeout is how long a session may sit without a driver before
	// OnIdle fires. Zero disables reaping.
	IdleTimeout time.Duration

	Tuning locomotion.Tuning
	Bounds locomotion.Bounds
	Start  mgl64.Vec3
	Layout *lab.Layout
	Log    *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		TickHz:      protocol.SimTickHz,
		BroadcastHz: protocol.BroadcastHz,
		IdleTimeout: 5 * time.Minute,
		Tuning:      locomotion.DefaultTuning(),
		Bounds:      locomotion.DefaultBounds,
		Start:       locomotion.StartPosition,
	}
}

// Session is one visitor's walk through the lab. All state is owned by the
// Run goroutine; other goroutines talk to it through Inbox.
type Session struct {
	Inbox chan any

	Code   string            // session code (e.g. "ABC123")
	OnIdle func(code string) // called once the driverless timeout passes

	tickHz         int
	broadcastEvery int
	dt             time.Duration
	idleTimeout    time.Duration

	ctrl   *locomotion.Controller
	layout *lab.Layout
	guide  *lab.Guide
	door   lab.Door

	tick      int
	planarX   float64
	planarZ   float64
	station   int
	info      string
	conn      Conn
	idleSince time.Time
	idleFired bool

	attached atomic.Bool
	ticks    atomic.Int64

	log      *zap.Logger
	quit     chan struct{}
	stopOnce sync.Once
}

func New(opts Options) *Session {
	if opts.TickHz <= 0 {
		opts.TickHz = protocol.SimTickHz
	}
	broadcastEvery := 1
	if opts.BroadcastHz > 0 {
		broadcastEvery = max(opts.TickHz/opts.BroadcastHz, 1)
	}
	if opts.Layout == nil {
		opts.Layout = lab.Default()
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	s := &Session{
		Inbox:          make(chan any, 256),
		tickHz:         opts.TickHz,
		broadcastEvery: broadcastEvery,
		dt:             time.Second / time.Duration(opts.TickHz),
		idleTimeout:    opts.IdleTimeout,
		ctrl:           locomotion.New(opts.Tuning, opts.Bounds),
		layout:         opts.Layout,
		guide:          lab.NewGuide(opts.Layout.Guide),
		idleSince:      time.Now(),
		log:            opts.Log,
		quit:           make(chan struct{}),
	}
	s.ctrl.Initialize(opts.Start)
	s.planarX, s.planarZ = opts.Start.X(), opts.Start.Z()
	s.ctrl.OnPlanar = func(x, z float64) {
		s.planarX, s.planarZ = x, z
	}
	s.ctrl.OnReleasePointer = func() {
		s.send(protocol.MsgReleasePointer, protocol.Empty{})
	}
	return s
}

func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
}

// Done is closed once the session has been stopped.
func (s *Session) Done() <-chan struct{} {
	return s.quit
}

// Send queues a command for the session goroutine.
func (s *Session) Send(cmd any) error {
	select {
	case <-s.quit:
		return ErrSessionClosed
	default:
	}
	select {
	case <-s.quit:
		return ErrSessionClosed
	case s.Inbox <- cmd:
		return nil
	}
}

// Attached reports whether a driver is connected. Safe from any goroutine.
func (s *Session) Attached() bool { return s.attached.Load() }

// Tick returns the number of simulated ticks. Safe from any goroutine.
func (s *Session) Tick() int { return int(s.ticks.Load()) }

func (s *Session) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(s.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			return
		case cmd := <-s.Inbox:
			s.handleCommand(cmd)
		case now := <-ticker.C:
			s.step(now)
		}
	}
}

func (s *Session) step(now time.Time) {
	s.ctrl.Tick(s.dt)
	s.tick++
	s.ticks.Store(int64(s.tick))

	if s.conn != nil {
		if s.tick%s.broadcastEvery == 0 {
			s.broadcastPose()
		}
		return
	}
	if s.idleTimeout > 0 && !s.idleFired && now.Sub(s.idleSince) >= s.idleTimeout {
		s.idleFired = true
		s.log.Info("session idle", zap.String("code", s.Code), zap.Duration("after", s.idleTimeout))
		if s.OnIdle != nil {
			s.OnIdle(s.Code)
		}
	}
}

func (s *Session) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Attach:
		if s.conn != nil {
			c.Reply <- AttachResult{Err: ErrSessionBusy}
			return
		}
		s.conn = c.Conn
		s.attached.Store(true)
		s.idleFired = false
		c.Reply <- AttachResult{Code: s.Code}
		s.log.Info("driver attached", zap.String("code", s.Code))
		s.sendSnapshot()
	case Detach:
		if s.conn == nil || s.conn != c.Conn {
			return
		}
		s.detach()
	case Key:
		if c.Down && strings.EqualFold(c.Name, "escape") {
			s.escape()
			return
		}
		if c.Down {
			s.ctrl.KeyDown(c.Name)
		} else {
			s.ctrl.KeyUp(c.Name)
		}
	case Pointer:
		s.ctrl.PointerDelta(c.DX, c.DY)
	case PointerLock:
		s.ctrl.SetPointerLock(c.Locked)
	case Sit:
		s.sit(c.Station)
	case StandUp:
		s.standUp()
	case Teleport:
		s.teleport(c.X, c.Z)
	case TeleportTo:
		p, err := s.layout.TeleportPoint(c.Point)
		if err != nil {
			s.reject("teleport", err)
			return
		}
		s.teleport(p.X, p.Z)
	case MinimapClick:
		s.teleport(lab.MinimapToWorld(c.PX, c.PY))
	case Inspect:
		info, err := s.layout.InfoFor(c.Kind)
		if err != nil {
			s.reject("inspect", err)
			return
		}
		s.info = c.Kind
		s.send(protocol.MsgInfo, protocol.Info{
			Open:        true,
			Kind:        c.Kind,
			Title:       info.Title,
			Icon:        info.Icon,
			Description: info.Description,
			Details:     info.Details,
		})
	case CloseInfo:
		s.closeInfo()
	case GuideNext:
		s.guide.Next()
		s.sendGuide()
	case ToggleDoor:
		s.door.Toggle()
		s.sendDoor()
	default:
		s.log.Warn("unknown command", zap.String("type", fmt.Sprintf("%T", cmd)))
	}
}

func (s *Session) sit(id int) {
	st, err := s.layout.Station(id)
	if err != nil {
		s.reject("sit", err)
		return
	}
	pos, look := st.Seat()
	s.station = id
	s.ctrl.RequestSit(pos, look)
	s.send(protocol.MsgSeated, protocol.Seated{Seated: true, Station: id})
}

func (s *Session) standUp() {
	if s.ctrl.Mode() != locomotion.ModeSeated {
		return
	}
	s.ctrl.RequestStandUp()
	s.station = 0
	s.send(protocol.MsgSeated, protocol.Seated{Seated: false})
}

func (s *Session) teleport(x, z float64) {
	if s.ctrl.Mode() == locomotion.ModeSeated {
		s.log.Debug("teleport ignored while seated", zap.String("code", s.Code))
		return
	}
	s.ctrl.RequestTeleport(x, z)
}

func (s *Session) closeInfo() {
	if s.info == "" {
		return
	}
	s.info = ""
	s.send(protocol.MsgInfo, protocol.Info{Open: false})
}

// escape stands up, closes any panel and hands the pointer back.
func (s *Session) escape() {
	s.standUp()
	s.closeInfo()
	s.ctrl.SetPointerLock(false)
	s.send(protocol.MsgReleasePointer, protocol.Empty{})
}

func (s *Session) detach() {
	_ = s.conn.Close()
	s.conn = nil
	s.attached.Store(false)
	s.idleSince = time.Now()
	s.ctrl.ReleaseKeys()
	s.ctrl.SetPointerLock(false)
	s.log.Info("driver detached", zap.String("code", s.Code))
}

func (s *Session) reject(op string, err error) {
	s.log.Warn("command rejected", zap.String("code", s.Code), zap.String("op", op), zap.Error(err))
	s.send(protocol.MsgError, protocol.Error{Code: op, Message: err.Error()})
}

func (s *Session) sendSnapshot() {
	s.send(protocol.MsgWelcome, protocol.Welcome{Code: s.Code, TickHz: s.tickHz})
	s.sendDoor()
	s.sendGuide()
	mode := s.ctrl.Mode()
	s.send(protocol.MsgSeated, protocol.Seated{Seated: mode == locomotion.ModeSeated, Station: s.station})
	s.broadcastPose()
}

func (s *Session) sendGuide() {
	s.send(protocol.MsgGuide, protocol.Guide{
		Index:   s.guide.Index(),
		Message: s.guide.Current(),
		Active:  s.guide.Active(),
	})
}

func (s *Session) sendDoor() {
	s.send(protocol.MsgDoor, protocol.Door{Open: s.door.Open(), Entered: s.door.Entered()})
}

func (s *Session) broadcastPose() {
	p := s.ctrl.Pose()
	s.send(protocol.MsgPose, protocol.Pose{
		Tick:  s.tick,
		X:     p.Position.X(),
		Y:     p.Position.Y(),
		Z:     p.Position.Z(),
		Yaw:   p.Yaw,
		Pitch: p.Pitch,
		Mode:  s.ctrl.Mode().String(),
	})
	px, py := lab.WorldToMinimap(s.planarX, s.planarZ)
	s.send(protocol.MsgMinimap, protocol.Minimap{X: s.planarX, Z: s.planarZ, PX: px, PY: py})
}

// send writes one envelope to the driver. A failed write drops the driver.
func (s *Session) send(t string, payload any) {
	if s.conn == nil {
		return
	}
	b, err := protocol.Encode(t, payload)
	if err != nil {
		s.log.Error("encode", zap.String("type", t), zap.Error(err))
		return
	}
	if err := s.conn.Send(b); err != nil {
		s.log.Warn("send failed, dropping driver", zap.String("code", s.Code), zap.Error(err))
		s.detach()
	}
}
