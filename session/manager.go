package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"
)

var ErrUnknownSession = errors.New("session: unknown code")

// Info is returned by the API for the session list.
type Info struct {
	Code     string `json:"code"`
	Attached bool   `json:"attached"`
	Tick     int    `json:"tick"`
}

// Manager holds sessions by code. Sessions are created on demand and removed
// once they have gone idle without a driver.
type Manager struct {
	opts Options

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(opts Options) *Manager {
	return &Manager{
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session under a fresh 6-char code.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(6)
		if _, exists := m.sessions[code]; exists {
			continue
		}
		s := New(m.opts)
		s.Code = code
		s.OnIdle = m.remove
		m.sessions[code] = s
		go s.Run()
		return s
	}
}

func (m *Manager) Get(code string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSession, code)
	}
	return s, nil
}

func (m *Manager) remove(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[code]; ok {
		s.Stop()
		delete(m.sessions, code)
	}
}

// List returns all live sessions ordered by code.
func (m *Manager) List() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Info, 0, len(m.sessions))
	for code, s := range m.sessions {
		out = append(out, Info{Code: code, Attached: s.Attached(), Tick: s.Tick()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Close stops every session.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for code, s := range m.sessions {
		s.Stop()
		delete(m.sessions, code)
	}
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
