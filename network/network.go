// Package network exposes sessions to renderers over WebSocket and serves the
// small JSON API next to it.
package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"labwalk/lab"
	"labwalk/protocol"
	"labwalk/session"
)

var (
	ErrExpectedHello  = errors.New("network: first message must be hello")
	ErrVersion        = errors.New("network: unsupported protocol version")
	ErrUnknownMessage = errors.New("network: unknown message type")
)

type Server struct {
	manager  *session.Manager
	layout   *lab.Layout
	log      *zap.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

func NewServer(m *session.Manager, layout *lab.Layout, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		manager: m,
		layout:  layout,
		log:     log,
		upgrader: websocket.Upgrader{
			// For dev, allow all origins. Lock this down in prod.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/ws", s.handleWS)
	s.mux.HandleFunc("GET /api/sessions", s.handleSessions)
	s.mux.HandleFunc("GET /api/layout", s.handleLayout)
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade", zap.Error(err))
		return
	}
	log := s.log.With(zap.String("conn", uuid.NewString()), zap.String("remote", r.RemoteAddr))

	// Basic timeouts + pong handling (keeps connections healthy)
	ws.SetReadLimit(readLimit)
	_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(readTimeout))
	})

	conn := newWSConn(ws)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		if err := conn.writeLoop(); err != nil {
			log.Debug("write", zap.Error(err))
		}
	}()
	defer func() {
		_ = conn.Close()
		<-writerDone
	}()

	sess, err := s.handshake(ws, conn)
	if err != nil {
		log.Info("handshake failed", zap.Error(err))
		sendError(conn, protocol.MsgHello, err)
		return
	}
	log = log.With(zap.String("code", sess.Code))
	log.Info("connected")
	defer func() {
		_ = sess.Send(session.Detach{Conn: conn})
		log.Info("disconnected")
	}()

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Info("read", zap.Error(err))
			}
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(readTimeout))

		cmd, err := Translate(msg)
		if err != nil {
			log.Debug("bad frame", zap.Error(err))
			sendError(conn, "decode", err)
			continue
		}
		if err := sess.Send(cmd); err != nil {
			return
		}
	}
}

// handshake reads hello, then resumes or creates a session and attaches conn
// as its driver.
func (s *Server) handshake(ws *websocket.Conn, conn *wsConn) (*session.Session, error) {
	_, msg, err := ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("read hello: %w", err)
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return nil, err
	}
	if env.T != protocol.MsgHello {
		return nil, fmt.Errorf("%w, got %q", ErrExpectedHello, env.T)
	}
	hello, err := protocol.DecodePayload[protocol.Hello](env)
	if err != nil {
		return nil, err
	}
	if hello.V != protocol.Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, hello.V)
	}

	var sess *session.Session
	if hello.Code != "" {
		if sess, err = s.manager.Get(hello.Code); err != nil {
			return nil, err
		}
	} else {
		sess = s.manager.Create()
	}

	reply := make(chan session.AttachResult, 1)
	if err := sess.Send(session.Attach{Conn: conn, Reply: reply}); err != nil {
		return nil, err
	}
	select {
	case res := <-reply:
		if res.Err != nil {
			return nil, res.Err
		}
	case <-sess.Done():
		return nil, session.ErrSessionClosed
	}
	return sess, nil
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.manager.List())
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.layout)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func sendError(c *wsConn, code string, err error) {
	b, encErr := protocol.Encode(protocol.MsgError, protocol.Error{Code: code, Message: err.Error()})
	if encErr != nil {
		return
	}
	_ = c.Send(b)
}
