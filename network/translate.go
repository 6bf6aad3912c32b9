package network

import (
	"fmt"

	"labwalk/protocol"
	"labwalk/session"
)

// Translate turns one client frame into the session command it stands for.
func Translate(msg []byte) (any, error) {
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return nil, err
	}

	switch env.T {
	case protocol.MsgKey:
		k, err := protocol.DecodePayload[protocol.Key](env)
		if err != nil {
			return nil, err
		}
		return session.Key{Name: k.Key, Down: k.Down}, nil
	case protocol.MsgPointer:
		p, err := protocol.DecodePayload[protocol.Pointer](env)
		if err != nil {
			return nil, err
		}
		return session.Pointer{DX: p.DX, DY: p.DY}, nil
	case protocol.MsgLock:
		l, err := protocol.DecodePayload[protocol.Lock](env)
		if err != nil {
			return nil, err
		}
		return session.PointerLock{Locked: l.Locked}, nil
	case protocol.MsgSit:
		s, err := protocol.DecodePayload[protocol.Sit](env)
		if err != nil {
			return nil, err
		}
		return session.Sit{Station: s.Station}, nil
	case protocol.MsgStand:
		return session.StandUp{}, nil
	case protocol.MsgTeleport:
		tp, err := protocol.DecodePayload[protocol.Teleport](env)
		if err != nil {
			return nil, err
		}
		if tp.Point != "" {
			return session.TeleportTo{Point: tp.Point}, nil
		}
		return session.Teleport{X: tp.X, Z: tp.Z}, nil
	case protocol.MsgMinimap:
		m, err := protocol.DecodePayload[protocol.MinimapClick](env)
		if err != nil {
			return nil, err
		}
		return session.MinimapClick{PX: m.PX, PY: m.PY}, nil
	case protocol.MsgInspect:
		in, err := protocol.DecodePayload[protocol.Inspect](env)
		if err != nil {
			return nil, err
		}
		return session.Inspect{Kind: in.Kind}, nil
	case protocol.MsgClose:
		return session.CloseInfo{}, nil
	case protocol.MsgGuide:
		return session.GuideNext{}, nil
	case protocol.MsgDoor:
		return session.ToggleDoor{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, env.T)
}
