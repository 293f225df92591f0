package xconn

import (
	"errors"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/rootwm/xwm/internal/wm"
)

var errConnClosed = errors.New("xconn: connection closed")

// nextRaw returns the next raw X event, preferring anything
// EnterNotifyDrain set aside over reading the wire again, so events
// displaced by a restack's drain are never lost.
func (c *Conn) nextRaw() xgb.Event {
	c.mu.Lock()
	if len(c.pending) > 0 {
		ev := c.pending[0]
		c.pending = c.pending[1:]
		c.mu.Unlock()
		return ev
	}
	c.mu.Unlock()

	for {
		raw, err := c.conn.WaitForEvent()
		if err != nil {
			continue // protocol-level decode error on one event; keep draining
		}
		return raw
	}
}

// NextEvent blocks for the next X event and translates it into the
// engine's tagged XEvent. Event kinds the engine doesn't dispatch on
// (e.g. MappingNotify, the per-CRTC RANDR notify) are absorbed here and
// the loop continues; the RANDR screen-change notify is passed on as a
// root EvConfigureNotify.
func (c *Conn) NextEvent() (wm.XEvent, error) {
	for {
		raw := c.nextRaw()
		if raw == nil {
			return wm.XEvent{}, errConnClosed
		}

		switch ev := raw.(type) {
		case xproto.MapRequestEvent:
			return wm.XEvent{Kind: wm.EvMapRequest, Win: ev.Window}, nil

		case xproto.UnmapNotifyEvent:
			return wm.XEvent{Kind: wm.EvUnmapNotify, Win: ev.Window}, nil

		case xproto.DestroyNotifyEvent:
			return wm.XEvent{Kind: wm.EvDestroyNotify, Win: ev.Window}, nil

		case xproto.ConfigureRequestEvent:
			return wm.XEvent{
				Kind: wm.EvConfigureRequest, Win: ev.Window,
				X: int(ev.X), Y: int(ev.Y), Width: int(ev.Width), Height: int(ev.Height),
				BW: int(ev.BorderWidth), ValueMask: uint32(ev.ValueMask),
			}, nil

		case xproto.ConfigureNotifyEvent:
			return wm.XEvent{Kind: wm.EvConfigureNotify, Win: ev.Window, Root: ev.Window == c.root}, nil

		case xproto.PropertyNotifyEvent:
			return wm.XEvent{Kind: wm.EvPropertyNotify, Win: ev.Window, Atom: c.atomName(ev.Atom)}, nil

		case xproto.ClientMessageEvent:
			d := ev.Data.Data32
			return wm.XEvent{
				Kind: wm.EvClientMessage, Win: ev.Window, Atom: c.atomName(ev.Type),
				Data: [5]uint32{d[0], d[1], d[2], d[3], d[4]},
			}, nil

		case xproto.EnterNotifyEvent:
			return wm.XEvent{
				Kind: wm.EvEnterNotify, Win: ev.Event, Root: ev.Event == c.root,
				RootX: int(ev.RootX), RootY: int(ev.RootY),
			}, nil

		case xproto.FocusInEvent:
			return wm.XEvent{Kind: wm.EvFocusIn, Win: ev.Event}, nil

		case xproto.ExposeEvent:
			if ev.Count == 0 {
				return wm.XEvent{Kind: wm.EvExpose, Win: ev.Window}, nil
			}

		case xproto.ButtonPressEvent:
			return wm.XEvent{
				Kind: wm.EvButtonPress, Win: ev.Event, Root: ev.Event == c.root,
				RootX: int(ev.RootX), RootY: int(ev.RootY),
				Button: int(ev.Detail), Modifiers: uint32(ev.State),
			}, nil

		case xproto.ButtonReleaseEvent:
			return wm.XEvent{
				Kind: wm.EvButtonRelease, Win: ev.Event,
				RootX: int(ev.RootX), RootY: int(ev.RootY),
				Button: int(ev.Detail), Modifiers: uint32(ev.State),
			}, nil

		case xproto.KeyPressEvent:
			return wm.XEvent{
				Kind: wm.EvKeyPress, Win: ev.Event,
				Keycode: int(ev.Detail), Modifiers: uint32(ev.State),
			}, nil

		case xproto.MotionNotifyEvent:
			return wm.XEvent{
				Kind: wm.EvMotionNotify, Win: ev.Event,
				RootX: int(ev.RootX), RootY: int(ev.RootY),
			}, nil

		case randr.ScreenChangeNotifyEvent:
			return wm.XEvent{Kind: wm.EvConfigureNotify, Root: true}, nil

		case randr.NotifyEvent:
			continue // per-CRTC notify: the screen-change notify above is enough

		default:
			continue
		}
	}
}
