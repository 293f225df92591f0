package xconn

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/rootwm/xwm/internal/wm"
)

// GetGeometry reads a window's current geometry and border width, used
// when a foreign window is first seen in onMapRequest/Scan.
func (c *Conn) GetGeometry(win wm.WinID) (wm.Rect, int) {
	geom, err := xproto.GetGeometry(c.conn, xproto.Drawable(win)).Reply()
	if err != nil || geom == nil {
		return wm.Rect{}, 0
	}
	return wm.Rect{X: int(geom.X), Y: int(geom.Y), W: int(geom.Width), H: int(geom.Height)}, int(geom.BorderWidth)
}

// GetSizeHints reads WM_NORMAL_HINTS via icccm, translating it to the
// engine's transport-agnostic SizeHints.
func (c *Conn) GetSizeHints(win wm.WinID) wm.SizeHints {
	hints, err := icccm.WmNormalHintsGet(c.xu, win)
	if err != nil || hints == nil {
		return wm.SizeHints{}
	}
	out := wm.SizeHints{
		BaseW: int(hints.BaseWidth), BaseH: int(hints.BaseHeight),
		MinW: int(hints.MinWidth), MinH: int(hints.MinHeight),
		MaxW: int(hints.MaxWidth), MaxH: int(hints.MaxHeight),
		IncW: int(hints.WidthInc), IncH: int(hints.HeightInc),
	}
	if hints.Flags&icccm.SizeHintPAspect != 0 && hints.MinAspectDen != 0 && hints.MaxAspectNum != 0 {
		out.HaveAspect = true
		out.MinAspect = float64(hints.MinAspectNum) / float64(hints.MinAspectDen)
		out.MaxAspect = float64(hints.MaxAspectNum) / float64(hints.MaxAspectDen)
	}
	return out
}

// GetWMHints reads WM_HINTS for the urgency and input-model bits manage()
// needs.
func (c *Conn) GetWMHints(win wm.WinID) (urgent bool, neverFocus bool) {
	hints, err := icccm.WmHintsGet(c.xu, win)
	if err != nil || hints == nil {
		return false, false
	}
	urgent = hints.Flags&icccm.HintUrgency != 0
	neverFocus = hints.Flags&icccm.HintInput != 0 && !hints.Input
	return urgent, neverFocus
}

// GetTransientFor reads WM_TRANSIENT_FOR, used to inherit the parent's
// monitor and tags at manage time.
func (c *Conn) GetTransientFor(win wm.WinID) (wm.WinID, bool) {
	parent, err := icccm.WmTransientForGet(c.xu, win)
	if err != nil || parent == 0 {
		return 0, false
	}
	return parent, true
}

// IsDialog reports whether _NET_WM_WINDOW_TYPE names the dialog type.
func (c *Conn) IsDialog(win wm.WinID) bool {
	types, err := ewmh.WmWindowTypeGet(c.xu, win)
	if err != nil {
		return false
	}
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DIALOG" {
			return true
		}
	}
	return false
}

// GetClassInstanceTitle reads WM_CLASS and the best available title
// (_NET_WM_NAME, falling back to WM_NAME) for rule matching and the bar.
func (c *Conn) GetClassInstanceTitle(win wm.WinID) (class, instance, title string) {
	if wc, err := icccm.WmClassGet(c.xu, win); err == nil && wc != nil {
		class, instance = wc.Class, wc.Instance
	}
	if name, err := ewmh.WmNameGet(c.xu, win); err == nil && name != "" {
		title = name
	} else if name, err := icccm.WmNameGet(c.xu, win); err == nil {
		title = name
	}
	return class, instance, title
}

// SupportsDelete reports whether WM_PROTOCOLS advertises WM_DELETE_WINDOW.
func (c *Conn) SupportsDelete(win wm.WinID) bool {
	protocols, err := icccm.WmProtocolsGet(c.xu, win)
	if err != nil {
		return false
	}
	for _, p := range protocols {
		if p == "WM_DELETE_WINDOW" {
			return true
		}
	}
	return false
}

// SendDelete politely asks a client to close via a WM_DELETE_WINDOW
// ClientMessage.
func (c *Conn) SendDelete(win wm.WinID) {
	wmProtocols := c.atom("WM_PROTOCOLS")
	wmDelete := c.atom("WM_DELETE_WINDOW")

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   wmProtocols,
		Data: xproto.ClientMessageDataUnion{
			Data32: [5]uint32{uint32(wmDelete), uint32(xproto.TimeCurrentTime), 0, 0, 0},
		},
	}
	xproto.SendEvent(c.conn, false, win, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

func (c *Conn) KillClient(win wm.WinID) {
	xproto.KillClient(c.conn, uint32(win))
}

func (c *Conn) SetWMStateNormal(win wm.WinID) {
	icccm.WmStateSet(c.xu, win, &icccm.WmState{State: icccm.StateNormal})
}

func (c *Conn) SetWMStateWithdrawn(win wm.WinID) {
	icccm.WmStateSet(c.xu, win, &icccm.WmState{State: icccm.StateWithdrawn})
}

func (c *Conn) SetActiveWindow(win wm.WinID) {
	ewmh.ActiveWindowSet(c.xu, win)
}

// SetClientList publishes _NET_CLIENT_LIST after every manage/unmanage,
// rebuild-on-every-change discipline.
func (c *Conn) SetClientList(wins []wm.WinID) {
	raw := make([]xproto.Window, len(wins))
	for i, w := range wins {
		raw[i] = w
	}
	ewmh.ClientListSet(c.xu, raw)
}

// SelectClientEvents subscribes to the events the engine needs from a
// newly managed client: property changes, and structure/focus events
// needed for restacking and focus tracking.
func (c *Conn) SelectClientEvents(win wm.WinID) {
	xproto.ChangeWindowAttributes(c.conn, win, xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify |
			xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange),
	})
}
