// Package xconn is the Port implementation (internal/wm.Port) backed by a
// live X11 connection. It is the only package in this module that imports
// an X protocol library directly; everything else talks to the engine
// through the tagged-variant event/request shapes in internal/wm.
package xconn

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/rootwm/xwm/internal/wm"
)

var _ wm.Port = (*Conn)(nil)

// Conn wraps an xgbutil connection with the atom cache and numlock-derived
// modifier mask the engine's Port methods need.
type Conn struct {
	xu   *xgbutil.XUtil
	conn *xgb.Conn
	root xproto.Window

	mu    sync.Mutex
	atoms map[string]xproto.Atom

	// pending holds events pulled off the wire by EnterNotifyDrain that
	// turned out not to be EnterNotify; NextEvent drains this buffer
	// before blocking on the connection again so nothing is lost.
	pending []xgb.Event

	numlockMask uint16
	hasRandr    bool

	cursorMove   xproto.Cursor
	cursorResize xproto.Cursor
	cursorNormal xproto.Cursor
}

// New opens a connection to the X display named by displayName (empty
// string uses $DISPLAY, following xgbutil.NewConn's own convention),
// installs the class-1-error-suppressing handler, loads cursors, detects
// the NumLock modifier, and claims the root window's events. The atom
// cache starts empty and fills on first use of each name.
func New(displayName string) (*Conn, error) {
	var xu *xgbutil.XUtil
	var err error
	if displayName == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(displayName)
	}
	if err != nil {
		return nil, fmt.Errorf("xconn: connect: %w", err)
	}

	c := &Conn{
		xu:    xu,
		conn:  xu.Conn(),
		root:  xu.RootWin(),
		atoms: make(map[string]xproto.Atom),
	}

	if err := randr.Init(c.conn); err == nil {
		c.hasRandr = true
		randr.SelectInputChecked(c.conn, c.root, randr.NotifyMaskScreenChange).Check()
	}

	c.installErrorHandler()
	c.loadCursors()
	c.updateNumlockMask()

	if err := c.selectRootEvents(); err != nil {
		c.conn.Close()
		return nil, fmt.Errorf("xconn: another window manager is already running: %w", err)
	}

	return c, nil
}

// selectRootEvents claims SubstructureRedirect on the root window. This
// fails with BadAccess if another window manager already holds it,
// which is how dwm-lineage WMs detect "already running".
func (c *Conn) selectRootEvents() error {
	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify |
		xproto.EventMaskButtonPress | xproto.EventMaskEnterWindow |
		xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify)
	return xproto.ChangeWindowAttributesChecked(c.conn, c.root, xproto.CwEventMask, []uint32{mask}).Check()
}

// Root returns the root window, for Engine.Setup.
func (c *Conn) Root() wm.WinID { return c.root }

func (c *Conn) Sync()  { c.conn.Sync() }
func (c *Conn) Close() { c.conn.Close() }

// AtomID exposes the cached atom resolver to the engine, so it can
// compare _NET_WM_STATE ClientMessage data words against a named atom
// (e.g. _NET_WM_STATE_FULLSCREEN) without owning an atom cache itself.
func (c *Conn) AtomID(name string) uint32 {
	return uint32(c.atom(name))
}

// atom resolves (and caches) an atom by name. Errors are swallowed to
// AtomNone since every caller treats "property doesn't exist on this
// server" the same as "absent" (class-2 handling).
func (c *Conn) atom(name string) xproto.Atom {
	c.mu.Lock()
	defer c.mu.Unlock()
	if a, ok := c.atoms[name]; ok {
		return a
	}
	reply, err := xproto.InternAtom(c.conn, false, uint16(len(name)), name).Reply()
	if err != nil || reply == nil {
		return xproto.AtomNone
	}
	c.atoms[name] = reply.Atom
	return reply.Atom
}

func (c *Conn) atomName(a xproto.Atom) string {
	reply, err := xproto.GetAtomName(c.conn, a).Reply()
	if err != nil || reply == nil {
		return ""
	}
	return string(reply.Name)
}

// RootRect returns the root window's geometry, used when RANDR isn't
// available or reports nothing.
func (c *Conn) RootRect() wm.Rect {
	geom, err := xproto.GetGeometry(c.conn, xproto.Drawable(c.root)).Reply()
	if err != nil || geom == nil {
		return wm.Rect{}
	}
	return wm.Rect{X: int(geom.X), Y: int(geom.Y), W: int(geom.Width), H: int(geom.Height)}
}

// Outputs implements monitor discovery via the RANDR
// extension: one Rect per enabled CRTC. Falls back to a single
// root-sized output when RANDR is unavailable (nested/Xephyr setups).
func (c *Conn) Outputs() []wm.Rect {
	if !c.hasRandr {
		return []wm.Rect{c.RootRect()}
	}
	res, err := randr.GetScreenResourcesCurrent(c.conn, c.root).Reply()
	if err != nil || res == nil {
		return []wm.Rect{c.RootRect()}
	}

	var out []wm.Rect
	for _, crtc := range res.Crtcs {
		info, err := randr.GetCrtcInfo(c.conn, crtc, res.ConfigTimestamp).Reply()
		if err != nil || info == nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 {
			continue
		}
		out = append(out, wm.Rect{X: int(info.X), Y: int(info.Y), W: int(info.Width), H: int(info.Height)})
	}
	if len(out) == 0 {
		return []wm.Rect{c.RootRect()}
	}
	return out
}
