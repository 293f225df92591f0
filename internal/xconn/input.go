package xconn

import (
	"errors"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/rootwm/xwm/internal/wm"
)

var errGrabFailed = errors.New("xconn: pointer grab failed")

const (
	focusedBorder   = 0x5294e2 // dwm-style blue
	unfocusedBorder = 0x444444
)

// Standard cursor glyphs from the X core "cursor" font (X.h / cursorfont.h).
const (
	xcLeftPtr = 68
	xcFleur   = 52
	xcSizing  = 120
)

func (c *Conn) loadCursors() {
	font, err := xproto.NewFontId(c.conn)
	if err != nil {
		return
	}
	if xproto.OpenFontChecked(c.conn, font, uint16(len("cursor")), "cursor").Check() != nil {
		return
	}
	c.cursorNormal = c.createGlyphCursor(font, xcLeftPtr)
	c.cursorMove = c.createGlyphCursor(font, xcFleur)
	c.cursorResize = c.createGlyphCursor(font, xcSizing)
}

func (c *Conn) createGlyphCursor(font xproto.Font, glyph uint16) xproto.Cursor {
	cur, err := xproto.NewCursorId(c.conn)
	if err != nil {
		return 0
	}
	xproto.CreateGlyphCursor(c.conn, cur, font, font, glyph, glyph+1, 0, 0, 0, 0xffff, 0xffff, 0xffff)
	return cur
}

// SetInputFocus gives the window input focus via the standard ICCCM
// RevertToPointerRoot fallback.
func (c *Conn) SetInputFocus(win wm.WinID) {
	xproto.SetInputFocus(c.conn, xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime)
}

// SetBorder paints the client's border pixel for its focused state.
func (c *Conn) SetBorder(win wm.WinID, focused bool) {
	color := uint32(unfocusedBorder)
	if focused {
		color = focusedBorder
	}
	xproto.ChangeWindowAttributes(c.conn, win, xproto.CwBorderPixel, []uint32{color})
}

// GrabButtons implements click-to-focus grab discipline:
// an unfocused client gets every button grabbed under any modifier (so
// the first click both focuses and is consumed); a focused client has
// all its button grabs released here, and Engine.Focus then grabs only
// the modifier-qualified client-window bindings used for move/resize,
// so plain clicks pass through to the application.
func (c *Conn) GrabButtons(win wm.WinID, focused bool) {
	xproto.UngrabButton(c.conn, xproto.ButtonIndexAny, win, xproto.ModMaskAny)
	if !focused {
		xproto.GrabButton(c.conn, false, win,
			uint16(xproto.EventMaskButtonPress),
			xproto.GrabModeAsync, xproto.GrabModeAsync,
			0, 0, xproto.ButtonIndexAny, xproto.ModMaskAny)
	}
}

func (c *Conn) WarpPointer(win wm.WinID, x, y int) {
	xproto.WarpPointer(c.conn, 0, win, 0, 0, 0, 0, int16(x), int16(y))
}

func (c *Conn) QueryPointer() (int, int, wm.WinID) {
	reply, err := xproto.QueryPointer(c.conn, c.root).Reply()
	if err != nil || reply == nil {
		return 0, 0, 0
	}
	return int(reply.RootX), int(reply.RootY), reply.Child
}

func (c *Conn) grabPointer(cursor xproto.Cursor) error {
	mask := uint16(xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease | xproto.EventMaskPointerMotion)
	reply, err := xproto.GrabPointer(c.conn, false, c.root, mask,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, cursor, xproto.TimeCurrentTime).Reply()
	if err != nil {
		return err
	}
	if reply == nil || reply.Status != xproto.GrabStatusSuccess {
		return errGrabFailed
	}
	return nil
}

func (c *Conn) GrabPointerMove() error   { return c.grabPointer(c.cursorMove) }
func (c *Conn) GrabPointerResize() error { return c.grabPointer(c.cursorResize) }
func (c *Conn) UngrabPointer()           { xproto.UngrabPointer(c.conn, xproto.TimeCurrentTime) }

func (c *Conn) GrabServer()   { xproto.GrabServer(c.conn) }
func (c *Conn) UngrabServer() { xproto.UngrabServer(c.conn) }
