package wm

// pumpGesture runs a nested event loop for the duration of a mouse
// gesture: it drains motion (firing SideHandle) and re-dispatches
// configure-request, expose, and map-request through the main dispatch
// table so foreign clients keep advancing during a drag, until an event
// of kind term arrives.
func (e *Engine) pumpGesture(term EventKind) (XEvent, error) {
	for {
		ev, err := e.port.NextEvent()
		if err != nil {
			return XEvent{}, err
		}
		switch ev.Kind {
		case EvMotionNotify:
			e.SideHandle(ev.RootX, ev.RootY, false)
			if term == EvMotionNotify {
				return ev, nil
			}
			continue
		case EvConfigureRequest, EvExpose, EvMapRequest:
			e.Dispatch(ev)
			continue
		}
		if ev.Kind == term {
			return ev, nil
		}
	}
}

// toFloating converts a tiled client to floating in place, keeping its
// current geometry as the initial free rectangle.
func (e *Engine) toFloating(c *Client) {
	if c.IsFree {
		return
	}
	c.IsFree = true
	c.Free = c.Rect
}

// MoveMouse warps the pointer into the window's top-left, reads the
// root pointer on release, and resizes the client to (release_x,
// release_y, w, h) with interact=true. Releasing at the root origin
// (0,0) cancels the gesture, leaving the client's pre-gesture geometry
// untouched.
func (e *Engine) MoveMouse(c *Client) {
	if c == nil || c.IsFullscreen {
		return
	}
	e.port.WarpPointer(c.Win, 0, 0)
	if err := e.port.GrabPointerMove(); err != nil {
		return
	}
	defer e.port.UngrabPointer()

	if !c.IsFree {
		e.toFloating(c)
	}

	term, err := e.pumpGesture(EvButtonRelease)
	if err != nil {
		return
	}
	if term.RootX == 0 && term.RootY == 0 {
		return
	}

	c.Free = Rect{term.RootX, term.RootY, c.Rect.W, c.Rect.H}
	e.resize(c, c.Free, true)
	e.arrange(c.Mon)
}

// ResizeMouse warps the pointer to the bottom-right border, and on
// release resizes to (x, y, release_x-x, release_y-y). If the final
// rectangle crosses into another monitor, the client is migrated via
// SendToMonitor.
func (e *Engine) ResizeMouse(c *Client) {
	if c == nil || c.IsFullscreen {
		return
	}
	ox, oy := c.Rect.X, c.Rect.Y
	e.port.WarpPointer(c.Win, c.Rect.W, c.Rect.H)
	if err := e.port.GrabPointerResize(); err != nil {
		return
	}
	defer e.port.UngrabPointer()

	if !c.IsFree {
		e.toFloating(c)
	}

	term, err := e.pumpGesture(EvButtonRelease)
	if err != nil {
		return
	}

	w, h := term.RootX-ox, term.RootY-oy
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.Free = Rect{ox, oy, w, h}
	e.resize(c, c.Free, true)

	if dst := e.monitorAt(term.RootX, term.RootY); dst != nil && dst != c.Mon {
		e.SendToMonitor(c, dst)
	}
	e.arrange(c.Mon)
}

// ClientClick grabs the pointer with the move cursor, re-enters the main
// dispatcher for foreign events, terminates on a button-press, and
// returns the client under the subwindow, the currently selected client
// if useSelected is set, or nil if the gesture was canceled (pointer at
// root origin on terminate).
func (e *Engine) ClientClick(useSelected bool) *Client {
	if useSelected {
		if e.SelMon != nil {
			return e.SelMon.Sel
		}
		return nil
	}
	if err := e.port.GrabPointerMove(); err != nil {
		return nil
	}
	defer e.port.UngrabPointer()

	term, err := e.pumpGesture(EvButtonPress)
	if err != nil {
		return nil
	}
	if term.RootX == 0 && term.RootY == 0 {
		return nil
	}
	// The press is reported on the grab window (root); the client is the
	// root's child under the pointer.
	_, _, under := e.port.QueryPointer()
	c, ok := e.ClientOf(under)
	if !ok {
		return nil
	}
	return c
}

// SideHandle invokes the configured edge action for whichever screen
// edge (x,y) lands on, if any.
func (e *Engine) SideHandle(x, y int, warp bool) {
	if e.bindings == nil || e.SelMon == nil {
		return
	}
	m := e.SelMon
	r := m.Screen

	var side EdgeSide
	hit := true
	switch {
	case x <= r.X:
		side = EdgeLeft
	case x >= r.X+r.W-1:
		side = EdgeRight
	case y <= r.Y:
		side = EdgeUp
	case y >= r.Y+r.H-1:
		side = EdgeDown
	default:
		hit = false
	}
	if !hit {
		return
	}
	for _, ea := range e.bindings.edges {
		if ea.Side == side && ea.Action != nil {
			ea.Action(e, ea.Arg)
			return
		}
	}
}

// ScrollDesktop is the default edge action: only defined for the
// floating layout on a single-monitor setup, it translates every tiled
// client's floating origin by (dx,dy) and
// re-arranges; if warp, the pointer is translated along with the
// clients.
func (e *Engine) ScrollDesktop(dx, dy int, warp bool) {
	if len(e.Mons) != 1 {
		return
	}
	m := e.Mons[0]
	if m.Lt != &LayoutFloating {
		return
	}
	for _, c := range m.Clients {
		if c.IsFree {
			continue
		}
		c.Free.X += dx
		c.Free.Y += dy
	}
	e.arrange(m)
	if warp {
		x, y, _ := e.port.QueryPointer()
		e.port.WarpPointer(e.root, x+dx, y+dy)
	}
}
