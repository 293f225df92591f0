package wm

// resize funnels every geometry mutation through ApplySizeHints and only
// issues an X configure when the effective geometry differs from the
// client's current, live geometry — not from the as-requested rect, so
// a resize that size-hints leave untouched still reaches the server.
func (e *Engine) resize(c *Client, want Rect, interact bool) {
	m := c.Mon
	bounds := m.Win
	if interact {
		bounds = m.Screen
	}

	old := c.Rect
	respect := e.cfg.RespectHints || c.IsFree || m.Lt == nil || m.Lt.Arrange == nil
	out, _ := ApplySizeHints(want, c.Hints, bounds, c.BW, e.cfg.BarHeight, respect)

	c.Rect = out
	if out != old {
		e.port.ConfigureWindow(c.Win, out, c.BW)
	}
}

// resizeClient sets c's geometry to r verbatim, bypassing
// ApplySizeHints entirely — the fullscreen path's equivalent of the
// original's resizeclient(), used so a client's own max/increment
// hints can never keep its fullscreen rectangle from covering the
// monitor (invariant 5 / P7).
func (e *Engine) resizeClient(c *Client, r Rect) {
	old := c.Rect
	c.Rect = r
	if r != old {
		e.port.ConfigureWindow(c.Win, r, c.BW)
	}
}
