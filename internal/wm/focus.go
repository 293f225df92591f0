package wm

// Focus gives c input focus on monitor m. If c is nil or invisible, the
// first visible client from the monitor's focus-stack head is picked
// instead.
func (e *Engine) Focus(m *Monitor, c *Client) {
	if m == nil {
		m = e.SelMon
	}
	if c == nil || !c.Visible() {
		c = firstVisible(m.Focus)
	}

	if m.Sel != nil && m.Sel != c {
		e.port.SetBorder(m.Sel.Win, false)
		e.port.GrabButtons(m.Sel.Win, false)
	}

	if c != nil {
		if c.Mon != m {
			m = c.Mon
		}
		if c.IsUrgent {
			c.IsUrgent = false
		}
		m.detachFocus(c)
		m.attachFocus(c)
		e.port.GrabButtons(c.Win, true)
		if e.bindings != nil {
			for _, bb := range e.bindings.buttons {
				if bb.Region == ClickClientWin {
					e.port.GrabButton(c.Win, bb.Mod, bb.Button)
				}
			}
		}
		e.port.SetBorder(c.Win, true)
		e.port.SetInputFocus(c.Win)
		e.port.SetActiveWindow(c.Win)
	}

	m.Sel = c
	e.SelMon = m
	e.updateBarFeed(m)
}

// firstVisible returns the first visible client walking stack from head.
func firstVisible(stack []*Client) *Client {
	for _, c := range stack {
		if c.Visible() {
			return c
		}
	}
	return nil
}

// restack implements "restack(monitor)": raise a selected
// floating client above the tiled stack, then restack all tiled visible
// clients (in focus-stack order) immediately below the bar window.
func (e *Engine) restack(m *Monitor) {
	e.updateBarFeed(m)
	if m.Sel == nil {
		return
	}
	if (m.Sel.IsFree || m.Lt == nil || m.Lt.Arrange == nil) && m.Lt != &LayoutFloating {
		e.port.RaiseWindow(m.Sel.Win)
	}

	sibling := m.BarWin
	for _, c := range m.Focus {
		if !c.Visible() || c.IsFree || c.IsFullscreen {
			continue
		}
		e.port.RestackBelow(c.Win, sibling)
		sibling = c.Win
	}
	e.port.EnterNotifyDrain()
}

// FocusStack walks the monitor's client list forward/backward (dir)
// through visible clients, wrapping around, and focuses the next/
// previous one; warp additionally moves the pointer onto it.
func (e *Engine) FocusStack(m *Monitor, dir int, warp bool) {
	if m == nil {
		m = e.SelMon
	}
	if m.Sel == nil || len(m.Clients) == 0 {
		return
	}

	idx := -1
	for i, c := range m.Clients {
		if c == m.Sel {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	n := len(m.Clients)
	for step := 1; step <= n; step++ {
		i := ((idx+dir*step)%n + n) % n
		c := m.Clients[i]
		if c.Visible() {
			e.Focus(m, c)
			if warp {
				x, y := c.Rect.Center()
				e.port.WarpPointer(c.Win, x, y)
			}
			e.restack(m)
			return
		}
	}
}

// SetUrgent marks c urgent or not and refreshes the bar. It is called
// with the urgency bit of WM_HINTS, both at map time and on a WM_HINTS
// property change; no client message sets urgency (a _NET_ACTIVE_WINDOW
// request focuses the client instead).
func (e *Engine) SetUrgent(c *Client, urgent bool) {
	c.IsUrgent = urgent
	e.updateBarFeed(c.Mon)
}
