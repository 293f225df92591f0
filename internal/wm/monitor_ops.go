package wm

// SendToMonitor moves c from its current monitor to dst, adopting dst's
// currently selected tag set so the client lands visible there.
func (e *Engine) SendToMonitor(c *Client, dst *Monitor) {
	if c == nil || dst == nil || c.Mon == dst {
		return
	}
	src := c.Mon
	src.detachClient(c)
	src.detachFocus(c)

	c.Mon = dst
	c.Tags = dst.TagSet()
	dst.attachClient(c)
	dst.attachFocus(c)

	e.Focus(src, nil)
	e.arrange(src)
	e.arrange(dst)
}

// FocusMonitor switches SelMon by dir (+1/-1, wrapping) without moving
// any client.
func (e *Engine) FocusMonitor(dir int) {
	if len(e.Mons) < 2 {
		return
	}
	idx := 0
	for i, m := range e.Mons {
		if m == e.SelMon {
			idx = i
			break
		}
	}
	n := len(e.Mons)
	idx = ((idx+dir)%n + n) % n
	e.unfocusMonitor(e.SelMon)
	e.SelMon = e.Mons[idx]
	e.Focus(e.SelMon, nil)
}

// TagMonitor sends the selected client of SelMon to the monitor dir away
// (+1/-1, wrapping).
func (e *Engine) TagMonitor(dir int) {
	if e.SelMon == nil || e.SelMon.Sel == nil || len(e.Mons) < 2 {
		return
	}
	idx := 0
	for i, m := range e.Mons {
		if m == e.SelMon {
			idx = i
			break
		}
	}
	n := len(e.Mons)
	idx = ((idx+dir)%n + n) % n
	e.SendToMonitor(e.SelMon.Sel, e.Mons[idx])
}

func (e *Engine) unfocusMonitor(m *Monitor) {
	if m == nil || m.Sel == nil {
		return
	}
	e.port.SetBorder(m.Sel.Win, false)
}
