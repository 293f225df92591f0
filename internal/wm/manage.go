package wm

// ManageParams carries the X state the dispatcher has already gathered
// for a to-be-managed window (geometry, hints, titles...), so Manage
// itself never talks to Port directly except to apply the result.
type ManageParams struct {
	Win       WinID
	InitRect  Rect
	BW        int
	Hints     SizeHints
	Class     string
	Instance  string
	Title     string
	IsDialog  bool
	Transient WinID
	HasParent bool
}

// Manage takes ownership of a newly mapped window: builds its Client,
// resolves its tags/monitor/floating state, clamps its geometry onto the
// owning monitor, attaches it to the client list and focus stack, maps
// it, and focuses it.
func (e *Engine) Manage(p ManageParams) *Client {
	c := &Client{
		Win:  p.Win,
		Rect: p.InitRect,
		Free: p.InitRect,
		Old:  p.InitRect,
		BW:   e.cfg.BorderWidth,
		OldBW: p.BW,
		Hints: p.Hints,
	}
	c.SetName(p.Title)

	var mon *Monitor
	if p.HasParent {
		if parent, ok := e.ClientOf(p.Transient); ok {
			mon = parent.Mon
			c.Tags = parent.Tags
		}
	}
	if mon == nil {
		mon = e.SelMon
		tags, free, monIdx := e.applyRules(p.Class, p.Instance, p.Title)
		if tags != 0 {
			c.Tags = tags
		} else {
			c.Tags = mon.TagSet()
		}
		c.IsFree = c.IsFree || free
		if forced := e.monitorByIndex(monIdx); forced != nil {
			mon = forced
		}
	}
	c.Mon = mon

	// Clamp geometry inside the owning monitor's screen rect; hoist off
	// the bar if it would straddle it.
	if c.Rect.X > mon.Screen.X+mon.Screen.W {
		c.Rect.X = mon.Screen.X + mon.Screen.W - c.Rect.W
	}
	if c.Rect.Y > mon.Screen.Y+mon.Screen.H {
		c.Rect.Y = mon.Screen.Y + mon.Screen.H - c.Rect.H
	}
	if c.Rect.X < mon.Screen.X {
		c.Rect.X = mon.Screen.X
	}
	if c.Rect.Y < mon.Win.Y && c.Rect.Y >= mon.Screen.Y {
		c.Rect.Y = mon.Win.Y
	}
	c.Free = c.Rect
	c.SavedFree = c.Rect

	c.BW = e.cfg.BorderWidth

	if p.HasParent || c.Hints.IsFixed() {
		c.IsFree = true
	}
	if p.IsDialog {
		c.IsFree = true
	}

	e.byWindow[c.Win] = c
	mon.attachClient(c)
	mon.attachFocus(c)
	e.rebuildClientList()

	e.port.SelectClientEvents(c.Win)
	e.port.SetWMStateNormal(c.Win)
	e.port.SetBorder(c.Win, false)
	e.port.ConfigureWindow(c.Win, c.Rect, c.BW)
	e.port.MapWindow(c.Win)

	if mon.Sel != nil {
		e.port.SetBorder(mon.Sel.Win, false)
	}
	mon.Sel = c
	e.arrange(mon)
	e.Focus(mon, nil)

	return c
}

// Unmanage releases c: detaches it from its monitor's client list and
// focus stack and, unless the window was destroyed out from under it,
// restores its border width and withdraws its WM state.
func (e *Engine) Unmanage(c *Client, destroyed bool) {
	mon := c.Mon
	mon.detachClient(c)
	mon.detachFocus(c)
	delete(e.byWindow, c.Win)

	if !destroyed {
		e.port.GrabServer()
		e.port.ConfigureWindow(c.Win, c.Rect, c.OldBW)
		e.port.GrabButtons(c.Win, false)
		e.port.SetWMStateWithdrawn(c.Win)
		e.port.UngrabServer()
	}

	e.rebuildClientList()
	e.arrange(mon)
	e.Focus(mon, nil)
}

func (e *Engine) rebuildClientList() {
	var all []WinID
	for _, m := range e.Mons {
		for i := len(m.Clients) - 1; i >= 0; i-- {
			all = append(all, m.Clients[i].Win)
		}
	}
	e.port.SetClientList(all)
}
