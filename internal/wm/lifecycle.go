package wm

// Setup runs the startup sequence: discover outputs, build one Monitor
// per output, seed each monitor's per-tag layout memory from the
// configured startup layouts, select the first monitor, and record the
// root window for bindings.
func (e *Engine) Setup(root WinID) {
	e.root = root
	e.UpdateGeometry()
	if len(e.Mons) > 0 {
		e.SelMon = e.Mons[0]
	}
}

// UpdateGeometry re-reads outputs from Port and reconciles the monitor
// list: existing monitors are resized in place (by output index), a
// removed output's clients migrate to monitor 0, and new outputs get a
// freshly seeded Monitor.
func (e *Engine) UpdateGeometry() {
	outputs := e.port.Outputs()
	if len(outputs) == 0 {
		outputs = []Rect{e.port.RootRect()}
	}

	for i, scr := range outputs {
		if i < len(e.Mons) {
			e.resizeMonitor(e.Mons[i], scr)
			continue
		}
		e.Mons = append(e.Mons, e.newMonitor(i, scr))
	}

	for len(e.Mons) > len(outputs) {
		dead := e.Mons[len(e.Mons)-1]
		e.Mons = e.Mons[:len(e.Mons)-1]
		if len(e.Mons) == 0 {
			break
		}
		dst := e.Mons[0]
		for _, c := range append([]*Client(nil), dead.Clients...) {
			e.SendToMonitor(c, dst)
		}
	}

	if e.SelMon == nil && len(e.Mons) > 0 {
		e.SelMon = e.Mons[0]
	}
	e.ArrangeAll()
}

func (e *Engine) resizeMonitor(m *Monitor, scr Rect) {
	m.Screen = scr
	m.Win = scr
	if m.ShowBar {
		if m.TopBar {
			m.Win.Y += e.cfg.BarHeight
		}
		m.Win.H -= e.cfg.BarHeight
		if m.TopBar {
			m.BarY = scr.Y
		} else {
			m.BarY = scr.Y + scr.H - e.cfg.BarHeight
		}
	}
}

func (e *Engine) newMonitor(idx int, scr Rect) *Monitor {
	m := &Monitor{
		idx:     idx,
		TagSets: [2]uint32{1, 1},
		ShowBar: true,
		TopBar:  true,
		MFact:   0.55,
		NMaster: 1,
		Lt:      &LayoutTile,
	}
	m.TagLayouts = make([]TagLayout, e.cfg.NumTags)
	for i := range m.TagLayouts {
		tl := TagLayout{LayoutIdx: layoutIndex(&LayoutTile), MFact: 0.55, NMaster: 1}
		if i < len(e.cfg.StartupLayouts) {
			tl = e.cfg.StartupLayouts[i]
		}
		m.TagLayouts[i] = tl
	}
	m.loadTag(0)
	e.resizeMonitor(m, scr)
	return m
}

// Scan feeds a caller-supplied list of already-mapped top-level windows
// through Manage via onMapRequest's gathering logic, for startup.
func (e *Engine) Scan(existing []WinID) {
	for _, win := range existing {
		e.Dispatch(XEvent{Kind: EvMapRequest, Win: win})
	}
}

// Run drains events from Port until Quit is called or the connection
// errors out, dispatching each one through the fixed table.
func (e *Engine) Run() {
	for e.running.Load() {
		ev, err := e.port.NextEvent()
		if err != nil {
			return
		}
		e.Dispatch(ev)
	}
}

// Quit stops Run's loop; restart requests Quit but additionally sets
// the restart flag so the caller (main) knows to re-exec instead of
// exiting. Both flags are safe to set from a signal-handling goroutine.
func (e *Engine) Quit() {
	e.running.Store(false)
}

func (e *Engine) QuitRestart() {
	e.restart.Store(true)
	e.running.Store(false)
}

// WantsRestart reports whether QuitRestart (rather than Quit) ended the
// run loop.
func (e *Engine) WantsRestart() bool {
	return e.restart.Load()
}

// KillSelected politely asks a WM_DELETE_WINDOW-aware client to close,
// else forces it via XKillClient.
func (e *Engine) KillSelected(c *Client) {
	if c == nil {
		return
	}
	if e.port.SupportsDelete(c.Win) {
		e.port.SendDelete(c.Win)
		return
	}
	e.port.GrabServer()
	e.port.KillClient(c.Win)
	e.port.UngrabServer()
}

// ToggleBar shows or hides m's bar, reclaiming or giving back the
// screen space it occupied.
func (e *Engine) ToggleBar(m *Monitor) {
	if m == nil {
		return
	}
	m.ShowBar = !m.ShowBar
	e.resizeMonitor(m, m.Screen)
	e.arrange(m)
	if m.BarWin != 0 {
		if m.ShowBar {
			e.port.MapWindow(m.BarWin)
		} else {
			e.port.UnmapWindow(m.BarWin)
		}
	}
}

// IncNMaster adjusts m's master-column client count by delta, floored
// at zero.
func (e *Engine) IncNMaster(m *Monitor, delta int) {
	if m == nil {
		return
	}
	m.NMaster = max(m.NMaster+delta, 0)
	m.storeTag(m.ViewTag)
	e.arrange(m)
}

// SetMFact adjusts m's master-column fraction by delta, clamped to
// [0.1, 0.9].
func (e *Engine) SetMFact(m *Monitor, delta float64) {
	if m == nil {
		return
	}
	f := m.MFact + delta
	if f < 0.1 {
		f = 0.1
	} else if f > 0.9 {
		f = 0.9
	}
	m.MFact = f
	m.storeTag(m.ViewTag)
	e.arrange(m)
}

// SetLayout implements layout-cycling companion to
// setlayout: installs lt (or the next layout in Layouts, if lt is nil)
// as the monitor's active layout and remembers it for the current tag.
func (e *Engine) SetLayout(m *Monitor, lt *Layout) {
	if m == nil {
		return
	}
	if lt == nil {
		idx := (layoutIndex(m.Lt) + 1) % len(Layouts)
		lt = Layouts[idx]
	}
	m.Lt = lt
	m.storeTag(m.ViewTag)
	e.arrange(m)
}
