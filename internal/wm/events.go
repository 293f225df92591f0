package wm

// Dispatch is the fixed event-dispatch table: one branch
// per EventKind, each delegating straight to the engine operation that
// owns the behavior. Run (lifecycle.go) calls this in a loop fed by
// Port.NextEvent; gestures.go re-enters it for the handful of event
// kinds that must keep advancing during a drag.
func (e *Engine) Dispatch(ev XEvent) {
	switch ev.Kind {
	case EvMapRequest:
		e.onMapRequest(ev)
	case EvUnmapNotify:
		e.onUnmapNotify(ev)
	case EvDestroyNotify:
		e.onDestroyNotify(ev)
	case EvConfigureRequest:
		e.onConfigureRequest(ev)
	case EvConfigureNotify:
		e.onConfigureNotify(ev)
	case EvPropertyNotify:
		e.onPropertyNotify(ev)
	case EvClientMessage:
		e.onClientMessage(ev)
	case EvEnterNotify:
		e.onEnterNotify(ev)
	case EvFocusIn:
		e.onFocusIn(ev)
	case EvExpose:
		e.onExpose(ev)
	case EvButtonPress:
		e.onButtonPress(ev)
	case EvKeyPress:
		e.handleKeyPress(ev)
	case EvMotionNotify:
		e.SideHandle(ev.RootX, ev.RootY, false)
	}
}

// onMapRequest is the entry point for a not-yet-managed window asking
// to be mapped: its X state is gathered and handed to Manage; a request
// from an already-managed window is ignored.
func (e *Engine) onMapRequest(ev XEvent) {
	if _, ok := e.ClientOf(ev.Win); ok {
		return
	}
	r, bw := e.port.GetGeometry(ev.Win)
	hints := e.port.GetSizeHints(ev.Win)
	class, instance, title := e.port.GetClassInstanceTitle(ev.Win)
	transient, hasParent := e.port.GetTransientFor(ev.Win)
	isDialog := e.port.IsDialog(ev.Win)
	urgent, neverFocus := e.port.GetWMHints(ev.Win)

	c := e.Manage(ManageParams{
		Win:       ev.Win,
		InitRect:  r,
		BW:        bw,
		Hints:     hints,
		Class:     class,
		Instance:  instance,
		Title:     title,
		IsDialog:  isDialog,
		Transient: transient,
		HasParent: hasParent,
	})
	if c == nil {
		return
	}
	c.NeverFocus = neverFocus
	if urgent {
		e.SetUrgent(c, true)
	}
}

// onUnmapNotify implements unmanage's companion teardown path: a
// client that unmaps itself (without being destroyed) is unmanaged and
// its window state restored to Withdrawn.
func (e *Engine) onUnmapNotify(ev XEvent) {
	c, ok := e.ClientOf(ev.Win)
	if !ok {
		return
	}
	e.Unmanage(c, false)
}

// onDestroyNotify unmanages a client whose window no longer exists; no
// window-state restoration is attempted since the window is gone.
func (e *Engine) onDestroyNotify(ev XEvent) {
	c, ok := e.ClientOf(ev.Win)
	if !ok {
		return
	}
	e.Unmanage(c, true)
}

// onConfigureRequest honors a managed floating client's own resize
// requests, passing the requested fields through resize (so size hints
// still apply); an unmanaged window is configured to the geometry it
// asked for, and a tiled client is re-sent its current geometry, since
// layout owns it.
func (e *Engine) onConfigureRequest(ev XEvent) {
	c, ok := e.ClientOf(ev.Win)
	if !ok {
		e.port.ConfigureWindow(ev.Win, Rect{ev.X, ev.Y, ev.Width, ev.Height}, ev.BW)
		return
	}
	if c.IsFree || c.Mon.Lt == nil || c.Mon.Lt.Arrange == nil {
		want := c.Rect
		if ev.ValueMask&(1<<0) != 0 {
			want.X = ev.X
		}
		if ev.ValueMask&(1<<1) != 0 {
			want.Y = ev.Y
		}
		if ev.ValueMask&(1<<2) != 0 {
			want.W = ev.Width
		}
		if ev.ValueMask&(1<<3) != 0 {
			want.H = ev.Height
		}
		c.Free = want
		e.resize(c, want, false)
	} else {
		e.port.ConfigureWindow(c.Win, c.Rect, c.BW)
	}
}

// onConfigureNotify reacts to root geometry changes (monitor
// reconfiguration) by re-reading outputs and re-arranging every monitor.
func (e *Engine) onConfigureNotify(ev XEvent) {
	if !ev.Root {
		return
	}
	e.UpdateGeometry()
}

// onPropertyNotify tracks the small set of properties the engine cares
// about post-manage: title changes and urgency hints.
func (e *Engine) onPropertyNotify(ev XEvent) {
	c, ok := e.ClientOf(ev.Win)
	if !ok {
		return
	}
	switch ev.Atom {
	case "WM_NAME", "_NET_WM_NAME":
		_, _, title := e.port.GetClassInstanceTitle(ev.Win)
		c.SetName(title)
		e.updateBarFeed(c.Mon)
	case "WM_HINTS":
		urgent, _ := e.port.GetWMHints(ev.Win)
		e.SetUrgent(c, urgent)
	}
}

// onClientMessage implements the EWMH subset this window manager
// supports: _NET_WM_STATE (fullscreen toggle) and _NET_ACTIVE_WINDOW
// (focus request from a pager/taskbar).
func (e *Engine) onClientMessage(ev XEvent) {
	c, ok := e.ClientOf(ev.Win)
	if !ok {
		return
	}
	switch ev.Atom {
	case "_NET_WM_STATE":
		const (
			netWMStateRemove = 0
			netWMStateAdd    = 1
			netWMStateToggle = 2
		)
		fs := e.port.AtomID("_NET_WM_STATE_FULLSCREEN")
		if ev.Data[1] != fs && ev.Data[2] != fs {
			return
		}
		action := ev.Data[0]
		switch action {
		case netWMStateAdd:
			e.SetFullscreen(c, true)
		case netWMStateRemove:
			e.SetFullscreen(c, false)
		case netWMStateToggle:
			e.ToggleFullscreen(c)
		}
	case "_NET_ACTIVE_WINDOW":
		e.View(c.Mon, c.Tags)
		e.Focus(c.Mon, c)
	}
}

// onEnterNotify implements focus-follows-mouse: entering a client's
// window (not during a gesture's grabbed pointer) focuses it.
func (e *Engine) onEnterNotify(ev XEvent) {
	if ev.Root {
		if m := e.monitorAt(ev.RootX, ev.RootY); m != nil {
			e.SelMon = m
		}
		return
	}
	c, ok := e.ClientOf(ev.Win)
	if !ok || !c.Visible() {
		return
	}
	if m := e.monitorAt(ev.RootX, ev.RootY); m != nil {
		e.SelMon = m
	}
	e.Focus(c.Mon, c)
}

// onFocusIn reasserts input focus on the selected client if focus was
// stolen by a window the engine didn't direct it to.
func (e *Engine) onFocusIn(ev XEvent) {
	m := e.SelMon
	if m == nil || m.Sel == nil {
		return
	}
	if ev.Win != m.Sel.Win {
		e.port.SetInputFocus(m.Sel.Win)
	}
}

// onExpose triggers a bar feed refresh so damaged bar windows redraw.
func (e *Engine) onExpose(ev XEvent) {
	for _, m := range e.Mons {
		if m.BarWin == ev.Win {
			e.updateBarFeed(m)
			return
		}
	}
}

// onButtonPress routes a button event to the click-region table; clicks
// on a managed client window also focus it first.
func (e *Engine) onButtonPress(ev XEvent) {
	if c, ok := e.ClientOf(ev.Win); ok {
		e.Focus(c.Mon, c)
		e.port.RaiseWindow(c.Win)
		e.handleClientButton(ev)
		return
	}
	if ev.Root {
		e.handleRootButton(ev)
	}
}
