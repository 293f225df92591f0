package wm

// Layout is the immutable record of a bar symbol plus the arrange
// function for that layout. The set of layouts is closed: Floating,
// Tile, Monocle, Split.
type Layout struct {
	Symbol  string
	Arrange func(*Monitor)
}

// Built-in layout instances. Index into Layouts is the layout_id stored
// in a monitor's per-tag layout memory. Floating has no arrange function:
// every client under it is repositioned to its remembered free quartet
// by Engine.arrange before Lt.Arrange would run.
var (
	LayoutFloating = Layout{Symbol: "><>", Arrange: nil}
	LayoutTile     = Layout{Symbol: "[]=", Arrange: arrangeTile}
	LayoutMonocle  = Layout{Symbol: "[M]", Arrange: arrangeMonocle}
	LayoutSplit    = Layout{Symbol: "==]", Arrange: arrangeSplit}
)

// Layouts is the closed, ordered set of layouts; config.go's per-tag
// startup table indexes into this by position.
var Layouts = []*Layout{&LayoutFloating, &LayoutTile, &LayoutMonocle, &LayoutSplit}

// arrange shows/hides clients for the current tag set, resizes every
// individually-floating client (or every client at all, if the active
// layout itself is floating), runs the layout function, then restacks.
func (e *Engine) arrange(m *Monitor) {
	if m == nil {
		return
	}
	e.showHide(m)

	wholeMonFloating := m.Lt == &LayoutFloating
	for _, c := range m.Clients {
		if !c.Visible() || c.IsFullscreen {
			continue
		}
		if c.IsFree || wholeMonFloating {
			e.resize(c, c.Free, true)
		}
	}

	if m.Lt != nil && m.Lt.Arrange != nil {
		m.Lt.Arrange(m)
		for _, c := range tiledVisible(m) {
			e.resize(c, c.Rect, false)
		}
	}

	e.restack(m)
}

// ArrangeAll re-arranges every monitor; used after geometry changes that
// affect more than one monitor (output reconfiguration).
func (e *Engine) ArrangeAll() {
	for _, m := range e.Mons {
		e.arrange(m)
	}
}

// showHide maps visible clients and unmaps invisible ones, per the first
// step of "arrange".
func (e *Engine) showHide(m *Monitor) {
	for _, c := range m.Clients {
		if c.Visible() {
			e.port.MapWindow(c.Win)
		} else {
			e.port.UnmapWindow(c.Win)
		}
	}
}

// tiledVisible returns m's clients in client-list order that are visible
// and not floating/fullscreen — the population tile/split/monocle size.
func tiledVisible(m *Monitor) []*Client {
	out := make([]*Client, 0, len(m.Clients))
	for _, c := range m.Clients {
		if c.Visible() && !c.IsFree && !c.IsFullscreen {
			out = append(out, c)
		}
	}
	return out
}

// Zoom promotes the selected client to the master slot: a no-op unless
// the active layout has an arrange function and the selection isn't
// floating. If the selection is already the first tiled client, it
// zooms the next tiled client instead, so repeated zooms alternate the
// top two clients rather than being a no-op.
func (e *Engine) Zoom(m *Monitor) {
	if m == nil {
		m = e.SelMon
	}
	c := m.Sel
	if c == nil || m.Lt == nil || m.Lt.Arrange == nil || c.IsFree {
		return
	}
	tiled := tiledVisible(m)
	if len(tiled) == 0 {
		return
	}
	if c == tiled[0] {
		if len(tiled) < 2 {
			return
		}
		c = tiled[1]
	}
	e.pop(m, c)
}

// pop detaches c and reattaches it at the client-list head (the master
// slot under tile/split), focuses it, and re-arranges.
func (e *Engine) pop(m *Monitor, c *Client) {
	m.detachClient(c)
	m.attachClient(c)
	e.Focus(m, c)
	e.arrange(m)
}
