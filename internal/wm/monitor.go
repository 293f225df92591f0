package wm

// TagLayout is a tag's remembered (layout, mfact, nmaster) triple.
type TagLayout struct {
	LayoutIdx int
	MFact     float64
	NMaster   int
}

// Monitor is the per-output state: screen/usable rectangles, bar
// window, per-tag tagsets and layout memory, client list, and focus
// stack.
type Monitor struct {
	idx int

	Screen Rect // (mx,my,mw,mh)
	Win    Rect // usable rect (wx,wy,ww,wh), after subtracting the bar

	BarWin   WinID
	BarY     int
	TopBar   bool
	ShowBar  bool

	TagSets [2]uint32
	SelTags int
	ViewTag int

	TagLayouts []TagLayout // indexed by tag

	MFact    float64
	NMaster  int
	Lt       *Layout
	LtSymbol string

	Clients []*Client // insertion order, newest first
	Focus   []*Client // most-recently-focused first
	Sel     *Client
}

// TagSet returns the currently visible tagset bitmask.
func (m *Monitor) TagSet() uint32 {
	return m.TagSets[m.SelTags]
}

// loadTag mirrors a single tag's remembered (layout, mfact, nmaster)
// into the monitor's active fields, used when View/ToggleView leaves
// exactly one tag selected.
func (m *Monitor) loadTag(tag int) {
	if tag < 0 || tag >= len(m.TagLayouts) {
		return
	}
	tl := m.TagLayouts[tag]
	m.MFact = tl.MFact
	m.NMaster = tl.NMaster
	if tl.LayoutIdx >= 0 && tl.LayoutIdx < len(Layouts) {
		m.Lt = Layouts[tl.LayoutIdx]
	}
	m.ViewTag = tag
}

// storeTag writes the monitor's active fields back into a single tag's
// remembered layout; used by setmfact/incnmaster/setlayout.
func (m *Monitor) storeTag(tag int) {
	if tag < 0 || tag >= len(m.TagLayouts) {
		return
	}
	m.TagLayouts[tag] = TagLayout{
		LayoutIdx: layoutIndex(m.Lt),
		MFact:     m.MFact,
		NMaster:   m.NMaster,
	}
}

func layoutIndex(l *Layout) int {
	for i, cand := range Layouts {
		if cand == l {
			return i
		}
	}
	return 0
}

// singleTag returns the tag index if mask selects exactly one tag, else -1.
func singleTag(mask uint32) int {
	if mask == 0 || mask&(mask-1) != 0 {
		return -1
	}
	for i := 0; i < 32; i++ {
		if mask&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}

// attachClient inserts c at the head of m's client list.
func (m *Monitor) attachClient(c *Client) {
	m.Clients = append([]*Client{c}, m.Clients...)
}

// detachClient removes c from m's client list.
func (m *Monitor) detachClient(c *Client) {
	for i, cc := range m.Clients {
		if cc == c {
			m.Clients = append(m.Clients[:i], m.Clients[i+1:]...)
			return
		}
	}
}

// attachFocus inserts c at the head of m's focus stack.
func (m *Monitor) attachFocus(c *Client) {
	m.Focus = append([]*Client{c}, m.Focus...)
}

// detachFocus removes c from m's focus stack and clears Sel if it pointed
// at c, maintaining invariant 2.
func (m *Monitor) detachFocus(c *Client) {
	for i, cc := range m.Focus {
		if cc == c {
			m.Focus = append(m.Focus[:i], m.Focus[i+1:]...)
			break
		}
	}
	if m.Sel == c {
		m.Sel = nil
	}
}
