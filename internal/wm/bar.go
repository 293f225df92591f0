package wm

// BarFeed is the value fed to the (externally drawn) status bar for one
// monitor: tag occupancy, the layout symbol, the selected client's
// title, urgency, and the shared status text.
type BarFeed struct {
	MonitorIndex int
	TagOccupied  uint32 // bitmask of tags with at least one client
	TagUrgent    uint32 // bitmask of tags with at least one urgent client
	TagSelected  uint32 // the monitor's current tagset
	LayoutSymbol string
	Title        string
	IsSelected   bool // whether this is the focused monitor
	StatusText   string
}

// BarSink receives BarFeed updates; a separately drawn status bar
// implements this to repaint itself.
type BarSink interface {
	UpdateBar(feed BarFeed)
}

// SetBarSink installs the drawing helper's callback.
func (e *Engine) SetBarSink(sink BarSink) {
	e.barSink = sink
}

// SetStatusText updates the shared status-text string fed to every
// monitor's bar.
func (e *Engine) SetStatusText(text string) {
	e.statusText = text
	for _, m := range e.Mons {
		e.updateBarFeed(m)
	}
}

func (e *Engine) updateBarFeed(m *Monitor) {
	if e.barSink == nil || m == nil {
		return
	}
	var occ, urg uint32
	for _, c := range m.Clients {
		occ |= c.Tags
		if c.IsUrgent {
			urg |= c.Tags
		}
	}
	title := ""
	if m.Sel != nil {
		title = m.Sel.Name
	}
	e.barSink.UpdateBar(BarFeed{
		MonitorIndex: m.idx,
		TagOccupied:  occ,
		TagUrgent:    urg,
		TagSelected:  m.TagSet(),
		LayoutSymbol: m.LtSymbol,
		Title:        title,
		IsSelected:   m == e.SelMon,
		StatusText:   e.statusText,
	})
}
