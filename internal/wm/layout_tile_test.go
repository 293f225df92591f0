package wm

import "testing"

func newTestMonitor(nmaster int, mfact float64) *Monitor {
	return &Monitor{
		Screen:  Rect{0, 0, 1920, 1080},
		Win:     Rect{0, 14, 1920, 1066},
		TagSets: [2]uint32{1, 1},
		NMaster: nmaster,
		MFact:   mfact,
		Lt:      &LayoutTile,
	}
}

func newTestClient(m *Monitor, win WinID, bw int) *Client {
	c := &Client{Win: win, Mon: m, Tags: 1, BW: bw}
	m.Clients = append(m.Clients, c)
	return c
}

func TestArrangeTileTwoClients(t *testing.T) {
	m := newTestMonitor(1, 0.55)
	w1 := newTestClient(m, 1, 1)
	w2 := newTestClient(m, 2, 1)

	arrangeTile(m)

	if got, want := w1.Rect, (Rect{0, 14, 1054, 1064}); got != want {
		t.Errorf("w1 rect = %+v, want %+v", got, want)
	}
	if got, want := w2.Rect, (Rect{1056, 14, 862, 1064}); got != want {
		t.Errorf("w2 rect = %+v, want %+v", got, want)
	}
}

func TestArrangeTileNMasterCoversAll(t *testing.T) {
	m := newTestMonitor(3, 0.55)
	newTestClient(m, 1, 0)
	newTestClient(m, 2, 0)

	arrangeTile(m)

	for _, c := range m.Clients {
		if c.Rect.W != m.Win.W {
			t.Errorf("client %d width = %d, want full usable width %d", c.Win, c.Rect.W, m.Win.W)
		}
	}
}

// P4: column heights sum to wh; column widths sum to ww.
func TestArrangeTileColumnSums(t *testing.T) {
	m := newTestMonitor(2, 0.6)
	for i := WinID(1); i <= 5; i++ {
		newTestClient(m, i, 0)
	}

	arrangeTile(m)

	cs := tiledVisible(m)
	k := m.NMaster
	var masterH, stackH int
	var masterW, stackW int
	for i, c := range cs {
		if i < k {
			masterH += c.Rect.H
			masterW = c.Rect.W
		} else {
			stackH += c.Rect.H
			stackW = c.Rect.W
		}
	}

	if masterH != m.Win.H {
		t.Errorf("master column heights sum to %d, want %d", masterH, m.Win.H)
	}
	if stackH != m.Win.H {
		t.Errorf("stack column heights sum to %d, want %d", stackH, m.Win.H)
	}
	if masterW+stackW != m.Win.W {
		t.Errorf("column widths sum to %d, want %d", masterW+stackW, m.Win.W)
	}
}

// P3: every visible tiled client's rectangle lies within the usable rect.
func TestArrangeTileWithinUsableRect(t *testing.T) {
	m := newTestMonitor(1, 0.5)
	for i := WinID(1); i <= 4; i++ {
		newTestClient(m, i, 1)
	}
	arrangeTile(m)

	for _, c := range tiledVisible(m) {
		r := c.Rect
		if r.X < m.Win.X || r.Y < m.Win.Y ||
			r.X+r.W+2*c.BW > m.Win.X+m.Win.W ||
			r.Y+r.H+2*c.BW > m.Win.Y+m.Win.H {
			t.Errorf("client %d rect %+v (bw=%d) escapes usable rect %+v", c.Win, r, c.BW, m.Win)
		}
	}
}
