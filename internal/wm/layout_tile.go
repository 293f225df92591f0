package wm

// arrangeTile lays out two columns: an mfact-wide master column on the
// left, stack column on the right. The first min(n,nmaster) tiled,
// visible clients (in client-list order) stack vertically in the master
// column; the rest stack in the right column.
func arrangeTile(m *Monitor) {
	cs := tiledVisible(m)
	n := len(cs)
	m.LtSymbol = LayoutTile.Symbol
	if n == 0 {
		return
	}

	k := m.NMaster
	if k > n {
		k = n
	}

	mw := m.Win.W
	if n > m.NMaster {
		if m.NMaster > 0 {
			mw = int(float64(m.Win.W) * m.MFact)
		} else {
			mw = 0
		}
	}

	my, ty := 0, 0
	for i, c := range cs {
		bw := c.BW
		if i < k {
			h := (m.Win.H - my) / (k - i)
			c.Rect = Rect{m.Win.X, m.Win.Y + my, mw - 2*bw, h - 2*bw}
			my += h
		} else {
			h := (m.Win.H - ty) / (n - i)
			c.Rect = Rect{m.Win.X + mw, m.Win.Y + ty, m.Win.W - mw - 2*bw, h - 2*bw}
			ty += h
		}
	}
}
