package wm

// arrangeSplit is the same column partition as tile, transposed: a top
// row of height mfact*wh for masters, a bottom row for the rest.
func arrangeSplit(m *Monitor) {
	cs := tiledVisible(m)
	n := len(cs)
	m.LtSymbol = LayoutSplit.Symbol
	if n == 0 {
		return
	}

	k := m.NMaster
	if k > n {
		k = n
	}

	mh := m.Win.H
	if n > m.NMaster {
		if m.NMaster > 0 {
			mh = int(float64(m.Win.H) * m.MFact)
		} else {
			mh = 0
		}
	}

	mx, sx := 0, 0
	for i, c := range cs {
		bw := c.BW
		if i < k {
			w := (m.Win.W - mx) / (k - i)
			c.Rect = Rect{m.Win.X + mx, m.Win.Y, w - 2*bw, mh - 2*bw}
			mx += w
		} else {
			w := (m.Win.W - sx) / (n - i)
			c.Rect = Rect{m.Win.X + sx, m.Win.Y + mh, w - 2*bw, m.Win.H - mh - 2*bw}
			sx += w
		}
	}
}
