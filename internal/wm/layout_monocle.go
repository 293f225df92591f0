package wm

import "fmt"

// arrangeMonocle stacks every tiled, visible client to fill the usable
// rectangle minus borders; the layout symbol shows the client count.
func arrangeMonocle(m *Monitor) {
	cs := tiledVisible(m)
	m.LtSymbol = fmt.Sprintf("[%d]", len(cs))
	for _, c := range cs {
		bw := c.BW
		c.Rect = Rect{m.Win.X, m.Win.Y, m.Win.W - 2*bw, m.Win.H - 2*bw}
	}
}
