package wm

import "testing"

func TestFullscreenEnterAndExit(t *testing.T) {
	e, _, m := newTestEngine(9)
	c := &Client{Win: 1, Mon: m, Tags: 1, BW: 1, Rect: Rect{100, 100, 400, 300}}
	m.Clients = append(m.Clients, c)
	m.Focus = append(m.Focus, c)
	m.Sel = c
	e.arrange(m)
	preRect := c.Rect
	preBW := c.BW

	e.SetFullscreen(c, true)

	if !c.IsFullscreen || !c.IsFree || c.BW != 0 {
		t.Fatalf("expected fullscreen+free+bw0, got fullscreen=%v free=%v bw=%d", c.IsFullscreen, c.IsFree, c.BW)
	}
	if c.Rect != m.Screen {
		t.Errorf("fullscreen rect = %+v, want monitor screen %+v", c.Rect, m.Screen)
	}

	e.SetFullscreen(c, false)
	if c.IsFullscreen {
		t.Errorf("expected fullscreen cleared")
	}
	if c.Rect != preRect || c.BW != preBW {
		t.Errorf("restore mismatch: rect=%+v (want %+v) bw=%d (want %d)", c.Rect, preRect, c.BW, preBW)
	}
}
