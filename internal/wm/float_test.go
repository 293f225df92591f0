package wm

import "testing"

// Scenario 3 (toggle_free): going floating restores the remembered free
// quartet; going back to tiled remembers the current one for next time.
func TestToggleFloatingRemembersFreeRect(t *testing.T) {
	e, _, m := newTestEngine(9)
	c := &Client{Win: 1, Mon: m, Tags: 1, BW: 1, Rect: Rect{0, 14, 500, 500}}
	c.SavedFree = Rect{100, 100, 400, 300}
	m.Clients = append(m.Clients, c)
	m.Focus = append(m.Focus, c)
	m.Sel = c

	e.ToggleFloating(c)
	if !c.IsFree {
		t.Fatalf("expected client floating after toggle")
	}
	if c.Rect != c.SavedFree {
		t.Errorf("expected floating rect restored to remembered free quartet %+v, got %+v", c.SavedFree, c.Rect)
	}

	c.Free = Rect{200, 200, 300, 250} // simulate a move/resize while floating
	e.ToggleFloating(c)
	if c.IsFree {
		t.Errorf("expected client tiled after second toggle")
	}
	if c.SavedFree != (Rect{200, 200, 300, 250}) {
		t.Errorf("expected last free quartet remembered, got %+v", c.SavedFree)
	}

	e.ToggleFloating(c)
	if c.Rect != (Rect{200, 200, 300, 250}) {
		t.Errorf("expected third toggle to restore the just-remembered quartet, got %+v", c.Rect)
	}
}

func TestToggleFloatingNoOpOnFullscreen(t *testing.T) {
	e, _, m := newTestEngine(9)
	c := &Client{Win: 1, Mon: m, Tags: 1, IsFullscreen: true, IsFree: true, Rect: m.Screen}
	m.Clients = append(m.Clients, c)
	m.Focus = append(m.Focus, c)
	m.Sel = c

	e.ToggleFloating(c)
	if !c.IsFullscreen || c.Rect != m.Screen {
		t.Errorf("expected fullscreen client untouched by ToggleFloating")
	}
}
