package wm

import "testing"

// _NET_WM_STATE client messages that don't name the fullscreen atom in
// either data word must not toggle fullscreen (spec §6 "data.l[1..2]
// may contain the fullscreen atom").
func TestClientMessageIgnoresNonFullscreenState(t *testing.T) {
	e, _ := newTestEngineFull(9)
	c := manageWindow(e, 10)

	e.Dispatch(XEvent{
		Kind: EvClientMessage, Win: c.Win, Atom: "_NET_WM_STATE",
		Data: [5]uint32{1, 0xdead, 0xbeef, 0, 0},
	})

	if c.IsFullscreen {
		t.Errorf("expected fullscreen untouched by a _NET_WM_STATE message naming an unrelated atom")
	}
}

func TestClientMessageTogglesFullscreenOnMatchingAtom(t *testing.T) {
	e, _ := newTestEngineFull(9)
	c := manageWindow(e, 10)

	e.Dispatch(XEvent{
		Kind: EvClientMessage, Win: c.Win, Atom: "_NET_WM_STATE",
		Data: [5]uint32{1, fakeFullscreenAtom, 0, 0, 0},
	})
	if !c.IsFullscreen {
		t.Fatalf("expected add-fullscreen to set IsFullscreen")
	}

	e.Dispatch(XEvent{
		Kind: EvClientMessage, Win: c.Win, Atom: "_NET_WM_STATE",
		Data: [5]uint32{0, 0, fakeFullscreenAtom, 0, 0},
	})
	if c.IsFullscreen {
		t.Errorf("expected remove-fullscreen (atom in data[2]) to clear IsFullscreen")
	}
}
