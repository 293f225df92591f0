package wm

import "errors"

var errNoMoreEvents = errors.New("fakePort: no more queued events")

// fakePort is a no-op, call-recording Port used to exercise the engine's
// logic without a live X server.
type fakePort struct {
	configured []WinID
	mapped     map[WinID]bool
	focused    WinID
	active     WinID
	clientList []WinID

	nextEvents []XEvent // queued events for NextEvent to drain in tests
}

func newFakePort() *fakePort {
	return &fakePort{mapped: make(map[WinID]bool)}
}

func (p *fakePort) ConfigureWindow(win WinID, r Rect, bw int) { p.configured = append(p.configured, win) }
func (p *fakePort) MapWindow(win WinID)                       { p.mapped[win] = true }
func (p *fakePort) UnmapWindow(win WinID)                     { p.mapped[win] = false }
func (p *fakePort) RaiseWindow(win WinID)                     {}
func (p *fakePort) RestackBelow(win, sibling WinID)           {}
func (p *fakePort) EnterNotifyDrain()                         {}

func (p *fakePort) SetInputFocus(win WinID)             { p.focused = win }
func (p *fakePort) SetBorder(win WinID, focused bool)   {}
func (p *fakePort) GrabButtons(win WinID, focused bool) {}
func (p *fakePort) WarpPointer(win WinID, x, y int)     {}

func (p *fakePort) ResolveKeycodes(keysym uint32) []int        { return []int{int(keysym)} }
func (p *fakePort) CleanMask(mods uint32) uint32                { return mods }
func (p *fakePort) GrabKey(win WinID, mod uint32, keycode int)   {}
func (p *fakePort) GrabButton(win WinID, mod uint32, button int) {}
func (p *fakePort) UngrabAllBindings(win WinID)                  {}
func (p *fakePort) QueryPointer() (int, int, WinID)              { return 0, 0, 0 }
func (p *fakePort) GrabPointerMove() error                       { return nil }
func (p *fakePort) GrabPointerResize() error                     { return nil }
func (p *fakePort) UngrabPointer()                               {}
func (p *fakePort) GrabServer()                                  {}
func (p *fakePort) UngrabServer()                                {}

func (p *fakePort) GetGeometry(win WinID) (Rect, int)                 { return Rect{}, 0 }
func (p *fakePort) GetSizeHints(win WinID) SizeHints                  { return SizeHints{} }
func (p *fakePort) GetWMHints(win WinID) (bool, bool)                 { return false, false }
func (p *fakePort) GetTransientFor(win WinID) (WinID, bool)           { return 0, false }
func (p *fakePort) IsDialog(win WinID) bool                           { return false }
func (p *fakePort) GetClassInstanceTitle(win WinID) (string, string, string) {
	return "", "", ""
}
func (p *fakePort) SupportsDelete(win WinID) bool { return true }

func (p *fakePort) SendDelete(win WinID)         {}
func (p *fakePort) KillClient(win WinID)         {}
func (p *fakePort) SetWMStateNormal(win WinID)   {}
func (p *fakePort) SetWMStateWithdrawn(win WinID) {}
func (p *fakePort) SetActiveWindow(win WinID)    { p.active = win }
func (p *fakePort) SetClientList(wins []WinID)   { p.clientList = wins }
func (p *fakePort) SelectClientEvents(win WinID) {}

// fakeFullscreenAtom is the sentinel AtomID returns for
// "_NET_WM_STATE_FULLSCREEN"; tests simulating a _NET_WM_STATE
// ClientMessage put this value in ev.Data[1] (or [2]) to mean "this
// message names the fullscreen atom".
const fakeFullscreenAtom = 0xf5

func (p *fakePort) AtomID(name string) uint32 {
	if name == "_NET_WM_STATE_FULLSCREEN" {
		return fakeFullscreenAtom
	}
	return 0
}

func (p *fakePort) Outputs() []Rect { return []Rect{{0, 0, 1920, 1080}} }
func (p *fakePort) RootRect() Rect  { return Rect{0, 0, 1920, 1080} }
func (p *fakePort) Sync()           {}
func (p *fakePort) Close()          {}

func (p *fakePort) NextEvent() (XEvent, error) {
	if len(p.nextEvents) == 0 {
		return XEvent{}, errNoMoreEvents
	}
	ev := p.nextEvents[0]
	p.nextEvents = p.nextEvents[1:]
	return ev, nil
}

var _ Port = (*fakePort)(nil)
