package wm

// Port is the narrow X-transport interface the engine drives. The real
// implementation (package xconn) wraps github.com/BurntSushi/xgb and
// github.com/BurntSushi/xgbutil; tests in this package use fakePort so the
// client/monitor/layout/focus logic can be exercised without a live X
// server.
type Port interface {
	// Window geometry and mapping.
	ConfigureWindow(win WinID, r Rect, bw int)
	MapWindow(win WinID)
	UnmapWindow(win WinID)
	RaiseWindow(win WinID)
	RestackBelow(win, sibling WinID)
	EnterNotifyDrain()

	// Focus and input.
	SetInputFocus(win WinID)
	SetBorder(win WinID, focused bool)
	GrabButtons(win WinID, focused bool)
	WarpPointer(win WinID, x, y int)
	QueryPointer() (rootX, rootY int, win WinID)
	GrabPointerMove() error
	GrabPointerResize() error
	UngrabPointer()
	GrabServer()
	UngrabServer()

	// Bindings: resolve a keysym to the keycode(s) that currently produce
	// it, clean a modifier mask of lock/numlock bits, and grab a
	// key/button combo on win.
	ResolveKeycodes(keysym uint32) []int
	CleanMask(mods uint32) uint32
	GrabKey(win WinID, mod uint32, keycode int)
	GrabButton(win WinID, mod uint32, button int)
	UngrabAllBindings(win WinID)

	// Client introspection, populated at manage time.
	GetGeometry(win WinID) (Rect, int)
	GetSizeHints(win WinID) SizeHints
	GetWMHints(win WinID) (urgent bool, neverFocus bool)
	GetTransientFor(win WinID) (WinID, bool)
	IsDialog(win WinID) bool
	GetClassInstanceTitle(win WinID) (class, instance, title string)
	SupportsDelete(win WinID) bool

	// Protocol actions.
	SendDelete(win WinID)
	KillClient(win WinID)
	SetWMStateNormal(win WinID)
	SetWMStateWithdrawn(win WinID)
	SetActiveWindow(win WinID)
	SetClientList(wins []WinID)
	SelectClientEvents(win WinID)

	// AtomID resolves an X atom by name, e.g. "_NET_WM_STATE_FULLSCREEN",
	// so the engine can compare a _NET_WM_STATE ClientMessage's data
	// words against it without owning an atom cache of its own.
	AtomID(name string) uint32

	// Output discovery and misc.
	Outputs() []Rect
	RootRect() Rect
	Sync()
	Close()

	// NextEvent blocks for the next X event, translated into the engine's
	// tagged XEvent so the dispatch table in events.go never imports an
	// X-protocol package directly.
	NextEvent() (XEvent, error)
}

// EventKind names the X event types the fixed dispatch table is keyed
// on.
type EventKind int

const (
	EvMapRequest EventKind = iota
	EvUnmapNotify
	EvDestroyNotify
	EvConfigureRequest
	EvConfigureNotify
	EvPropertyNotify
	EvClientMessage
	EvEnterNotify
	EvFocusIn
	EvExpose
	EvButtonPress
	EvButtonRelease
	EvKeyPress
	EvMotionNotify
)

// XEvent is the tagged-variant event the engine dispatches on, a
// generalization of dwm's function-pointer dispatch table to a single
// struct that carries whichever fields its Kind needs.
type XEvent struct {
	Kind EventKind
	Win  WinID // the window the event is about
	Root bool  // true if Win is (or the event targets) the root window

	// Pointer/geometry fields, populated depending on Kind.
	X, Y             int
	RootX, RootY     int
	Width, Height    int
	BW               int
	ValueMask        uint32
	Button           int
	Keycode          int
	Modifiers        uint32
	OverrideRedirect bool

	// Property/client-message fields.
	Atom string
	Data [5]uint32
}
