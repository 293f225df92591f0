package wm

// ClickRegion names where a button binding applies: a tag-bar cell, the
// layout symbol, the status text, a client's title, its window body, or
// the root window.
type ClickRegion int

const (
	ClickTagBar ClickRegion = iota
	ClickLayoutSymbol
	ClickStatusText
	ClickWinTitle
	ClickClientWin
	ClickRootWin
)

// KeyBinding is one row of the compile-time key table: a modifier mask,
// a keysym, and the action to run. Action/Arg come from the caller's
// configuration; the engine only compiles the table to grabs and
// performs chord lookup.
type KeyBinding struct {
	Mod    uint32
	Keysym uint32
	Action func(e *Engine, arg any)
	Arg    any
}

// ButtonBinding is one row of the compile-time button table.
type ButtonBinding struct {
	Region  ClickRegion
	Mod     uint32
	Button  int
	Action  func(e *Engine, arg any)
	Arg     any
}

// EdgeSide names a screen edge for edge-scroll actions.
type EdgeSide int

const (
	EdgeLeft EdgeSide = iota
	EdgeRight
	EdgeUp
	EdgeDown
)

// EdgeAction is one row of the per-side edge-action table.
type EdgeAction struct {
	Side   EdgeSide
	Action func(e *Engine, arg any)
	Arg    any
}

type resolvedKey struct {
	mod     uint32
	keycode int
	binding KeyBinding
}

// Bindings holds the compiled key/button/edge tables. It is installed
// and compiled once, by SetBindings at setup; it is not recompiled when
// the NumLock modifier mapping changes later.
type Bindings struct {
	keys    []KeyBinding
	buttons []ButtonBinding
	edges   []EdgeAction

	resolved []resolvedKey
}

// SetBindings installs the compile-time tables and (re)grabs them on the
// root window.
func (e *Engine) SetBindings(keys []KeyBinding, buttons []ButtonBinding, edges []EdgeAction) {
	e.bindings = &Bindings{keys: keys, buttons: buttons, edges: edges}
	e.regrabKeys()
}

// regrabKeys re-derives the grab set from the declared tables. It runs
// only from SetBindings; nothing calls it again when num-lock detection
// changes.
func (e *Engine) regrabKeys() {
	b := e.bindings
	if b == nil {
		return
	}
	root := e.rootWin()
	e.port.UngrabAllBindings(root)

	b.resolved = b.resolved[:0]
	for _, kb := range b.keys {
		for _, kc := range e.port.ResolveKeycodes(kb.Keysym) {
			e.port.GrabKey(root, kb.Mod, kc)
			b.resolved = append(b.resolved, resolvedKey{mod: kb.Mod, keycode: kc, binding: kb})
		}
	}
	for _, bb := range b.buttons {
		if bb.Region == ClickRootWin {
			e.port.GrabButton(root, bb.Mod, bb.Button)
		}
	}
}

// handleKeyPress performs the chord lookup and invokes the bound
// action, if any.
func (e *Engine) handleKeyPress(ev XEvent) {
	if e.bindings == nil {
		return
	}
	mod := e.port.CleanMask(ev.Modifiers)
	for _, rk := range e.bindings.resolved {
		if rk.keycode == ev.Keycode && e.port.CleanMask(rk.mod) == mod {
			if rk.binding.Action != nil {
				rk.binding.Action(e, rk.binding.Arg)
			}
		}
	}
}

// handleRootButton dispatches a root-window button press to the bound
// action for ClickRootWin, used outside of click-to-act gestures.
func (e *Engine) handleRootButton(ev XEvent) {
	e.dispatchButton(ClickRootWin, ev.Button, ev.Modifiers)
}

// handleClientButton dispatches a button press on a managed client
// window to the bound action for ClickClientWin (e.g. modkey+drag to
// move/resize).
func (e *Engine) handleClientButton(ev XEvent) {
	e.dispatchButton(ClickClientWin, ev.Button, ev.Modifiers)
}

func (e *Engine) dispatchButton(region ClickRegion, button int, mods uint32) {
	if e.bindings == nil {
		return
	}
	mod := e.port.CleanMask(mods)
	for _, bb := range e.bindings.buttons {
		if bb.Region == region && bb.Button == button && e.port.CleanMask(bb.Mod) == mod {
			if bb.Action != nil {
				bb.Action(e, bb.Arg)
			}
		}
	}
}

// HandleBarClick lets a separately drawn status bar feed a click on one
// of its own subregions back into the bound button table.
func (e *Engine) HandleBarClick(m *Monitor, region ClickRegion, button int, mods uint32) {
	e.SelMon = m
	e.dispatchButton(region, button, mods)
}

func (e *Engine) rootWin() WinID {
	return e.root
}
