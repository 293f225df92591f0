package main

import (
	"github.com/rootwm/xwm/internal/wm"
)

// Compile-time configuration surface, expressed as literal Go data.
// Keybinding/button/edge actions are Go function values, so they live
// here rather than in the optional override file rcfile.go loads at
// startup.

const (
	numTags     = 9
	borderWidth = 1
	barHeight   = 18
	modKey      = modMod1 // Alt; set to modMod4 for the Super/Windows key
)

// Modifier masks, mirroring X.h's Mod1Mask..Mod4Mask so config.go never
// needs to import the transport package directly.
const (
	modShift   = 1 << 0
	modControl = 1 << 2
	modMod1    = 1 << 3
	modMod4    = 1 << 6
)

// Minimal X11 keysym constants used by the default bindings below
// (from X11/keysymdef.h); spelled out rather than imported since the
// root package has no X transport dependency of its own.
const (
	keyReturn = 0xff0d
	keyQ      = 0x0071
	keyC      = 0x0063
	keyJ      = 0x006a
	keyK      = 0x006b
	keyH      = 0x0068
	keyL      = 0x006c
	keySpace  = 0x0020
	keyB      = 0x0062
	keyComma  = 0x002c
	keyPeriod = 0x002e
	keyTab    = 0xff09
	keyR      = 0x0072
)

func tagKey(n int) uint32 { return uint32(0x0030 + n) } // "1".."9"

func viewTag(n int) func(e *wm.Engine, arg any) {
	return func(e *wm.Engine, arg any) { e.View(e.SelMon, 1<<uint(n)) }
}

func toggleViewTag(n int) func(e *wm.Engine, arg any) {
	return func(e *wm.Engine, arg any) { e.ToggleView(e.SelMon, 1<<uint(n)) }
}

func tagClientTo(n int) func(e *wm.Engine, arg any) {
	return func(e *wm.Engine, arg any) { e.Tag(e.SelMon, 1<<uint(n)) }
}

func toggleTagClientTo(n int) func(e *wm.Engine, arg any) {
	return func(e *wm.Engine, arg any) { e.ToggleTag(e.SelMon, 1<<uint(n)) }
}

// rules is the static (class, instance, title) -> (tags, free, monitor)
// table applied once per newly managed window. Empty string fields are
// wildcards. Overridable by rcfile.go.
var rules = []wm.Rule{
	{Class: "Gimp", IsFree: true, MonitorIdx: -1},
	{Class: "Firefox", Tags: 1 << 8, MonitorIdx: -1},
}

// startupLayouts is the per-tag remembered (layout, mfact, nmaster)
// table, indexed by tag. Overridable by rcfile.go.
var startupLayouts = func() []wm.TagLayout {
	tl := make([]wm.TagLayout, numTags)
	for i := range tl {
		tl[i] = wm.TagLayout{LayoutIdx: 1, MFact: 0.55, NMaster: 1} // LayoutTile
	}
	return tl
}()

func defaultEngineConfig() wm.Config {
	return wm.Config{
		NumTags:        numTags,
		BorderWidth:    borderWidth,
		BarHeight:      barHeight,
		Rules:          rules,
		StartupLayouts: startupLayouts,
		RespectHints:   false,
		EdgeScrollPx:   50,
	}
}

// keyBindings is the compile-time key table.
func keyBindings() []wm.KeyBinding {
	var kb []wm.KeyBinding
	for i := 0; i < numTags; i++ {
		n := i
		kb = append(kb,
			wm.KeyBinding{Mod: modKey, Keysym: tagKey(n + 1), Action: viewTag(n)},
			wm.KeyBinding{Mod: modKey | modControl, Keysym: tagKey(n + 1), Action: toggleViewTag(n)},
			wm.KeyBinding{Mod: modKey | modShift, Keysym: tagKey(n + 1), Action: tagClientTo(n)},
			wm.KeyBinding{Mod: modKey | modControl | modShift, Keysym: tagKey(n + 1), Action: toggleTagClientTo(n)},
		)
	}
	return append(kb,
		wm.KeyBinding{Mod: modKey, Keysym: keyReturn, Action: func(e *wm.Engine, arg any) {
			wm.Spawn(terminalCmd)
		}},
		wm.KeyBinding{Mod: modKey, Keysym: keyC, Action: func(e *wm.Engine, arg any) { e.Quit() }},
		wm.KeyBinding{Mod: modKey | modShift, Keysym: keyQ, Action: func(e *wm.Engine, arg any) {
			e.KillSelected(e.SelMon.Sel)
		}},
		wm.KeyBinding{Mod: modKey, Keysym: keyJ, Action: func(e *wm.Engine, arg any) { e.FocusStack(e.SelMon, 1, false) }},
		wm.KeyBinding{Mod: modKey, Keysym: keyK, Action: func(e *wm.Engine, arg any) { e.FocusStack(e.SelMon, -1, false) }},
		wm.KeyBinding{Mod: modKey, Keysym: keyH, Action: func(e *wm.Engine, arg any) { e.SetMFact(e.SelMon, -0.05) }},
		wm.KeyBinding{Mod: modKey, Keysym: keyL, Action: func(e *wm.Engine, arg any) { e.SetMFact(e.SelMon, 0.05) }},
		wm.KeyBinding{Mod: modKey, Keysym: keySpace, Action: func(e *wm.Engine, arg any) { e.SetLayout(e.SelMon, nil) }},
		wm.KeyBinding{Mod: modKey, Keysym: keyB, Action: func(e *wm.Engine, arg any) { e.ToggleBar(e.SelMon) }},
		wm.KeyBinding{Mod: modKey | modShift, Keysym: keySpace, Action: func(e *wm.Engine, arg any) {
			e.ToggleFloating(e.SelMon.Sel)
		}},
		wm.KeyBinding{Mod: modKey, Keysym: keyPeriod, Action: func(e *wm.Engine, arg any) { e.IncNMaster(e.SelMon, 1) }},
		wm.KeyBinding{Mod: modKey, Keysym: keyComma, Action: func(e *wm.Engine, arg any) { e.IncNMaster(e.SelMon, -1) }},
		wm.KeyBinding{Mod: modKey, Keysym: keyR, Action: func(e *wm.Engine, arg any) { e.Zoom(e.SelMon) }},
		wm.KeyBinding{Mod: modKey | modControl, Keysym: keyReturn, Action: func(e *wm.Engine, arg any) { e.QuitRestart() }},
	)
}

// buttonBindings is the compile-time click table. All gesture-triggering
// clicks require modKey so plain clicks reach the application underneath.
func buttonBindings() []wm.ButtonBinding {
	return []wm.ButtonBinding{
		{Region: wm.ClickClientWin, Mod: modKey, Button: 1, Action: func(e *wm.Engine, arg any) {
			if c := e.ClientClick(true); c != nil {
				e.MoveMouse(c)
			}
		}},
		{Region: wm.ClickClientWin, Mod: modKey, Button: 3, Action: func(e *wm.Engine, arg any) {
			if c := e.ClientClick(true); c != nil {
				e.ResizeMouse(c)
			}
		}},
		{Region: wm.ClickTagBar, Mod: 0, Button: 4, Action: func(e *wm.Engine, arg any) { e.ViewNext(e.SelMon, 1) }},
		{Region: wm.ClickTagBar, Mod: 0, Button: 5, Action: func(e *wm.Engine, arg any) { e.ViewNext(e.SelMon, -1) }},
		{Region: wm.ClickLayoutSymbol, Mod: 0, Button: 3, Action: func(e *wm.Engine, arg any) { e.Zoom(e.SelMon) }},
		{Region: wm.ClickClientWin, Mod: modKey | modControl, Button: 2, Action: func(e *wm.Engine, arg any) {
			e.Zoom(e.SelMon)
		}},
	}
}

// edgeActions is the default per-side edge-scroll table.
// Only effective under the floating layout on a single-monitor setup,
// per Engine.ScrollDesktop's own guard.
func edgeActions(e *wm.Engine) []wm.EdgeAction {
	px := e.EdgeScrollPx()
	return []wm.EdgeAction{
		{Side: wm.EdgeLeft, Action: func(e *wm.Engine, arg any) { e.ScrollDesktop(px, 0, true) }},
		{Side: wm.EdgeRight, Action: func(e *wm.Engine, arg any) { e.ScrollDesktop(-px, 0, true) }},
		{Side: wm.EdgeUp, Action: func(e *wm.Engine, arg any) { e.ScrollDesktop(0, px, true) }},
		{Side: wm.EdgeDown, Action: func(e *wm.Engine, arg any) { e.ScrollDesktop(0, -px, true) }},
	}
}

var terminalCmd = []string{"st"}
