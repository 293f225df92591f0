package wm

import (
	"strings"
	"sync/atomic"
)

// Rule is the optional static (class, instance, title) -> (tags, free,
// monitor) mapping, applied once at manage time.
type Rule struct {
	Class, Instance, Title string
	Tags                   uint32
	IsFree                 bool
	MonitorIdx             int // -1 = don't force a monitor
}

// Config is the subset of the compile-time configuration surface the
// engine itself needs; bindings, colors, and spawn commands stay with
// the caller.
type Config struct {
	NumTags        int
	BorderWidth    int
	BarHeight      int
	Rules          []Rule
	StartupLayouts []TagLayout // per tag, length NumTags
	RespectHints   bool
	EdgeScrollPx   int
}

// Engine owns the client/monitor/tag graph and is the sole mutator of it.
// It never talks to X directly; every side effect goes through Port.
type Engine struct {
	cfg  Config
	port Port

	Mons   []*Monitor
	SelMon *Monitor

	AllTags uint32

	byWindow map[WinID]*Client

	// running/restart are set from the signal-handling goroutine and
	// polled by Run's loop after every event, per the "signals set
	// atomic flags" discipline.
	running atomic.Bool
	restart atomic.Bool

	barSink    BarSink
	statusText string

	bindings *Bindings
	root     WinID
}

// NewEngine constructs an Engine with no monitors attached yet; Setup
// discovers the outputs (through UpdateGeometry) before Scan runs.
func NewEngine(cfg Config, port Port) *Engine {
	if cfg.NumTags <= 0 || cfg.NumTags > 31 {
		panic("wm: tag count must be in [1,31]")
	}
	e := &Engine{
		cfg:      cfg,
		port:     port,
		byWindow: make(map[WinID]*Client),
		AllTags:  uint32(1)<<uint(cfg.NumTags) - 1,
	}
	e.running.Store(true)
	return e
}

// ClientOf looks up the Client for a window handle; there is exactly
// one Client per managed window.
func (e *Engine) ClientOf(win WinID) (*Client, bool) {
	c, ok := e.byWindow[win]
	return c, ok
}

func matchesRule(r Rule, class, instance, title string) bool {
	if r.Class != "" && !strings.Contains(class, r.Class) {
		return false
	}
	if r.Instance != "" && !strings.Contains(instance, r.Instance) {
		return false
	}
	if r.Title != "" && !strings.Contains(title, r.Title) {
		return false
	}
	return r.Class != "" || r.Instance != "" || r.Title != ""
}

// applyRules matches a to-be-managed window's class/instance/title
// against the configured rule table, returning the first match's
// tags/free/monitor (monitor index -1 means no forced monitor).
func (e *Engine) applyRules(class, instance, title string) (tags uint32, free bool, monIdx int) {
	monIdx = -1
	for _, r := range e.cfg.Rules {
		if matchesRule(r, class, instance, title) {
			tags = r.Tags
			free = r.IsFree
			if r.MonitorIdx >= 0 {
				monIdx = r.MonitorIdx
			}
			return
		}
	}
	return 0, false, -1
}

// monitorAt returns the monitor whose screen rect contains (x,y), or
// SelMon if none does.
func (e *Engine) monitorAt(x, y int) *Monitor {
	for _, m := range e.Mons {
		if x >= m.Screen.X && x < m.Screen.X+m.Screen.W &&
			y >= m.Screen.Y && y < m.Screen.Y+m.Screen.H {
			return m
		}
	}
	return e.SelMon
}

// EdgeScrollPx returns the configured edge-scroll step, for callers
// building the default edge-action table around ScrollDesktop.
func (e *Engine) EdgeScrollPx() int {
	return e.cfg.EdgeScrollPx
}

// monitorByIndex returns the monitor at idx, or nil if out of range.
func (e *Engine) monitorByIndex(idx int) *Monitor {
	if idx < 0 || idx >= len(e.Mons) {
		return nil
	}
	return e.Mons[idx]
}
