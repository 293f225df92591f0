package xconn

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/rootwm/xwm/internal/wm"
)

// ConfigureWindow applies geometry and border width in one request,
// mirroring dwm's resizeclient: X/Y/Width/Height/BorderWidth are all
// always present in the value list so clients never see a partial
// update mid-resize.
func (c *Conn) ConfigureWindow(win wm.WinID, r wm.Rect, bw int) {
	xproto.ConfigureWindow(c.conn, win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|
			xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|
			xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(r.X), uint32(r.Y), uint32(r.W), uint32(r.H), uint32(bw)},
	)
}

func (c *Conn) MapWindow(win wm.WinID)   { xproto.MapWindow(c.conn, win) }
func (c *Conn) UnmapWindow(win wm.WinID) { xproto.UnmapWindow(c.conn, win) }
func (c *Conn) RaiseWindow(win wm.WinID) {
	xproto.ConfigureWindow(c.conn, win, xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
}

// RestackBelow stacks win directly below sibling, used by restack() to
// lay out the tiled stack in focus order immediately under the bar.
func (c *Conn) RestackBelow(win, sibling wm.WinID) {
	xproto.ConfigureWindow(c.conn, win,
		xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
		[]uint32{uint32(sibling), xproto.StackModeBelow},
	)
}

// EnterNotifyDrain discards any EnterNotify events already queued after
// a restack, so the spurious focus-follows-mouse Enter events the
// restack's own window movement generates don't get dispatched as real
// pointer-entered-a-window events. Anything else pulled off the wire
// along the way is stashed in c.pending for NextEvent to return first.
func (c *Conn) EnterNotifyDrain() {
	c.conn.Sync()
	var stash []xgb.Event
	for {
		ev, _ := c.conn.PollForEvent()
		if ev == nil {
			break
		}
		if _, ok := ev.(xproto.EnterNotifyEvent); ok {
			continue
		}
		stash = append(stash, ev)
	}
	if len(stash) > 0 {
		c.mu.Lock()
		c.pending = append(c.pending, stash...)
		c.mu.Unlock()
	}
}
