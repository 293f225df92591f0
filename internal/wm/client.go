package wm

import "github.com/BurntSushi/xgb/xproto"

// WinID identifies an X window. It is the key used everywhere a client,
// its monitor's bar, or a foreign window needs to be named.
type WinID = xproto.Window

// Client is the per-managed-window state: the geometry quartet, size
// hints, flags, tag bitmask, and the monitor it belongs to.
type Client struct {
	Win  WinID
	Name string // display name, truncated to 256 runes by SetName

	// Geometry quartet.
	Rect      Rect // current
	Free      Rect // floating placement
	SavedFree Rect // saved-free, for untile->retile restoration
	Old       Rect // previous, for fullscreen restoration

	BW    int
	OldBW int

	Hints SizeHints

	IsFree       bool
	IsFullscreen bool
	IsUrgent     bool
	NeverFocus   bool
	OldState     bool

	Tags uint32

	Mon *Monitor
}

// Visible reports whether c should be mapped given its monitor's current
// tagset.
func (c *Client) Visible() bool {
	if c.Mon == nil {
		return false
	}
	return c.Tags&c.Mon.TagSet() != 0
}

// SetName truncates to the ≤256-char display-name limit.
func (c *Client) SetName(name string) {
	r := []rune(name)
	if len(r) > 256 {
		r = r[:256]
	}
	c.Name = string(r)
}

// SaveFullscreen stashes the pre-fullscreen geometry and flags so
// RestoreFullscreen can put them back when fullscreen is exited.
func (c *Client) SaveFullscreen() {
	c.OldState = c.IsFree
	c.OldBW = c.BW
	c.Old = c.Rect
}

// RestoreFullscreen undoes SaveFullscreen.
func (c *Client) RestoreFullscreen() {
	c.IsFree = c.OldState
	c.BW = c.OldBW
	c.Rect = c.Old
}

// ToggleFloating implements untile/retile: going floating restores the
// remembered free quartet from the last time this client was floating
// (SavedFree), so the rectangle survives a tile->float->tile->float
// round trip instead of picking up wherever the tiling layout last left
// it; going tiled remembers the current free quartet for next time.
func (e *Engine) ToggleFloating(c *Client) {
	if c == nil || c.IsFullscreen {
		return
	}
	if c.IsFree {
		c.SavedFree = c.Free
		c.IsFree = false
	} else {
		c.IsFree = true
		c.Free = c.SavedFree
	}
	e.arrange(c.Mon)
}
