package xconn

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/rootwm/xwm/internal/wm"
)

// QueryTree enumerates the root window's already-mapped, non-override-
// redirect children, for Engine.Scan's startup pass over pre-existing
// windows.
func (c *Conn) QueryTree() []wm.WinID {
	tree, err := xproto.QueryTree(c.conn, c.root).Reply()
	if err != nil || tree == nil {
		return nil
	}

	var out []wm.WinID
	for _, win := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(c.conn, win).Reply()
		if err != nil || attrs == nil {
			continue
		}
		if attrs.OverrideRedirect || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		out = append(out, win)
	}
	return out
}
