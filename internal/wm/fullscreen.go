package wm

// SetFullscreen flips c's fullscreen state. Entering saves the current
// (is_free, bw, x, y, w, h) quartet, sets is_free, zeroes the border,
// resizes to the monitor rectangle, and raises. Exiting restores the
// saved values and re-arranges the monitor.
func (e *Engine) SetFullscreen(c *Client, fullscreen bool) {
	if fullscreen == c.IsFullscreen {
		return
	}
	if fullscreen {
		c.SaveFullscreen()
		c.IsFullscreen = true
		c.IsFree = true
		c.BW = 0
		e.resizeClient(c, c.Mon.Screen)
		e.port.RaiseWindow(c.Win)
	} else {
		c.IsFullscreen = false
		c.RestoreFullscreen()
		e.arrange(c.Mon)
	}
}

// ToggleFullscreen flips c's fullscreen state.
func (e *Engine) ToggleFullscreen(c *Client) {
	e.SetFullscreen(c, !c.IsFullscreen)
}
