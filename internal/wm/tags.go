package wm

// View switches m to the given tagset mask, keeping the previous mask in
// the other history slot so toggling back to it is a no-op detection
// away.
func (e *Engine) View(m *Monitor, mask uint32) {
	mask &= e.AllTags
	if mask == m.TagSet() {
		return
	}
	m.SelTags ^= 1
	if mask != 0 {
		m.TagSets[m.SelTags] = mask
	}
	if tag := singleTag(m.TagSet()); tag >= 0 {
		m.loadTag(tag)
	}
	e.arrange(m)
	e.Focus(m, nil)
}

// ToggleView XORs mask into the current tagset; the result must remain
// nonzero to take effect.
func (e *Engine) ToggleView(m *Monitor, mask uint32) {
	mask &= e.AllTags
	newMask := m.TagSet() ^ mask
	if newMask == 0 {
		return
	}
	m.TagSets[m.SelTags] = newMask
	if tag := singleTag(newMask); tag >= 0 {
		m.loadTag(tag)
	}
	e.arrange(m)
	e.Focus(m, nil)
}

// Tag sets the selected client's tag bits to mask.
func (e *Engine) Tag(m *Monitor, mask uint32) {
	mask &= e.AllTags
	if m.Sel == nil || mask == 0 {
		return
	}
	m.Sel.Tags = mask
	e.arrange(m)
	e.Focus(m, nil)
}

// ToggleTag XORs mask into the selected client's tag bits, refusing to
// leave it with no tags at all.
func (e *Engine) ToggleTag(m *Monitor, mask uint32) {
	mask &= e.AllTags
	if m.Sel == nil {
		return
	}
	newMask := m.Sel.Tags ^ mask
	if newMask == 0 {
		return
	}
	m.Sel.Tags = newMask
	e.arrange(m)
	e.Focus(m, nil)
}

// ViewNext cycles the view tag by dir, modulo the configured tag count
// rather than a literal 9, so it keeps working if NumTags is ever
// reconfigured away from 9.
func (e *Engine) ViewNext(m *Monitor, dir int) {
	n := e.cfg.NumTags
	next := ((m.ViewTag+dir)%n + n) % n
	e.View(m, uint32(1)<<uint(next))
}
