package wm

import "testing"

func newTestEngine(numTags int) (*Engine, *fakePort, *Monitor) {
	port := newFakePort()
	cfg := Config{NumTags: numTags, BorderWidth: 1, BarHeight: 14}
	cfg.StartupLayouts = make([]TagLayout, numTags)
	for i := range cfg.StartupLayouts {
		cfg.StartupLayouts[i] = TagLayout{LayoutIdx: 1, MFact: 0.55, NMaster: 1}
	}
	e := NewEngine(cfg, port)
	m := &Monitor{
		idx:        0,
		Screen:     Rect{0, 0, 1920, 1080},
		Win:        Rect{0, 14, 1920, 1066},
		TagSets:    [2]uint32{1, 1},
		TagLayouts: append([]TagLayout(nil), cfg.StartupLayouts...),
		Lt:         &LayoutTile,
		MFact:      0.55,
		NMaster:    1,
	}
	e.Mons = []*Monitor{m}
	e.SelMon = m
	return e, port, m
}

// P9: two successive view(mask) calls restore the original tagset only
// when the second explicitly targets the previous mask.
func TestViewToggleLaw(t *testing.T) {
	e, _, m := newTestEngine(9)
	original := m.TagSet()

	e.View(m, 1<<2)
	if m.TagSet() != 1<<2 {
		t.Fatalf("expected tagset 1<<2, got %b", m.TagSet())
	}

	// Viewing some unrelated third mask does NOT restore original.
	e.View(m, 1<<4)
	if m.TagSet() == original {
		t.Fatalf("tagset should not have returned to original after unrelated view")
	}

	// Explicitly targeting the previous mask does restore it.
	e.View(m, original)
	if m.TagSet() != original {
		t.Errorf("expected tagset restored to %b, got %b", original, m.TagSet())
	}
}

func TestViewNoopWhenSameMask(t *testing.T) {
	e, _, m := newTestEngine(9)
	before := m.SelTags
	e.View(m, m.TagSet())
	if m.SelTags != before {
		t.Errorf("view() with identical mask should not flip seltags")
	}
}

func TestToggleViewRequiresNonzero(t *testing.T) {
	e, _, m := newTestEngine(9)
	m.TagSets[m.SelTags] = 1 << 3
	e.ToggleView(m, 1<<3) // would zero out the tagset
	if m.TagSet() != 1<<3 {
		t.Errorf("toggle_view should not apply a change that zeroes the tagset")
	}
}

func TestViewNextWrapsModuloTagCount(t *testing.T) {
	e, _, m := newTestEngine(5)
	m.ViewTag = 4
	m.TagSets[m.SelTags] = 1 << 4
	e.ViewNext(m, 1)
	if m.ViewTag != 0 {
		t.Errorf("expected wrap to tag 0, got %d", m.ViewTag)
	}
}

// P10 is a compile-time check exercised by NewEngine's panic on an
// out-of-range tag count.
func TestNewEnginePanicsOnTooManyTags(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for NumTags > 31")
		}
	}()
	NewEngine(Config{NumTags: 32}, newFakePort())
}
