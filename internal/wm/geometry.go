package wm

// Rect is a rectangle in root-window coordinates. Width/height are always
// the outer (border-exclusive) dimensions a client is configured to.
type Rect struct {
	X, Y int
	W, H int
}

// Intersect returns the overlap of r and other, with W/H clamped to 0 when
// the rectangles don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.X+r.W, other.X+other.W), min(r.Y+r.H, other.Y+other.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Center returns the integer center point of r.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// SizeHints mirrors the ICCCM WM_NORMAL_HINTS fields a client can publish.
type SizeHints struct {
	BaseW, BaseH         int
	MinW, MinH           int
	MaxW, MaxH           int
	IncW, IncH           int
	MinAspect, MaxAspect float64
	HaveAspect           bool
}

// IsFixed reports whether min and max are equal and positive in both axes,
// per the Client.isfixed definition: fixed-size windows never get
// retiled as floating.
func (h SizeHints) IsFixed() bool {
	return h.MaxW > 0 && h.MaxH > 0 && h.MaxW == h.MinW && h.MaxH == h.MinH
}

// ApplySizeHints implements apply_size_hints. bounds is
// the usable rect (or screen rect when interact), bw is the client's
// border width (the outer edge the bounds clamp accounts for), bh is
// the bar height, and respect forces ICCCM adjustment even outside
// free/no-arrange cases. It returns the adjusted rectangle and whether
// it differs from in.
func ApplySizeHints(in Rect, h SizeHints, bounds Rect, bw, bh int, respect bool) (Rect, bool) {
	out := in

	if out.W < 1 {
		out.W = 1
	}
	if out.H < 1 {
		out.H = 1
	}

	if out.X > bounds.X+bounds.W {
		out.X = bounds.X + bounds.W - out.W
	}
	if out.Y > bounds.Y+bounds.H {
		out.Y = bounds.Y + bounds.H - out.H
	}
	if out.X+out.W+2*bw < bounds.X {
		out.X = bounds.X
	}
	if out.Y+out.H+2*bw < bounds.Y {
		out.Y = bounds.Y
	}

	if out.H < bh {
		out.H = bh
	}
	if out.W < bh {
		out.W = bh
	}

	if respect {
		baseW, baseH := h.BaseW, h.BaseH
		w, ht := out.W-baseW, out.H-baseH

		if h.HaveAspect {
			if h.MinAspect > 0 && float64(ht)*h.MinAspect > float64(w) {
				ht = int(float64(w) / h.MinAspect)
			} else if h.MaxAspect > 0 && float64(ht)*h.MaxAspect < float64(w) {
				w = int(float64(ht) * h.MaxAspect)
			}
		}

		if h.IncW > 0 {
			w -= w % h.IncW
		}
		if h.IncH > 0 {
			ht -= ht % h.IncH
		}

		w += baseW
		ht += baseH

		if h.MinW > 0 && w < h.MinW {
			w = h.MinW
		}
		if h.MinH > 0 && ht < h.MinH {
			ht = h.MinH
		}
		if h.MaxW > 0 && w > h.MaxW {
			w = h.MaxW
		}
		if h.MaxH > 0 && ht > h.MaxH {
			ht = h.MaxH
		}

		out.W, out.H = w, ht
	}

	if out.W < 1 {
		out.W = 1
	}
	if out.H < 1 {
		out.H = 1
	}

	changed := out != in
	return out, changed
}
