package strobe

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InterpolateRect interpolates between start and end at t in [0, 1]. Centers
// and sizes are interpolated independently, so a rectangle that grows while it
// travels stays centered on the straight line between the two centers.
func InterpolateRect(start, end Rect, t float64) Rect {
	sc, ec := start.Center(), end.Center()
	w := lerp(start.Width, end.Width, t)
	h := lerp(start.Height, end.Height, t)
	cx := lerp(sc.X, ec.X, t)
	cy := lerp(sc.Y, ec.Y, t)
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// Inset describes how much of an element is clipped away from each edge, as
// a fraction of the element's height (Top, Bottom) or width (Left, Right).
// The zero Inset clips nothing.
type Inset struct {
	Top, Right, Bottom, Left float64
}

// Visible reports whether any part of the element survives the clip.
func (in Inset) Visible() bool {
	return in.Top+in.Bottom < 1 && in.Left+in.Right < 1
}

// Lerp interpolates each edge between in and to.
func (in Inset) Lerp(to Inset, t float64) Inset {
	return Inset{
		Top:    lerp(in.Top, to.Top, t),
		Right:  lerp(in.Right, to.Right, t),
		Bottom: lerp(in.Bottom, to.Bottom, t),
		Left:   lerp(in.Left, to.Left, t),
	}
}

// Apply returns the visible part of r after clipping. A fully clipped
// rectangle has zero width or height.
func (in Inset) Apply(r Rect) Rect {
	x0 := r.X + r.Width*in.Left
	x1 := r.X + r.Width*(1-in.Right)
	y0 := r.Y + r.Height*in.Top
	y1 := r.Y + r.Height*(1-in.Bottom)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// RevealMask holds the three clip states a mover passes through for one
// Direction. From and Hide both clip everything, from opposite edges of the
// same axis; Reveal clips nothing.
type RevealMask struct {
	From   Inset
	Reveal Inset
	Hide   Inset
}

var revealMasks = [...]RevealMask{
	DirectionTopBottom: {From: Inset{Top: 1}, Hide: Inset{Bottom: 1}},
	DirectionBottomTop: {From: Inset{Bottom: 1}, Hide: Inset{Top: 1}},
	DirectionLeftRight: {From: Inset{Right: 1}, Hide: Inset{Left: 1}},
	DirectionRightLeft: {From: Inset{Left: 1}, Hide: Inset{Right: 1}},
}

// MaskFor returns the reveal mask for d. Directions outside the four known
// values get the top-bottom mask.
func MaskFor(d Direction) RevealMask {
	if int(d) >= len(revealMasks) {
		return revealMasks[DirectionTopBottom]
	}
	return revealMasks[d]
}
