package strobe

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawTree walks the node tree depth-first in ZIndex order, updating
// transforms and drawing every visible node that carries an image.
func (s *Stage) drawTree(dst *ebiten.Image, n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	if !n.Visible {
		return
	}
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	if n.Image != nil && n.worldAlpha > 0 {
		if drawPicture(dst, n) {
			s.drawn++
		}
	}

	for _, child := range n.SortedChildren() {
		s.drawTree(dst, child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// coverPlacement returns the scale and offset that make an iw x ih image
// cover a w x h box, centered, cropping the overflow.
func coverPlacement(iw, ih, w, h float64) (scale, ox, oy float64) {
	scale = math.Max(w/iw, h/ih)
	ox = (w - iw*scale) / 2
	oy = (h - ih*scale) / 2
	return scale, ox, oy
}

// sourceRect maps the clipped part of a w x h box back to image pixels under
// a cover placement. The result is clamped to the image bounds.
func sourceRect(bounds image.Rectangle, clip Inset, w, h float64) (image.Rectangle, float64, float64, float64) {
	iw := float64(bounds.Dx())
	ih := float64(bounds.Dy())
	scale, ox, oy := coverPlacement(iw, ih, w, h)
	vis := clip.Apply(Rect{Width: w, Height: h})

	x0 := int(math.Floor((vis.X - ox) / scale))
	y0 := int(math.Floor((vis.Y - oy) / scale))
	x1 := int(math.Ceil((vis.X + vis.Width - ox) / scale))
	y1 := int(math.Ceil((vis.Y + vis.Height - oy) / scale))
	r := image.Rect(x0, y0, x1, y1).Add(bounds.Min).Intersect(bounds)
	return r, scale, ox, oy
}

// drawPicture draws one node's clipped image. Returns false when nothing was
// visible.
func drawPicture(dst *ebiten.Image, n *Node) bool {
	if n.Bounds().Empty() || !n.Clip.Visible() {
		return false
	}
	bounds := n.Image.Bounds()
	if bounds.Empty() {
		return false
	}
	src, scale, ox, oy := sourceRect(bounds, n.Clip, n.Width, n.Height)
	if src.Empty() {
		return false
	}
	sub := n.Image.SubImage(src).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(ox+float64(src.Min.X-bounds.Min.X)*scale, oy+float64(src.Min.Y-bounds.Min.Y)*scale)
	op.GeoM.Concat(geoM(n.worldTransform))
	op.ColorScale.ScaleAlpha(float32(n.worldAlpha))
	op.Blend = n.BlendMode.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sub, &op)
	return true
}
