package strobe

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// RectAnchor is a fixed rectangle, optionally with an image. A zero-size
// rectangle still resolves; use a nil *RectAnchor for "no geometry".
type RectAnchor struct {
	Rect Rect
	Img  *ebiten.Image
}

// Bounds returns the rectangle. A nil anchor has no geometry.
func (a *RectAnchor) Bounds() (Rect, bool) {
	if a == nil {
		return Rect{}, false
	}
	return a.Rect, true
}

// Image returns the anchor's image.
func (a *RectAnchor) Image() *ebiten.Image {
	if a == nil {
		return nil
	}
	return a.Img
}

// NodeAnchor resolves to a node's current stage-space rectangle. It has no
// geometry while the node is disposed, hidden or detached from any parent.
type NodeAnchor struct {
	Node *Node
}

// AnchorFor returns an anchor tracking n.
func AnchorFor(n *Node) *NodeAnchor {
	return &NodeAnchor{Node: n}
}

// Bounds returns the axis-aligned box around the node's four transformed
// corners in stage space, using the world transform of the last stage update.
func (a *NodeAnchor) Bounds() (Rect, bool) {
	if a == nil || a.Node == nil {
		return Rect{}, false
	}
	n := a.Node
	if n.IsDisposed() || !n.Visible || n.Parent == nil {
		return Rect{}, false
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {n.Width, 0}, {0, n.Height}, {n.Width, n.Height}} {
		x, y := n.LocalToWorld(c[0], c[1])
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// Image returns the node's image.
func (a *NodeAnchor) Image() *ebiten.Image {
	if a == nil || a.Node == nil {
		return nil
	}
	return a.Node.Image
}
