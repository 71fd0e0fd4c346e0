package strobe

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter. Nodes are only touched from the game loop.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element on a Stage. Layers are nodes without an image; movers
// and other pictures are nodes with one. The image is stretched to cover
// Width x Height and clipped by Clip.
type Node struct {
	ID   uint32
	Name string

	Parent   *Node
	children []*Node

	// Layout, in the parent's coordinate space.
	X, Y          float64
	Width, Height float64
	Rotation      float64 // radians, about the pivot
	PivotX        float64 // fraction of Width
	PivotY        float64 // fraction of Height

	Alpha     float64
	Visible   bool
	ZIndex    int
	BlendMode BlendMode
	Clip      Inset

	Image *ebiten.Image

	OnDispose func()

	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	disposed       bool
	childrenSorted bool
	sortedChildren []*Node
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Visible = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewLayer creates a node with no visual representation of its own.
func NewLayer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewPicture creates a node that draws img stretched to cover r.
func NewPicture(name string, img *ebiten.Image, r Rect) *Node {
	n := &Node{Name: name, Image: img, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	nodeDefaults(n)
	return n
}

// Bounds returns the node's layout rectangle in its parent's space, ignoring
// rotation and clip.
func (n *Node) Bounds() Rect {
	return Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// SetBounds moves and resizes the node and marks it dirty.
func (n *Node) SetBounds(r Rect) {
	n.X, n.Y, n.Width, n.Height = r.X, r.Y, r.Width, r.Height
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the node's pivot fractions and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// SetAlpha sets the node's alpha and marks it dirty.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty forces the world transform to be recomputed on the next draw.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, disposed, or an ancestor of this node.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("strobe: cannot add nil child")
	}
	if child.disposed {
		panic("strobe: cannot add disposed node " + child.Name)
	}
	if isAncestor(child, n) {
		panic("strobe: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	child.transformDirty = true
	if globalDebug {
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("strobe: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Calling it again does nothing.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.Image = nil
	if fn := n.OnDispose; fn != nil {
		n.OnDispose = nil
		fn()
	}
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order.
// Stable insertion sort: children of a layer are usually appended in
// ascending ZIndex already.
func (n *Node) rebuildSortedChildren() {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// SortedChildren returns the children in draw order (ascending ZIndex,
// stable). The returned slice MUST NOT be mutated by the caller.
func (n *Node) SortedChildren() []*Node {
	if !n.childrenSorted {
		n.rebuildSortedChildren()
	}
	if n.sortedChildren == nil {
		return n.children
	}
	return n.sortedChildren
}
