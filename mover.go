package strobe

import (
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// Alpha values a mover passes through.
const (
	moverHiddenAlpha = 0
	moverEntryAlpha  = 0.4
	moverFullAlpha   = 1
)

// Mover is a transient copy of the source image shown at one frame of a
// motion path. It belongs to exactly one MoverSet.
type Mover struct {
	Index int
	Frame PathFrame

	// Rotation is the random rotation drawn at creation, in degrees.
	Rotation float64

	node  *Node
	image *ebiten.Image
	mask  RevealMask
	state MoverState
	tween *TweenGroup
}

// Node returns the stage node that displays the mover.
func (m *Mover) Node() *Node { return m.node }

// Image returns the image captured when the mover was created.
func (m *Mover) Image() *ebiten.Image { return m.image }

// State returns the mover's lifecycle state.
func (m *Mover) State() MoverState { return m.state }

// Clip returns the mover's current clip inset.
func (m *Mover) Clip() Inset { return m.node.Clip }

// Alpha returns the mover's current opacity.
func (m *Mover) Alpha() float64 { return m.node.Alpha }

// ZIndex returns the mover's stacking order.
func (m *Mover) ZIndex() int { return m.node.ZIndex }

// dispose removes the mover from the stage. Safe to call repeatedly. The
// node's OnDispose hook does the bookkeeping, so a mover whose layer is
// disposed out from under it ends up in the same state.
func (m *Mover) dispose() {
	if m.state == MoverDisposed {
		return
	}
	m.node.Dispose()
}

// MoverSet owns the movers of one run and the layer they are attached to.
type MoverSet struct {
	layer  *Node
	movers []*Mover
	live   int
}

// NewMoverSet creates an empty set that attaches movers to layer.
func NewMoverSet(layer *Node) *MoverSet {
	return &MoverSet{layer: layer}
}

// Materialize creates one mover per frame and attaches them all to the
// layer. Every mover is built before any is attached, so observers of the
// layer see either none or all of them.
//
// Mover i gets ZIndex cfg.BaseZIndex+i, the From clip of
// cfg.ClipPathDirection, zero alpha, a random rotation within
// ±cfg.RotationRange degrees about its center, and cfg.MoverBlendMode.
// img is captured now and never read again from the source.
func (ms *MoverSet) Materialize(frames []PathFrame, img *ebiten.Image, cfg Config, rng Rand) []*Mover {
	rng = orDefault(rng)
	mask := MaskFor(cfg.ClipPathDirection)

	built := make([]*Mover, len(frames))
	for i, f := range frames {
		n := NewPicture("mover-"+strconv.Itoa(i), img, f.Rect)
		n.SetPivot(0.5, 0.5)
		n.SetZIndex(cfg.BaseZIndex + i)
		n.Clip = mask.From
		n.Alpha = moverHiddenAlpha
		n.BlendMode = cfg.MoverBlendMode

		m := &Mover{
			Index:    i,
			Frame:    f,
			Rotation: symmetric(rng, cfg.RotationRange),
			node:     n,
			image:    img,
			mask:     mask,
			state:    MoverPending,
		}
		n.SetRotation(m.Rotation * math.Pi / 180)
		n.OnDispose = func() {
			m.state = MoverDisposed
			m.tween = nil
			ms.live--
		}
		built[i] = m
	}

	for _, m := range built {
		ms.layer.AddChild(m.node)
	}
	ms.movers = append(ms.movers, built...)
	ms.live += len(built)
	return built
}

// Len returns the number of movers not yet disposed.
func (ms *MoverSet) Len() int {
	if ms == nil {
		return 0
	}
	return ms.live
}

// Movers returns every mover created by this set, disposed or not. The
// returned slice MUST NOT be mutated by the caller.
func (ms *MoverSet) Movers() []*Mover {
	if ms == nil {
		return nil
	}
	return ms.movers
}

// DisposeAll removes every remaining mover from the stage. It is safe to call
// on a nil or empty set and any number of times.
func (ms *MoverSet) DisposeAll() {
	if ms == nil {
		return
	}
	for _, m := range ms.movers {
		m.dispose()
	}
}
