package strobe

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func testFrames(n int) []PathFrame {
	src := Rect{Width: 100, Height: 100}
	dst := Rect{X: 500, Width: 100, Height: 100}
	return GeneratePath(src, dst, n, DefaultConfig(), nil)
}

func TestMaterializeAttachesEveryMover(t *testing.T) {
	layer := NewLayer("overlay")
	set := NewMoverSet(layer)
	img := ebiten.NewImage(8, 8)

	movers := set.Materialize(testFrames(5), img, DefaultConfig(), NewSeededRand(1))

	if len(movers) != 5 || set.Len() != 5 {
		t.Fatalf("got %d movers, Len %d; want 5", len(movers), set.Len())
	}
	if layer.NumChildren() != 5 {
		t.Fatalf("layer has %d children, want 5", layer.NumChildren())
	}
	for i, m := range movers {
		if m.Index != i {
			t.Errorf("mover %d has Index %d", i, m.Index)
		}
		if m.Node().Parent != layer {
			t.Errorf("mover %d not attached to layer", i)
		}
		if m.Image() != img || m.Node().Image != img {
			t.Errorf("mover %d did not capture the source image", i)
		}
		if m.State() != MoverPending {
			t.Errorf("mover %d state = %v, want pending", i, m.State())
		}
	}
}

func TestMaterializeInitialAppearance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClipPathDirection = DirectionLeftRight
	cfg.MoverBlendMode = BlendScreen

	set := NewMoverSet(NewLayer("overlay"))
	movers := set.Materialize(testFrames(4), nil, cfg, NewSeededRand(2))

	from := MaskFor(DirectionLeftRight).From
	for i, m := range movers {
		if m.Clip() != from {
			t.Errorf("mover %d clip = %+v, want %+v", i, m.Clip(), from)
		}
		if m.Alpha() != 0 {
			t.Errorf("mover %d alpha = %v, want 0", i, m.Alpha())
		}
		if m.Node().BlendMode != BlendScreen {
			t.Errorf("mover %d blend = %v, want screen", i, m.Node().BlendMode)
		}
		if m.Node().PivotX != 0.5 || m.Node().PivotY != 0.5 {
			t.Errorf("mover %d pivot = %v,%v, want center", i, m.Node().PivotX, m.Node().PivotY)
		}
	}
}

func TestMaterializeZIndexIncreases(t *testing.T) {
	set := NewMoverSet(NewLayer("overlay"))
	movers := set.Materialize(testFrames(6), nil, DefaultConfig(), nil)

	for i, m := range movers {
		if want := DefaultBaseZIndex + i; m.ZIndex() != want {
			t.Errorf("mover %d ZIndex = %d, want %d", i, m.ZIndex(), want)
		}
	}
}

func TestMaterializeRotationWithinRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RotationRange = 15

	set := NewMoverSet(NewLayer("overlay"))
	movers := set.Materialize(testFrames(50), nil, cfg, NewSeededRand(5))

	rotated := false
	for i, m := range movers {
		if math.Abs(m.Rotation) > 15 {
			t.Fatalf("mover %d rotation %v outside ±15", i, m.Rotation)
		}
		if math.Abs(m.Node().Rotation-m.Rotation*math.Pi/180) > 1e-12 {
			t.Errorf("mover %d node rotation %v not %v degrees in radians", i, m.Node().Rotation, m.Rotation)
		}
		if m.Rotation != 0 {
			rotated = true
		}
	}
	if !rotated {
		t.Error("expected some rotation with RotationRange 15")
	}

	cfg.RotationRange = 0
	for _, m := range NewMoverSet(NewLayer("overlay")).Materialize(testFrames(5), nil, cfg, NewSeededRand(5)) {
		if m.Rotation != 0 {
			t.Fatalf("rotation %v with zero range", m.Rotation)
		}
	}
}

func TestMaterializeEmpty(t *testing.T) {
	layer := NewLayer("overlay")
	set := NewMoverSet(layer)
	if got := set.Materialize(nil, nil, DefaultConfig(), nil); len(got) != 0 {
		t.Fatalf("got %d movers from no frames", len(got))
	}
	if layer.NumChildren() != 0 || set.Len() != 0 {
		t.Error("empty materialize touched the layer")
	}
}

func TestDisposeAllIsIdempotent(t *testing.T) {
	layer := NewLayer("overlay")
	set := NewMoverSet(layer)
	movers := set.Materialize(testFrames(3), nil, DefaultConfig(), nil)

	set.DisposeAll()
	set.DisposeAll()

	if set.Len() != 0 {
		t.Errorf("Len = %d after DisposeAll, want 0", set.Len())
	}
	if layer.NumChildren() != 0 {
		t.Errorf("layer still has %d children", layer.NumChildren())
	}
	for i, m := range movers {
		if m.State() != MoverDisposed {
			t.Errorf("mover %d state = %v, want disposed", i, m.State())
		}
	}

	var nilSet *MoverSet
	nilSet.DisposeAll()
	if nilSet.Len() != 0 || nilSet.Movers() != nil {
		t.Error("nil set should be empty")
	}
	NewMoverSet(layer).DisposeAll()
}

func TestMoverDisposedWithLayer(t *testing.T) {
	layer := NewLayer("overlay")
	set := NewMoverSet(layer)
	movers := set.Materialize(testFrames(3), nil, DefaultConfig(), nil)

	layer.Dispose()

	if set.Len() != 0 {
		t.Errorf("Len = %d after layer dispose, want 0", set.Len())
	}
	for i, m := range movers {
		if m.State() != MoverDisposed {
			t.Errorf("mover %d state = %v, want disposed", i, m.State())
		}
	}
	set.DisposeAll()
	if set.Len() != 0 {
		t.Errorf("Len = %d after second dispose, want 0", set.Len())
	}
}
