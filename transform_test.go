package strobe

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewLayer("test")
	assertMatrix(t, "identity", computeLocalTransform(n), identityTransform)
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewPicture("test", nil, Rect{X: 10, Y: 20, Width: 5, Height: 5})
	assertMatrix(t, "translation", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformPivotWithoutRotation(t *testing.T) {
	n := NewPicture("test", nil, Rect{X: 100, Y: 200, Width: 32, Height: 32})
	n.SetPivot(0.5, 0.5)
	// The pivot only matters once the node rotates.
	assertMatrix(t, "pivot", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 100, 200})
}

func TestLocalTransformRotationAboutCenter(t *testing.T) {
	n := NewPicture("test", nil, Rect{Width: 100, Height: 50})
	n.SetPivot(0.5, 0.5)
	n.SetRotation(math.Pi / 2)

	got := computeLocalTransform(n)
	assertMatrix(t, "rot90", got, [6]float64{0, 1, -1, 0, 75, -25})

	cx, cy := transformPoint(got, 50, 25)
	assertNear(t, "center.x", cx, 50)
	assertNear(t, "center.y", cy, 25)
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	assertMatrix(t, "translations", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 23})
}

// --- updateWorldTransform ---

func TestWorldTransformParentChild(t *testing.T) {
	parent := NewLayer("parent")
	child := NewLayer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10

	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "parent.tx", parent.worldTransform[4], 100)
	assertNear(t, "child.tx", child.worldTransform[4], 110)

	wx, wy := child.LocalToWorld(5, 5)
	assertNear(t, "LocalToWorld.x", wx, 115)
	assertNear(t, "LocalToWorld.y", wy, 5)
}

func TestAlphaPropagation(t *testing.T) {
	parent := NewLayer("parent")
	child := NewLayer("child")
	parent.AddChild(child)

	parent.Alpha = 0.5
	child.Alpha = 0.5

	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "parent.worldAlpha", parent.worldAlpha, 0.5)
	assertNear(t, "child.worldAlpha", child.worldAlpha, 0.25)
}

func TestDirtyFlagSkipsClean(t *testing.T) {
	parent := NewLayer("parent")
	child := NewLayer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 1.0, false)

	child.transformDirty = false
	parent.transformDirty = false
	child.X = 999 // dirty flag NOT set

	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (stale)", child.worldTransform[4], 110)
}

func TestDirtyFlagRecomputes(t *testing.T) {
	parent := NewLayer("parent")
	child := NewLayer("child")
	parent.AddChild(child)

	parent.X = 100
	updateWorldTransform(parent, identityTransform, 1.0, false)

	child.SetBounds(Rect{X: 20})
	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (updated)", child.worldTransform[4], 120)
}

func TestParentRecomputedPropagates(t *testing.T) {
	parent := NewLayer("parent")
	child := NewLayer("child")
	parent.AddChild(child)
	updateWorldTransform(parent, identityTransform, 1.0, false)

	child.transformDirty = false
	parent.X = 50
	parent.MarkDirty()
	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx", child.worldTransform[4], 50)
}

func TestGeoMMatchesAffine(t *testing.T) {
	m := [6]float64{0, 1, -1, 0, 75, -25}
	g := geoM(m)
	for _, p := range [][2]float64{{0, 0}, {50, 25}, {100, 50}} {
		gx, gy := g.Apply(p[0], p[1])
		wx, wy := transformPoint(m, p[0], p[1])
		assertNear(t, "geoM.x", gx, wx)
		assertNear(t, "geoM.y", gy, wy)
	}
}
