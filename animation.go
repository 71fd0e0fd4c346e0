package strobe

import (
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 5 float64 fields on a Node simultaneously. Call
// Update(dt) each frame, or Seek to jump to an absolute elapsed time. The
// group writes values into the node and marks it dirty. If the target node
// is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [5]*gween.Tween
	count  int
	fields [5]*float64
	target *Node
	Done   bool
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// Update advances all tweens by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	g.apply(func(tw *gween.Tween) (float32, bool) { return tw.Update(dt) })
}

// Seek sets all tweens to elapsed seconds since their start.
func (g *TweenGroup) Seek(elapsed float32) {
	g.apply(func(tw *gween.Tween) (float32, bool) { return tw.Set(elapsed) })
}

func (g *TweenGroup) apply(step func(*gween.Tween) (float32, bool)) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := step(g.tweens[i])
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenClip creates a TweenGroup that animates node.Clip to the given inset.
func TweenClip(node *Node, to Inset, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Clip.Top, to.Top, duration, fn)
	g.add(&node.Clip.Right, to.Right, duration, fn)
	g.add(&node.Clip.Bottom, to.Bottom, duration, fn)
	g.add(&node.Clip.Left, to.Left, duration, fn)
	return g
}

// TweenReveal creates a TweenGroup that animates node.Clip and node.Alpha
// together.
func TweenReveal(node *Node, to Inset, alpha float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := TweenClip(node, to, duration, fn)
	g.add(&node.Alpha, alpha, duration, fn)
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Alpha, to, duration, fn)
	return g
}

// easeFamilies maps a curve family to its in, out and in-out variants.
var easeFamilies = map[string][3]ease.TweenFunc{
	"sine":    {ease.InSine, ease.OutSine, ease.InOutSine},
	"quad":    {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"power1":  {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"cubic":   {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"power2":  {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"quart":   {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"power3":  {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"quint":   {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"power4":  {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"expo":    {ease.InExpo, ease.OutExpo, ease.InOutExpo},
	"circ":    {ease.InCirc, ease.OutCirc, ease.InOutCirc},
	"back":    {ease.InBack, ease.OutBack, ease.InOutBack},
	"elastic": {ease.InElastic, ease.OutElastic, ease.InOutElastic},
	"bounce":  {ease.InBounce, ease.OutBounce, ease.InOutBounce},
}

// EaseByName resolves an easing name such as "sine.in", "expo" or
// "power2.inOut". A bare family name means the ".out" variant. "none",
// "linear" and unknown names resolve to ease.Linear; ok reports whether the
// name was recognized.
func EaseByName(name string) (fn ease.TweenFunc, ok bool) {
	switch name {
	case "none", "linear", "power0":
		return ease.Linear, true
	}
	family, variant, _ := strings.Cut(name, ".")
	funcs, known := easeFamilies[family]
	if !known {
		return ease.Linear, false
	}
	switch variant {
	case "in":
		return funcs[0], true
	case "", "out":
		return funcs[1], true
	case "inOut":
		return funcs[2], true
	}
	return ease.Linear, false
}

// easeNames lists every name EaseByName recognizes, for validation hints.
func easeNames() []string {
	names := []string{"none", "linear", "power0"}
	for family := range easeFamilies {
		names = append(names, family, family+".in", family+".out", family+".inOut")
	}
	return names
}
