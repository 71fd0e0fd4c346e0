package strobe

import "github.com/hajimehoshi/ebiten/v2"

// Vec2 is a 2D vector used for offsets and centers.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
	BlendErase                     // destination-out (punch transparent holes)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendErase:
		return ebiten.BlendDestinationOut
	default:
		return ebiten.BlendSourceOver
	}
}

// blendModeNames maps the compositing names accepted in configuration to
// blend modes. The empty string means "no blend mode set".
var blendModeNames = map[string]BlendMode{
	"":                BlendNormal,
	"normal":          BlendNormal,
	"add":             BlendAdd,
	"lighter":         BlendAdd,
	"plus-lighter":    BlendAdd,
	"multiply":        BlendMultiply,
	"screen":          BlendScreen,
	"erase":           BlendErase,
	"destination-out": BlendErase,
}

// ParseBlendMode maps a compositing name to a BlendMode. Unknown names yield
// BlendNormal and ok=false.
func ParseBlendMode(name string) (mode BlendMode, ok bool) {
	mode, ok = blendModeNames[name]
	return mode, ok
}

// Direction selects the axis and sense along which movers reveal and hide.
type Direction uint8

const (
	DirectionTopBottom Direction = iota // reveal downward, hide downward
	DirectionBottomTop                  // reveal upward, hide upward
	DirectionLeftRight                  // reveal rightward, hide rightward
	DirectionRightLeft                  // reveal leftward, hide leftward
)

var directionNames = map[string]Direction{
	"top-bottom": DirectionTopBottom,
	"bottom-top": DirectionBottomTop,
	"left-right": DirectionLeftRight,
	"right-left": DirectionRightLeft,
}

// ParseDirection maps a direction name such as "left-right" to a Direction.
// Unrecognized names yield DirectionTopBottom and ok=false.
func ParseDirection(name string) (d Direction, ok bool) {
	d, ok = directionNames[name]
	if !ok {
		return DirectionTopBottom, false
	}
	return d, true
}

// String returns the configuration name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionBottomTop:
		return "bottom-top"
	case DirectionLeftRight:
		return "left-right"
	case DirectionRightLeft:
		return "right-left"
	default:
		return "top-bottom"
	}
}

// Horizontal reports whether the reveal travels along the X axis.
func (d Direction) Horizontal() bool {
	return d == DirectionLeftRight || d == DirectionRightLeft
}

// PathMotion selects the secondary displacement applied to a motion path.
type PathMotion uint8

const (
	PathLinear PathMotion = iota // straight line between centers
	PathSine                     // sine offset perpendicular to the reveal axis
)

// ParsePathMotion maps "linear" or "sine" to a PathMotion. Unknown names
// yield PathLinear and ok=false.
func ParsePathMotion(name string) (m PathMotion, ok bool) {
	switch name {
	case "linear", "":
		return PathLinear, true
	case "sine":
		return PathSine, true
	}
	return PathLinear, false
}

// String returns the configuration name of the path motion.
func (m PathMotion) String() string {
	if m == PathSine {
		return "sine"
	}
	return "linear"
}

// MoverState is the lifecycle position of a single mover.
type MoverState uint8

const (
	MoverPending  MoverState = iota // created, hidden behind the From mask, waiting for its stagger offset
	MoverEntering                   // animating Hide -> Reveal
	MoverRevealed                   // fully visible, holding before exit
	MoverExiting                    // animating Reveal -> From
	MoverDisposed                   // removed from the stage
)

func (s MoverState) String() string {
	switch s {
	case MoverPending:
		return "pending"
	case MoverEntering:
		return "entering"
	case MoverRevealed:
		return "revealed"
	case MoverExiting:
		return "exiting"
	case MoverDisposed:
		return "disposed"
	}
	return "unknown"
}
