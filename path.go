package strobe

import "math"

// PathFrame is one rectangle along a motion path. Jitter is the random
// wobble that was already added to X and Y.
type PathFrame struct {
	Rect
	Jitter Vec2
}

// GeneratePath returns steps frames evenly spaced between source and dest,
// in travel order. The endpoints themselves are not included: steps+2 points
// are computed at t = i/(steps+1) and the first and last are dropped.
//
// With PathSine the frames are displaced by sin(t*SineFrequency)*SineAmplitude
// perpendicular to the reveal axis: along Y for horizontal directions, along X
// otherwise. Each frame then gets independent uniform jitter in
// [-WobbleStrength/2, +WobbleStrength/2] on both axes. A nil rng uses the
// package default source.
//
// steps <= 0 yields an empty path. The rectangles are used as given; empty or
// equal rectangles produce degenerate frames rather than an error.
func GeneratePath(source, dest Rect, steps int, cfg Config, rng Rand) []PathFrame {
	if steps <= 0 {
		return []PathFrame{}
	}
	rng = orDefault(rng)

	frames := make([]PathFrame, 0, steps)
	div := float64(steps + 1)
	for i := 1; i <= steps; i++ {
		t := float64(i) / div
		r := InterpolateRect(source, dest, t)

		if cfg.PathMotion == PathSine {
			offset := math.Sin(t*cfg.SineFrequency) * cfg.SineAmplitude
			if cfg.ClipPathDirection.Horizontal() {
				r.Y += offset
			} else {
				r.X += offset
			}
		}

		var jitter Vec2
		if cfg.WobbleStrength != 0 {
			jitter.X = (rng.Float64() - 0.5) * cfg.WobbleStrength
			jitter.Y = (rng.Float64() - 0.5) * cfg.WobbleStrength
			r.X += jitter.X
			r.Y += jitter.Y
		}

		frames = append(frames, PathFrame{Rect: r, Jitter: jitter})
	}
	return frames
}
