package strobe

import "math"

// Config holds the tunables of a transition. A Run copies the Config it was
// started with, so changing a Controller's config only affects later runs.
//
// Durations are in seconds, angles in degrees, distances in pixels.
type Config struct {
	// Steps is the number of movers generated between source and destination.
	Steps int
	// StepDuration is the length of each mover's entry and of its exit.
	StepDuration float64
	// StepInterval is the stagger between consecutive movers' entries.
	StepInterval float64
	// MoverPauseBeforeExit is the hold at full reveal before the exit starts.
	MoverPauseBeforeExit float64

	// RotationRange is the maximum absolute random rotation per mover.
	RotationRange float64
	// WobbleStrength is the width of the uniform positional jitter per axis.
	WobbleStrength float64

	ClipPathDirection Direction

	// MoverEnterEase and MoverExitEase name easing curves, e.g. "sine.in".
	// See EaseByName for the accepted vocabulary.
	MoverEnterEase string
	MoverExitEase  string

	PathMotion    PathMotion
	SineAmplitude float64
	SineFrequency float64

	// MoverBlendMode is applied to every mover. BlendNormal means none.
	MoverBlendMode BlendMode

	// BaseZIndex is the stacking order of the first mover; mover i gets
	// BaseZIndex+i.
	BaseZIndex int
}

// Default tunables.
const (
	DefaultSteps                = 6
	DefaultStepDuration         = 0.35
	DefaultStepInterval         = 0.05
	DefaultMoverPauseBeforeExit = 0.14
	DefaultMoverEnterEase       = "sine.in"
	DefaultMoverExitEase        = "sine"
	DefaultSineAmplitude        = 50
	DefaultSineFrequency        = math.Pi
	DefaultBaseZIndex           = 2000
)

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Steps:                DefaultSteps,
		StepDuration:         DefaultStepDuration,
		StepInterval:         DefaultStepInterval,
		MoverPauseBeforeExit: DefaultMoverPauseBeforeExit,
		ClipPathDirection:    DirectionTopBottom,
		MoverEnterEase:       DefaultMoverEnterEase,
		MoverExitEase:        DefaultMoverExitEase,
		PathMotion:           PathLinear,
		SineAmplitude:        DefaultSineAmplitude,
		SineFrequency:        DefaultSineFrequency,
		BaseZIndex:           DefaultBaseZIndex,
	}
}

// Duration returns the nominal length of a run: the moment the last mover
// finishes its exit. Zero or negative step counts give zero.
func (c Config) Duration() float64 {
	if c.Steps <= 0 {
		return 0
	}
	return float64(c.Steps-1)*c.StepInterval + 2*c.StepDuration + c.MoverPauseBeforeExit
}

// SafetySweepMargin is how long after Config.Duration the safety sweep of a
// run fires.
const SafetySweepMargin = 0.5

// sanitized clamps values that would make the timeline run backwards or
// never finish. NaN and infinite floats become zero.
func (c Config) sanitized() Config {
	for _, v := range []*float64{
		&c.StepDuration, &c.StepInterval, &c.MoverPauseBeforeExit,
		&c.RotationRange, &c.WobbleStrength, &c.SineAmplitude, &c.SineFrequency,
	} {
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			*v = 0
		}
	}
	if c.StepDuration < 0 {
		c.StepDuration = 0
	}
	if c.StepInterval < 0 {
		c.StepInterval = 0
	}
	if c.MoverPauseBeforeExit < 0 {
		c.MoverPauseBeforeExit = 0
	}
	if c.RotationRange < 0 {
		c.RotationRange = -c.RotationRange
	}
	if c.WobbleStrength < 0 {
		c.WobbleStrength = -c.WobbleStrength
	}
	return c
}
