package strobe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// configFile is the on-disk form of Config. Pointer fields distinguish
// "absent" (keep the default) from an explicit zero.
type configFile struct {
	Steps                *int     `yaml:"steps"`
	StepDuration         *float64 `yaml:"stepDuration"`
	StepInterval         *float64 `yaml:"stepInterval"`
	MoverPauseBeforeExit *float64 `yaml:"moverPauseBeforeExit"`
	RotationRange        *float64 `yaml:"rotationRange"`
	WobbleStrength       *float64 `yaml:"wobbleStrength"`
	ClipPathDirection    *string  `yaml:"clipPathDirection"`
	MoverEnterEase       *string  `yaml:"moverEnterEase"`
	MoverExitEase        *string  `yaml:"moverExitEase"`
	PathMotion           *string  `yaml:"pathMotion"`
	SineAmplitude        *float64 `yaml:"sineAmplitude"`
	SineFrequency        *float64 `yaml:"sineFrequency"`
	MoverBlendMode       *string  `yaml:"moverBlendMode"`
	BaseZIndex           *int     `yaml:"baseZIndex"`
}

// ParseConfig decodes YAML over DefaultConfig. Unknown keys and unknown
// direction, easing, path motion or blend mode names are errors; the error
// suggests the closest valid name when there is one. Empty input yields the
// defaults.
func ParseConfig(data []byte) (Config, error) {
	var f configFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg, err := f.apply(DefaultConfig())
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigValues is a flat set of option values keyed like the YAML file, as
// produced by layered config loaders. Keys are matched case-insensitively and
// values may be strings, as they are when they come from the environment.
type ConfigValues map[string]any

// ConfigFromValues overlays vals on DefaultConfig with the same validation as
// ParseConfig.
func ConfigFromValues(vals ConfigValues) (Config, error) {
	return DefaultConfig().With(vals)
}

// With returns c with vals overlaid, validated like ParseConfig. Presets
// stack by chaining: DefaultConfig().With(section).With(item). c itself is
// not modified.
func (c Config) With(vals ConfigValues) (Config, error) {
	var f configFile
	var errs []error
	keys := configKeys()
	for k, v := range vals {
		key, ok := keys[strings.ToLower(k)]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown option %q%s", k, suggest(k, keyNames())))
			continue
		}
		if err := f.set(key, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return Config{}, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	cfg, err := f.apply(c)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (f *configFile) set(key string, v any) error {
	switch key {
	case "steps":
		return castInto(&f.Steps, v, cast.ToIntE)
	case "baseZIndex":
		return castInto(&f.BaseZIndex, v, cast.ToIntE)
	case "stepDuration":
		return castInto(&f.StepDuration, v, cast.ToFloat64E)
	case "stepInterval":
		return castInto(&f.StepInterval, v, cast.ToFloat64E)
	case "moverPauseBeforeExit":
		return castInto(&f.MoverPauseBeforeExit, v, cast.ToFloat64E)
	case "rotationRange":
		return castInto(&f.RotationRange, v, cast.ToFloat64E)
	case "wobbleStrength":
		return castInto(&f.WobbleStrength, v, cast.ToFloat64E)
	case "sineAmplitude":
		return castInto(&f.SineAmplitude, v, cast.ToFloat64E)
	case "sineFrequency":
		return castInto(&f.SineFrequency, v, cast.ToFloat64E)
	case "clipPathDirection":
		return castInto(&f.ClipPathDirection, v, cast.ToStringE)
	case "moverEnterEase":
		return castInto(&f.MoverEnterEase, v, cast.ToStringE)
	case "moverExitEase":
		return castInto(&f.MoverExitEase, v, cast.ToStringE)
	case "pathMotion":
		return castInto(&f.PathMotion, v, cast.ToStringE)
	case "moverBlendMode":
		return castInto(&f.MoverBlendMode, v, cast.ToStringE)
	}
	return errors.New("unknown option")
}

func castInto[T any](dst **T, v any, conv func(any) (T, error)) error {
	out, err := conv(v)
	if err != nil {
		return err
	}
	*dst = &out
	return nil
}

// OptionKeys returns the option names accepted by ParseConfig and
// ConfigFromValues.
func OptionKeys() []string {
	return keyNames()
}

// configKeys maps lowercase option names to their canonical YAML keys.
func configKeys() map[string]string {
	out := make(map[string]string)
	for _, k := range keyNames() {
		out[strings.ToLower(k)] = k
	}
	return out
}

func keyNames() []string {
	return []string{
		"steps", "stepDuration", "stepInterval", "moverPauseBeforeExit",
		"rotationRange", "wobbleStrength", "clipPathDirection",
		"moverEnterEase", "moverExitEase", "pathMotion",
		"sineAmplitude", "sineFrequency", "moverBlendMode", "baseZIndex",
	}
}

func (f *configFile) apply(cfg Config) (Config, error) {
	setInt(&cfg.Steps, f.Steps)
	setFloat(&cfg.StepDuration, f.StepDuration)
	setFloat(&cfg.StepInterval, f.StepInterval)
	setFloat(&cfg.MoverPauseBeforeExit, f.MoverPauseBeforeExit)
	setFloat(&cfg.RotationRange, f.RotationRange)
	setFloat(&cfg.WobbleStrength, f.WobbleStrength)
	setFloat(&cfg.SineAmplitude, f.SineAmplitude)
	setFloat(&cfg.SineFrequency, f.SineFrequency)
	setInt(&cfg.BaseZIndex, f.BaseZIndex)

	var errs []error
	if f.Steps != nil && *f.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps must not be negative, got %d", *f.Steps))
	}
	for name, v := range f.floats() {
		switch {
		case v == nil:
		case math.IsNaN(*v) || math.IsInf(*v, 0):
			errs = append(errs, fmt.Errorf("%s must be a finite number, got %g", name, *v))
		case *v < 0 && nonNegative[name]:
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", name, *v))
		}
	}
	if f.ClipPathDirection != nil {
		d, ok := ParseDirection(*f.ClipPathDirection)
		if !ok {
			errs = append(errs, unknownName("clipPathDirection", *f.ClipPathDirection, mapKeys(directionNames)))
		}
		cfg.ClipPathDirection = d
	}
	if f.PathMotion != nil {
		m, ok := ParsePathMotion(*f.PathMotion)
		if !ok {
			errs = append(errs, unknownName("pathMotion", *f.PathMotion, []string{"linear", "sine"}))
		}
		cfg.PathMotion = m
	}
	if f.MoverBlendMode != nil {
		b, ok := ParseBlendMode(*f.MoverBlendMode)
		if !ok {
			errs = append(errs, unknownName("moverBlendMode", *f.MoverBlendMode, mapKeys(blendModeNames)))
		}
		cfg.MoverBlendMode = b
	}
	if f.MoverEnterEase != nil {
		if _, ok := EaseByName(*f.MoverEnterEase); !ok {
			errs = append(errs, unknownName("moverEnterEase", *f.MoverEnterEase, easeNames()))
		}
		cfg.MoverEnterEase = *f.MoverEnterEase
	}
	if f.MoverExitEase != nil {
		if _, ok := EaseByName(*f.MoverExitEase); !ok {
			errs = append(errs, unknownName("moverExitEase", *f.MoverExitEase, easeNames()))
		}
		cfg.MoverExitEase = *f.MoverExitEase
	}
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

// nonNegative names the float options that are times.
var nonNegative = map[string]bool{
	"stepDuration":         true,
	"stepInterval":         true,
	"moverPauseBeforeExit": true,
}

func (f *configFile) floats() map[string]*float64 {
	return map[string]*float64{
		"stepDuration":         f.StepDuration,
		"stepInterval":         f.StepInterval,
		"moverPauseBeforeExit": f.MoverPauseBeforeExit,
		"rotationRange":        f.RotationRange,
		"wobbleStrength":       f.WobbleStrength,
		"sineAmplitude":        f.SineAmplitude,
		"sineFrequency":        f.SineFrequency,
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func unknownName(option, got string, valid []string) error {
	return fmt.Errorf("%s: unknown value %q%s", option, got, suggest(got, valid))
}

// maxSuggestDistance bounds how different a suggestion may be from the input.
const maxSuggestDistance = 3

// suggest returns a ` (did you mean "x"?)` hint naming the valid value
// closest to got by edit distance, or "" when nothing is close.
func suggest(got string, valid []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, v := range valid {
		if v == "" {
			continue
		}
		d := levenshtein.ComputeDistance(strings.ToLower(got), strings.ToLower(v))
		if d < bestDist || (d == bestDist && v < best) {
			best, bestDist = v, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
