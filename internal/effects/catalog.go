package effects

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Curve maps linear progress t in [0,1] to eased progress.
type Curve func(t float64) float64

// DefaultEasing is used when a scene names no easing curve.
const DefaultEasing = "easeInOutCubic"

var easings = map[string]Curve{
	"linear":         func(t float64) float64 { return t },
	"easeIn":         func(t float64) float64 { return t * t },
	"easeOut":        func(t float64) float64 { return 1 - (1-t)*(1-t) },
	"easeInOut":      easeInOutQuad,
	"easeInCubic":    func(t float64) float64 { return t * t * t },
	"easeOutCubic":   func(t float64) float64 { return 1 - math.Pow(1-t, 3) },
	"easeInOutCubic": easeInOutCubic,
}

// effectNames lists the entry/exit effects the renderer knows how to play.
var effectNames = []string{
	"none",
	"fade",
	"fadeUp",
	"fadeDown",
	"slideUp",
	"slideDown",
	"slideLeft",
	"slideRight",
	"zoomIn",
	"zoomOut",
	"blurIn",
	"rotateIn",
}

// Easing returns the curve registered under name. An empty name selects
// DefaultEasing.
func Easing(name string) (Curve, error) {
	if name == "" {
		name = DefaultEasing
	}
	c, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing: %s", name)
	}
	return c, nil
}

// Easings returns the registered easing names, sorted.
func Easings() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnownEffect reports whether name is a built-in entry/exit effect.
func IsKnownEffect(name string) bool {
	return slices.Contains(effectNames, name)
}

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
