package director

import (
	"reflect"
	"strings"
)

// Config holds the presentation parameters attached to a single scene.
// Every field is optional; a nil pointer means the value is absent (or was
// explicitly null on the wire). Unknown keys survive round-trips in Extra.
type Config struct {
	// Timing
	EntryEffect       *string  `json:"entryEffect,omitempty" yaml:"entryEffect,omitempty"`
	ExitEffect        *string  `json:"exitEffect,omitempty" yaml:"exitEffect,omitempty"`
	EntryDuration     *float64 `json:"entryDuration,omitempty" yaml:"entryDuration,omitempty"` // seconds
	ExitDuration      *float64 `json:"exitDuration,omitempty" yaml:"exitDuration,omitempty"`   // seconds
	EntryDelay        *float64 `json:"entryDelay,omitempty" yaml:"entryDelay,omitempty"`
	ExitDelay         *float64 `json:"exitDelay,omitempty" yaml:"exitDelay,omitempty"`
	AnimationDuration *float64 `json:"animationDuration,omitempty" yaml:"animationDuration,omitempty"`
	EntryEasing       *string  `json:"entryEasing,omitempty" yaml:"entryEasing,omitempty"`
	ExitEasing        *string  `json:"exitEasing,omitempty" yaml:"exitEasing,omitempty"`
	StaggerChildren   *float64 `json:"staggerChildren,omitempty" yaml:"staggerChildren,omitempty"`

	// Appearance
	BackgroundColor  *string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	TextColor        *string `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	Alignment        *string `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	HeadingSize      *string `json:"headingSize,omitempty" yaml:"headingSize,omitempty"`
	BodySize         *string `json:"bodySize,omitempty" yaml:"bodySize,omitempty"`
	FontWeight       *string `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty"`
	TextShadow       *bool   `json:"textShadow,omitempty" yaml:"textShadow,omitempty"`
	TextGlow         *bool   `json:"textGlow,omitempty" yaml:"textGlow,omitempty"`
	PaddingTop       *string `json:"paddingTop,omitempty" yaml:"paddingTop,omitempty"`
	PaddingBottom    *string `json:"paddingBottom,omitempty" yaml:"paddingBottom,omitempty"`
	CustomCSSClasses *string `json:"customCSSClasses,omitempty" yaml:"customCSSClasses,omitempty"`

	// Scroll-linked effects
	ParallaxIntensity *float64 `json:"parallaxIntensity,omitempty" yaml:"parallaxIntensity,omitempty"` // 0..1
	FadeOnScroll      *bool    `json:"fadeOnScroll,omitempty" yaml:"fadeOnScroll,omitempty"`
	ScaleOnScroll     *bool    `json:"scaleOnScroll,omitempty" yaml:"scaleOnScroll,omitempty"`
	BlurOnScroll      *bool    `json:"blurOnScroll,omitempty" yaml:"blurOnScroll,omitempty"`
	ScrollSpeed       *string  `json:"scrollSpeed,omitempty" yaml:"scrollSpeed,omitempty"`
	TransformOrigin   *string  `json:"transformOrigin,omitempty" yaml:"transformOrigin,omitempty"`
	OverflowBehavior  *string  `json:"overflowBehavior,omitempty" yaml:"overflowBehavior,omitempty"`
	BackdropBlur      *string  `json:"backdropBlur,omitempty" yaml:"backdropBlur,omitempty"`
	MixBlendMode      *string  `json:"mixBlendMode,omitempty" yaml:"mixBlendMode,omitempty"`
	EnablePerspective *bool    `json:"enablePerspective,omitempty" yaml:"enablePerspective,omitempty"`
	LayerDepth        *int     `json:"layerDepth,omitempty" yaml:"layerDepth,omitempty"`
	MediaPosition     *float64 `json:"mediaPosition,omitempty" yaml:"mediaPosition,omitempty"`
	MediaScale        *float64 `json:"mediaScale,omitempty" yaml:"mediaScale,omitempty"`
	MediaOpacity      *float64 `json:"mediaOpacity,omitempty" yaml:"mediaOpacity,omitempty"` // 0..1

	// Extra carries keys that are not part of the named field set.
	Extra map[string]any `json:"-" yaml:"-"`
}

// fieldIndex maps wire names to struct field positions.
var fieldIndex = buildFieldIndex()

func buildFieldIndex() map[string]int {
	t := reflect.TypeOf(Config{})
	idx := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		idx[name] = i
	}
	return idx
}

// IsKnownField reports whether name is one of the named DirectorConfig fields.
func IsKnownField(name string) bool {
	_, ok := fieldIndex[name]
	return ok
}

// Has reports whether the named field is present. Unknown names are looked
// up in Extra.
func (c *Config) Has(field string) bool {
	if c == nil {
		return false
	}
	i, ok := fieldIndex[field]
	if !ok {
		v, ok := c.Extra[field]
		return ok && v != nil
	}
	return !reflect.ValueOf(c).Elem().Field(i).IsNil()
}

// Clone returns a deep copy. Pointer fields and nested Extra values are not
// shared with the receiver.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	out := &Config{}
	src := reflect.ValueOf(c).Elem()
	dst := reflect.ValueOf(out).Elem()
	for _, i := range fieldIndex {
		f := src.Field(i)
		if f.IsNil() {
			continue
		}
		p := reflect.New(f.Type().Elem())
		p.Elem().Set(f.Elem())
		dst.Field(i).Set(p)
	}

	if c.Extra != nil {
		out.Extra = make(map[string]any, len(c.Extra))
		for k, v := range c.Extra {
			out.Extra[k] = copyValue(v)
		}
	}
	return out
}

// copyValue deep-copies the container shapes produced by JSON and YAML
// decoding, including map[any]any set directly on Extra.
func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[k] = copyValue(vv)
		}
		return m
	case map[any]any:
		m := make(map[any]any, len(t))
		for k, vv := range t {
			m[k] = copyValue(vv)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, vv := range t {
			s[i] = copyValue(vv)
		}
		return s
	default:
		return v
	}
}

func (c *Config) parallaxActive() bool {
	return c.ParallaxIntensity != nil && *c.ParallaxIntensity > 0
}

func isOn(b *bool) bool {
	return b != nil && *b
}

// String returns a pointer to s.
func String(s string) *string { return &s }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Default returns a complete, conflict-free configuration used for newly
// created scenes.
func Default() *Config {
	return &Config{
		EntryEffect:     String("fade"),
		ExitEffect:      String("fade"),
		EntryDuration:   Float(0.8),
		ExitDuration:    Float(0.5),
		EntryDelay:      Float(0),
		ExitDelay:       Float(0),
		EntryEasing:     String("easeOut"),
		ExitEasing:      String("easeIn"),
		StaggerChildren: Float(0.1),

		BackgroundColor: String("#0A0A0A"),
		TextColor:       String("#FFFFFF"),
		Alignment:       String("center"),
		HeadingSize:     String("4xl"),
		BodySize:        String("lg"),
		FontWeight:      String("bold"),
		TextShadow:      Bool(false),
		TextGlow:        Bool(false),
		PaddingTop:      String("lg"),
		PaddingBottom:   String("lg"),

		ParallaxIntensity: Float(0),
		FadeOnScroll:      Bool(false),
		ScaleOnScroll:     Bool(false),
		BlurOnScroll:      Bool(false),
		ScrollSpeed:       String("normal"),
		TransformOrigin:   String("center center"),
		OverflowBehavior:  String("visible"),
		BackdropBlur:      String("none"),
		MixBlendMode:      String("normal"),
		EnablePerspective: Bool(false),
		LayerDepth:        Int(0),
		MediaPosition:     Float(0.5),
		MediaScale:        Float(1),
		MediaOpacity:      Float(1),
	}
}
