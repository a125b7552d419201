package director

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Kind classifies a diagnostic.
type Kind int

const (
	MissingField Kind = iota + 1
	RangeOrFormatViolation
	ConflictingSettings
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "missing_field"
	case RangeOrFormatViolation:
		return "range_or_format"
	case ConflictingSettings:
		return "conflict"
	default:
		return "unknown"
	}
}

// Severity tells a caller whether an issue should block a save.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Issue is a single diagnostic produced by Check.
type Issue struct {
	Kind     Kind
	Severity Severity
	Field    string
	Message  string
}

func (i Issue) String() string { return i.Message }

// Issues is an ordered list of diagnostics.
type Issues []Issue

// Strings returns the human-readable messages in order.
func (is Issues) Strings() []string {
	if len(is) == 0 {
		return nil
	}
	out := make([]string, len(is))
	for i, issue := range is {
		out[i] = issue.Message
	}
	return out
}

// HasErrors reports whether any issue has error severity.
func (is Issues) HasErrors() bool {
	for _, issue := range is {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of issues of the given kind.
func (is Issues) Count(k Kind) int {
	n := 0
	for _, issue := range is {
		if issue.Kind == k {
			n++
		}
	}
	return n
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate returns the diagnostics for the scene at sceneIndex as plain
// messages. An empty result means the configuration is complete and valid.
func Validate(cfg *Config, sceneIndex int) []string {
	return Check(cfg, sceneIndex).Strings()
}

// Check reports missing fields, range and format violations, and conflicting
// settings, in that order. It never modifies cfg.
func Check(cfg *Config, sceneIndex int) Issues {
	prefix := fmt.Sprintf("Scene %d: ", sceneIndex)

	var issues Issues
	for _, field := range RequiredFields {
		if !cfg.Has(field) {
			issues = append(issues, Issue{
				Kind:     MissingField,
				Severity: SeverityError,
				Field:    field,
				Message:  prefix + "Missing director." + field,
			})
		}
	}
	if cfg == nil {
		return issues
	}

	issues = append(issues, checkRanges(cfg, prefix)...)
	issues = append(issues, checkConflicts(cfg, prefix)...)
	return issues
}

func checkRanges(cfg *Config, prefix string) Issues {
	var issues Issues

	color := func(field string, v *string) {
		if v != nil && !hexColor.MatchString(*v) {
			issues = append(issues, rangeIssue(field, SeverityError,
				fmt.Sprintf("%sInvalid director.%s %q (expected #RRGGBB)", prefix, field, *v)))
		}
	}
	// both comparisons are written so that NaN is rejected too
	unit := func(field string, v *float64) {
		if v != nil && !(*v >= 0 && *v <= 1) {
			issues = append(issues, rangeIssue(field, SeverityError,
				fmt.Sprintf("%sdirector.%s %g out of range [0, 1]", prefix, field, *v)))
		}
	}
	minimum := func(field string, v *float64, min float64) {
		if v != nil && !(*v >= min) {
			issues = append(issues, rangeIssue(field, SeverityWarning,
				fmt.Sprintf("%sdirector.%s %gs is below the recommended minimum of %gs", prefix, field, *v, min)))
		}
	}

	color("backgroundColor", cfg.BackgroundColor)
	color("textColor", cfg.TextColor)
	unit("parallaxIntensity", cfg.ParallaxIntensity)
	unit("mediaOpacity", cfg.MediaOpacity)

	if cfg.ScrollSpeed != nil && !slices.Contains(ScrollSpeeds, *cfg.ScrollSpeed) {
		issues = append(issues, rangeIssue("scrollSpeed", SeverityError,
			fmt.Sprintf("%sInvalid director.scrollSpeed %q (expected one of %s)",
				prefix, *cfg.ScrollSpeed, strings.Join(ScrollSpeeds, ", "))))
	}

	minimum("entryDuration", cfg.EntryDuration, MinEntryDuration)
	minimum("exitDuration", cfg.ExitDuration, MinExitDuration)

	return issues
}

func rangeIssue(field string, sev Severity, msg string) Issue {
	return Issue{Kind: RangeOrFormatViolation, Severity: sev, Field: field, Message: msg}
}

func checkConflicts(cfg *Config, prefix string) Issues {
	var issues Issues
	conflict := func(field, msg string) {
		issues = append(issues, Issue{
			Kind:     ConflictingSettings,
			Severity: SeverityWarning,
			Field:    field,
			Message:  prefix + msg,
		})
	}

	if cfg.parallaxActive() {
		p := *cfg.ParallaxIntensity
		if isOn(cfg.ScaleOnScroll) {
			conflict("scaleOnScroll", fmt.Sprintf("Conflict: parallaxIntensity (%g) and scaleOnScroll are both active", p))
		}
		if isOn(cfg.BlurOnScroll) {
			conflict("blurOnScroll", fmt.Sprintf("Conflict: blurOnScroll and parallaxIntensity (%g) are both active", p))
		}
		if isOn(cfg.EnablePerspective) {
			conflict("enablePerspective", fmt.Sprintf("Conflict: enablePerspective and parallaxIntensity (%g) are both active", p))
		}
	}

	active := 0
	for _, b := range []*bool{cfg.FadeOnScroll, cfg.ScaleOnScroll, cfg.BlurOnScroll} {
		if isOn(b) {
			active++
		}
	}
	if active > MaxScrollEffects {
		conflict("", fmt.Sprintf("Too many competing scroll effects: %d of fadeOnScroll, scaleOnScroll, blurOnScroll are active (max %d)",
			active, MaxScrollEffects))
	}

	return issues
}
