package director

import "fmt"

// Resolution is the result of Resolve.
type Resolution struct {
	Resolved *Config
	Warnings []string
}

// Changed reports whether Resolve had to disable anything.
func (r Resolution) Changed() bool { return len(r.Warnings) > 0 }

// Resolve returns a copy of cfg with conflicting effects disabled. Priority,
// highest first: core effects (parallax, fade), scroll-triggered effects
// (scaleOnScroll), advanced effects (blur, perspective). The lower-priority
// setting is switched off; nothing is ever switched on or filled in.
// cfg itself is left untouched.
func Resolve(cfg *Config) Resolution {
	resolved := cfg.Clone()
	if resolved == nil {
		return Resolution{}
	}

	var warnings []string
	parallax := resolved.parallaxActive()

	if parallax && isOn(resolved.ScaleOnScroll) {
		resolved.ScaleOnScroll = Bool(false)
		warnings = append(warnings, conflictWarning("parallaxIntensity", "scaleOnScroll"))
	}

	if isOn(resolved.BlurOnScroll) {
		switch {
		case parallax:
			resolved.BlurOnScroll = Bool(false)
			warnings = append(warnings, conflictWarning("parallaxIntensity", "blurOnScroll"))
		case isOn(resolved.ScaleOnScroll):
			resolved.BlurOnScroll = Bool(false)
			warnings = append(warnings, conflictWarning("scaleOnScroll", "blurOnScroll"))
		}
	}

	if parallax && isOn(resolved.EnablePerspective) {
		resolved.EnablePerspective = Bool(false)
		warnings = append(warnings, conflictWarning("parallaxIntensity", "enablePerspective"))
	}

	return Resolution{Resolved: resolved, Warnings: warnings}
}

func conflictWarning(keep, disable string) string {
	return fmt.Sprintf("Conflict: %s and %s cannot both be active. Disabling %s.", keep, disable, disable)
}
