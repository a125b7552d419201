package director

// Business thresholds. Keep these values as they are; editors and the
// generation pipeline are tuned against them.
const (
	MinEntryDuration = 0.3 // seconds, soft minimum
	MinExitDuration  = 0.2 // seconds, soft minimum

	// MaxScrollEffects is the number of simultaneous scroll effects
	// (fade, scale, blur) above which a scene is considered overloaded.
	MaxScrollEffects = 2
)

// ScrollSpeeds lists the accepted scrollSpeed values.
var ScrollSpeeds = []string{"slow", "normal", "fast"}

// RequiredFields is the ordered list of fields a configuration must carry to
// be complete. animationDuration and customCSSClasses are optional.
var RequiredFields = []string{
	"entryEffect",
	"exitEffect",
	"entryDuration",
	"exitDuration",
	"entryDelay",
	"exitDelay",
	"entryEasing",
	"exitEasing",
	"staggerChildren",

	"backgroundColor",
	"textColor",
	"alignment",
	"headingSize",
	"bodySize",
	"fontWeight",
	"textShadow",
	"textGlow",
	"paddingTop",
	"paddingBottom",

	"parallaxIntensity",
	"fadeOnScroll",
	"scaleOnScroll",
	"blurOnScroll",
	"scrollSpeed",
	"transformOrigin",
	"overflowBehavior",
	"backdropBlur",
	"mixBlendMode",
	"enablePerspective",
	"layerDepth",
	"mediaPosition",
	"mediaScale",
	"mediaOpacity",
}

func init() {
	for _, f := range RequiredFields {
		if !IsKnownField(f) {
			panic("director: required field " + f + " has no struct field")
		}
	}
}
