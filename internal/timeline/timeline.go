package timeline

import (
	"fmt"

	"github.com/gtmstudio/scenedirector/internal/director"
	"github.com/gtmstudio/scenedirector/internal/effects"
)

// Phase is one animated window of a scene. Times are seconds from the
// moment the phase is triggered (scene enters or starts leaving the viewport).
type Phase struct {
	Effect string
	Known  bool // Effect is a built-in effect
	Easing string
	Start  float64
	End    float64

	curve effects.Curve
}

// Duration returns the length of the phase in seconds.
func (p Phase) Duration() float64 {
	return p.End - p.Start
}

// Progress returns eased progress in [0,1] at time t.
func (p Phase) Progress(t float64) float64 {
	if t >= p.End {
		return 1
	}
	if t <= p.Start {
		return 0
	}
	x := (t - p.Start) / (p.End - p.Start)
	if p.curve == nil {
		return x
	}
	return p.curve(x)
}

// Envelope is the timing of a scene: its entry and exit phases and the
// reveal offsets of its child elements.
type Envelope struct {
	Entry        Phase
	Exit         Phase
	ChildOffsets []float64
}

// Settled returns the time at which the last child has finished entering.
func (e *Envelope) Settled() float64 {
	if len(e.ChildOffsets) == 0 {
		return e.Entry.End
	}
	return e.ChildOffsets[len(e.ChildOffsets)-1] + e.Entry.Duration()
}

// EntryProgress returns the eased entry progress at time t.
func (e *Envelope) EntryProgress(t float64) float64 {
	return e.Entry.Progress(t)
}

// Build computes the timing envelope for a scene with the given number of
// staggered children. Absent values fall back to director.Default();
// animationDuration stands in for a missing entryDuration.
func Build(cfg *director.Config, children int) (*Envelope, error) {
	if children < 0 {
		return nil, fmt.Errorf("negative child count: %d", children)
	}
	if cfg == nil {
		cfg = &director.Config{}
	}
	def := director.Default()

	entryDuration := pick(def.EntryDuration, cfg.AnimationDuration, cfg.EntryDuration)
	stagger := pick(def.StaggerChildren, cfg.StaggerChildren)

	entry, err := phase("entry",
		pick(def.EntryEffect, cfg.EntryEffect),
		pick(def.EntryEasing, cfg.EntryEasing),
		pick(def.EntryDelay, cfg.EntryDelay),
		entryDuration)
	if err != nil {
		return nil, err
	}
	exit, err := phase("exit",
		pick(def.ExitEffect, cfg.ExitEffect),
		pick(def.ExitEasing, cfg.ExitEasing),
		pick(def.ExitDelay, cfg.ExitDelay),
		pick(def.ExitDuration, cfg.ExitDuration))
	if err != nil {
		return nil, err
	}
	if stagger < 0 {
		return nil, fmt.Errorf("negative staggerChildren: %g", stagger)
	}

	env := &Envelope{Entry: entry, Exit: exit}
	if children > 0 {
		env.ChildOffsets = make([]float64, children)
		for i := range env.ChildOffsets {
			env.ChildOffsets[i] = entry.Start + float64(i)*stagger
		}
	}
	return env, nil
}

func phase(name, effect, easing string, delay, duration float64) (Phase, error) {
	if delay < 0 {
		return Phase{}, fmt.Errorf("negative %s delay: %g", name, delay)
	}
	if duration < 0 {
		return Phase{}, fmt.Errorf("negative %s duration: %g", name, duration)
	}
	curve, err := effects.Easing(easing)
	if err != nil {
		return Phase{}, fmt.Errorf("%s easing: %w", name, err)
	}
	return Phase{
		Effect: effect,
		Known:  effects.IsKnownEffect(effect),
		Easing: easing,
		Start:  delay,
		End:    delay + duration,
		curve:  curve,
	}, nil
}

// pick returns the last non-nil value, or the default.
func pick[T any](def *T, vals ...*T) T {
	out := *def
	for _, v := range vals {
		if v != nil {
			out = *v
		}
	}
	return out
}
