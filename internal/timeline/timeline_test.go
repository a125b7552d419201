package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtmstudio/scenedirector/internal/director"
)

func TestBuildDefaults(t *testing.T) {
	env, err := Build(nil, 3)
	require.NoError(t, err)

	assert.Equal(t, "fade", env.Entry.Effect)
	assert.True(t, env.Entry.Known)
	assert.Equal(t, 0.0, env.Entry.Start)
	assert.InDelta(t, 0.8, env.Entry.End, 1e-9)
	assert.InDelta(t, 0.5, env.Exit.Duration(), 1e-9)

	require.Len(t, env.ChildOffsets, 3)
	assert.InDeltaSlice(t, []float64{0, 0.1, 0.2}, env.ChildOffsets, 1e-9)
	assert.InDelta(t, 1.0, env.Settled(), 1e-9)
}

func TestBuildFromConfig(t *testing.T) {
	cfg := &director.Config{
		EntryEffect:     director.String("warpIn"),
		EntryDelay:      director.Float(0.5),
		EntryDuration:   director.Float(1.0),
		EntryEasing:     director.String("linear"),
		ExitDelay:       director.Float(0.2),
		StaggerChildren: director.Float(0.25),
	}

	env, err := Build(cfg, 2)
	require.NoError(t, err)
	assert.False(t, env.Entry.Known)
	assert.Equal(t, 0.5, env.Entry.Start)
	assert.Equal(t, 1.5, env.Entry.End)
	assert.Equal(t, 0.2, env.Exit.Start)
	assert.Equal(t, []float64{0.5, 0.75}, env.ChildOffsets)
	assert.Equal(t, 1.75, env.Settled())
}

func TestAnimationDurationFallback(t *testing.T) {
	env, err := Build(&director.Config{AnimationDuration: director.Float(2)}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, env.Entry.Duration())
	assert.Equal(t, env.Entry.End, env.Settled())

	env, err = Build(&director.Config{AnimationDuration: director.Float(2), EntryDuration: director.Float(0.4)}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.4, env.Entry.Duration())
}

func TestEntryProgress(t *testing.T) {
	env, err := Build(&director.Config{
		EntryDuration: director.Float(4),
		EntryEasing:   director.String("easeInOutCubic"),
	}, 0)
	require.NoError(t, err)

	tests := []struct {
		time float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{1, 0.0625},
		{2, 0.5},
		{3, 0.9375},
		{4, 1},
		{5, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, env.EntryProgress(tt.time), 1e-9, "t=%v", tt.time)
	}
}

func TestZeroLengthPhase(t *testing.T) {
	p := Phase{Start: 1, End: 1}
	assert.Equal(t, 0.0, p.Progress(0.5))
	assert.Equal(t, 1.0, p.Progress(1))
}

func TestBuildErrors(t *testing.T) {
	tests := map[string]*director.Config{
		"negative delay":    {EntryDelay: director.Float(-1)},
		"negative duration": {ExitDuration: director.Float(-0.1)},
		"negative stagger":  {StaggerChildren: director.Float(-0.1)},
		"unknown easing":    {ExitEasing: director.String("wobble")},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Build(cfg, 1)
			assert.Error(t, err)
		})
	}

	_, err := Build(nil, -1)
	assert.Error(t, err)
}
