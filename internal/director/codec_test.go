package director

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONKeepsUnknownKeys(t *testing.T) {
	in := []byte(`{
		"entryEffect": "slideUp",
		"parallaxIntensity": 0.25,
		"layerDepth": 3,
		"aiPromptSeed": "hero-2",
		"variants": [{"name": "a"}]
	}`)

	var cfg Config
	require.NoError(t, json.Unmarshal(in, &cfg))
	assert.Equal(t, "slideUp", *cfg.EntryEffect)
	assert.Equal(t, 0.25, *cfg.ParallaxIntensity)
	assert.Equal(t, 3, *cfg.LayerDepth)
	assert.Equal(t, "hero-2", cfg.Extra["aiPromptSeed"])
	assert.NotContains(t, cfg.Extra, "entryEffect")
	assert.True(t, cfg.Has("aiPromptSeed"))

	out, err := json.Marshal(cfg)
	require.NoError(t, err)

	var back Config
	require.NoError(t, json.Unmarshal(out, &back))
	if diff := cmp.Diff(&cfg, &back); diff != "" {
		t.Errorf("JSON round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONExtraCannotShadowNamedField(t *testing.T) {
	cfg := Config{
		TextColor: String("#111111"),
		Extra:     map[string]any{"textColor": "#222222", "custom": 1},
	}
	out, err := json.Marshal(cfg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Equal(t, "#111111", raw["textColor"])
	assert.Equal(t, 1.0, raw["custom"])
}

func TestJSONWithoutExtraMatchesPlainEncoding(t *testing.T) {
	out, err := json.Marshal(Config{ScrollSpeed: String("fast")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"scrollSpeed":"fast"}`, string(out))
}

func TestYAMLKeepsUnknownKeys(t *testing.T) {
	in := `
entryEffect: fade
blurOnScroll: true
mediaOpacity: 0.8
motionPreset: cinematic
`
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(in), &cfg))
	assert.Equal(t, "fade", *cfg.EntryEffect)
	assert.True(t, *cfg.BlurOnScroll)
	assert.Equal(t, 0.8, *cfg.MediaOpacity)
	assert.Equal(t, map[string]any{"motionPreset": "cinematic"}, cfg.Extra)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "motionPreset: cinematic")

	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	if diff := cmp.Diff(&cfg, &back); diff != "" {
		t.Errorf("YAML round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLEmptyConfigWithExtra(t *testing.T) {
	out, err := yaml.Marshal(Config{Extra: map[string]any{"b": 2, "a": "x"}})
	require.NoError(t, err)
	assert.Equal(t, "a: x\nb: 2\n", string(out))
}

func TestCloneIsDeep(t *testing.T) {
	cfg := Default()
	cfg.Extra = map[string]any{"list": []any{"x", map[string]any{"k": "v"}}}

	cp := cfg.Clone()
	if diff := cmp.Diff(cfg, cp); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	*cp.TextColor = "#123456"
	cp.Extra["list"].([]any)[1].(map[string]any)["k"] = "changed"

	assert.Equal(t, "#FFFFFF", *cfg.TextColor)
	assert.Equal(t, "v", cfg.Extra["list"].([]any)[1].(map[string]any)["k"])
	assert.Nil(t, (*Config)(nil).Clone())
}

func TestHas(t *testing.T) {
	cfg := &Config{Alignment: String("left"), Extra: map[string]any{"x": nil, "y": 0}}
	assert.True(t, cfg.Has("alignment"))
	assert.False(t, cfg.Has("bodySize"))
	assert.False(t, cfg.Has("x"))
	assert.True(t, cfg.Has("y"))
	assert.False(t, (*Config)(nil).Has("alignment"))
}

func TestYAMLNonStringKeysInExtra(t *testing.T) {
	in := `
textColor: "#FFFFFF"
keyframes:
  1: start
  2: end
  3:
    nested: {10: deep}
`
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(in), &cfg))

	want := map[string]any{
		"1": "start",
		"2": "end",
		"3": map[string]any{"nested": map[string]any{"10": "deep"}},
	}
	assert.Equal(t, want, cfg.Extra["keyframes"])

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"textColor": "#FFFFFF",
		"keyframes": {"1": "start", "2": "end", "3": {"nested": {"10": "deep"}}}
	}`, string(out))

	cp := cfg.Clone()
	cp.Extra["keyframes"].(map[string]any)["1"] = "changed"
	assert.Equal(t, "start", cfg.Extra["keyframes"].(map[string]any)["1"])
}

func TestCloneAndJSONWithAnyKeyedExtra(t *testing.T) {
	cfg := &Config{Extra: map[string]any{
		"keyframes": map[any]any{1: "start", 2: []any{map[any]any{true: "on"}}},
	}}

	cp := cfg.Clone()
	cp.Extra["keyframes"].(map[any]any)[1] = "changed"
	cp.Extra["keyframes"].(map[any]any)[2].([]any)[0].(map[any]any)[true] = "off"

	orig := cfg.Extra["keyframes"].(map[any]any)
	assert.Equal(t, "start", orig[1])
	assert.Equal(t, "on", orig[2].([]any)[0].(map[any]any)[true])

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"keyframes": {"1": "start", "2": [{"true": "on"}]}}`, string(out))
}

func TestResolveIsolatesAnyKeyedExtra(t *testing.T) {
	cfg := &Config{
		ParallaxIntensity: Float(0.5),
		ScaleOnScroll:     Bool(true),
		Extra:             map[string]any{"keyframes": map[any]any{1: "start"}},
	}

	res := Resolve(cfg)
	res.Resolved.Extra["keyframes"].(map[any]any)[1] = "changed"
	assert.Equal(t, "start", cfg.Extra["keyframes"].(map[any]any)[1])
}
