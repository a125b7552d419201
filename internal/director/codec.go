package director

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// plainConfig has Config's fields without its marshaling methods.
type plainConfig Config

// UnmarshalJSON decodes the named fields and keeps everything else in Extra.
func (c *Config) UnmarshalJSON(data []byte) error {
	var p plainConfig
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Config(p)
	c.Extra = extractExtra(raw)
	return nil
}

// MarshalJSON encodes the named fields followed by Extra. Extra keys that
// collide with named fields are dropped.
func (c Config) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(plainConfig(c))
	if err != nil || len(c.Extra) == 0 {
		return data, err
	}

	merged := make(map[string]any)
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range c.Extra {
		if IsKnownField(k) {
			continue
		}
		merged[k] = stringKeys(v)
	}
	return json.Marshal(merged)
}

// UnmarshalYAML decodes the named fields and keeps everything else in Extra.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var p plainConfig
	if err := value.Decode(&p); err != nil {
		return err
	}
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*c = Config(p)
	c.Extra = extractExtra(raw)
	return nil
}

// MarshalYAML emits the named fields in declaration order, then Extra keys
// sorted by name.
func (c Config) MarshalYAML() (any, error) {
	node := &yaml.Node{}
	if err := node.Encode(plainConfig(c)); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(c.Extra))
	for k := range c.Extra {
		if !IsKnownField(k) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return node, nil
	}
	sort.Strings(keys)

	node.Style = 0
	for _, k := range keys {
		keyNode := &yaml.Node{}
		keyNode.SetString(k)
		valNode := &yaml.Node{}
		if err := valNode.Encode(c.Extra[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

func extractExtra(raw map[string]any) map[string]any {
	var extra map[string]any
	for k, v := range raw {
		if IsKnownField(k) {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = stringKeys(v)
	}
	return extra
}

// stringKeys rewrites the map[any]any values yaml.v3 produces for mappings
// with non-string keys into map[string]any, recursively.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[fmt.Sprint(k)] = stringKeys(vv)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[k] = stringKeys(vv)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, vv := range t {
			s[i] = stringKeys(vv)
		}
		return s
	default:
		return v
	}
}
