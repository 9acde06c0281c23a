package remote

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/livegrid/internal/world"
)

// Decode converts one event payload into inbox messages. Names must be valid
// identifiers because they become variable names.
func Decode(payload any) ([]world.Message, error) {
	switch p := payload.(type) {
	case []any:
		var out []world.Message
		for i, item := range p {
			msgs, err := Decode(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, msgs...)
		}
		return out, nil
	case map[string]any:
		if name, ok := p["name"].(string); ok {
			if _, hasValue := p["value"]; hasValue && len(p) == 2 {
				m, err := message(name, p["value"])
				if err != nil {
					return nil, err
				}
				return []world.Message{m}, nil
			}
		}
		keys := make([]string, 0, len(p))
		for k := range p {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]world.Message, 0, len(keys))
		for _, k := range keys {
			m, err := message(k, p[k])
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported payload type %T", payload)
	}
}

func message(name string, v any) (world.Message, error) {
	if !hclsyntax.ValidIdentifier(name) {
		return world.Message{}, fmt.Errorf("invalid input name %q", name)
	}
	val, err := world.ValFromNative(v)
	if err != nil {
		return world.Message{}, fmt.Errorf("input %q: %w", name, err)
	}
	return world.Message{Name: name, Val: val}, nil
}
