// Package yamlconv converts YAML documents into wire values, so YAML
// configuration can be sent over channels that speak the JSON codec.
package yamlconv

import (
	"fmt"
	"math"

	"github.com/embedkit/jsonwire/value"

	"github.com/goccy/go-yaml"
)

// FromYAML parses one YAML document into a value, preserving mapping key
// order.
func FromYAML(d []byte) (*value.Value, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// FromAny converts a decoded YAML interface tree into a value.
func FromAny(v any) (*value.Value, error) {
	switch t := v.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.FromBool(t), nil
	case int:
		return value.FromInt(int64(t)), nil
	case int64:
		return value.FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows the wire int range", t)
		}
		return value.FromInt(int64(t)), nil
	case float64:
		return value.FromFloat(t), nil
	case string:
		return value.FromString(t), nil
	case []any:
		res := value.NewList()
		for _, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(ev)
		}
		return res, nil
	case yaml.MapSlice:
		res := value.NewMap()
		for _, item := range t {
			key, err := FromAny(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		return res, nil
	case map[string]any:
		// Unordered fallback; UseOrderedMap normally avoids this path.
		res := value.NewMap()
		for k, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Set(value.FromString(k), ev)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a wire value", v)
	}
}
