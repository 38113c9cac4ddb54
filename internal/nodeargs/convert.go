package nodeargs

import "slices"

// asBool converts a validated value to bool.
func asBool(name string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, &InvalidParameterTypeError{Name: name, Want: "a bool", Got: v}
	}
	return b, nil
}

// asOptionalString converts a validated value to a string pointer. nil is
// the absence-marker and stays nil.
func asOptionalString(name string, v any) (*string, error) {
	switch s := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &s, nil
	case *string:
		if s == nil {
			return nil, nil
		}
		c := *s
		return &c, nil
	default:
		return nil, &InvalidParameterTypeError{Name: name, Want: "a string or nil", Got: v}
	}
}

// asMetadata converts a validated value to a metadata map. nil becomes an
// empty map.
func asMetadata(name string, v any) (map[string]any, error) {
	switch m := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		if m == nil {
			return map[string]any{}, nil
		}
		return m, nil
	case Params:
		if m == nil {
			return map[string]any{}, nil
		}
		return map[string]any(m), nil
	default:
		return nil, &InvalidParameterTypeError{Name: name, Want: "a map[string]any", Got: v}
	}
}

// asStrings converts a validated value to an ordered string sequence. nil
// becomes an empty sequence.
func asStrings(name string, v any) ([]string, error) {
	switch s := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		if s == nil {
			return []string{}, nil
		}
		return slices.Clone(s), nil
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, &InvalidParameterTypeError{Name: name, Want: "a sequence of strings", Got: v}
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, &InvalidParameterTypeError{Name: name, Want: "a sequence of strings", Got: v}
	}
}
