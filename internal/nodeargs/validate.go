// This file holds the generic validator that every node contract delegates to.
// The contracts differ only in their required names and defaults; presence
// and reject-unknown checks happen here, driven by the required-name list.
package nodeargs

import (
	"maps"
	"slices"
)

// Params is a bag of named node construction parameters.
type Params map[string]any

// Parameter names understood by the node contracts.
const (
	Ancestor   = "ancestor"
	Dirty      = "dirty"
	Filepath   = "filepath"
	Metadata   = "metadata"
	Comment    = "comment"
	Name       = "name"
	Parameters = "parameters"
	Enabled    = "enabled"
)

// Clone returns a shallow copy of p. A nil Params clones to an empty one.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	maps.Copy(out, p)
	return out
}

// Has reports whether name is present, even if its value is nil.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// setDefault stores value under name unless name is already present.
func (p Params) setDefault(name string, value any) {
	if !p.Has(name) {
		p[name] = value
	}
}

// Validate checks params against an ordered list of required names.
//
// Each required name is taken from params in order; the first one that is
// absent fails with *MissingRequiredParameterError. Any name left over once
// all required names are taken fails with *UnrecognizedParameterError. On
// success the result holds exactly the required names with their supplied
// values. params itself is left untouched.
func Validate(params Params, required []string) (Params, error) {
	validated, missing, extra := split(params, required)
	if missing != "" {
		return nil, &MissingRequiredParameterError{Name: missing}
	}
	if len(extra) > 0 {
		return nil, &UnrecognizedParameterError{Names: extra}
	}
	return validated, nil
}

// split partitions params into the required entries and the sorted list of
// names not in required. It stops at the first missing required name.
func split(params Params, required []string) (validated Params, missing string, extra []string) {
	remaining := params.Clone()
	validated = make(Params, len(required))
	for _, name := range required {
		value, ok := remaining[name]
		if !ok {
			return nil, name, nil
		}
		validated[name] = value
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		extra = slices.Sorted(maps.Keys(remaining))
	}
	return validated, "", extra
}
