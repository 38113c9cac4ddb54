// This file converts evaluated attribute values into the plain Go values a
// node parameter bag carries.

package hclparams

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ValueError reports an attribute value that cannot be carried in a node
// parameter bag. Path names the attribute and, for nested values, the
// element within it (e.g. "metadata.ports[1]").
type ValueError struct {
	Path   string
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("argument %q: %s", e.Path, e.Reason)
}

// paramValue converts the value of the attribute at path into a parameter
// value. A null value becomes nil, the absence-marker.
func paramValue(path string, v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, &ValueError{Path: path, Reason: "value is not known"}
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, &ValueError{Path: path, Reason: fmt.Sprintf("number does not fit a float64: %s", err)}
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		items := make([]any, 0)
		i := 0
		for it := v.ElementIterator(); it.Next(); i++ {
			_, elem := it.Element()
			item, err := paramValue(fmt.Sprintf("%s[%d]", path, i), elem)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil

	case ty.IsObjectType() || ty.IsMapType():
		fields := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			name := key.AsString()
			field, err := paramValue(path+"."+name, elem)
			if err != nil {
				return nil, err
			}
			fields[name] = field
		}
		return fields, nil

	default:
		return nil, &ValueError{Path: path, Reason: fmt.Sprintf("%s values cannot be node parameters", ty.FriendlyName())}
	}
}
