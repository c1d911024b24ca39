package registry

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// AttrString reads a string attribute from a check's args object,
// returning def when the attribute is absent or the args are nil.
func AttrString(args cty.Value, name, def string) string {
	v, ok := attr(args, name)
	if !ok || v.Type() != cty.String {
		return def
	}
	return v.AsString()
}

// AttrBool reads a bool attribute with a default.
func AttrBool(args cty.Value, name string, def bool) bool {
	v, ok := attr(args, name)
	if !ok || v.Type() != cty.Bool {
		return def
	}
	return v.True()
}

// AttrInt reads a whole-number attribute with a default.
func AttrInt(args cty.Value, name string, def int) int {
	v, ok := attr(args, name)
	if !ok || v.Type() != cty.Number {
		return def
	}
	i, _ := v.AsBigFloat().Int64()
	return int(i)
}

func attr(args cty.Value, name string) (cty.Value, bool) {
	if args == cty.NilVal || args.IsNull() || !args.Type().IsObjectType() {
		return cty.NilVal, false
	}
	if !args.Type().HasAttribute(name) {
		return cty.NilVal, false
	}
	v := args.GetAttr(name)
	if v.IsNull() || !v.IsKnown() {
		return cty.NilVal, false
	}
	return v, true
}

// FromCty converts a cty.Value into a plain Go value (string, float64,
// bool, map[string]any, []any), for checks that pass structured arguments
// on to other systems.
func FromCty(val cty.Value) (any, error) {
	if !val.IsKnown() || val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			converted, err := FromCty(v)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = converted
		}
		return out, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var out []any
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			converted, err := FromCty(v)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported cty.Type for conversion: %s", ty.FriendlyName())
}
