// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package values

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// FromCty converts a cty object or map value into a string map, converting
// each attribute or element to [cty.String] under the cty conversion rules.
//
// The given value must be known and non-null, and so must each of its
// attributes; an attribute whose type has no conversion to string, such as
// a nested object, fails with an error naming it.
func FromCty(v cty.Value) (map[string]string, error) {
	if v.IsNull() {
		return nil, errors.New("value is null")
	}
	if !v.IsKnown() {
		return nil, errors.New("value is not yet known")
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("value must be an object or a map, not %s", ty.FriendlyName())
	}

	ret := make(map[string]string)
	for it := v.ElementIterator(); it.Next(); {
		key, val := it.Element()
		name := key.AsString()
		if val.IsNull() {
			return nil, fmt.Errorf("attribute %q is null", name)
		}
		if !val.IsKnown() {
			return nil, fmt.Errorf("attribute %q is not yet known", name)
		}
		s, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", name, err)
		}
		ret[name] = s.AsString()
	}
	return ret, nil
}
