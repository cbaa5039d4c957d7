// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package values

import (
	"fmt"

	"github.com/google/go-querystring/query"
)

// FromStruct converts a struct with "url" field tags into a string map,
// following the tag conventions of [query.Values]: the tag names the key,
// and modifiers such as "omitempty" are honored.
//
// Fields that encode to more than one value, such as slices, fail with an
// error: substitutions and query parameters in this module are single
// valued. Fields that encode to no value at all, such as an omitted empty
// field, are left out of the result.
func FromStruct(v any) (map[string]string, error) {
	vs, err := query.Values(v)
	if err != nil {
		return nil, err
	}

	ret := make(map[string]string, len(vs))
	for k, values := range vs {
		if len(values) > 1 {
			return nil, fmt.Errorf("field %q has %d values; only single values are supported", k, len(values))
		}
		if len(values) == 0 {
			continue
		}
		ret[k] = values[0]
	}
	return ret, nil
}
