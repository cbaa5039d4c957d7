// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

// Package values converts loosely-typed data into the flat string maps that
// the formaturl package consumes as substitutions and query parameters.
//
// Callers that already hold map[string]string values don't need this
// package; it exists for data arriving from JSON documents, tagged structs,
// or cty values, where the entries are not strings yet.
package values

import (
	"errors"
	"fmt"
	"strconv"
)

// FromAny converts a map of scalar values into a string map, rendering each
// value the way its type is conventionally written in a URL: booleans as
// "true"/"false" and numbers in decimal notation.
//
// Supported value types are string, bool, int, int64, uint64, and float64,
// which covers the types produced by decoding a JSON object into
// map[string]any. A nil value or a value of any other type fails with an
// error naming the offending key.
func FromAny(values map[string]any) (map[string]string, error) {
	ret := make(map[string]string, len(values))
	for k, v := range values {
		s, err := stringify(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", k, err)
		}
		ret[k] = s
	}
	return ret, nil
}

func stringify(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case nil:
		return "", errors.New("value is nil")
	default:
		return "", fmt.Errorf("unsupported type %T", v)
	}
}
