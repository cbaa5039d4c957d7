// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package formaturl

import "strings"

const upperhex = "0123456789ABCDEF"

// escape percent-encodes s for use as a substituted path value or as a
// query key or value.
//
// Only the RFC 3986 unreserved characters pass through: letters, digits,
// and "-", "_", ".", "~". Every other byte, including space, "/", "?",
// "#", "&", "=", "+", and each byte of a multi-byte UTF-8 sequence, becomes
// "%XX" with uppercase hexadecimal digits. Space therefore encodes as %20
// in both path and query positions, which keeps the output decodable by
// both url.PathUnescape and url.QueryUnescape.
//
// The stdlib escapers are close but not usable here: url.PathEscape leaves
// sub-delims such as "&" and "=" alone, and url.QueryEscape turns spaces
// into "+".
func escape(s string) string {
	hexCount := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			hexCount++
		}
	}
	if hexCount == 0 {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 2*hexCount)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			buf.WriteByte(c)
			continue
		}
		buf.WriteByte('%')
		buf.WriteByte(upperhex[c>>4])
		buf.WriteByte(upperhex[c&0xf])
	}
	return buf.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
