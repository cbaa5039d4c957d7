// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

// Package formaturl formats URLs for fetch requests from a base address, a
// path template containing named placeholders, a mapping of substitution
// values, and a mapping of query parameters.
//
// A placeholder is a ":" followed by a run of ASCII letters, digits, or
// underscores, as in "/user/:name". Each placeholder is replaced by the
// percent-encoded value registered under its name; literal template text is
// passed through untouched, and a ":" with no identifier after it is not a
// placeholder. Query parameters are encoded with the same character rules
// and appended after "?".
//
// The package offers two equivalent entry points: the [FormatURL] function
// for one-shot use, and the [Builder] for staged configuration:
//
//	url, err := formaturl.New("https://api.example.com/").
//		WithPathTemplate("/user/:name").
//		WithSubstitutes(map[string]string{"name": "alex"}).
//		WithQueryParams(map[string]string{"active": "true"}).
//		FormatURL()
//	// url == "https://api.example.com/user/alex?active=true"
//
// Both perform the same three steps: resolve the template, encode the query
// parameters, and join the pieces to the base with exactly one "/" between
// base and path. The base address itself is trusted as given; this package
// never validates schemes or hosts and never rewrites the base.
package formaturl

import "strings"

// FormatURL formats a URL from its parts in a single call.
//
// pathTemplate may contain ":name" placeholders, each replaced by the
// percent-encoded value of substitutions["name"]. A placeholder with no
// matching key fails with [*ErrMissingSubstitution] and no partial result.
// Substitution values apply only to path placeholders; they are never
// carried into the query string, and keys the template does not reference
// are ignored here (the [Builder] offers a strict mode for that).
//
// queryParams, when non-empty, are percent-encoded and appended as
// "?key=value&..." in lexicographic key order. Nil maps are fine for both
// arguments and mean "not provided".
//
// An empty pathTemplate returns the base untouched, trailing slash and all.
// A non-empty path is joined to the base with exactly one "/" regardless of
// whether the base ends or the path begins with one.
func FormatURL(base, pathTemplate string, substitutions, queryParams map[string]string) (string, error) {
	path, err := resolvePathTemplate(pathTemplate, substitutions, false)
	if err != nil {
		return "", err
	}
	return assemble(base, path, encodeQuery(queryParams)), nil
}

// assemble joins the base address, an already-resolved path, and an
// already-encoded query string into the final URL.
//
// The join point between base and a non-empty path carries exactly one "/":
// runs of slashes on either side collapse into it. An empty base leaves the
// path verbatim, so callers holding an absolute URL in the path position
// are not mangled. The query string, when non-empty, is attached after "?";
// an empty query adds nothing at all.
func assemble(base, path, query string) string {
	u := base
	switch {
	case path == "":
		// Nothing to join; the base keeps its trailing slash if it has one.
	case base == "":
		u = path
	default:
		u = strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
	}
	if query != "" {
		u += "?" + query
	}
	return u
}
