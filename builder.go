// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package formaturl

// Builder accumulates the parts of a URL across several calls before a
// final [Builder.FormatURL]. The zero value is ready to use and formats to
// an empty base with no path or query.
//
// Builder has value semantics: each With method returns a modified copy and
// leaves its receiver unchanged, so a partially configured Builder can be
// held as a shared prefix and branched into several URLs without the
// branches interfering.
type Builder struct {
	base         string
	pathTemplate *string
	substitutes  map[string]string
	queryParams  map[string]string
	strict       bool
}

// New returns a Builder rooted at the given base URL. The base is kept
// verbatim, trailing slash and all, until formatting time.
func New(base string) Builder {
	return Builder{base: base}
}

// WithPathTemplate returns a copy of the Builder with the given path
// template set. Once a template is set it is always resolved during
// [Builder.FormatURL], even against an empty substitution map, so any
// placeholder in it must have a matching substitution by then.
func (b Builder) WithPathTemplate(template string) Builder {
	b.pathTemplate = &template
	return b
}

// WithSubstitutes returns a copy of the Builder with the given substitution
// map set, replacing any previous one. The map is stored without copying,
// so it will be necessary to provide a copy of the map if the caller wishes
// to continue modifying it after the call.
func (b Builder) WithSubstitutes(substitutes map[string]string) Builder {
	b.substitutes = substitutes
	return b
}

// WithQueryParams returns a copy of the Builder with the given query
// parameters set, replacing any previous ones. The map is stored without
// copying, so it will be necessary to provide a copy of the map if the
// caller wishes to continue modifying it after the call.
func (b Builder) WithQueryParams(params map[string]string) Builder {
	b.queryParams = params
	return b
}

// WithStrictSubstitutions returns a copy of the Builder that rejects
// substitution entries left unused by the path template, reporting them as
// [ErrUnusedSubstitution] from [Builder.FormatURL]. The default is to
// ignore unused entries.
func (b Builder) WithStrictSubstitutions() Builder {
	b.strict = true
	return b
}

// FormatURL assembles the configured parts into a final URL string.
//
// If a path template was set it is resolved against the substitution map
// first; a placeholder with no matching entry is reported as
// [ErrMissingSubstitution]. Without a template the base is kept verbatim
// and only the query string may be appended.
func (b Builder) FormatURL() (string, error) {
	var path string
	if b.pathTemplate != nil {
		var err error
		path, err = resolvePathTemplate(*b.pathTemplate, b.substitutes, b.strict)
		if err != nil {
			return "", err
		}
	} else if b.strict {
		// No template means no placeholder can consume any entry.
		if err := checkUnused(b.substitutes, nil); err != nil {
			return "", err
		}
	}
	return assemble(b.base, path, encodeQuery(b.queryParams)), nil
}
