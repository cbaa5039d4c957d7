// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package catalog

type Option interface {
	applyOption(catalog *Catalog)
}

type catalogOption func(catalog *Catalog)

func (o catalogOption) applyOption(catalog *Catalog) {
	o(catalog)
}

// WithServices seeds the catalog with a predefined set of service
// identifiers and their templates. The entries are copied, so later changes
// to the given map do not affect the catalog.
//
// Identifiers should be of the form "servicename.vN"; entries under any
// other form are kept but cannot be reached, since lookups reject
// malformed identifiers before consulting the registrations.
func WithServices(services map[string]string) Option {
	return catalogOption(func(catalog *Catalog) {
		for id, template := range services {
			catalog.services[id] = template
		}
	})
}

// WithStrictSubstitutions makes every builder issued by the catalog reject
// substitution entries that its template does not reference, reporting them
// as unused substitution errors from the formaturl package.
func WithStrictSubstitutions() Option {
	return catalogOption(func(catalog *Catalog) {
		catalog.strict = true
	})
}
