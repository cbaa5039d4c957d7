// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

// Package catalog maps named service identifiers to URL templates rooted at
// a single base address, so that callers can format request URLs for a
// host's services without scattering path templates across the codebase.
//
// A service identifier is of the form "servicename.vN", where N is the
// major version of the service's protocol. Each identifier maps to a path
// template in the syntax of the formaturl package, as in "/user/:name".
// Looking an identifier up yields either a ready-to-use
// [formaturl.Builder] or a fully formatted URL.
package catalog

import (
	"context"
	"sync"
)

// Catalog is the main type in this package, holding the known service
// identifiers of one host together with the base address their path
// templates are rooted at.
type Catalog struct {
	// must lock "mu" while interacting with these maps
	aliases  map[string]string
	services map[string]string
	mu       sync.Mutex

	base   string
	strict bool
}

// New returns a new catalog rooted at the given base address, initialized
// with the given options.
//
// Use [WithServices] to seed the catalog with a predefined set of service
// identifiers and their templates. Use [WithStrictSubstitutions] if URLs
// formatted through the catalog should reject substitution entries that
// their template does not reference.
//
// The base address is used verbatim; an empty base is acceptable for a
// catalog whose templates are all absolute URLs.
func New(base string, options ...Option) *Catalog {
	ret := &Catalog{
		aliases:  make(map[string]string),
		services: make(map[string]string),
		base:     base,
	}
	for _, opt := range options {
		opt.applyOption(ret)
	}
	return ret
}

// Register adds or replaces the template for the given service identifier,
// which must be of the form "servicename.vN". The template may be a path
// to join onto the catalog base or an absolute URL that stands alone.
func (c *Catalog) Register(id, template string) error {
	if _, _, err := parseServiceID(id); err != nil {
		return err
	}
	c.mu.Lock()
	c.services[id] = template
	c.mu.Unlock()
	return nil
}

// Alias accepts an alias and a target service identifier. When an endpoint
// is requested under the alias, the target's registration is consulted
// instead, which allows retiring an old identifier without breaking its
// callers. Both identifiers must be of the form "servicename.vN".
func (c *Catalog) Alias(alias, target string) error {
	if _, _, err := parseServiceID(alias); err != nil {
		return err
	}
	if _, _, err := parseServiceID(target); err != nil {
		return err
	}
	c.mu.Lock()
	c.aliases[alias] = target
	c.mu.Unlock()
	return nil
}

// Forget removes the registration for the given service identifier. If the
// identifier has no registration then this is a no-op.
func (c *Catalog) Forget(id string) {
	c.mu.Lock()
	delete(c.services, id)
	c.mu.Unlock()
}

// ForgetAlias removes a previously registered alias, leaving any direct
// registration under the same identifier reachable again. If the alias has
// no target then this is a no-op.
func (c *Catalog) ForgetAlias(alias string) {
	c.mu.Lock()
	delete(c.aliases, alias)
	c.mu.Unlock()
}

// ForgetAll is like [Catalog.Forget], but for all of the service
// identifiers that have registrations. Aliases are kept.
func (c *Catalog) ForgetAll() {
	c.mu.Lock()
	c.services = make(map[string]string)
	c.mu.Unlock()
}

// ServiceURL formats a complete URL for the given service identifier in a
// single call, resolving the service's template against the given
// substitutions and appending the given query parameters.
//
// Use [ContextWithResolveTrace] to derive a context that carries a
// [ResolveTrace] if you want to be notified about the outcome of each
// resolution, for logging or telemetry.
func (c *Catalog) ServiceURL(ctx context.Context, id string, substitutions, queryParams map[string]string) (string, error) {
	trace := resolveTraceFromContext(ctx)
	ctx = trace.resolveStart(ctx, id)

	builder, err := c.Endpoint(id)
	if err != nil {
		trace.resolveFailure(ctx, id, err)
		return "", err
	}
	u, err := builder.
		WithSubstitutes(substitutions).
		WithQueryParams(queryParams).
		FormatURL()
	if err != nil {
		trace.resolveFailure(ctx, id, err)
		return "", err
	}
	trace.resolveSuccess(ctx, id, u)
	return u, nil
}
