// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	formaturl "github.com/formaturl/formaturl"
)

// ErrEndpointNotDefined is returned when the catalog has no registration
// for the requested service.
type ErrEndpointNotDefined struct {
	base    string
	service string
}

// Error returns a customized error message.
func (e *ErrEndpointNotDefined) Error() string {
	if e.base == "" {
		return fmt.Sprintf("catalog does not define a %s service", e.service)
	}
	return fmt.Sprintf("catalog for %s does not define a %s service", e.base, e.service)
}

// ErrVersionNotSupported is returned when the catalog has a registration
// for the requested service but not for the requested major version.
type ErrVersionNotSupported struct {
	base    string
	service string
	version uint64
}

// Error returns a customized error message.
func (e *ErrVersionNotSupported) Error() string {
	if e.base == "" {
		return fmt.Sprintf("catalog does not support %s version %d", e.service, e.version)
	}
	return fmt.Sprintf("catalog for %s does not support %s version %d", e.base, e.service, e.version)
}

// Endpoint returns a [formaturl.Builder] preconfigured with the catalog
// base and the template registered for the given service identifier, which
// should be of the form "servicename.vN". The caller finishes the builder
// with its own substitutions and query parameters.
//
// A template registered as an absolute URL stands alone: the returned
// builder carries it without the catalog base, so formatting yields the
// template's own scheme and host.
func (c *Catalog) Endpoint(id string) (formaturl.Builder, error) {
	template, err := c.template(id)
	if err != nil {
		return formaturl.Builder{}, err
	}

	base := c.base
	if hasScheme(template) {
		base = ""
	}
	builder := formaturl.New(base).WithPathTemplate(template)
	if c.strict {
		builder = builder.WithStrictSubstitutions()
	}
	return builder, nil
}

// template looks up the registered template for id, following one level of
// alias indirection first.
func (c *Catalog) template(id string) (string, error) {
	svcName, version, err := parseServiceID(id)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if target, ok := c.aliases[id]; ok {
		// Alias validated the target identifier when it was registered.
		svcName, version, _ = parseServiceID(target)
		id = target
	}

	template, ok := c.services[id]
	if !ok {
		// See if we have a matching service as that would indicate
		// the service is known, but not at the requested version.
		for serviceID := range c.services {
			if strings.HasPrefix(serviceID, svcName+".") {
				return "", &ErrVersionNotSupported{
					base:    c.base,
					service: svcName,
					version: version,
				}
			}
		}

		// No registered services match the requested service.
		return "", &ErrEndpointNotDefined{base: c.base, service: svcName}
	}
	return template, nil
}

// hasScheme reports whether template is an absolute URL rather than a path
// to join onto the catalog base, by checking for a leading URI scheme.
func hasScheme(template string) bool {
	i := strings.Index(template, "://")
	if i <= 0 {
		return false
	}
	if c := template[0]; !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
		return false
	}
	for j := 1; j < i; j++ {
		c := template[j]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
			continue
		}
		if c == '+' || c == '-' || c == '.' {
			continue
		}
		return false
	}
	return true
}

func parseServiceID(id string) (string, uint64, error) {
	svcName, rest, ok := strings.Cut(id, ".")
	if !ok {
		return "", 0, fmt.Errorf("invalid service ID format (i.e. service.vN): %s", id)
	}

	rawVersion, ok := strings.CutPrefix(rest, "v")
	if !ok {
		return "", 0, fmt.Errorf("invalid service version: must be \"v\" followed by an integer major version number")
	}
	version, err := strconv.ParseUint(rawVersion, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid service version: %v", err)
	}

	return svcName, version, nil
}
