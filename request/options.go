// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package request

import "net/http"

type Option interface {
	applyOption(cfg *requestConfig)
}

type requestOption func(cfg *requestConfig)

func (o requestOption) applyOption(cfg *requestConfig) {
	o(cfg)
}

type requestConfig struct {
	header http.Header
	creds  Credentials
}

// WithHeader adds a header field to the request. Using the same name more
// than once appends rather than replaces, following [http.Header.Add].
func WithHeader(name, value string) Option {
	return requestOption(func(cfg *requestConfig) {
		if cfg.header == nil {
			cfg.header = http.Header{}
		}
		cfg.header.Add(name, value)
	})
}

// WithCredentials arranges for the request to be authenticated with the
// given credentials. If this option is not used then the request is
// prepared anonymously.
func WithCredentials(creds Credentials) Option {
	return requestOption(func(cfg *requestConfig) {
		cfg.creds = creds
	})
}
