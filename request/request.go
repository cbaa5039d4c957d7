// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

// Package request builds authenticated HTTP requests for URLs formatted by
// the formaturl package.
//
// The package deliberately stops short of being an HTTP client: it prepares
// [http.Request] values with headers and credentials applied, and the
// caller performs them with a client of their choosing. [DefaultClient]
// returns a reasonable client for callers that don't need to bring their
// own.
package request

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	// Arbitrary-but-small number to prevent runaway redirect loops. This
	// is used only by [DefaultClient].
	maxRedirects = 3

	// Arbitrary-but-small time limit to prevent UI "hangs" on unresponsive
	// hosts. This is used only by [DefaultClient].
	requestTimeout = 10 * time.Second
)

// New returns an HTTP request for the given method and URL, initialized
// with the given options.
//
// Use [WithHeader] to set header fields and [WithCredentials] to
// authenticate the request. If no credentials are provided then the request
// is prepared anonymously. The returned request carries ctx, so it honors
// its deadline and cancellation when performed.
func New(ctx context.Context, method, url string, body io.Reader, options ...Option) (*http.Request, error) {
	cfg := &requestConfig{}
	for _, opt := range options {
		opt.applyOption(cfg)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	for name, values := range cfg.header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	if cfg.creds != nil {
		if err := cfg.creds.PrepareRequest(req); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// Get is a convenience wrapper for [New] with the GET method and no body.
func Get(ctx context.Context, url string, options ...Option) (*http.Request, error) {
	return New(ctx, http.MethodGet, url, nil, options...)
}

// DefaultClient returns a new HTTP client suitable for performing requests
// built by this package, with a pooled transport, a total request timeout,
// and a cap on followed redirects.
//
// Each call returns a distinct client, so callers may adjust the returned
// client without affecting others. The details of its behavior are subject
// to change in future versions; callers with specific requirements should
// construct their own client instead.
func DefaultClient() *http.Client {
	return &http.Client{
		Transport: cleanhttp.DefaultPooledTransport(),
		Timeout:   requestTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return errors.New("too many redirects")
			}
			return nil
		},
	}
}
