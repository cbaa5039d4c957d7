// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package request

import (
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// Credentials represents a single set of credentials for requests to a
// particular host.
type Credentials interface {
	// PrepareRequest modifies the given request in-place to apply the
	// receiving credentials. The usual behavior of this method is to
	// add some sort of Authorization header to the request, but this
	// is flexible to allow for more esoteric schemes such as
	// "presigned URLs" where a signature is added to the URL query string.
	//
	// Implementers must not abuse this by modifying the request in ways
	// that are unrelated to authentication.
	PrepareRequest(req *http.Request) error
}

// BearerToken is a [Credentials] implementation that represents a single
// "bearer token", to be sent to the server via an Authorization header with
// the auth type set to "Bearer".
type BearerToken string

// Interface implementation assertion. Compilation will fail here if
// BearerToken does not fully implement this interface.
var _ Credentials = BearerToken("")

// PrepareRequest alters the given HTTP request by setting its Authorization
// header to the string "Bearer " followed by the encapsulated token.
func (t BearerToken) PrepareRequest(req *http.Request) error {
	if req.Header == nil {
		req.Header = http.Header{}
	}
	req.Header.Set("Authorization", "Bearer "+string(t))
	return nil
}

// Token returns the authentication token.
func (t BearerToken) Token() string {
	return string(t)
}

// OAuth2Credentials returns a [Credentials] implementation that obtains a
// token from the given source for each request it prepares, applying it in
// whatever style the token dictates. Sources that refresh expired tokens
// keep working here, since the token is fetched per request.
func OAuth2Credentials(source oauth2.TokenSource) Credentials {
	return oauth2Credentials{source}
}

type oauth2Credentials struct {
	source oauth2.TokenSource
}

func (c oauth2Credentials) PrepareRequest(req *http.Request) error {
	token, err := c.source.Token()
	if err != nil {
		return fmt.Errorf("failed to obtain auth token: %w", err)
	}
	token.SetAuthHeader(req)
	return nil
}
