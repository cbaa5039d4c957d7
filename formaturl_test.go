// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package formaturl

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestFormatURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		template string
		subs     map[string]string
		params   map[string]string
		want     string
		wantErr  string
	}{
		{
			name:     "substitution and query",
			base:     "https://api.example.com/",
			template: "/user/:name",
			subs:     map[string]string{"name": "alex"},
			params:   map[string]string{"active": "true"},
			want:     "https://api.example.com/user/alex?active=true",
		},
		{
			name:     "no slash on either side",
			base:     "https://api.example.com",
			template: "user/:name",
			subs:     map[string]string{"name": "alex"},
			want:     "https://api.example.com/user/alex",
		},
		{
			name:     "slash on both sides",
			base:     "https://api.example.com/",
			template: "/user/:name",
			subs:     map[string]string{"name": "alex"},
			want:     "https://api.example.com/user/alex",
		},
		{
			name:     "slash on base only",
			base:     "https://api.example.com/",
			template: "user/:name",
			subs:     map[string]string{"name": "alex"},
			want:     "https://api.example.com/user/alex",
		},
		{
			name:     "empty template keeps base verbatim",
			base:     "https://api.example.com/",
			template: "",
			want:     "https://api.example.com/",
		},
		{
			name:     "query on bare base",
			base:     "https://api.example.com",
			template: "",
			params:   map[string]string{"page": "2"},
			want:     "https://api.example.com?page=2",
		},
		{
			name:     "multiple placeholders",
			base:     "https://api.example.com",
			template: "/repos/:owner/:repo/issues",
			subs:     map[string]string{"owner": "golang", "repo": "go"},
			want:     "https://api.example.com/repos/golang/go/issues",
		},
		{
			name:     "repeated placeholder",
			base:     "https://api.example.com",
			template: "/:name/followers/:name",
			subs:     map[string]string{"name": "alex"},
			want:     "https://api.example.com/alex/followers/alex",
		},
		{
			name:     "space in query value",
			base:     "https://api.example.com",
			template: "/search",
			params:   map[string]string{"q": "a b"},
			want:     "https://api.example.com/search?q=a%20b",
		},
		{
			name:     "plus in substitution value",
			base:     "https://api.example.com",
			template: "/user/:name",
			subs:     map[string]string{"name": "alex+tes"},
			want:     "https://api.example.com/user/alex%2Btes",
		},
		{
			name:     "plus in query value",
			base:     "https://api.example.com/",
			template: "/user",
			params:   map[string]string{"id": "alex+tes"},
			want:     "https://api.example.com/user?id=alex%2Btes",
		},
		{
			name:     "unreferenced substitutions ignored",
			base:     "https://api.example.com",
			template: "/user",
			subs:     map[string]string{"id": "alex+tes"},
			want:     "https://api.example.com/user",
		},
		{
			name:     "unreserved characters pass through",
			base:     "https://api.example.com",
			template: "/user/:name",
			subs:     map[string]string{"name": "ok-1_2.3~4"},
			want:     "https://api.example.com/user/ok-1_2.3~4",
		},
		{
			name:     "non-ascii value escaped per byte",
			base:     "https://api.example.com",
			template: "/user/:name",
			subs:     map[string]string{"name": "café"},
			want:     "https://api.example.com/user/caf%C3%A9",
		},
		{
			name:     "query keys sorted",
			base:     "https://api.example.com",
			template: "/search",
			params:   map[string]string{"b": "2", "c": "3", "a": "1"},
			want:     "https://api.example.com/search?a=1&b=2&c=3",
		},
		{
			name:     "empty query map ignored",
			base:     "https://api.example.com",
			template: "/status",
			params:   map[string]string{},
			want:     "https://api.example.com/status",
		},
		{
			name:     "colon without identifier is literal",
			base:     "https://api.example.com",
			template: "/odd/path:",
			want:     "https://api.example.com/odd/path:",
		},
		{
			name:     "absolute template with empty base",
			base:     "",
			template: "https://other.example.com/health",
			want:     "https://other.example.com/health",
		},
		{
			name:     "missing substitution",
			base:     "https://api.example.com",
			template: "/user/:name",
			subs:     map[string]string{},
			wantErr:  `placeholder ":name" with no substitution value`,
		},
		{
			name:     "nil substitution map with placeholder",
			base:     "https://api.example.com",
			template: "/user/:name",
			wantErr:  `placeholder ":name" with no substitution value`,
		},
		{
			name:     "nil substitution map without placeholder",
			base:     "https://api.example.com",
			template: "/status",
			want:     "https://api.example.com/status",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := FormatURL(test.base, test.template, test.subs, test.params)
			if test.wantErr != "" {
				if err == nil {
					t.Fatalf("want error, got success with %s", got)
				}
				if !strings.Contains(err.Error(), test.wantErr) {
					t.Fatalf("wrong error\ngot:  %s\nwant: %s", err.Error(), test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got != test.want {
				t.Errorf("wrong result\ngot:  %s\nwant: %s", got, test.want)
			}
		})
	}
}

func TestFormatURLMissingIdentifier(t *testing.T) {
	_, err := FormatURL("https://api.example.com", "/user/:name", nil, nil)
	if err == nil {
		t.Fatal("want error, got success")
	}
	var missing *ErrMissingSubstitution
	if !errors.As(err, &missing) {
		t.Fatalf("wrong error type %T; want *ErrMissingSubstitution", err)
	}
	if got, want := missing.Identifier, "name"; got != want {
		t.Errorf("wrong identifier %q; want %q", got, want)
	}
}

func TestFormatURLRoundTrip(t *testing.T) {
	got, err := FormatURL(
		"https://api.example.com",
		"/user/:name",
		map[string]string{"name": "alex tes+1"},
		map[string]string{"q": "50% off & more"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("result does not parse: %s", err)
	}
	if want := "/user/alex tes+1"; u.Path != want {
		t.Errorf("wrong decoded path\ngot:  %s\nwant: %s", u.Path, want)
	}
	if got, want := u.Query().Get("q"), "50% off & more"; got != want {
		t.Errorf("wrong decoded query value\ngot:  %s\nwant: %s", got, want)
	}
}
