// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package values

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromStruct(t *testing.T) {
	t.Run("tagged fields", func(t *testing.T) {
		in := struct {
			Name   string `url:"name"`
			Active bool   `url:"active"`
			Page   int    `url:"page"`
		}{Name: "alex", Active: true, Page: 2}

		got, err := FromStruct(in)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		want := map[string]string{
			"name":   "alex",
			"active": "true",
			"page":   "2",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Error("wrong result\n" + diff)
		}
	})

	t.Run("omitempty fields are left out", func(t *testing.T) {
		in := struct {
			Name string `url:"name"`
			Q    string `url:"q,omitempty"`
		}{Name: "alex"}

		got, err := FromStruct(in)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		want := map[string]string{"name": "alex"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Error("wrong result\n" + diff)
		}
	})

	t.Run("slice field rejected", func(t *testing.T) {
		in := struct {
			Tags []string `url:"tags"`
		}{Tags: []string{"a", "b"}}

		_, err := FromStruct(in)
		if err == nil {
			t.Fatal("want error, got success")
		}
		if want := `field "tags" has 2 values`; !strings.Contains(err.Error(), want) {
			t.Fatalf("wrong error\ngot:  %s\nwant: %s", err.Error(), want)
		}
	})

	t.Run("non-struct rejected", func(t *testing.T) {
		if _, err := FromStruct(42); err == nil {
			t.Fatal("want error, got success")
		}
	})
}
