// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"context"
)

// ResolveTrace allows a caller of [Catalog.ServiceURL] to be notified about
// the outcome of each resolution, in case they want to generate log
// messages, telemetry traces, or similar.
//
// Use [ContextWithResolveTrace] to derive a [context.Context] containing an
// instance of this type, and use that context when calling
// [Catalog.ServiceURL].
//
// All of the function-typed fields may either be left as nil or set to a
// function with the specified signature. If nil then the call for the
// corresponding event will be skipped.
//
// ResolveStart returns its own [context.Context] that should be either
// exactly the context given or a child of that context. This can be used to
// track per-request values such as distributed tracing spans.
type ResolveTrace struct {
	// ResolveStart is called when a resolution is about to begin for a
	// specific service identifier.
	//
	// This should return a [context.Context] to be used for the rest of
	// the resolution, and it will then be passed as the context to either
	// ResolveSuccess or ResolveFailure once the resolution is complete to
	// allow terminating distributed tracing spans, etc.
	ResolveStart func(ctx context.Context, service string) context.Context

	// ResolveSuccess is called after a resolution is complete if the
	// result was successful, with the formatted URL.
	//
	// The given context has the same values as the one returned by the
	// earlier call to ResolveStart.
	ResolveSuccess func(ctx context.Context, service string, url string)

	// ResolveFailure is called after a resolution is complete if the
	// lookup or the formatting encountered an error.
	//
	// The given context has the same values as the one returned by the
	// earlier call to ResolveStart.
	ResolveFailure func(ctx context.Context, service string, err error)
}

func ContextWithResolveTrace(parent context.Context, trace *ResolveTrace) context.Context {
	return context.WithValue(parent, resolveTraceKey, trace)
}

func (t *ResolveTrace) resolveStart(ctx context.Context, service string) context.Context {
	if t.ResolveStart == nil {
		return ctx
	}
	return t.ResolveStart(ctx, service)
}

func (t *ResolveTrace) resolveSuccess(ctx context.Context, service, url string) {
	if t.ResolveSuccess == nil {
		return
	}
	t.ResolveSuccess(ctx, service, url)
}

func (t *ResolveTrace) resolveFailure(ctx context.Context, service string, err error) {
	if t.ResolveFailure == nil {
		return
	}
	t.ResolveFailure(ctx, service, err)
}

func resolveTraceFromContext(ctx context.Context) *ResolveTrace {
	trace, ok := ctx.Value(resolveTraceKey).(*ResolveTrace)
	if !ok {
		trace = noTrace
	}
	return trace
}

type resolveTraceKeyType string

const resolveTraceKey = resolveTraceKeyType("")

var noTrace = &ResolveTrace{}
