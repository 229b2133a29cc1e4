// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"fmt"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/gogama/transmit/header"
)

const (
	// DefaultNumberOfRetries is the retry budget assigned to a new
	// Request by New.
	DefaultNumberOfRetries = 10
	// DefaultContentLoggingLimit is the content logging limit, in
	// bytes, assigned to a new Request by New.
	DefaultContentLoggingLimit = 0x4000
)

const nilCtxMsg = "transmit/request: nil context"

// A Request is a logical HTTP request: caller-supplied configuration
// plus the execution state that one execution of the request mutates.
//
// The field structure loosely mirrors the lower-level http.Request
// from net/http, but a Request is suitable for multiple physical
// transmissions: its Content is re-readable, and URL, Method and
// Header may be rewritten between attempts by redirect handling or by
// an UnsuccessfulResponseHandler.
//
// Like the http.Request structure, a Request has a context which
// bounds every physical transmission and every backoff wait of its
// execution.
type Request struct {
	// Method specifies the HTTP method. GET, PUT, POST and DELETE are
	// supported by every transport; HEAD and PATCH are probed against
	// the transport before any transmission.
	//
	// Redirect handling may downgrade Method to GET (see status code
	// 303, See Other).
	Method string

	// URL specifies the absolute URL to access. Redirect handling
	// rewrites URL in place when a redirect is accepted.
	URL *urlpkg.URL

	// Header contains the request header fields to be serialized for
	// transmission. It is never nil for a Request built by New.
	Header *header.Headers

	// Content is the optional request payload. It is immutable once
	// set and re-readable, so the same payload can be staged for every
	// retry. A nil Content means no request body.
	Content *Content

	// NumberOfRetries is the shared retry budget for one execution of
	// the request. Every retry trigger - transport error retry,
	// backoff retry, redirect - decrements the same budget, and once
	// it reaches zero no further retry trigger may fire.
	NumberOfRetries int

	// BackOffPolicy decides whether, and for how long, the execution
	// pauses before retrying an unsuccessful response. A nil policy
	// disables backoff entirely.
	BackOffPolicy BackOffPolicy

	// UnsuccessfulResponseHandler is given first refusal on every
	// unsuccessful response before backoff and redirect logic run. At
	// most one handler is consulted; compose at the call site if more
	// are needed. A nil handler disables the hook.
	UnsuccessfulResponseHandler UnsuccessfulResponseHandler

	// FollowRedirects directs the execution to follow redirect status
	// codes carrying a Location header. New sets it to true.
	FollowRedirects bool

	// RetryOnTransportError directs the execution to retry physical
	// transmissions that failed with a transport I/O error, subject to
	// the retry budget. New sets it to false, so transport errors are
	// fatal by default.
	RetryOnTransportError bool

	// ThrowOnUnsuccessfulResponse directs the execution to fail with a
	// *transmit.ResponseError when the final response is unsuccessful.
	// If false, the unsuccessful Response is returned normally for the
	// caller to inspect. New sets it to true.
	ThrowOnUnsuccessfulResponse bool

	// SuppressUserAgentSuffix prevents the engine-owned User-Agent
	// suffix from being appended to the serialized User-Agent header.
	SuppressUserAgentSuffix bool

	// EnableGZipContent directs the transmission pipeline to gzip the
	// request content and declare a gzip content encoding.
	EnableGZipContent bool

	// ContentLoggingLimit is the maximum number of content bytes
	// included in attempt log records. Zero disables content logging;
	// a negative limit is an illegal configuration. New sets it to
	// DefaultContentLoggingLimit.
	ContentLoggingLimit int

	// LoggingEnabled gates all attempt logging for this request. New
	// sets it to true; output still requires a logger on the executor.
	LoggingEnabled bool

	// ctx bounds the whole execution. It should only be modified by
	// copying the whole Request using WithContext.
	ctx context.Context
}

// New returns a new Request for the given method and absolute URL,
// carrying the optional content.
//
// An empty method means GET. The method must be a valid HTTP token.
// New applies the documented field defaults: a budget of
// DefaultNumberOfRetries, redirects followed, transport errors fatal,
// unsuccessful final responses surfaced as errors, and logging enabled
// with DefaultContentLoggingLimit.
func New(ctx context.Context, method, url string, content *Content) (*Request, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = "GET"
	}
	if !httpguts.ValidHeaderFieldName(method) {
		return nil, fmt.Errorf("transmit/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	return &Request{
		Method:                      method,
		URL:                         u,
		Header:                      header.New(),
		Content:                     content,
		NumberOfRetries:             DefaultNumberOfRetries,
		FollowRedirects:             true,
		ThrowOnUnsuccessfulResponse: true,
		ContentLoggingLimit:         DefaultContentLoggingLimit,
		LoggingEnabled:              true,
		ctx:                         ctx,
	}, nil
}

// Context returns the request's context. The context bounds the whole
// execution of the request, including backoff waits. To change the
// context, use WithContext.
//
// The returned context is always non-nil; it defaults to the
// background context.
func (r *Request) Context() context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of r with its context changed to
// ctx, which must be non-nil.
func (r *Request) WithContext(ctx context.Context) *Request {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	r2 := new(Request)
	*r2 = *r
	r2.ctx = ctx
	return r2
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
