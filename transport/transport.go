// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transport defines the capability interfaces a low-level HTTP
// transport must implement to be driven by the transmit execution
// engine.
//
// A transport performs exactly one physical HTTP exchange per
// LowLevelRequest, given a method, URL, headers and body. Everything
// above a single exchange - retries, backoff, redirects - is the
// engine's business; everything below it - connection pooling, TLS,
// DNS, protocol negotiation - is the transport's.
package transport

import (
	"context"
	"io"
	"strings"
)

// HTTP methods every Transport must support unconditionally. Support
// for MethodHead and MethodPatch is transport-dependent and must be
// probed with Transport.Supports before use.
const (
	MethodGet    = "GET"
	MethodPut    = "PUT"
	MethodPost   = "POST"
	MethodDelete = "DELETE"
	MethodHead   = "HEAD"
	MethodPatch  = "PATCH"
)

// A Transport builds low-level requests for physical transmission.
//
// Implementations of Transport must be safe for concurrent use by
// multiple goroutines.
type Transport interface {
	// BuildRequest returns a new low-level request for one physical
	// HTTP exchange using the given method and absolute URL. The
	// returned request is single-use.
	BuildRequest(method, url string) (LowLevelRequest, error)

	// Supports reports whether the transport supports the given HTTP
	// method. Implementations must return true for MethodGet,
	// MethodPut, MethodPost and MethodDelete; MethodHead and
	// MethodPatch support varies by implementation.
	Supports(method string) bool
}

// A LowLevelRequest stages and executes one physical HTTP exchange.
//
// The execution engine populates the request with AddHeader and
// SetContent, then calls Execute exactly once.
type LowLevelRequest interface {
	// AddHeader stages one header name/value pair for transmission.
	// The engine calls AddHeader once per serialized wire pair, in
	// order, with lower-cased names.
	AddHeader(name, value string)

	// SetContent stages the request body. The mediaType and encoding
	// values correspond to the Content-Type and Content-Encoding
	// headers; either may be empty. A negative length means the length
	// is unknown and the transport should use a streaming transfer
	// encoding.
	SetContent(mediaType, encoding string, length int64, body io.Reader)

	// Execute performs the physical exchange and returns its outcome,
	// or an I/O error if the exchange could not be completed. The
	// context bounds the exchange; implementations should abandon the
	// exchange when it is cancelled.
	Execute(ctx context.Context) (*LowLevelResponse, error)
}

// A LowLevelResponse is the raw outcome of one physical HTTP exchange,
// before the execution engine wraps it into a request.Response.
type LowLevelResponse struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Status is the response status line message, e.g. "OK". It may be
	// empty if the transport does not surface it.
	Status string

	// Headers holds the response headers as ordered wire pairs.
	Headers []HeaderPair

	// Body is the response content stream. It may be nil for an empty
	// body. The engine assumes ownership: it closes the body of every
	// intermediate response it retries past, and ownership of the
	// final response's body passes to the caller.
	Body io.ReadCloser
}

// A HeaderPair is one response header as received on the wire.
type HeaderPair struct {
	Name  string
	Value string
}

// Header returns the first value of the named response header,
// matching case-insensitively, or the empty string if absent.
func (r *LowLevelResponse) Header(name string) string {
	for _, p := range r.Headers {
		if strings.EqualFold(p.Name, name) {
			return p.Value
		}
	}
	return ""
}
