// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"io"

	"github.com/gogama/transmit/header"
	"github.com/gogama/transmit/status"
)

// A Response is an immutable snapshot of the outcome of one physical
// transmission.
//
// The executor wraps every non-error transport outcome into a
// Response before deciding whether to retry. The Response returned
// from an execution is always the outcome of the final transmission.
// Callers must treat all fields as read-only.
type Response struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Status is the response status line message, e.g. "OK". It may
	// be empty if the transport does not surface one.
	Status string

	// Header contains the response headers.
	Header *header.Headers

	// Body is the response content stream. It is never nil; an empty
	// body reads immediately to EOF. The caller owns the stream and
	// should close it when done.
	Body io.ReadCloser

	// Request is the logical request this response answers. Note that
	// by the time the caller sees the Response, redirect handling may
	// have left the request's URL and Method different from their
	// values at the time this transmission was made.
	Request *Request
}

// IsSuccess reports whether the response status code indicates
// success (2xx).
func (r *Response) IsSuccess() bool {
	return status.IsSuccess(r.StatusCode)
}

// Location returns the value of the response's Location header, or
// the empty string if absent.
func (r *Response) Location() string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get("Location")
}
