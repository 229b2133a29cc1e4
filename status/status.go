// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package status classifies HTTP response status codes for the
// transmit execution engine.
//
// The engine treats classification as a pure function of the status
// code: a code is either successful, a member of the redirect set, or
// neither. Nothing in this package carries state.
package status

// Status codes the execution engine refers to by name. The list is not
// exhaustive; any integer status code can be classified.
const (
	OK                 = 200
	MovedPermanently   = 301
	Found              = 302
	SeeOther           = 303
	NotModified        = 304
	TemporaryRedirect  = 307
	PermanentRedirect  = 308
	BadRequest         = 400
	Unauthorized       = 401
	Forbidden          = 403
	NotFound           = 404
	TooManyRequests    = 429
	ServerError        = 500
	BadGateway         = 502
	ServiceUnavailable = 503
	GatewayTimeout     = 504
)

// IsSuccess reports whether code indicates a successful HTTP response,
// i.e. whether it is in the 2xx range.
func IsSuccess(code int) bool {
	return 200 <= code && code <= 299
}

// IsRedirect reports whether code is one of the redirect status codes
// the execution engine is prepared to follow: 301 (Moved Permanently),
// 302 (Found), 303 (See Other), 307 (Temporary Redirect), or 308
// (Permanent Redirect).
//
// 304 (Not Modified) is a conditional-request response, not a
// redirect, and is never followed.
func IsRedirect(code int) bool {
	switch code {
	case MovedPermanently, Found, SeeOther, TemporaryRedirect, PermanentRedirect:
		return true
	default:
		return false
	}
}
