// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "time"

// Stop is the reserved backoff duration meaning the policy declines
// further retries, independent of the remaining retry budget. When
// NextBackOff returns Stop, the execution terminates without
// consulting any other retry trigger for the current response.
const Stop time.Duration = -1

// A BackOffPolicy decides whether, and for how long, an execution
// pauses before retrying an unsuccessful response, keyed by status
// code.
//
// The execution engine calls Reset exactly once per execution, before
// the first transmission, and calls BackOffRequired and NextBackOff
// only on unsuccessful responses the UnsuccessfulResponseHandler did
// not claim. NextBackOff may carry state across calls (escalating the
// wait, for example) and may return Stop to give up on its own.
//
// A BackOffPolicy is consulted from a single goroutine per execution,
// but a policy shared between concurrently executing requests must be
// safe for concurrent use.
type BackOffPolicy interface {
	// Reset prepares the policy for a new execution. It must be
	// idempotent.
	Reset()
	// BackOffRequired reports whether the given status code calls for
	// a backoff retry. It must be a pure predicate.
	BackOffRequired(statusCode int) bool
	// NextBackOff returns the duration to pause before the next
	// attempt, or Stop if the policy declines further retries.
	NextBackOff() time.Duration
}

// An UnsuccessfulResponseHandler is given first refusal on every
// unsuccessful response, before backoff and redirect logic run.
//
// HandleResponse may mutate the request - adjusting headers, content
// or credentials in preparation for the next attempt - and such side
// effects are the whole point of the hook. The return value signals
// only "I have made this request retry-worthy": returning true claims
// the retry, suppressing backoff and redirect handling for this
// response; it does not imply anything was mutated. The supportsRetry
// argument reports whether the retry budget still structurally allows
// another attempt.
type UnsuccessfulResponseHandler interface {
	HandleResponse(req *Request, resp *Response, supportsRetry bool) bool
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as unsuccessful-response handlers.
type HandlerFunc func(req *Request, resp *Response, supportsRetry bool) bool

// HandleResponse calls f(req, resp, supportsRetry).
func (f HandlerFunc) HandleResponse(req *Request, resp *Response, supportsRetry bool) bool {
	return f(req, resp, supportsRetry)
}
