// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package backoff provides implementations of request.BackOffPolicy,
// the pluggable strategy deciding whether and how long an execution
// pauses before retrying an unsuccessful response.
//
// NewExponential constructs the usual jittered exponential policy:
//
//	policy := backoff.NewExponential(50*time.Millisecond, time.Second, time.Now())
//	req.BackOffPolicy = policy
//
// By default the built-in policies require backoff only for status
// codes 500 (Internal Server Error) and 503 (Service Unavailable);
// wrap any policy with ForStatusCodes to change the trigger set:
//
//	req.BackOffPolicy = backoff.ForStatusCodes(policy, 429, 500, 503)
//
// A nil BackOffPolicy on a request disables backoff entirely; there is
// no "never" policy in this package.
package backoff
