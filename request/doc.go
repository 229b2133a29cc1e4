// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Request (describes a logical
HTTP request) and Response (describes the outcome of one physical
transmission), together with the capability interfaces a Request can
carry into its execution: BackOffPolicy and UnsuccessfulResponseHandler.

A Request describes how to make a logical HTTP request, potentially
involving repeated physical transmissions if a retry trigger fires
after an unsuccessful attempt. The request owns the shared retry
budget (NumberOfRetries) consumed by every trigger - transport error
retry, backoff retry, and redirect - during one execution.

Create a request to hand to an executor:

	req, err := request.New(ctx, "GET", "https://example.com", nil)
	...
	resp, err := executor.Execute(req)
	...

A Request is mutable and owned exclusively by its caller until the
execution completes: redirect handling rewrites URL and Method in
place, and an UnsuccessfulResponseHandler may adjust headers or
credentials between attempts. Request instances are not safe for
concurrent use by multiple goroutines, but may be reused for
subsequent, independent executions; note that the retry budget is not
reset between executions unless the caller resets it.

A Response is an immutable snapshot of one physical transmission. The
executor hands out the final Response of an execution; callers must
not modify it.
*/
package request
