// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transmit provides an HTTP request execution engine: it turns a
configured logical request into one or more physical transmissions
against a pluggable low-level transport, deciding on every
unsuccessful outcome whether to retry, how to back off, and how to
follow a redirect, all under a single shared retry budget.

Create an Executor around a transport to begin executing requests:

	x := &transmit.Executor{Transport: tr}
	req, err := request.New(ctx, "GET", "https://www.example.com", nil)
	...
	resp, err := x.Execute(req)
	...

For control over pauses between retries, set a backoff policy from
package backoff on the request:

	req.BackOffPolicy = backoff.NewExponential(
		50*time.Millisecond, time.Second, time.Now())

To recover at the application level before generic retry policy runs -
for example to refresh an expired credential - install an
unsuccessful-response handler:

	req.UnsuccessfulResponseHandler = request.HandlerFunc(
		func(req *request.Request, resp *request.Response, supportsRetry bool) bool {
			if resp.StatusCode == status.Unauthorized && supportsRetry {
				req.Header.Set("Authorization", freshToken())
				return true
			}
			return false
		})

Exactly one handler and one backoff policy are consulted per request;
compose at the call site if broader extensibility is needed.

To run an execution without blocking the caller, use ExecuteAsync,
which submits the work to a TaskRunner and returns a Future:

	f := x.ExecuteAsync(req, nil)
	...
	resp, err := f.GetWithin(5 * time.Second)

Use a Factory to stamp out requests sharing common initialization.
*/
package transmit
