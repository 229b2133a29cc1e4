// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transmit

import (
	"fmt"

	"github.com/gogama/transmit/request"
)

// A ResponseError is returned by Executor.Execute when the final
// response of the execution is unsuccessful and the request has
// ThrowOnUnsuccessfulResponse set. It carries the final response, so
// callers that need the status code, headers or body of a failed
// exchange can still reach them.
type ResponseError struct {
	// Response is the final unsuccessful response of the execution.
	// Never nil.
	Response *request.Response
}

// Error returns a one-line description naming the status of the final
// response.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("transmit: unsuccessful response: %s", e.statusLine())
}

// StatusCode returns the status code of the final response.
func (e *ResponseError) StatusCode() int {
	return e.Response.StatusCode
}

// Header returns the named header of the final response.
func (e *ResponseError) Header(name string) string {
	return e.Response.Header.Get(name)
}

func (e *ResponseError) statusLine() string {
	if e.Response.Status != "" {
		return e.Response.Status
	}
	return fmt.Sprintf("%d", e.Response.StatusCode)
}
