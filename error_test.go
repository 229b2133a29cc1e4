// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transmit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogama/transmit/header"
	"github.com/gogama/transmit/request"
)

func TestResponseError(t *testing.T) {
	h := header.New()
	h.Set("Retry-After", "120")
	err := &ResponseError{Response: &request.Response{
		StatusCode: 503,
		Status:     "Service Unavailable",
		Header:     h,
	}}

	assert.EqualError(t, err, "transmit: unsuccessful response: Service Unavailable")
	assert.Equal(t, 503, err.StatusCode())
	assert.Equal(t, "120", err.Header("Retry-After"))
	assert.Empty(t, err.Header("X-Missing"))
}

func TestResponseError_NoStatusLine(t *testing.T) {
	err := &ResponseError{Response: &request.Response{
		StatusCode: 418,
		Header:     header.New(),
	}}

	assert.EqualError(t, err, "transmit: unsuccessful response: 418")
}
