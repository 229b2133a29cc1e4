// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req, err := New(context.Background(), "", "http://example.com", nil)
		require.NoError(t, err)
		assert.Equal(t, "GET", req.Method)
		assert.Equal(t, "http://example.com", req.URL.String())
		require.NotNil(t, req.Header)
		assert.Equal(t, 0, req.Header.Len())
		assert.Nil(t, req.Content)
		assert.Equal(t, DefaultNumberOfRetries, req.NumberOfRetries)
		assert.Nil(t, req.BackOffPolicy)
		assert.Nil(t, req.UnsuccessfulResponseHandler)
		assert.True(t, req.FollowRedirects)
		assert.False(t, req.RetryOnTransportError)
		assert.True(t, req.ThrowOnUnsuccessfulResponse)
		assert.False(t, req.SuppressUserAgentSuffix)
		assert.False(t, req.EnableGZipContent)
		assert.Equal(t, DefaultContentLoggingLimit, req.ContentLoggingLimit)
		assert.True(t, req.LoggingEnabled)
	})
	t.Run("nil context", func(t *testing.T) {
		req, err := New(nil, "GET", "http://example.com", nil) //nolint:staticcheck
		assert.Nil(t, req)
		assert.EqualError(t, err, nilCtxMsg)
	})
	t.Run("invalid method", func(t *testing.T) {
		req, err := New(context.Background(), "GET METHOD", "http://example.com", nil)
		assert.Nil(t, req)
		assert.Error(t, err)
	})
	t.Run("invalid url", func(t *testing.T) {
		req, err := New(context.Background(), "GET", "http://example.com/%zz", nil)
		assert.Nil(t, req)
		assert.Error(t, err)
	})
	t.Run("empty port removed", func(t *testing.T) {
		req, err := New(context.Background(), "GET", "http://example.com:/a", nil)
		require.NoError(t, err)
		assert.Equal(t, "example.com", req.URL.Host)
	})
}

func TestContext(t *testing.T) {
	req := &Request{}
	assert.Equal(t, context.Background(), req.Context())

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	req2 := req.WithContext(ctx)
	assert.NotSame(t, req, req2)
	assert.Same(t, ctx, req2.Context())
	assert.Equal(t, context.Background(), req.Context())

	assert.Panics(t, func() { req.WithContext(nil) }) //nolint:staticcheck
}

func TestHandlerFunc(t *testing.T) {
	var gotReq *Request
	var gotResp *Response
	var gotSupports bool
	f := HandlerFunc(func(req *Request, resp *Response, supportsRetry bool) bool {
		gotReq, gotResp, gotSupports = req, resp, supportsRetry
		return true
	})
	req := &Request{}
	resp := &Response{StatusCode: 500}
	assert.True(t, f.HandleResponse(req, resp, true))
	assert.Same(t, req, gotReq)
	assert.Same(t, resp, gotResp)
	assert.True(t, gotSupports)
}
