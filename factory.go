// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transmit

import (
	"context"

	"github.com/gogama/transmit/request"
	"github.com/gogama/transmit/transport"
)

// A Factory builds requests with shared configuration applied.
//
// Use a Factory when many requests share the same policies, headers
// or credentials: set them once in Initialize and every request the
// factory builds starts out configured. A Factory with a nil
// Initialize just builds plain requests.
type Factory struct {
	// Initialize, if non-nil, is invoked on every newly built request
	// before it is returned, typically to install a backoff policy, an
	// unsuccessful-response handler, default headers, or non-default
	// retry settings.
	Initialize func(req *request.Request)
}

// NewRequest builds a request with the given method, URL and content,
// applying the factory's initializer.
func (f *Factory) NewRequest(ctx context.Context, method, url string, content *request.Content) (*request.Request, error) {
	req, err := request.New(ctx, method, url, content)
	if err != nil {
		return nil, err
	}
	if f.Initialize != nil {
		f.Initialize(req)
	}
	return req, nil
}

// NewGet builds an initialized GET request.
func (f *Factory) NewGet(ctx context.Context, url string) (*request.Request, error) {
	return f.NewRequest(ctx, transport.MethodGet, url, nil)
}

// NewPost builds an initialized POST request carrying content.
func (f *Factory) NewPost(ctx context.Context, url string, content *request.Content) (*request.Request, error) {
	return f.NewRequest(ctx, transport.MethodPost, url, content)
}

// NewPut builds an initialized PUT request carrying content.
func (f *Factory) NewPut(ctx context.Context, url string, content *request.Content) (*request.Request, error) {
	return f.NewRequest(ctx, transport.MethodPut, url, content)
}

// NewDelete builds an initialized DELETE request.
func (f *Factory) NewDelete(ctx context.Context, url string) (*request.Request, error) {
	return f.NewRequest(ctx, transport.MethodDelete, url, nil)
}

// NewHead builds an initialized HEAD request.
func (f *Factory) NewHead(ctx context.Context, url string) (*request.Request, error) {
	return f.NewRequest(ctx, transport.MethodHead, url, nil)
}

// NewPatch builds an initialized PATCH request carrying content.
func (f *Factory) NewPatch(ctx context.Context, url string, content *request.Content) (*request.Request, error) {
	return f.NewRequest(ctx, transport.MethodPatch, url, content)
}
