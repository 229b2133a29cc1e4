// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transmit

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/gogama/transmit/header"
	"github.com/gogama/transmit/redirect"
	"github.com/gogama/transmit/request"
	"github.com/gogama/transmit/status"
	"github.com/gogama/transmit/transport"
)

// Version is the release version of the transmit module.
const Version = "1.0.0"

// UserAgentSuffix is the engine-owned suffix appended to the
// serialized User-Agent header of every request, unless the request
// suppresses it. The gzip token advertises that the engine can stage
// gzip-encoded request content.
const UserAgentSuffix = "transmit/" + Version + " (gzip)"

const (
	nilTransportMsg     = "transmit: nil transport"
	negativeLogLimitMsg = "transmit: negative content logging limit"
)

// headers that no longer apply after a redirect rewrites the target
// URL, stripped before the next attempt.
var redirectSensitiveHeaders = []string{
	"Authorization",
	"If-Match",
	"If-None-Match",
	"If-Modified-Since",
	"If-Unmodified-Since",
	"If-Range",
}

// An Executor is the HTTP request execution engine. It composes a
// low-level transport with the retry, backoff and redirect logic that
// turns one logical request into however many physical transmissions
// it takes.
//
// Transport is the only required field. An Executor is safe for
// concurrent use by multiple goroutines, but the Request instances it
// executes are not: one Request belongs to one execution at a time.
type Executor struct {
	// Transport performs the physical HTTP exchanges. It must not be
	// nil.
	Transport transport.Transport

	// Logger receives attempt-level log records for requests with
	// logging enabled. The zero Logger discards everything.
	Logger zerolog.Logger

	// RateLimiter, if non-nil, returns a rate limiter to await before
	// each physical transmission of the given request, or nil for no
	// limit. The wait is bounded by the request context.
	RateLimiter func(*request.Request) *rate.Limiter

	// Clock supplies timers for backoff waits and future retrieval
	// timeouts. If nil, the wall clock is used. Tests substitute a
	// mock clock.
	Clock clock.Clock
}

// Execute runs the logical request to completion and returns the
// final response.
//
// Execute transmits the request, and on every unsuccessful outcome
// consults, in order, the request's unsuccessful-response handler, its
// backoff policy, and redirect handling, retrying while one of them
// claims the outcome and the shared retry budget
// (req.NumberOfRetries) is not exhausted. The first transmission
// always happens regardless of budget.
//
// The returned error is nil exactly when the returned response is a
// usable outcome: a successful response, or an unsuccessful one with
// req.ThrowOnUnsuccessfulResponse unset. Otherwise Execute returns a
// *ResponseError for an unsuccessful final response, the transport's
// own error unchanged for a fatal I/O failure, or an
// illegal-configuration error detected before any transmission.
//
// Execute mutates the request: the budget only ever decreases, and an
// accepted redirect rewrites URL (and possibly Method and Content) in
// place.
func (x *Executor) Execute(req *request.Request) (*request.Response, error) {
	if err := x.checkConfig(req); err != nil {
		return nil, err
	}

	if req.BackOffPolicy != nil {
		req.BackOffPolicy.Reset()
	}

	for attempt := 0; ; attempt++ {
		resp, err := x.transmit(req, attempt)
		if err != nil {
			if req.RetryOnTransportError && req.NumberOfRetries > 0 && req.Context().Err() == nil {
				x.log(req, func(e *zerolog.Event) {
					e.Int("attempt", attempt).AnErr("error", err).Msg("retrying transport error")
				})
				req.NumberOfRetries--
				continue
			}
			return nil, err
		}

		if resp.IsSuccess() {
			return resp, nil
		}

		handled, err := x.handleUnsuccessful(req, resp, attempt)
		if err != nil {
			_ = resp.Body.Close()
			return nil, err
		}
		if handled && req.NumberOfRetries > 0 {
			// The caller never sees this response, so its body stream
			// is the engine's to release.
			_ = resp.Body.Close()
			req.NumberOfRetries--
			continue
		}

		if req.ThrowOnUnsuccessfulResponse {
			return nil, &ResponseError{Response: resp}
		}
		return resp, nil
	}
}

func (x *Executor) checkConfig(req *request.Request) error {
	if x.Transport == nil {
		return errors.New(nilTransportMsg)
	}
	if req.ContentLoggingLimit < 0 {
		return errors.New(negativeLogLimitMsg)
	}
	switch req.Method {
	case transport.MethodGet, transport.MethodPut, transport.MethodPost, transport.MethodDelete:
		return nil
	case transport.MethodHead, transport.MethodPatch:
		if !x.Transport.Supports(req.Method) {
			return fmt.Errorf("transmit: method %s not supported by transport", req.Method)
		}
		return nil
	default:
		return fmt.Errorf("transmit: unsupported method %q", req.Method)
	}
}

// transmit stages and performs one physical transmission.
func (x *Executor) transmit(req *request.Request, attempt int) (*request.Response, error) {
	llr, err := x.Transport.BuildRequest(req.Method, req.URL.String())
	if err != nil {
		return nil, err
	}

	x.stageHeaders(req, llr)
	x.stageContent(req, llr)
	x.log(req, func(e *zerolog.Event) {
		e.Int("attempt", attempt).Str("method", req.Method).Stringer("url", req.URL)
		if c := req.Content; c != nil && req.ContentLoggingLimit > 0 {
			b := c.Bytes()
			if len(b) > req.ContentLoggingLimit {
				b = b[:req.ContentLoggingLimit]
			}
			e.Bytes("content", b).Int64("length", c.Length())
		}
		e.Msg("sending request")
	})

	ctx := req.Context()
	if x.RateLimiter != nil {
		if limiter := x.RateLimiter(req); limiter != nil {
			if err = limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
	}

	llResp, err := llr.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return wrapResponse(req, llResp), nil
}

// stageHeaders serializes the request headers onto the low-level
// request, applying the engine-owned User-Agent suffix rules: all
// explicit User-Agent contributions and the suffix are joined with
// single spaces into one wire pair, and the suffix alone is sent when
// the request declares no User-Agent, unless suppression is requested.
func (x *Executor) stageHeaders(req *request.Request, llr transport.LowLevelRequest) {
	userAgent := req.Header.Values("User-Agent")
	if !req.SuppressUserAgentSuffix {
		userAgent = append(userAgent, UserAgentSuffix)
	}
	seenUserAgent := false
	for _, p := range req.Header.Pairs() {
		if p.Name == "user-agent" {
			if !seenUserAgent {
				llr.AddHeader(p.Name, joinSpace(userAgent))
				seenUserAgent = true
			}
			continue
		}
		llr.AddHeader(p.Name, p.Value)
	}
	if !seenUserAgent && len(userAgent) > 0 {
		llr.AddHeader("user-agent", joinSpace(userAgent))
	}
}

func (x *Executor) stageContent(req *request.Request, llr transport.LowLevelRequest) {
	c := req.Content
	if c == nil {
		return
	}
	if req.EnableGZipContent {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, _ = io.Copy(zw, c.Reader()) // in-memory copy, cannot fail
		_ = zw.Close()
		llr.SetContent(c.MediaType(), "gzip", int64(buf.Len()), &buf)
		return
	}
	llr.SetContent(c.MediaType(), "", c.Length(), c.Reader())
}

// handleUnsuccessful resolves whether an unsuccessful response is
// retry-worthy, consulting the handler, the backoff policy, and
// redirect handling in order and short-circuiting on the first to
// claim it. None of the checks run once the retry budget is zero. A
// non-nil error aborts the execution (context cancelled during a
// backoff wait).
func (x *Executor) handleUnsuccessful(req *request.Request, resp *request.Response, attempt int) (bool, error) {
	supportsRetry := req.NumberOfRetries > 0
	if !supportsRetry {
		return false, nil
	}

	if h := req.UnsuccessfulResponseHandler; h != nil && h.HandleResponse(req, resp, supportsRetry) {
		return true, nil
	}

	if p := req.BackOffPolicy; p != nil && p.BackOffRequired(resp.StatusCode) {
		d := p.NextBackOff()
		if d == request.Stop {
			x.log(req, func(e *zerolog.Event) {
				e.Int("attempt", attempt).Int("status", resp.StatusCode).Msg("backoff policy stopped")
			})
			return false, nil
		}
		x.log(req, func(e *zerolog.Event) {
			e.Int("attempt", attempt).Int("status", resp.StatusCode).Dur("backoff", d).Msg("backing off")
		})
		if err := x.sleep(req.Context(), d); err != nil {
			return false, err
		}
		return true, nil
	}

	if req.FollowRedirects && status.IsRedirect(resp.StatusCode) {
		return x.followRedirect(req, resp, attempt), nil
	}

	return false, nil
}

// followRedirect rewrites the request for the redirect target. It
// reports false, leaving the request untouched, if the response lacks
// a usable Location header.
func (x *Executor) followRedirect(req *request.Request, resp *request.Response, attempt int) bool {
	loc := resp.Location()
	if loc == "" {
		return false
	}
	u, err := redirect.Resolve(req.URL, loc)
	if err != nil {
		return false
	}
	if req.Method == transport.MethodPost && redirect.DowngradesMethod(resp.StatusCode) {
		req.Method = transport.MethodGet
		req.Content = nil
	}
	for _, name := range redirectSensitiveHeaders {
		req.Header.Del(name)
	}
	x.log(req, func(e *zerolog.Event) {
		e.Int("attempt", attempt).Int("status", resp.StatusCode).Stringer("location", u).Msg("following redirect")
	})
	req.URL = u
	return true
}

// sleep suspends the execution for the backoff duration, or until the
// request context is cancelled, whichever comes first.
func (x *Executor) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := x.clock().Timer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (x *Executor) clock() clock.Clock {
	if x.Clock != nil {
		return x.Clock
	}
	return clock.New()
}

func (x *Executor) log(req *request.Request, fill func(e *zerolog.Event)) {
	if !req.LoggingEnabled {
		return
	}
	if e := x.Logger.Debug(); e.Enabled() {
		fill(e)
	}
}

func wrapResponse(req *request.Request, llResp *transport.LowLevelResponse) *request.Response {
	h := header.New()
	for _, p := range llResp.Headers {
		h.Add(p.Name, p.Value)
	}
	body := llResp.Body
	if body == nil {
		body = io.NopCloser(bytes.NewReader(nil))
	}
	return &request.Response{
		StatusCode: llResp.StatusCode,
		Status:     llResp.Status,
		Header:     h,
		Body:       body,
		Request:    req,
	}
}

func joinSpace(values []string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	}
	var b bytes.Buffer
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v)
	}
	return b.String()
}
