// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package redirect computes the target URL of an HTTP redirect from
// the current request URL and a Location header value.
package redirect

import (
	"errors"
	"net/url"

	"github.com/gogama/transmit/status"
)

const emptyLocationMsg = "transmit/redirect: empty location"

// Resolve computes the next request URL from the current URL and the
// value of a redirect response's Location header.
//
// An absolute location (one with a scheme) replaces the current URL
// outright. A location beginning with a slash replaces the path from
// the host root. Any other location is resolved relative to the
// current URL's directory: it replaces the last path segment, and a
// trailing slash on the location is preserved, so resolving "z"
// against "http://some.org/a/b" yields "http://some.org/a/z" while
// "z/" yields "http://some.org/a/z/".
//
// Resolve returns an error if location is empty or not parseable as a
// URL reference. The current URL is never modified.
func Resolve(current *url.URL, location string) (*url.URL, error) {
	if location == "" {
		return nil, errors.New(emptyLocationMsg)
	}
	ref, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	return current.ResolveReference(ref), nil
}

// DowngradesMethod reports whether a redirect with the given status
// code requires the request method to be downgraded to GET, dropping
// the request body. Only 303 (See Other) carries that semantic: it
// directs the client to fetch the result of the original request with
// a GET.
func DowngradesMethod(code int) bool {
	return code == status.SeeOther
}
