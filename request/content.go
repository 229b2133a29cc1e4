// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"errors"
	"io"
)

const badBodyTypeMsg = "transmit/request: invalid type (for body use nil, " +
	"string, []byte, io.Reader or io.ReadCloser)"

// A Content is an immutable, re-readable request payload with a
// declared media type.
//
// Because retries re-stage and re-transmit the payload, Content
// buffers the whole body up front and hands out a fresh reader for
// every transmission.
type Content struct {
	mediaType string
	data      []byte
}

// NewContent buffers a generic body into a Content with the given
// media type.
//
// The body parameter may be nil, or it may be a string, []byte,
// io.Reader, or io.ReadCloser. An io.Reader is read to the end and
// buffered; an io.ReadCloser is additionally closed after buffering.
// A nil body produces a zero-length Content, which transmits an empty
// body with the declared media type.
func NewContent(mediaType string, body interface{}) (*Content, error) {
	data, err := bodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Content{mediaType: mediaType, data: data}, nil
}

// MediaType returns the declared media type, e.g. "application/json".
// It may be empty.
func (c *Content) MediaType() string {
	return c.mediaType
}

// Length returns the payload length in bytes.
func (c *Content) Length() int64 {
	return int64(len(c.data))
}

// Reader returns a new reader positioned at the start of the payload.
// Each call returns an independent reader, so one Content can be
// transmitted any number of times.
func (c *Content) Reader() io.Reader {
	return bytes.NewReader(c.data)
}

// Bytes returns the buffered payload. The caller must not modify the
// returned slice.
func (c *Content) Bytes() []byte {
	return c.data
}

func bodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		err = x.Close()
		if err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		return bodyBytes(io.NopCloser(x))
	default:
		return nil, errors.New(badBodyTypeMsg)
	}
}
