// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errReader struct{}

func (errReader) Read(_ []byte) (int, error) { return 0, errors.New("read failed") }

type errCloser struct{ io.Reader }

func (errCloser) Close() error { return errors.New("close failed") }

func TestNewContent(t *testing.T) {
	testCases := []struct {
		name     string
		body     interface{}
		expected []byte
	}{
		{"nil", nil, nil},
		{"string", "foo", []byte("foo")},
		{"bytes", []byte{1, 2, 3}, []byte{1, 2, 3}},
		{"reader", strings.NewReader("bar"), []byte("bar")},
		{"read closer", io.NopCloser(strings.NewReader("baz")), []byte("baz")},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			c, err := NewContent("text/plain", testCase.body)
			require.NoError(t, err)
			assert.Equal(t, "text/plain", c.MediaType())
			assert.Equal(t, int64(len(testCase.expected)), c.Length())
			assert.Equal(t, testCase.expected, c.Bytes())
		})
	}

	t.Run("bad type", func(t *testing.T) {
		c, err := NewContent("text/plain", 42)
		assert.Nil(t, c)
		assert.EqualError(t, err, badBodyTypeMsg)
	})
	t.Run("read error", func(t *testing.T) {
		c, err := NewContent("text/plain", errReader{})
		assert.Nil(t, c)
		assert.EqualError(t, err, "read failed")
	})
	t.Run("close error", func(t *testing.T) {
		c, err := NewContent("text/plain", errCloser{strings.NewReader("x")})
		assert.Nil(t, c)
		assert.EqualError(t, err, "close failed")
	})
}

func TestContentRereadable(t *testing.T) {
	c, err := NewContent("application/octet-stream", "payload")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		b, err := io.ReadAll(c.Reader())
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), b)
	}
}

func TestResponse(t *testing.T) {
	resp := &Response{StatusCode: 204}
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "", resp.Location())

	resp = &Response{StatusCode: 301}
	assert.False(t, resp.IsSuccess())
}
