// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level int

func (l level) String() string {
	return [...]string{"LOW", "HIGH"}[l]
}

type wireLevel int

func (l wireLevel) WireString() string {
	return [...]string{"lo", "hi"}[l]
}

func TestHeaders(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		h := New()
		h.Set("Foo", "bar")
		assert.Equal(t, "bar", h.Get("foo"))
		assert.Equal(t, "bar", h.Get("FOO"))
		h.Set("Foo", "baz")
		assert.Equal(t, []string{"baz"}, h.Values("foo"))
		assert.Equal(t, 1, h.Len())
	})
	t.Run("add", func(t *testing.T) {
		h := New()
		h.Add("Accept", "text/plain")
		h.Add("accept", "text/html")
		assert.Equal(t, []string{"text/plain", "text/html"}, h.Values("Accept"))
		assert.Equal(t, "text/plain", h.Get("Accept"))
	})
	t.Run("del", func(t *testing.T) {
		h := New()
		h.Set("A", "1")
		h.Set("B", "2")
		h.Del("a")
		assert.Equal(t, "", h.Get("A"))
		assert.Equal(t, []string{"b"}, h.Names())
		h.Del("missing") // no-op
		assert.Equal(t, 1, h.Len())
	})
	t.Run("invalid name panics", func(t *testing.T) {
		h := New()
		assert.Panics(t, func() { h.Set("bad name", "x") })
		assert.Panics(t, func() { h.Add("", "x") })
	})
	t.Run("clone is independent", func(t *testing.T) {
		h := New()
		h.Set("A", "1")
		h2 := h.Clone()
		h2.Set("A", "2")
		h2.Set("B", "3")
		assert.Equal(t, "1", h.Get("A"))
		assert.Equal(t, "", h.Get("B"))
		assert.Equal(t, "2", h2.Get("A"))
	})
}

func TestHeadersPairs(t *testing.T) {
	h := New()
	h.Set("Foo", "bar")
	h.Set("ObjNum", 5)
	h.Set("List", []string{"a", "b", "c"})
	h.Set("ObjList", []interface{}{"a2", "b2", "c2"})
	h.Set("R", [2]string{"a1", "a2"})
	h.Set("Accept-Encoding", nil)
	h.Set("Value", level(0))
	h.Set("OtherValue", wireLevel(1))
	h.Add("Foo", "qux")

	pairs := h.Pairs()
	require.Equal(t, []Pair{
		{"foo", "bar"},
		{"foo", "qux"},
		{"objnum", "5"},
		{"list", "a"},
		{"list", "b"},
		{"list", "c"},
		{"objlist", "a2"},
		{"objlist", "b2"},
		{"objlist", "c2"},
		{"r", "a1"},
		{"r", "a2"},
		{"value", "LOW"},
		{"othervalue", "hi"},
	}, pairs)

	// Nil-valued fields serialize to nothing but remain present.
	assert.Equal(t, "", h.Get("Accept-Encoding"))
	assert.Empty(t, h.Values("Accept-Encoding"))
}

func TestSetBasicAuth(t *testing.T) {
	h := New()
	h.SetBasicAuth("Aladdin", "open sesame")
	assert.Equal(t, "Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ==", h.Get("Authorization"))
}
