// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package header provides the ordered, case-insensitive header
// container used by the transmit execution engine, together with the
// codec that serializes it into wire name/value pairs for a low-level
// transport.
//
// Unlike the map-based http.Header from net/http, a Headers container
// remembers the order in which names were first set, and the wire
// codec emits pairs in that order. Values are held loosely typed so a
// single field can carry a string, a list of values, or a value with a
// declared wire representation (see Wirer).
package header

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// A Wirer declares an explicit wire representation for a header value.
//
// When the codec encounters a value implementing Wirer, it emits the
// WireString result instead of the value's natural string form. Use
// Wirer for enumerated values whose wire spelling differs from their
// name; values without a Wirer fall back to fmt.Stringer, then to the
// fmt package's default formatting.
type Wirer interface {
	WireString() string
}

// A Pair is one serialized header as it will be handed to the
// low-level transport. Name is always lower-cased.
type Pair struct {
	Name  string
	Value string
}

// Headers is an ordered mapping from case-insensitive header names to
// one or more values.
//
// The zero value is not usable; construct with New. Headers is not
// safe for concurrent use by multiple goroutines.
type Headers struct {
	names  []string                 // lower-cased, in first-insertion order
	values map[string][]interface{} // keyed by lower-cased name
}

// New returns an empty Headers container.
func New() *Headers {
	return &Headers{
		values: make(map[string][]interface{}),
	}
}

// Set replaces any existing values for the named header with value.
// Setting a nil value is allowed and causes the codec to omit the
// header, which is convenient for suppressing a value that a transport
// would otherwise default.
//
// Set panics if name is not a valid header field name.
func (h *Headers) Set(name string, value interface{}) {
	k := checkName(name)
	if _, ok := h.values[k]; !ok {
		h.names = append(h.names, k)
	}
	h.values[k] = []interface{}{value}
}

// Add appends value to the values already recorded for the named
// header.
//
// Add panics if name is not a valid header field name.
func (h *Headers) Add(name string, value interface{}) {
	k := checkName(name)
	if _, ok := h.values[k]; !ok {
		h.names = append(h.names, k)
	}
	h.values[k] = append(h.values[k], value)
}

// Del removes all values for the named header.
func (h *Headers) Del(name string) {
	k := strings.ToLower(name)
	if _, ok := h.values[k]; !ok {
		return
	}
	delete(h.values, k)
	for i, n := range h.names {
		if n == k {
			h.names = append(h.names[:i], h.names[i+1:]...)
			break
		}
	}
}

// Get returns the first wire value recorded for the named header, or
// the empty string if the header is absent or its value serializes to
// nothing.
func (h *Headers) Get(name string) string {
	vs := h.Values(name)
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Values returns all wire values recorded for the named header, in
// order, after applying the codec's value encoding. Nil values are
// omitted and sequence values are flattened.
func (h *Headers) Values(name string) []string {
	raw, ok := h.values[strings.ToLower(name)]
	if !ok {
		return nil
	}
	var vs []string
	for _, v := range raw {
		vs = appendWire(vs, v)
	}
	return vs
}

// Names returns the lower-cased header names in first-insertion order.
func (h *Headers) Names() []string {
	names := make([]string, len(h.names))
	copy(names, h.names)
	return names
}

// Len returns the number of distinct header names in the container.
func (h *Headers) Len() int {
	return len(h.names)
}

// Clone returns a deep copy of the container. Values themselves are
// shared, which is safe because the codec never mutates them.
func (h *Headers) Clone() *Headers {
	h2 := &Headers{
		names:  make([]string, len(h.names)),
		values: make(map[string][]interface{}, len(h.values)),
	}
	copy(h2.names, h.names)
	for k, vs := range h.values {
		vs2 := make([]interface{}, len(vs))
		copy(vs2, vs)
		h2.values[k] = vs2
	}
	return h2
}

// Pairs serializes the container into ordered wire pairs.
//
// Names are emitted lower-cased, in first-insertion order. A nil value
// is omitted. A slice or array value emits one pair per element, in
// element order. Each element is encoded via Wirer if implemented,
// else fmt.Stringer, else the fmt package's default format.
func (h *Headers) Pairs() []Pair {
	var pairs []Pair
	for _, name := range h.names {
		for _, v := range h.values[name] {
			for _, w := range appendWire(nil, v) {
				pairs = append(pairs, Pair{Name: name, Value: w})
			}
		}
	}
	return pairs
}

// SetBasicAuth sets the Authorization header to use HTTP Basic
// Authentication with the provided username and password, which are
// transmitted base64-encoded but not encrypted.
func (h *Headers) SetBasicAuth(username, password string) {
	auth := username + ":" + password
	h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(auth)))
}

func checkName(name string) string {
	if !httpguts.ValidHeaderFieldName(name) {
		panic(fmt.Sprintf("transmit/header: invalid header name %q", name))
	}
	return strings.ToLower(name)
}

func appendWire(vs []string, v interface{}) []string {
	if v == nil {
		return vs
	}
	switch x := v.(type) {
	case string:
		return append(vs, x)
	case []string:
		return append(vs, x...)
	case Wirer:
		return append(vs, x.WireString())
	case fmt.Stringer:
		return append(vs, x.String())
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i)
			if !elem.CanInterface() {
				continue
			}
			vs = appendWire(vs, elem.Interface())
		}
		return vs
	}
	return append(vs, fmt.Sprint(v))
}
