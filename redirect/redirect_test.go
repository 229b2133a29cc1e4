// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package redirect

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		current  string
		location string
		expected string
	}{
		{"http://some.org/a/b", "z", "http://some.org/a/z"},
		{"http://some.org/a/b", "z/", "http://some.org/a/z/"},
		{"http://some.org/a/b", "/z", "http://some.org/z"},
		{"http://some.org/a/b", "x/z", "http://some.org/a/x/z"},
		{"http://some.org/a/b", "http://other.org/c", "http://other.org/c"},
		{"http://some.org/a/b/", "z", "http://some.org/a/b/z"},
		{"http://some.org", "/z", "http://some.org/z"},
		{"https://some.org/a?q=1", "b?r=2", "https://some.org/b?r=2"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.current+" -> "+testCase.location, func(t *testing.T) {
			current, err := url.Parse(testCase.current)
			require.NoError(t, err)
			next, err := Resolve(current, testCase.location)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, next.String())
			// The current URL must be left untouched.
			assert.Equal(t, testCase.current, current.String())
		})
	}
}

func TestResolveError(t *testing.T) {
	current, err := url.Parse("http://some.org/a/b")
	require.NoError(t, err)

	next, err := Resolve(current, "")
	assert.Nil(t, next)
	assert.EqualError(t, err, emptyLocationMsg)

	next, err = Resolve(current, "http://bad url^^^/%zz")
	assert.Nil(t, next)
	assert.Error(t, err)
}

func TestDowngradesMethod(t *testing.T) {
	assert.True(t, DowngradesMethod(303))
	assert.False(t, DowngradesMethod(301))
	assert.False(t, DowngradesMethod(302))
	assert.False(t, DowngradesMethod(307))
	assert.False(t, DowngradesMethod(308))
}
