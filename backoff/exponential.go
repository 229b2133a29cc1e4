// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gogama/transmit/request"
	"github.com/gogama/transmit/status"
)

// DefaultGiveUp is the total prescribed backoff time after which a
// policy constructed by NewExponential returns request.Stop.
const DefaultGiveUp = 15 * time.Minute

// NewExponential constructs a backoff policy implementing an
// exponential backoff formula with optional jitter, requiring backoff
// for status codes 500 and 503, and giving up (returning request.Stop)
// once the waits it has prescribed within one execution total more
// than DefaultGiveUp.
//
// The formula implemented is the "Full Jitter" approach described in:
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter.
//
// Parameters base and max control the exponential calculation of the
// ceiling:
//
//	ceil := min(base * 2**n, max)
//
// where n is the number of waits already prescribed in the current
// execution. Base and max must be positive values, and max must be at
// least equal to base.
//
// Parameter jitter is used to generate a random number between 0 and
// ceil. To make a policy that does not jitter and simply prescribes
// ceil each time, pass nil for jitter. Otherwise you may specify
// either a random number generator seed value (as a time.Time, int, or
// int64) or a random number generator (as a rand.Source or *rand.Rand).
func NewExponential(base, max time.Duration, jitter interface{}) request.BackOffPolicy {
	return NewExponentialGiveUp(base, max, DefaultGiveUp, jitter)
}

// NewExponentialGiveUp is NewExponential with an explicit give-up
// bound: once the prescribed waits within one execution total more
// than giveUp, the policy returns request.Stop. A giveUp value of zero
// or less means the policy never stops on its own and leaves
// termination entirely to the retry budget.
func NewExponentialGiveUp(base, max, giveUp time.Duration, jitter interface{}) request.BackOffPolicy {
	if base < 1 {
		panic("transmit/backoff: base must be positive")
	}
	if max < base {
		panic("transmit/backoff: max must be at least base")
	}
	return &expPolicy{
		base:   base,
		max:    max,
		giveUp: giveUp,
		rand:   jitterToRand(jitter),
	}
}

type expPolicy struct {
	base   time.Duration
	max    time.Duration
	giveUp time.Duration
	rand   *rand.Rand

	lock       sync.Mutex
	n          int
	prescribed time.Duration
}

func (p *expPolicy) Reset() {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.n = 0
	p.prescribed = 0
}

func (p *expPolicy) BackOffRequired(statusCode int) bool {
	return defaultRequired(statusCode)
}

func (p *expPolicy) NextBackOff() time.Duration {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.giveUp > 0 && p.prescribed > p.giveUp {
		return request.Stop
	}

	exp := int64(1) << p.n
	if exp < 1 {
		exp = 1<<63 - 1
	}

	ceil := int64(p.base) * exp
	if ceil < int64(p.base) || int64(p.max) < ceil {
		ceil = int64(p.max)
	}

	duration := ceil
	if ceil > 0 && p.rand != nil {
		duration = p.rand.Int63n(ceil)
	}

	p.n++
	p.prescribed += time.Duration(duration)
	return time.Duration(duration)
}

// NewConstant constructs a backoff policy that always prescribes the
// same wait, requiring backoff for status codes 500 and 503. It never
// returns request.Stop, leaving termination to the retry budget.
func NewConstant(d time.Duration) request.BackOffPolicy {
	if d < 0 {
		panic("transmit/backoff: negative backoff")
	}
	return constPolicy(d)
}

type constPolicy time.Duration

func (p constPolicy) Reset() {}

func (p constPolicy) BackOffRequired(statusCode int) bool {
	return defaultRequired(statusCode)
}

func (p constPolicy) NextBackOff() time.Duration {
	return time.Duration(p)
}

// ForStatusCodes wraps a backoff policy, replacing the set of status
// codes for which it requires backoff. Reset and NextBackOff are
// forwarded to the wrapped policy unchanged.
func ForStatusCodes(p request.BackOffPolicy, codes ...int) request.BackOffPolicy {
	if p == nil {
		panic("transmit/backoff: nil policy")
	}
	codes2 := make([]int, len(codes))
	copy(codes2, codes)
	return &codesPolicy{BackOffPolicy: p, codes: codes2}
}

type codesPolicy struct {
	request.BackOffPolicy
	codes []int
}

func (p *codesPolicy) BackOffRequired(statusCode int) bool {
	for _, c := range p.codes {
		if statusCode == c {
			return true
		}
	}
	return false
}

func defaultRequired(statusCode int) bool {
	return statusCode == status.ServerError || statusCode == status.ServiceUnavailable
}

func jitterToRand(jitter interface{}) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		return nil
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("transmit/backoff: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		s = j
	default:
		panic("transmit/backoff: invalid jitter type")
	}
	return rand.New(s)
}
