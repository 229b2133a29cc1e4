// Copyright 2026 The transmit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transmit

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/gogama/transmit/request"
)

// ErrCancelled is reported by Future.Get when the future was
// cancelled before its task started running.
var ErrCancelled = errors.New("transmit: execution cancelled")

// ErrWaitTimeout is reported by Future.GetWithin when the retrieval
// timeout elapses before the execution completes. The execution
// itself keeps running; a later Get or GetWithin can still retrieve
// its outcome.
var ErrWaitTimeout = errors.New("transmit: wait timed out")

// A TaskRunner schedules a unit of work for eventual execution.
// Implementations decide where and when the task runs: on a fresh
// goroutine, on a bounded worker pool, or inline on the calling
// goroutine.
type TaskRunner interface {
	Run(task func())
}

// TaskRunnerFunc adapts an ordinary function to the TaskRunner
// interface.
type TaskRunnerFunc func(task func())

// Run invokes f with the task.
func (f TaskRunnerFunc) Run(task func()) {
	f(task)
}

// GoRunner is the default TaskRunner. It runs each task on its own
// new goroutine.
var GoRunner TaskRunner = TaskRunnerFunc(func(task func()) {
	go task()
})

// A Future is the pending outcome of an asynchronous execution
// started with Executor.ExecuteAsync.
type Future struct {
	clk    clock.Clock
	cancel context.CancelFunc

	done      chan struct{}
	mu        chan struct{} // 1-buffered, held while mutating state
	started   bool
	cancelled bool
	resp      *request.Response
	err       error
}

func newFuture(clk clock.Clock, cancel context.CancelFunc) *Future {
	f := &Future{
		clk:    clk,
		cancel: cancel,
		done:   make(chan struct{}),
		mu:     make(chan struct{}, 1),
	}
	f.mu <- struct{}{}
	return f
}

// Done returns a channel that is closed when the outcome of the
// execution is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Cancel requests cancellation of the execution.
//
// If the task has not yet started running, Cancel prevents it from
// ever starting, completes the future with ErrCancelled, and returns
// true. If the task is already running, Cancel cancels the request
// context, which typically interrupts the execution at its next
// blocking point, and returns false. Cancelling a completed or
// already-cancelled future is a no-op returning false.
func (f *Future) Cancel() bool {
	<-f.mu
	if f.cancelled || f.started {
		f.mu <- struct{}{}
		f.cancel()
		return false
	}
	f.cancelled = true
	f.err = ErrCancelled
	close(f.done)
	f.mu <- struct{}{}
	f.cancel()
	return true
}

// Get blocks until the execution completes and returns its outcome.
func (f *Future) Get() (*request.Response, error) {
	<-f.done
	return f.outcome()
}

// GetWithin blocks until the execution completes or the timeout
// elapses, whichever comes first. On timeout it returns
// ErrWaitTimeout; the execution continues in the background.
func (f *Future) GetWithin(timeout time.Duration) (*request.Response, error) {
	select {
	case <-f.done:
		return f.outcome()
	default:
	}
	t := f.clk.Timer(timeout)
	defer t.Stop()
	select {
	case <-f.done:
		return f.outcome()
	case <-t.C:
		return nil, ErrWaitTimeout
	}
}

func (f *Future) outcome() (*request.Response, error) {
	<-f.mu
	resp, err := f.resp, f.err
	f.mu <- struct{}{}
	return resp, err
}

// start transitions the future to running, reporting false if it was
// cancelled first.
func (f *Future) start() bool {
	<-f.mu
	if f.cancelled {
		f.mu <- struct{}{}
		return false
	}
	f.started = true
	f.mu <- struct{}{}
	return true
}

func (f *Future) complete(resp *request.Response, err error) {
	<-f.mu
	f.resp, f.err = resp, err
	close(f.done)
	f.mu <- struct{}{}
}

// ExecuteAsync schedules the request for execution on the given task
// runner and immediately returns a Future for its outcome. A nil
// runner uses GoRunner.
//
// The request's context is wrapped so that Future.Cancel can
// interrupt a running execution. The engine executes a copy of the
// request, with its own header container, so the caller's Request is
// never mutated by the asynchronous execution; the executed copy is
// reachable through Response.Request.
func (x *Executor) ExecuteAsync(req *request.Request, runner TaskRunner) *Future {
	if runner == nil {
		runner = GoRunner
	}
	ctx, cancel := context.WithCancel(req.Context())
	req = req.WithContext(ctx)
	req.Header = req.Header.Clone()
	f := newFuture(x.clock(), cancel)
	runner.Run(func() {
		if !f.start() {
			return
		}
		defer cancel()
		f.complete(x.Execute(req))
	})
	return f
}
