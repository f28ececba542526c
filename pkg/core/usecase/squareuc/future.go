// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package squareuc

import "context"

// Future represents the outcome of one delayed computation. It is
// completed exactly once, either by a value or by an error, and then
// its Done channel is closed. All methods are safe for concurrent use.
type Future struct {
	done chan struct{}
	val  float64
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// resolve and reject must be called at most once, in total.
// The val and err fields are written before closing done, so readers
// which wait on done observe them consistently.
func (f *Future) resolve(val float64) {
	f.val = val
	close(f.done)
}

func (f *Future) reject(err error) {
	f.err = err
	close(f.done)
}

// Done returns a channel which is closed when the computation
// completes, so Future may be used in select statements.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the computation completes and returns its value
// or its failure reason.
func (f *Future) Result() (float64, error) {
	<-f.done
	return f.val, f.err
}

// Await is like Result, but stops waiting when ctx is done and returns
// the ctx error in that case. The computation itself is not cancelled
// and its result may still be obtained later.
func (f *Future) Await(ctx context.Context) (float64, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
