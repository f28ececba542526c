// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package squareuc contains the delayed squaring use case. Each call
// schedules its own timer and reports its outcome through a Future,
// so callers may wait for it without blocking other concurrent work.
package squareuc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/momeni/clean-utils/pkg/core/log"
	"github.com/momeni/clean-utils/pkg/core/model"
)

// DefaultDelay is the delay of each squaring computation when no
// WithDelay option is passed to New.
const DefaultDelay = 1000 * time.Millisecond

// Observer is notified whenever a squaring computation completes.
// The err argument is nil for the resolved computations and holds the
// failure reason for the rejected ones. Observe is called from the
// timer goroutine, so implementations must be safe for concurrent use.
type Observer interface {
	Observe(n float64, err error, elapsed time.Duration)
}

// UseCase represents the delayed squaring use case. It holds no state
// across calls, except its immutable settings.
type UseCase struct {
	delay    time.Duration
	observer Observer
}

// New instantiates a squaring use case.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(opts ...Option) (*UseCase, error) {
	uc := &UseCase{}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.delay == 0 {
		uc.delay = DefaultDelay
	}
	return uc, nil
}

// Delay returns the configured delay of each computation.
func (sq *UseCase) Delay() time.Duration {
	return sq.delay
}

// Square schedules a computation which after the configured delay
// resolves with n*n if n is non-negative, or fails with the
// model.ErrNegativeNumber otherwise. It returns immediately.
// Each call arms an independent timer and there is no way to cancel it.
// The ctx is only used for logging, hence, its cancellation does not
// affect the scheduled computation.
func (sq *UseCase) Square(ctx context.Context, n float64) *Future {
	ctx = context.WithoutCancel(ctx)
	f := newFuture()
	start := time.Now()
	log.Debug(ctx, "squaring scheduled",
		slog.Float64("n", n), slog.Duration("delay", sq.delay),
	)
	time.AfterFunc(sq.delay, func() {
		var err error
		if n < 0 {
			err = model.ErrNegativeNumber
			f.reject(err)
		} else {
			f.resolve(n * n)
		}
		elapsed := time.Since(start)
		log.Debug(ctx, "squaring completed",
			slog.Float64("n", n), log.Err("err", err),
			slog.Duration("elapsed", elapsed),
		)
		if sq.observer != nil {
			sq.observer.Observe(n, err, elapsed)
		}
	})
	return f
}
