// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package squareuc_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/momeni/clean-utils/pkg/core/model"
	"github.com/momeni/clean-utils/pkg/core/usecase/squareuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testDelay = 20 * time.Millisecond

func newUseCase(t *testing.T, opts ...squareuc.Option) *squareuc.UseCase {
	t.Helper()
	opts = append([]squareuc.Option{squareuc.WithDelay(testDelay)}, opts...)
	uc, err := squareuc.New(opts...)
	require.NoError(t, err, "cannot create squaring use case")
	return uc
}

func TestSquareResolvesAfterDelay(t *testing.T) {
	uc := newUseCase(t)
	start := time.Now()
	f := uc.Square(context.Background(), 4)
	select {
	case <-f.Done():
		t.Fatal("future completed before its delay")
	default:
	}
	v, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, 16.0, v)
	assert.GreaterOrEqual(t, time.Since(start), testDelay)
}

func TestSquareRejectsNegative(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Square(context.Background(), -1).Result()
	require.ErrorIs(t, err, model.ErrNegativeNumber)
	assert.Equal(t, "Negative number not allowed", err.Error())
}

func TestSquareExactness(t *testing.T) {
	uc := newUseCase(t)
	inputs := []float64{0, 1, 2.5, 3, 1e6, 123456.789}
	futures := make([]*squareuc.Future, len(inputs))
	for i, n := range inputs {
		futures[i] = uc.Square(context.Background(), n)
	}
	for i, n := range inputs {
		v, err := futures[i].Result()
		require.NoError(t, err, "n=%v", n)
		assert.Equal(t, n*n, v, "n=%v", n)
	}
}

func TestSquareDefaultDelay(t *testing.T) {
	uc, err := squareuc.New()
	require.NoError(t, err)
	assert.Equal(t, squareuc.DefaultDelay, uc.Delay())

	start := time.Now()
	v, err := uc.Square(context.Background(), 4).Result()
	require.NoError(t, err)
	assert.Equal(t, 16.0, v)
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}

func TestAwaitStopsWaitingWithoutCancelling(t *testing.T) {
	uc := newUseCase(t)
	f := uc.Square(context.Background(), 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	// completed futures report their outcome even for a done ctx
	v, err = f.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
}

func TestSquareIgnoresCallerCancellation(t *testing.T) {
	uc := newUseCase(t)
	ctx, cancel := context.WithCancel(context.Background())
	f := uc.Square(ctx, 5)
	cancel()
	v, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, 25.0, v)
}

type recorder struct {
	mu   sync.Mutex
	errs []error
}

func (r *recorder) Observe(_ float64, err error, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func TestObserverIsNotified(t *testing.T) {
	r := &recorder{}
	uc := newUseCase(t, squareuc.WithObserver(r))
	_, _ = uc.Square(context.Background(), 2).Result()
	_, _ = uc.Square(context.Background(), -2).Result()
	assert.Eventually(t, func() bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		return len(r.errs) == 2
	}, time.Second, 5*time.Millisecond)
	r.mu.Lock()
	defer r.mu.Unlock()
	assert.ElementsMatch(t, []error{nil, model.ErrNegativeNumber}, r.errs)
}

func TestInvalidOptions(t *testing.T) {
	_, err := squareuc.New(squareuc.WithDelay(0))
	assert.Error(t, err)
	_, err = squareuc.New(squareuc.WithDelay(-time.Second))
	assert.Error(t, err)
	_, err = squareuc.New(
		squareuc.WithDelay(time.Second), squareuc.WithDelay(time.Second),
	)
	assert.Error(t, err)
	_, err = squareuc.New(squareuc.WithObserver(nil))
	assert.Error(t, err)
}
