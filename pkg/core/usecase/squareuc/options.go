// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package squareuc

import (
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for the squaring use case.
type Option func(uc *UseCase) error

// WithDelay option configures a squaring UseCase instance in order
// to wait as much as the given delay before completing each squaring
// computation. This option may be passed to the New() function.
func WithDelay(delay time.Duration) Option {
	return func(uc *UseCase) error {
		if d := int64(delay); d <= 0 {
			return fmt.Errorf("delay (%d) is not positive", d)
		}
		if uc.delay != 0 {
			return errors.New("delay is already configured")
		}
		uc.delay = delay
		return nil
	}
}

// WithObserver option registers o, so it is notified about completion
// of each squaring computation (e.g., in order to collect metrics).
func WithObserver(o Observer) Option {
	return func(uc *UseCase) error {
		if o == nil {
			return errors.New("observer is nil")
		}
		if uc.observer != nil {
			return errors.New("observer is already configured")
		}
		uc.observer = o
		return nil
	}
}
