// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "errors"

// Value is a closed sum type which holds either a Text or a Number.
// The unexported isValue method seals the interface, so no other
// package may add a third variant.
type Value interface {
	isValue()
}

// Text is the textual variant of the Value sum type.
type Text string

// Number is the numeric variant of the Value sum type.
type Number float64

func (Text) isValue()   {}
func (Number) isValue() {}

// ErrNegativeNumber indicates that a computation which is only defined
// for non-negative numbers was asked to process a negative one.
var ErrNegativeNumber = errors.New("Negative number not allowed")
