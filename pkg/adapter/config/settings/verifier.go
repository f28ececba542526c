// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
	"fmt"
)

// RangeError indicates that a setting did not respect its Min or Max
// bounds, or the bounds themselves were inconsistent. Nil bounds are
// not enforced.
type RangeError[T cmp.Ordered] struct {
	Value    T
	Min, Max *T
	Reason   string
}

// Error implements the error interface, reporting the value, its
// bounds, and the violation reason.
func (e *RangeError[T]) Error() string {
	return fmt.Sprintf(
		"%v is out of [%s, %s]: %s",
		show(e.Value), bound(e.Min, "-inf"), bound(e.Max, "+inf"), e.Reason,
	)
}

func bound[T any](b *T, absent string) string {
	if b == nil {
		return absent
	}
	return show(*b)
}

// show formats v, preferring a String method with pointer receiver
// such as the one of Duration.
func show[T any](v T) string {
	if s, ok := any(&v).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// VerifyRange ensures that value is nil or falls in the [minb, maxb]
// inclusive range. A nil bound is taken as unlimited. The bounds are
// checked for consistency even if value is nil. Nothing is modified,
// so the caller may choose to reject or clamp a wrong value.
func VerifyRange[T cmp.Ordered](value, minb, maxb *T) *RangeError[T] {
	if minb != nil && maxb != nil && *minb > *maxb {
		return &RangeError[T]{
			Value: *minb, Min: minb, Max: maxb,
			Reason: "minimum is greater than maximum",
		}
	}
	if value == nil {
		return nil
	}
	switch v := *value; {
	case minb != nil && v < *minb:
		return &RangeError[T]{
			Value: v, Min: minb, Max: maxb, Reason: "less than minimum",
		}
	case maxb != nil && v > *maxb:
		return &RangeError[T]{
			Value: v, Min: minb, Max: maxb, Reason: "greater than maximum",
		}
	}
	return nil
}
