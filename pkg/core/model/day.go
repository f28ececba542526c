// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"strings"
)

// Day specifies the days of a week as a closed enum. The ordinal of
// each value is fixed by its declaration order, starting from Monday
// as zero and ending with Sunday as six. Although this enum is numeric,
// it is (de)serialized as a string in the adapter layer.
type Day int

// Valid values for the Day enum.
const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
	"Saturday", "Sunday",
}

// DayType is the classification of a Day as a working or resting day.
type DayType string

// Valid values for the DayType.
const (
	Weekday DayType = "Weekday"
	Weekend DayType = "Weekend"
)

// ErrUnknownDay indicates that a given string may not be parsed as a
// valid day name. Similar to other parsing errors, the invalid string
// is not included because the caller of ParseDay knows about it.
var ErrUnknownDay = errors.New("unknown day")

// DayError indicates an out of range Day ordinal.
type DayError int

// Error implements the error interface, returning a string
// representation of the DayError.
func (e DayError) Error() string {
	return fmt.Sprintf("invalid day: %d", e)
}

// Validate returns nil if d is one of the seven declared days.
// Otherwise, an instance of the DayError will be returned.
func (d Day) Validate() error {
	if d < Monday || d > Sunday {
		return DayError(d)
	}
	return nil
}

// String returns the English name of d. Invalid days are reported
// by their ordinal, so String never panics and can be logged safely.
func (d Day) String() string {
	if d.Validate() != nil {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Type classifies d as a Weekday if its ordinal is within the Monday
// to Friday inclusive range, and as a Weekend otherwise.
func (d Day) Type() DayType {
	if d >= Monday && d <= Friday {
		return Weekday
	}
	return Weekend
}

// ParseDay parses the English name of a day, as returned by the
// String method, ignoring its letters case.
// For unknown names, ErrUnknownDay is returned.
func ParseDay(s string) (Day, error) {
	for i, name := range dayNames {
		if strings.EqualFold(name, s) {
			return Day(i), nil
		}
	}
	return -1, ErrUnknownDay
}
