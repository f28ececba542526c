// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// CaseMode specifies how a text should be normalized regarding its
// letters case. It is a tri-state enum which its zero value represents
// an absent choice. The absent choice behaves exactly as CaseUpper, but
// it is kept distinct, so callers may report what was asked explicitly.
type CaseMode int

// Valid values for the CaseMode enum.
const (
	CaseDefault CaseMode = iota // zero value, no explicit choice

	CaseUpper // convert all letters to upper case
	CaseLower // convert all letters to lower case
)

// ErrUnknownCaseMode indicates that a given string may not be parsed
// as a valid case mode. It does not carry the invalid string because
// the caller of ParseCaseMode already knows about it.
var ErrUnknownCaseMode = errors.New("unknown case mode")

// CaseModeError indicates an invalid case mode ordinal.
type CaseModeError int

// Error implements the error interface, returning a string
// representation of the CaseModeError.
func (e CaseModeError) Error() string {
	return fmt.Sprintf("invalid case mode: %d", e)
}

// Validate returns nil if CaseMode value is valid. For invalid
// values, an instance of the CaseModeError will be returned.
func (m CaseMode) Validate() error {
	switch m {
	case CaseDefault, CaseUpper, CaseLower:
		return nil
	default:
		return CaseModeError(m)
	}
}

// String converts the CaseMode enum to a string, helping to serialize
// it for web clients. Invalid case mode causes a panic.
func (m CaseMode) String() string {
	switch m {
	case CaseDefault:
		return "default"
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	default:
		panic(CaseModeError(m))
	}
}

// ParseCaseMode parses the given string and returns a CaseMode.
// An empty string is parsed as CaseDefault because an omitted choice
// is the absent choice. For invalid strings, CaseDefault and
// ErrUnknownCaseMode will be returned.
func ParseCaseMode(m string) (CaseMode, error) {
	switch m {
	case "", "default":
		return CaseDefault, nil
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	default:
		return CaseDefault, ErrUnknownCaseMode
	}
}
