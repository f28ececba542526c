// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package valueuc contains the value processing use case which
// dispatches over the model.Value sum type.
package valueuc

import (
	"fmt"
	"unicode/utf8"

	"github.com/momeni/clean-utils/pkg/core/model"
)

// Process returns the number of characters of a model.Text and the
// doubled value of a model.Number. Characters are counted as unicode
// code points, not as bytes.
// Since model.Value is sealed, no other variant may be passed, except
// a nil interface which is a programming error and causes a panic.
func Process(v model.Value) float64 {
	switch v := v.(type) {
	case model.Text:
		return float64(utf8.RuneCountInString(string(v)))
	case model.Number:
		return float64(v) * 2
	default:
		panic(fmt.Sprintf("unexpected value variant: %T", v))
	}
}
