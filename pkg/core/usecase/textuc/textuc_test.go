// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package textuc_test

import (
	"fmt"
	"testing"

	"github.com/momeni/clean-utils/pkg/core/model"
	"github.com/momeni/clean-utils/pkg/core/usecase/textuc"
	"github.com/stretchr/testify/assert"
)

func ExampleFormatString() {
	fmt.Println(textuc.FormatString("Hello", model.CaseUpper))
	fmt.Println(textuc.FormatString("Hello", model.CaseLower))
	fmt.Println(textuc.FormatString("Hello", model.CaseDefault))
	// Output:
	// HELLO
	// hello
	// HELLO
}

func TestFormatString(t *testing.T) {
	for _, tc := range []struct {
		name, input, expected string
		mode                  model.CaseMode
	}{
		{"upper", "Hello", "HELLO", model.CaseUpper},
		{"lower", "Hello", "hello", model.CaseLower},
		{"absent", "Hello", "HELLO", model.CaseDefault},
		{"empty upper", "", "", model.CaseUpper},
		{"empty lower", "", "", model.CaseLower},
		{"empty absent", "", "", model.CaseDefault},
		{"non-ascii", "Straße", "straße", model.CaseLower},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := textuc.FormatString(tc.input, tc.mode)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, got, textuc.FormatString(tc.input, tc.mode))
		})
	}
}
