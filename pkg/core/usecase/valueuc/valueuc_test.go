// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package valueuc_test

import (
	"fmt"
	"testing"

	"github.com/momeni/clean-utils/pkg/core/model"
	"github.com/momeni/clean-utils/pkg/core/usecase/valueuc"
	"github.com/stretchr/testify/assert"
)

func ExampleProcess() {
	fmt.Println(valueuc.Process(model.Text("hello")))
	fmt.Println(valueuc.Process(model.Number(10)))
	// Output:
	// 5
	// 20
}

func TestProcess(t *testing.T) {
	for _, tc := range []struct {
		name     string
		value    model.Value
		expected float64
	}{
		{"text", model.Text("hello"), 5},
		{"empty text", model.Text(""), 0},
		{"multibyte text", model.Text("héllo"), 5},
		{"number", model.Number(10), 20},
		{"zero", model.Number(0), 0},
		{"negative", model.Number(-2.5), -5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, valueuc.Process(tc.value))
		})
	}
}

func TestProcessNilPanics(t *testing.T) {
	assert.Panics(t, func() { valueuc.Process(nil) })
}
