// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/momeni/clean-utils/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleCar() {
	c := model.NewCar("Toyota", 2020, "Corolla")
	fmt.Println(c.Info())
	fmt.Println(c.Model())
	// Output:
	// Make: Toyota, Year: 2020
	// Model: Corolla
}

func TestVehicleAndCarDescriptions(t *testing.T) {
	v := model.NewVehicle("Ford", 1908)
	assert.Equal(t, "Make: Ford, Year: 1908", v.Info())

	c := model.NewCar("Toyota", 2020, "Corolla")
	var d model.Describer = c
	assert.Equal(t, "Make: Toyota, Year: 2020", d.Info())
	assert.Equal(t, "Model: Corolla", c.Model())
	assert.Equal(t, "Toyota", c.Make())
	assert.Equal(t, 2020, c.Year())
	assert.Equal(t, "Corolla", c.Designation())

	// repeated calls do not alter the instance
	assert.Equal(t, c.Info(), c.Info())
	assert.Equal(t, model.NewCar("Toyota", 2020, "Corolla"), c)
}

func TestDayType(t *testing.T) {
	for _, tc := range []struct {
		day      model.Day
		expected model.DayType
	}{
		{model.Monday, model.Weekday},
		{model.Tuesday, model.Weekday},
		{model.Wednesday, model.Weekday},
		{model.Thursday, model.Weekday},
		{model.Friday, model.Weekday},
		{model.Saturday, model.Weekend},
		{model.Sunday, model.Weekend},
	} {
		t.Run(tc.day.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.day.Type())
			assert.NoError(t, tc.day.Validate())
		})
	}
	assert.Equal(t, model.Weekend, model.Day(7).Type())
	assert.Equal(t, model.Weekend, model.Day(-1).Type())
}

func TestDayOrdinals(t *testing.T) {
	assert.Equal(t, 0, int(model.Monday))
	assert.Equal(t, 4, int(model.Friday))
	assert.Equal(t, 6, int(model.Sunday))
}

func TestParseDay(t *testing.T) {
	d, err := model.ParseDay("saturday")
	require.NoError(t, err)
	assert.Equal(t, model.Saturday, d)

	d, err = model.ParseDay("Monday")
	require.NoError(t, err)
	assert.Equal(t, model.Monday, d)

	_, err = model.ParseDay("Funday")
	assert.ErrorIs(t, err, model.ErrUnknownDay)
}

func TestInvalidDay(t *testing.T) {
	err := model.Day(9).Validate()
	var de model.DayError
	require.True(t, errors.As(err, &de), "expected a DayError")
	assert.Equal(t, model.DayError(9), de)
	assert.Equal(t, "Day(9)", model.Day(9).String())
}

func TestCaseMode(t *testing.T) {
	for s, expected := range map[string]model.CaseMode{
		"":        model.CaseDefault,
		"default": model.CaseDefault,
		"upper":   model.CaseUpper,
		"lower":   model.CaseLower,
	} {
		m, err := model.ParseCaseMode(s)
		require.NoError(t, err, "parsing %q", s)
		assert.Equal(t, expected, m, "parsing %q", s)
	}
	_, err := model.ParseCaseMode("title")
	assert.ErrorIs(t, err, model.ErrUnknownCaseMode)
	assert.Error(t, model.CaseMode(5).Validate())
	assert.Panics(t, func() { _ = model.CaseMode(5).String() })
}

func TestNegativeNumberMessage(t *testing.T) {
	assert.Equal(t, "Negative number not allowed", model.ErrNegativeNumber.Error())
}

func TestSemVer(t *testing.T) {
	var sv model.SemVer
	require.NoError(t, sv.UnmarshalText([]byte("1.2")))
	assert.Equal(t, model.SemVer{1, 2, 0}, sv)
	assert.Equal(t, "1.2.0", sv.String())
	assert.Error(t, sv.UnmarshalText([]byte("1.2.3.4")))
	assert.Error(t, sv.UnmarshalText([]byte("1.x")))
	assert.Equal(t, model.SemVer{1, 2, 0}, sv, "must stay unchanged")
}
