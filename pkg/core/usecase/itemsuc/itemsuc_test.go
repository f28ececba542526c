// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package itemsuc_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/momeni/clean-utils/pkg/core/model"
	"github.com/momeni/clean-utils/pkg/core/usecase/itemsuc"
	"github.com/stretchr/testify/assert"
)

func ExampleConcat() {
	fmt.Println(itemsuc.Concat([]int{1, 2}, []int{3}, []int{}))
	fmt.Println(len(itemsuc.Concat[int]()))
	// Output:
	// [1 2 3]
	// 0
}

func TestFilterByRating(t *testing.T) {
	items := []model.RatedItem{
		{Title: "A", Rating: 5},
		{Title: "B", Rating: 3},
		{Title: "C", Rating: 4},
		{Title: "D", Rating: 3.99},
	}
	original := slices.Clone(items)

	got := itemsuc.FilterByRating(items)
	expected := []model.RatedItem{
		{Title: "A", Rating: 5},
		{Title: "C", Rating: 4},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("FilterByRating() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, original, items, "input must not be modified")
	assert.Equal(t, got, itemsuc.FilterByRating(items), "not idempotent")
}

func TestFilterByRatingEmpty(t *testing.T) {
	got := itemsuc.FilterByRating(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = itemsuc.FilterByRating([]model.RatedItem{{Title: "B", Rating: 3}})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestConcat(t *testing.T) {
	a, b, c := []int{1, 2}, []int{3}, []int{}
	got := itemsuc.Concat(a, b, c)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, []int{1, 2}, a)
	assert.Equal(t, []int{3}, b)

	got[0] = 100
	assert.Equal(t, 1, a[0], "result must not alias inputs")

	empty := itemsuc.Concat[string]()
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	words := itemsuc.Concat([]string{"x"}, nil, []string{"y", "z"})
	assert.Equal(t, []string{"x", "y", "z"}, words)
}

func TestConcatDoesNotAppendIntoInputCapacity(t *testing.T) {
	a := make([]int, 1, 10)
	a[0] = 1
	_ = itemsuc.Concat(a, []int{2})
	assert.Equal(t, []int{1, 2}, itemsuc.Concat(a, []int{2}))
	assert.Equal(t, 0, a[:2][1], "spare capacity of input must be intact")
}

func TestMostExpensive(t *testing.T) {
	products := []model.Product{
		{Name: "A", Price: 10},
		{Name: "B", Price: 20},
		{Name: "C", Price: 20},
	}
	original := slices.Clone(products)

	p, ok := itemsuc.MostExpensive(products)
	assert.True(t, ok)
	assert.Equal(t, model.Product{Name: "B", Price: 20}, p)
	assert.Equal(t, original, products)

	p, ok = itemsuc.MostExpensive([]model.Product{{Name: "X", Price: -1}})
	assert.True(t, ok)
	assert.Equal(t, "X", p.Name)
}

func TestMostExpensiveEmpty(t *testing.T) {
	p, ok := itemsuc.MostExpensive(nil)
	assert.False(t, ok)
	assert.Equal(t, model.Product{}, p)
}
