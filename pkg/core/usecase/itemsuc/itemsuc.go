// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package itemsuc contains the stateless use cases which operate on
// sequences of items, namely:
//  1. Filtering rated items by their rating,
//  2. Concatenating sequences of a uniform element type,
//  3. Selecting the most expensive product.
//
// None of these functions modify their arguments. Returned slices are
// always freshly allocated, so they never alias an input.
package itemsuc

import "github.com/momeni/clean-utils/pkg/core/model"

// MinRating is the inclusive lower bound of ratings which are kept by
// the FilterByRating function.
const MinRating = 4

// FilterByRating returns the items with a rating of at least MinRating,
// preserving their relative order. An empty input yields an empty
// (non-nil) slice.
func FilterByRating(items []model.RatedItem) []model.RatedItem {
	kept := make([]model.RatedItem, 0, len(items))
	for _, item := range items {
		if item.Rating >= MinRating {
			kept = append(kept, item)
		}
	}
	return kept
}

// Concat flattens seqs into one slice, keeping elements of each
// sequence in order and the sequences in the argument order.
// Calling it with no arguments yields an empty (non-nil) slice.
func Concat[T any](seqs ...[]T) []T {
	n := 0
	for _, s := range seqs {
		n += len(s)
	}
	flat := make([]T, 0, n)
	for _, s := range seqs {
		flat = append(flat, s...)
	}
	return flat
}

// MostExpensive scans products from left to right and returns the one
// with the greatest price. The current maximum is replaced only by
// a strictly greater price, so the first product among equally priced
// ones wins. For an empty input, ok is false which indicates absence
// and is not an error.
func MostExpensive(products []model.Product) (p model.Product, ok bool) {
	if len(products) == 0 {
		return model.Product{}, false
	}
	p = products[0]
	for _, candidate := range products[1:] {
		if candidate.Price > p.Price {
			p = candidate
		}
	}
	return p, true
}
