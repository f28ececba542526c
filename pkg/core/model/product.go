// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Product models a sellable item. Products are only compared by their
// Price, so two products with equal prices are considered as expensive
// as each other regardless of their names.
type Product struct {
	Name  string  `json:"name"`  // display name of the product
	Price float64 `json:"price"` // price in an unspecified currency
}

// RatedItem models a titled item with a numeric rating, e.g., a book
// or a movie which was reviewed by its readers or watchers.
type RatedItem struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
}
