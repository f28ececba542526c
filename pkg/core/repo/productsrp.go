// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/clean-utils/pkg/core/model"
)

// ProductsConnQueryer is the set of products queries which may be
// run on a connection.
type ProductsConnQueryer interface {
	ProductsQueryer
}

// ProductsTxQueryer is the set of products queries which may be run
// in a transaction. Creation of the products table is only allowed in
// a transaction, so a partially created schema is never committed.
type ProductsTxQueryer interface {
	ProductsQueryer

	// CreateSchema creates the products table if it does not exist.
	CreateSchema(ctx context.Context) error
}

// ProductsQueryer contains the common products queries.
type ProductsQueryer interface {
	// Create inserts p with the given pid product identifier.
	Create(ctx context.Context, pid uuid.UUID, p model.Product) error

	// List returns all stored products in their insertion order.
	List(ctx context.Context) ([]model.Product, error)
}

// Products is the products repository. It wraps connections and
// transactions, so the products queries may be run on them.
type Products interface {
	Conn(Conn) ProductsConnQueryer
	Tx(Tx) ProductsTxQueryer
}
