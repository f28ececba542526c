// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package productsuc contains the products catalog UseCase which
// supports the following use cases:
//  1. Initializing the catalog schema,
//  2. Adding a product to the catalog,
//  3. Listing the catalog products,
//  4. Finding the most expensive product of the catalog.
package productsuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/momeni/clean-utils/pkg/core/cerr"
	"github.com/momeni/clean-utils/pkg/core/log"
	"github.com/momeni/clean-utils/pkg/core/model"
	"github.com/momeni/clean-utils/pkg/core/repo"
	"github.com/momeni/clean-utils/pkg/core/usecase/itemsuc"
)

// These errors indicate an unacceptable product in the Create method.
var (
	ErrEmptyName     = errors.New("product name is empty")
	ErrNegativePrice = errors.New("product price is negative")
)

// UseCase represents a products catalog use case. It holds a database
// connection pool and the products repository instance (to be guided
// with the DB pool).
type UseCase struct {
	pool       repo.Pool
	productsrp repo.Products
}

// New instantiates a products use case.
func New(p repo.Pool, r repo.Products) *UseCase {
	return &UseCase{pool: p, productsrp: r}
}

// InitSchema creates the products table in one transaction.
func (products *UseCase) InitSchema(ctx context.Context) error {
	return products.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return products.productsrp.Tx(tx).CreateSchema(ctx)
		})
	})
}

// Create validates and stores p in the catalog and returns its newly
// generated identifier. Invalid products are reported as bad requests.
func (products *UseCase) Create(ctx context.Context, p model.Product) (uuid.UUID, error) {
	switch {
	case p.Name == "":
		return uuid.Nil, cerr.BadRequest(ErrEmptyName)
	case p.Price < 0:
		return uuid.Nil, cerr.BadRequest(ErrNegativePrice)
	}
	pid := uuid.New()
	err := products.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return products.productsrp.Conn(c).Create(ctx, pid, p)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("creating product %q: %w", p.Name, err)
	}
	log.Info(ctx, "product created",
		slog.String("pid", pid.String()), slog.String("name", p.Name),
	)
	return pid, nil
}

// List returns all catalog products in their insertion order.
func (products *UseCase) List(ctx context.Context) (ps []model.Product, err error) {
	err = products.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ps, err = products.productsrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return ps, nil
}

// MostExpensive returns the catalog product with the greatest price,
// preferring the earliest inserted one among equally priced products.
// An empty catalog yields a nil product and a nil error.
func (products *UseCase) MostExpensive(ctx context.Context) (*model.Product, error) {
	ps, err := products.List(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := itemsuc.MostExpensive(ps)
	if !ok {
		return nil, nil
	}
	return &p, nil
}
