// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package productsrp implements the repo.Products interface for the
// PostgreSQL database, using GORM for its queries.
package productsrp

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/clean-utils/pkg/adapter/db/postgres"
	"github.com/momeni/clean-utils/pkg/core/model"
	"github.com/momeni/clean-utils/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (products *Repo) Conn(c repo.Conn) repo.ProductsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, pid uuid.UUID, p model.Product) error {
	return Create(ctx, cq.Conn, pid, p)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Product, error) {
	return List(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

func (products *Repo) Tx(tx repo.Tx) repo.ProductsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) CreateSchema(ctx context.Context) error {
	return CreateSchema(ctx, tq.Tx)
}

func (tq txQueryer) Create(ctx context.Context, pid uuid.UUID, p model.Product) error {
	return Create(ctx, tq.Tx, pid, p)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Product, error) {
	return List(ctx, tq.Tx)
}
