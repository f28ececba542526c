// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package productsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/clean-utils/pkg/adapter/db/postgres"
	"github.com/momeni/clean-utils/pkg/core/model"
)

// gProduct is the GORM counterpart of the model.Product which adds
// the database-only columns. The seq column keeps the insertion order.
type gProduct struct {
	Seq       int64     `gorm:"->;column:seq"`
	PID       uuid.UUID `gorm:"primaryKey;type:uuid;column:pid"`
	Name      string
	Price     float64
	CreatedAt time.Time `gorm:"->"`
}

func (gp *gProduct) TableName() string {
	return "products"
}

func (gp *gProduct) Model() model.Product {
	return model.Product{Name: gp.Name, Price: gp.Price}
}

const createSchemaSQL = `CREATE TABLE IF NOT EXISTS products (
    seq BIGSERIAL NOT NULL UNIQUE,
    pid UUID PRIMARY KEY,
    name TEXT NOT NULL,
    price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func CreateSchema[Q postgres.Queryer](ctx context.Context, q Q) error {
	if _, err := q.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("creating products table: %w", err)
	}
	return nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, pid uuid.UUID, p model.Product) error {
	gp := &gProduct{PID: pid, Name: p.Name, Price: p.Price}
	if err := q.GORM(ctx).Select("pid", "name", "price").Create(gp).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Product, error) {
	var gps []gProduct
	if err := q.GORM(ctx).Order("seq").Find(&gps).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	ps := make([]model.Product, 0, len(gps))
	for i := range gps {
		ps = append(ps, gps[i].Model())
	}
	return ps, nil
}
