// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package productsrs realizes the products catalog resource, allowing
// the products creation and query REST APIs to be accepted and
// delegated to the productsuc use case.
package productsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/itemsrs"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-utils/pkg/core/model"
	"github.com/momeni/clean-utils/pkg/core/usecase/productsuc"
)

type resource struct {
	products *productsuc.UseCase
}

// Register instantiates a resource adapting the products use case
// with the relevant REST APIs including:
//  1. POST request to /api/cuweb/v1/products
//     in order to store a new product,
//  2. GET request to /api/cuweb/v1/products
//     in order to list all products in their insertion order,
//  3. GET request to /api/cuweb/v1/products/most-expensive
//     in order to find the first stored product with highest price.
func Register(r *gin.RouterGroup, products *productsuc.UseCase) {
	rs := &resource{products: products}
	r.POST("products", rs.CreateProduct)
	r.GET("products", rs.ListProducts)
	r.GET("products/most-expensive", rs.MostExpensiveProduct)
}

type createProductResp struct {
	PID uuid.UUID `json:"pid"`
}

type listProductsResp struct {
	Products []model.Product `json:"products"`
}

func (rs *resource) CreateProduct(c *gin.Context) {
	req := &itemsrs.ProductReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	pid, err := rs.products.Create(c.Request.Context(), req.Model())
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, &createProductResp{PID: pid})
}

func (rs *resource) ListProducts(c *gin.Context) {
	ps, err := rs.products.List(c.Request.Context())
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if ps == nil {
		ps = []model.Product{}
	}
	c.JSON(http.StatusOK, &listProductsResp{Products: ps})
}

func (rs *resource) MostExpensiveProduct(c *gin.Context) {
	p, err := rs.products.MostExpensive(c.Request.Context())
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, &itemsrs.MostExpensiveResp{Product: p})
}
