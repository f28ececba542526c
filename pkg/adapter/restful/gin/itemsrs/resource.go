// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package itemsrs realizes the items resource, allowing the rating
// filter, the sequences concatenation, and the most expensive product
// selection REST APIs to be accepted and delegated to the itemsuc
// use case package.
package itemsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/momeni/clean-utils/pkg/core/usecase/itemsuc"
)

type resource struct {
}

// Register instantiates a resource adapting the itemsuc functions
// with the relevant REST APIs including:
//  1. POST request to /api/cuweb/v1/items/filter
//     in order to keep the highly rated items,
//  2. POST request to /api/cuweb/v1/items/concat
//     in order to flatten a list of json arrays into one array,
//  3. POST request to /api/cuweb/v1/products/most-expensive
//     in order to find the first product with the highest price.
func Register(r *gin.RouterGroup) {
	rs := &resource{}
	r.POST("items/filter", rs.FilterItems)
	r.POST("items/concat", rs.ConcatItems)
	r.POST("products/most-expensive", rs.MostExpensiveProduct)
}

func (rs *resource) FilterItems(c *gin.Context) {
	items := rs.DserFilterItemsReq(c)
	if items == nil {
		return
	}
	c.JSON(http.StatusOK, itemsuc.FilterByRating(items))
}

func (rs *resource) ConcatItems(c *gin.Context) {
	seqs, ok := rs.DserConcatItemsReq(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, itemsuc.Concat[json.RawMessage](seqs...))
}

func (rs *resource) MostExpensiveProduct(c *gin.Context) {
	products := rs.DserMostExpensiveProductReq(c)
	if products == nil {
		return
	}
	resp := &MostExpensiveResp{}
	if p, ok := itemsuc.MostExpensive(products); ok {
		resp.Product = &p
	}
	c.JSON(http.StatusOK, resp)
}
