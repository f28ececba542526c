// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package itemsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/goccy/go-json"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-utils/pkg/core/model"
)

type ratedItemReq struct {
	Title  *string  `json:"title" binding:"required"`
	Rating *float64 `json:"rating" binding:"required"`
}

// ProductReq is the json representation of a model.Product which is
// shared with the catalog resource. Only missing fields are rejected,
// so an empty name may be passed to the use cases.
type ProductReq struct {
	Name  *string  `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

// Model converts pr to a model.Product.
func (pr ProductReq) Model() model.Product {
	return model.Product{Name: *pr.Name, Price: *pr.Price}
}

// MostExpensiveResp reports the selected product, or null if there
// were no products at all.
type MostExpensiveResp struct {
	Product *model.Product `json:"product"`
}

func (rs *resource) DserFilterItemsReq(c *gin.Context) []model.RatedItem {
	var req []ratedItemReq
	if ok := serdser.Bind(c, &req, binding.JSON); !ok {
		return nil
	}
	items := make([]model.RatedItem, 0, len(req))
	for _, r := range req {
		items = append(items, model.RatedItem{
			Title: *r.Title, Rating: *r.Rating,
		})
	}
	return items
}

// DserConcatItemsReq decodes the body as an array of arrays. The inner
// elements are kept as raw json, so they may have arbitrary types.
func (rs *resource) DserConcatItemsReq(
	c *gin.Context,
) ([][]json.RawMessage, bool) {
	var seqs [][]json.RawMessage
	if err := json.NewDecoder(c.Request.Body).Decode(&seqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
		return nil, false
	}
	return seqs, true
}

func (rs *resource) DserMostExpensiveProductReq(
	c *gin.Context,
) []model.Product {
	var req []ProductReq
	if ok := serdser.Bind(c, &req, binding.JSON); !ok {
		return nil
	}
	products := make([]model.Product, 0, len(req))
	for _, pr := range req {
		products = append(products, pr.Model())
	}
	return products
}
