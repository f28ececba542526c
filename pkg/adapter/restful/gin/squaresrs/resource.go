// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package squaresrs realizes the squares resource, allowing the
// delayed squaring REST API to be accepted and delegated to the
// squareuc use case. Each request waits for its own future.
package squaresrs

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-utils/pkg/core/cerr"
	"github.com/momeni/clean-utils/pkg/core/model"
	"github.com/momeni/clean-utils/pkg/core/usecase/squareuc"
)

type resource struct {
	squares *squareuc.UseCase
}

// Register instantiates a resource adapting the sq use case with
// GET requests to /api/cuweb/v1/squares/:n endpoint.
func Register(r *gin.RouterGroup, sq *squareuc.UseCase) {
	rs := &resource{squares: sq}
	r.GET("squares/:n", rs.Square)
}

type squareReq struct {
	N string `uri:"n" binding:"required,numeric"`
}

type squareResp struct {
	N      float64 `json:"n"`
	Result float64 `json:"result"`
}

// Square waits for the squaring future of the n path parameter.
// If the request context ends earlier, the waiting stops and a 503
// status code is reported, while the computation resolves on its own.
// Results which overflow the float64 range are reported as bad requests
// because they have no json representation.
func (rs *resource) Square(c *gin.Context) {
	req := &squareReq{}
	if ok := serdser.BindURI(c, req); !ok {
		return
	}
	n, err := strconv.ParseFloat(req.N, 64)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "n", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	ctx := c.Request.Context()
	v, err := rs.squares.Square(ctx, n).Await(ctx)
	switch {
	case errors.Is(err, model.ErrNegativeNumber):
		serdser.SerErr(c, cerr.BadRequest(err))
	case err != nil:
		serdser.SerErr(c, cerr.Unavailable(err))
	case math.IsInf(v, 0):
		serdser.SerErr(c, cerr.BadRequest(
			fmt.Errorf("square of %v overflows", n),
		))
	default:
		c.JSON(http.StatusOK, &squareResp{N: n, Result: v})
	}
}
