// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package textrs realizes the text and value resources, allowing the
// text normalization and value processing REST APIs to be accepted and
// delegated to the textuc and valueuc use cases respectively.
package textrs

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-utils/pkg/core/cerr"
	"github.com/momeni/clean-utils/pkg/core/usecase/textuc"
	"github.com/momeni/clean-utils/pkg/core/usecase/valueuc"
)

type resource struct {
}

// Register instantiates a resource adapting the text and value use
// cases with the relevant REST APIs including:
//  1. POST request to /api/cuweb/v1/text/format
//     in order to normalize the letters case of a text,
//  2. POST request to /api/cuweb/v1/values/process
//     in order to measure a text or double a number.
func Register(r *gin.RouterGroup) {
	rs := &resource{}
	r.POST("text/format", rs.FormatText)
	r.POST("values/process", rs.ProcessValue)
}

func (rs *resource) FormatText(c *gin.Context) {
	req := rs.DserFormatTextReq(c)
	if req == nil {
		return
	}
	c.JSON(http.StatusOK, &formatTextResp{
		Text: textuc.FormatString(req.Text, req.Mode),
	})
}

func (rs *resource) ProcessValue(c *gin.Context) {
	v := rs.DserProcessValueReq(c)
	if v == nil {
		return
	}
	r := valueuc.Process(v)
	if math.IsInf(r, 0) {
		serdser.SerErr(c, cerr.BadRequest(
			fmt.Errorf("result of processing %v overflows", v),
		))
		return
	}
	c.JSON(http.StatusOK, &processValueResp{Result: r})
}
