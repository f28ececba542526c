// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package textrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-utils/pkg/core/model"
)

type rawFormatTextReq struct {
	Text *string `json:"text" binding:"required"`
	Mode string  `json:"mode" binding:"omitempty,oneof=default upper lower"`
}

type formatTextReq struct {
	Text string
	Mode model.CaseMode
}

type formatTextResp struct {
	Text string `json:"text"`
}

func (rs *resource) DserFormatTextReq(c *gin.Context) *formatTextReq {
	req := &rawFormatTextReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	mode, err := model.ParseCaseMode(req.Mode)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "mode", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &formatTextReq{Text: *req.Text, Mode: mode}
}

// rawProcessValueReq carries exactly one of its fields, expressing the
// two variants of the model.Value sum type.
type rawProcessValueReq struct {
	Text   *string  `json:"text"`
	Number *float64 `json:"number"`
}

type processValueResp struct {
	Result float64 `json:"result"`
}

func (rs *resource) DserProcessValueReq(c *gin.Context) model.Value {
	req := &rawProcessValueReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	switch {
	case req.Text != nil && req.Number != nil:
		serdser.AddErr(&errs, "text/number", "Only one of text or number is expected.")
	case req.Text != nil:
		return model.Text(*req.Text)
	case req.Number != nil:
		return model.Number(*req.Number)
	default:
		serdser.AddErr(&errs, "text/number", "One of text or number is required.")
	}
	c.JSON(http.StatusBadRequest, errs)
	return nil
}
