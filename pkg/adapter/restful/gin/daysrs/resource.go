// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package daysrs realizes the days resource which classifies a day of
// the week as a weekday or a weekend day.
package daysrs

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-utils/pkg/core/log"
	"github.com/momeni/clean-utils/pkg/core/model"
)

type resource struct {
}

// Register instantiates a resource which handles GET requests to
// /api/cuweb/v1/days/:day/type endpoint.
func Register(r *gin.RouterGroup) {
	rs := &resource{}
	r.GET("days/:day/type", rs.DayType)
}

type dayTypeReq struct {
	Day string `uri:"day" binding:"required"`
}

type dayTypeResp struct {
	Day  string        `json:"day"`
	Type model.DayType `json:"type"`
}

func (rs *resource) DayType(c *gin.Context) {
	req := &dayTypeReq{}
	if ok := serdser.BindURI(c, req); !ok {
		return
	}
	d, err := model.ParseDay(req.Day)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "day", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	t := d.Type()
	log.Debug(c.Request.Context(), "day classified",
		log.Stringer("day", d), slog.String("type", string(t)),
	)
	c.JSON(http.StatusOK, &dayTypeResp{Day: d.String(), Type: t})
}
