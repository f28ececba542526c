// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesrs realizes the vehicles resource, describing a
// vehicle or a car using the model.Vehicle and model.Car types.
package vehiclesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-utils/pkg/core/model"
)

type resource struct {
}

// Register instantiates a resource which handles POST requests to
// /api/cuweb/v1/vehicles/describe endpoint.
func Register(r *gin.RouterGroup) {
	rs := &resource{}
	r.POST("vehicles/describe", rs.Describe)
}

type describeReq struct {
	Make  *string `json:"make" binding:"required"`
	Year  *int    `json:"year" binding:"required"`
	Model *string `json:"model"`
}

type describeResp struct {
	Info  string `json:"info"`
	Model string `json:"model,omitempty"`
}

// Describe reports the info of a vehicle. If a model is given, the
// vehicle is a car and its model is reported too.
func (rs *resource) Describe(c *gin.Context) {
	req := &describeReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	if req.Model == nil {
		v := model.NewVehicle(*req.Make, *req.Year)
		c.JSON(http.StatusOK, &describeResp{Info: v.Info()})
		return
	}
	car := model.NewCar(*req.Make, *req.Year, *req.Model)
	c.JSON(http.StatusOK, &describeResp{
		Info:  car.Info(),
		Model: car.Model(),
	})
}
