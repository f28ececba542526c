// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settingsrs realizes the settings resource, allowing the
// settings fetching REST API to report the settings which were loaded
// from the configuration file.
package settingsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-utils/pkg/core/model"
)

type resource struct {
	settings *model.Settings
}

// Register instantiates a resource reporting s for GET requests to
// /api/cuweb/v1/settings endpoint.
func Register(r *gin.RouterGroup, s *model.Settings) {
	rs := &resource{settings: s}
	r.GET("settings", rs.FetchSettings)
}

func (rs *resource) FetchSettings(c *gin.Context) {
	c.JSON(http.StatusOK, rs.settings)
}
