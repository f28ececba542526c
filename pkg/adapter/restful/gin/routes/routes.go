// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-utils/pkg/adapter/config/cfg1"
	"github.com/momeni/clean-utils/pkg/adapter/db/postgres/productsrp"
	"github.com/momeni/clean-utils/pkg/adapter/metrics"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/daysrs"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/itemsrs"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/productsrs"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/settingsrs"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/squaresrs"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/textrs"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/vehiclesrs"
	"github.com/momeni/clean-utils/pkg/core/repo"
	"github.com/momeni/clean-utils/pkg/core/usecase/productsuc"
	"github.com/momeni/clean-utils/pkg/core/usecase/squareuc"
)

// BasePath is the common prefix of all REST APIs.
const BasePath = "/api/cuweb/v1"

// Register instantiates relevant repositories and use cases based on
// the c configuration settings and registers their resources in the
// e gin-gonic engine under the BasePath prefix.
// The m metrics instance observes all requests which are registered
// here and the squaring computations, while exposing the collected
// metrics at /metrics path.
// The p connections pool is passed to the catalog use case, so it may
// acquire connections and transactions on demand. A nil p indicates
// that no database is configured, so the catalog REST APIs will not be
// registered at all. Each use case package is named like productsuc,
// each repository package is named like productsrp, and each resource
// package is named like productsrs.
// Possible errors will be returned after possible wrapping.
func Register(
	e *gin.Engine, c *cfg1.Config, p repo.Pool, m *metrics.Metrics,
) error {
	e.Use(m.Middleware())
	e.GET("/metrics", gin.WrapH(m.Handler()))

	sq, err := c.Usecases.Squares.NewUseCase(squareuc.WithObserver(m))
	if err != nil {
		return fmt.Errorf("creating squares use case: %w", err)
	}
	r := e.Group(BasePath)
	settingsrs.Register(r, c.Settings())
	textrs.Register(r)
	itemsrs.Register(r)
	vehiclesrs.Register(r)
	daysrs.Register(r)
	squaresrs.Register(r, sq)
	if p != nil {
		productsrs.Register(r, productsuc.New(p, productsrp.New()))
	}
	return nil
}
