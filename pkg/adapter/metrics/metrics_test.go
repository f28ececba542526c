// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-utils/pkg/adapter/metrics"
	"github.com/momeni/clean-utils/pkg/core/usecase/squareuc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ squareuc.Observer = (*metrics.Metrics)(nil)

func TestObserveCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.Observe(2, nil, 10*time.Millisecond)
	m.Observe(3, nil, 10*time.Millisecond)
	m.Observe(-1, errors.New("negative"), 10*time.Millisecond)

	n, err := testutil.GatherAndCount(reg, "cuweb_squares_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per outcome is expected")
	n, err = testutil.GatherAndCount(reg, "cuweb_square_delay_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	e := gin.New()
	e.Use(m.Middleware())
	e.GET("/ping/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	e.GET("/metrics", gin.WrapH(m.Handler()))

	for _, path := range []string{"/ping/1", "/ping/2", "/missing"} {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body),
		`cuweb_http_requests_total{code="200",method="GET",route="/ping/:id"} 2`,
	)
	assert.Contains(t, string(body),
		`cuweb_http_requests_total{code="404",method="GET",route=""} 1`,
	)
}
