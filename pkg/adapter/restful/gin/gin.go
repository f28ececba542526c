// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine instantiation, so other
// packages may create an engine and pick its middlewares without
// importing the gin-gonic and its logging middleware directly.
package gin

import (
	"log/slog"

	ginlogger "github.com/FabienMht/ginslog/logger"
	"github.com/gin-gonic/gin"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// Logger returns a middleware which writes one access log record
// per request into the l structured logger.
func Logger(l *slog.Logger) HandlerFunc {
	return ginlogger.New(l)
}

func Recovery() HandlerFunc {
	return gin.Recovery()
}
