// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the common request deserialization and
// response serialization helpers of the resource packages.
// Validation errors are reported as a json object which maps each
// field name to a list of error messages, while other errors are
// reported as a json object with one "detail" field.
package serdser

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/clean-utils/pkg/core/cerr"
)

// Bind deserializes the request into req using the b binding and
// validates it based on its binding tags. In case of errors, a
// response is written and false is returned, so the caller can return.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	return report(c, c.ShouldBindWith(req, b))
}

// BindURI is like Bind, but deserializes the path parameters.
func BindURI(c *gin.Context, req any) bool {
	return report(c, c.ShouldBindUri(req))
}

func report(c *gin.Context, err error) bool {
	var verrs validator.ValidationErrors
	var serrs binding.SliceValidationError
	var ierr *validator.InvalidValidationError
	switch {
	case err == nil:
		return true
	case errors.As(err, &ierr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case errors.As(err, &serrs):
		// one entry per invalid element of a json array body
		var nameToErrs map[string][]string
		for _, eerr := range serrs {
			if errors.As(eerr, &verrs) {
				addFieldErrs(&nameToErrs, verrs)
			} else {
				AddErr(&nameToErrs, "detail", eerr.Error())
			}
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	case errors.As(err, &verrs):
		var nameToErrs map[string][]string
		addFieldErrs(&nameToErrs, verrs)
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

func addFieldErrs(errs *map[string][]string, verrs validator.ValidationErrors) {
	for _, ferr := range verrs {
		AddErr(errs, ferr.Field(), ferr.Error())
	}
}

// AddErr appends msgs to the name field errors, allocating the errs
// map if it is nil.
func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

// Assert adds msgs for the name field if ok is false, and returns ok.
func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// SerErr writes err as a {"detail": ...} json response. A cerr.Error
// determines the status code, while other errors are reported as
// internal server errors.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": err.Error(),
	})
}
