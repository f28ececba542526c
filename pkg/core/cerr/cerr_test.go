// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/momeni/clean-utils/pkg/core/cerr"
	"github.com/stretchr/testify/assert"
)

func TestErrorWrapping(t *testing.T) {
	base := errors.New("boom")
	err := cerr.BadRequest(base)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "[400] boom", err.Error())
	assert.Equal(t, http.StatusServiceUnavailable, cerr.Unavailable(base).HTTPStatusCode)
}
