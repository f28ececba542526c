// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/momeni/clean-utils/pkg/adapter/config"
	"github.com/momeni/clean-utils/pkg/adapter/config/cfg1"
	"github.com/momeni/clean-utils/pkg/core/cerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSampleConfig(t *testing.T) {
	t.Setenv(cfg1.DatabaseURLEnv, "")
	c, err := config.Load(filepath.Join("..", "..", "..", "configs", "sample-config.yaml"))
	require.NoError(t, err)
	assert.True(t, *c.Gin.Logger)
	assert.False(t, c.Database.Enabled())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersionMismatch(t *testing.T) {
	_, err := config.Parse([]byte("versions: {database: 1.0.0, config: 3.0.0}"))
	var msve *cerr.MismatchingSemVerError
	require.True(t, errors.As(err, &msve), "got %v", err)
	assert.Equal(t, "expected v1.0.0, but got v3.0.0", msve.Error())

	t.Setenv(cfg1.DatabaseURLEnv, "postgres://localhost/db")
	_, err = config.Parse([]byte("versions: {database: 2.0.0, config: 1.0.0}"))
	require.True(t, errors.As(err, &msve), "got %v", err)

	t.Setenv(cfg1.DatabaseURLEnv, "")
	_, err = config.Parse([]byte("versions: {database: 2.0.0, config: 1.0.0}"))
	assert.NoError(t, err, "schema version is ignored without a database")
}
