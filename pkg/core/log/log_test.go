// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/clean-utils/pkg/core/log"
	"github.com/momeni/clean-utils/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureAndLog(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	buf := &bytes.Buffer{}
	log.Configure(buf, slog.LevelInfo, true)
	ctx := context.Background()
	log.Debug(ctx, "hidden")
	log.Info(ctx, "shown",
		log.Err("err", errors.New("boom")),
		log.Err("none", nil),
		log.Stringer("day", model.Friday),
	)

	rec := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "boom", rec["err"])
	assert.Equal(t, "no-error", rec["none"])
	assert.Equal(t, "Friday", rec["day"])
	src, ok := rec["source"].(map[string]any)
	require.True(t, ok, "source is missing")
	assert.Contains(t, src["file"], "log_test.go")
}
