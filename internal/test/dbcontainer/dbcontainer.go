// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbcontainer is an internal helper for the test packages
// which need a real PostgreSQL DBMS server for the products catalog.
// It starts a temporary postgres container and connects to it using
// a *postgres.Pool connection pool. Both of them are released by the
// test cleanup functions.
package dbcontainer

import (
	"context"
	"errors"
	"net"
	"os"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/clean-utils/pkg/adapter/db/postgres"
	"github.com/stretchr/testify/assert"
)

// DefaultVersion is the postgres image tag which is used when the
// POSTGRES_VERSION environment variable is not set.
const DefaultVersion = "16"

// New creates and starts up a postgres container. A container runtime
// (docker or podman) must be reachable through the DOCKER_HOST
// environment variable, e.g.,
// DOCKER_HOST=unix://$XDG_RUNTIME_DIR/podman/podman.sock
// otherwise, the t test is skipped.
// The timeout limits the container start up and the first successful
// connection, while ctx is used for the container shutdown too.
// If false is returned, errors are already reported using t.
func New(
	ctx context.Context, timeout time.Duration, t *testing.T,
) (pool *postgres.Pool, ok bool) {
	if _, found := os.LookupEnv("DOCKER_HOST"); !found {
		t.Skip("DOCKER_HOST is not set, skipping database tests")
	}
	dbmsVer, found := os.LookupEnv("POSTGRES_VERSION")
	if !found {
		dbmsVer = DefaultVersion
	}
	ctx2, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	pg, err := sqltestutil.StartPostgresContainer(ctx2, dbmsVer)
	if !assert.NoError(t, err, "failed to start postgres:%s", dbmsVer) {
		return nil, false
	}
	t.Cleanup(func() {
		assert.NoError(t, pg.Shutdown(ctx), "failed to shutdown postgres")
	})
	for pool == nil {
		pool, err = postgres.NewPool(ctx2, pg.ConnectionString())
		if retryable(ctx2, err) {
			continue
		}
		if !assert.NoError(t, err, "cannot connect to test database") {
			return nil, false
		}
	}
	t.Cleanup(func() {
		assert.NoError(t, pool.Close(), "failed to close the pool")
	})
	return pool, true
}

// retryable reports if err is expected while the DBMS is starting up.
func retryable(ctx context.Context, err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.SQLState() == "57P03" {
		return true // the database system is starting up
	}
	var netErr net.Error
	return ctx.Err() == nil && errors.As(err, &netErr)
}
