// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts the GORM framework (with its pgx based
// PostgreSQL driver) to the connection pool, connection, and
// transaction interfaces of the pkg/core/repo package. Repository
// packages, such as productsrp, use the embedded *gorm.DB instances
// in order to run their queries.
package postgres

import "github.com/momeni/clean-utils/pkg/core/model"

// These constants represent the major, minor, and patch components of
// the current catalog database schema semantic version.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the latest supported database schema semantic version.
var Version = model.SemVer{Major, Minor, Patch}
