// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo specifies the repository interfaces which are used by
// the use cases in order to persist models. The products catalog is the
// only persisted part of the project, so the storage layer is optional
// and other use cases do not depend on this package at all.
// Implementations live in the adapters layer, see the postgres package.
package repo

import "context"

// ConnHandler is called with a connection which is acquired from
// a Pool and is released after the handler returns.
type ConnHandler func(context.Context, Conn) error

// TxHandler is called within a transaction which is committed if the
// handler returns nil and is rolled back otherwise.
type TxHandler func(context.Context, Tx) error

// Pool represents a database connections pool.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
	Close() error
}

// Conn represents a database connection which is acquired from a Pool.
// It is unsafe to be used concurrently.
type Conn interface {
	Queryer

	// Tx begins a transaction, runs handler, and commits or rolls back
	// the transaction based on the handler returned error.
	Tx(ctx context.Context, handler TxHandler) error

	// IsConn prevents a Tx to mistakenly implement the Conn interface.
	IsConn()
}

// Tx represents a database transaction with the READ-COMMITTED
// isolation level by default. It is unsafe to be used concurrently.
type Tx interface {
	Queryer

	// IsTx prevents a Conn to mistakenly implement the Tx interface.
	IsTx()
}

// Queryer runs raw SQL statements. Exec reports the number of affected
// rows, while Query returns the resulting rows which must be closed.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (count int64, err error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Rows is an iterator over the results of a Query.
type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error

	// Values scans the current row into a slice with one element per
	// column, so it may be inspected without knowing its columns.
	Values() ([]any, error)
}
