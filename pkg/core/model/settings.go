// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Settings contains the settings which are visible by end-users.
// They are taken from the configuration file when the program starts
// and are reported through the REST API as is. None of them may be
// changed while the program is running.
type Settings struct {
	// Squares contains the delayed squaring related settings.
	Squares SquaresSettings `json:"squares"`

	// Logger reports if server-side REST API logging is enabled.
	Logger bool `json:"logger"`

	// Catalog reports if the products catalog is backed by a database.
	Catalog bool `json:"catalog"`
}

// SquaresSettings represents the delayed squaring related settings.
type SquaresSettings struct {
	// Delay is the time which each squaring computation waits
	// before it resolves or fails.
	Delay time.Duration `json:"delay"`

	// MinDelay and MaxDelay are the inclusive acceptable bounds of
	// the Delay setting. A nil bound indicates no limit.
	MinDelay *time.Duration `json:"min_delay,omitempty"`
	MaxDelay *time.Duration `json:"max_delay,omitempty"`
}
