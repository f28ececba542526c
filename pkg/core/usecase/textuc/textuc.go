// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package textuc contains the text normalization use case.
package textuc

import (
	"strings"

	"github.com/momeni/clean-utils/pkg/core/model"
)

// FormatString returns s in lower case if mode is model.CaseLower and
// in upper case otherwise. That is, the absent model.CaseDefault choice
// behaves like model.CaseUpper. An empty s is returned unchanged.
func FormatString(s string, mode model.CaseMode) string {
	if mode == model.CaseLower {
		return strings.ToLower(s)
	}
	return strings.ToUpper(s)
}
