// Copyright 2025 The contractabi Authors
// This file is part of the contractabi library.
//
// The contractabi library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The contractabi library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the contractabi library. If not, see <http://www.gnu.org/licenses/>.

// Package ens recognizes human-readable ENS names. Resolution of a name to
// an address is performed by the surrounding system; this package only
// decides whether a string is eligible for it.
package ens

import (
	"strings"

	"github.com/w3forge/contractabi/common"
)

// IsName reports whether value looks like an ENS name rather than a raw
// address. Hex-encoded addresses never qualify, everything else with a dot
// separator does.
func IsName(value string) bool {
	if value == "" {
		return false
	}
	if common.IsHexAddress(value) {
		return false
	}
	return strings.Contains(value, ".")
}
