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

package ens

import "testing"

func TestIsName(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"vitalik.eth", true},
		{"sub.domain.eth", true},
		{"name.test", true},
		{"", false},
		{"noseparator", false},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", false},
		{"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", false},
	}
	for _, test := range tests {
		if got := IsName(test.value); got != test.want {
			t.Errorf("IsName(%q) = %v, want %v", test.value, got, test.want)
		}
	}
}
