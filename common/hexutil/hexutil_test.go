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

package hexutil

import (
	"bytes"
	"testing"
)

type marshalTest struct {
	input []byte
	want  string
}

var encodeBytesTests = []marshalTest{
	{[]byte{}, "0x"},
	{[]byte{0}, "0x00"},
	{[]byte{0, 0, 1, 2}, "0x00000102"},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeBytesTests {
		enc := Encode(test.input)
		if enc != test.want {
			t.Errorf("input %x: wrong encoding %s", test.input, enc)
		}
	}
}

var decodeBytesTests = []struct {
	input   string
	want    []byte
	wantErr error
}{
	{"", nil, ErrEmptyString},
	{"0", nil, ErrMissingPrefix},
	{"0x", []byte{}, nil},
	{"0x0", nil, ErrOddLength},
	{"0x023", nil, ErrOddLength},
	{"0xxx", nil, ErrSyntax},
	{"0x01zz01", nil, ErrSyntax},
	{"0x02", []byte{0x02}, nil},
	{"0X02", []byte{0x02}, nil},
	{"0xffffffffff", []byte{0xff, 0xff, 0xff, 0xff, 0xff}, nil},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeBytesTests {
		dec, err := Decode(test.input)
		if test.wantErr != nil {
			if err == nil {
				t.Errorf("input %s: expected error %q, got none", test.input, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("input %s: unexpected error %v", test.input, err)
			continue
		}
		if !bytes.Equal(test.want, dec) {
			t.Errorf("input %s: value mismatch: got %x, want %x", test.input, dec, test.want)
		}
	}
}

func TestIsHex(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"0x", true},
		{"0x00ff", true},
		{"0xABcd12", true},
		{"0x0", false},   // odd length
		{"0xzz", false},  // bad digit
		{"00ff", false},  // no prefix
		{"", false},
	}
	for _, test := range tests {
		if got := IsHex(test.input); got != test.ok {
			t.Errorf("IsHex(%q) = %v, want %v", test.input, got, test.ok)
		}
	}
}
