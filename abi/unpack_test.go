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

package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w3forge/contractabi/common"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		data  []string
		want  []interface{}
	}{
		{
			name:  "single uint256",
			types: []string{"uint256"},
			data:  []string{"0000000000000000000000000000000000000000000000000000000000000001"},
			want:  []interface{}{big.NewInt(1)},
		},
		{
			name:  "negative int8",
			types: []string{"int8"},
			data:  []string{"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"},
			want:  []interface{}{big.NewInt(-1)},
		},
		{
			name:  "bool",
			types: []string{"bool"},
			data:  []string{"0000000000000000000000000000000000000000000000000000000000000001"},
			want:  []interface{}{true},
		},
		{
			name:  "address",
			types: []string{"address"},
			data:  []string{"0000000000000000000000005aaeb6053f3e94c9b9a09f33669435e7ef1beaed"},
			want:  []interface{}{common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")},
		},
		{
			name:  "fixed bytes",
			types: []string{"bytes4"},
			data:  []string{"6162636400000000000000000000000000000000000000000000000000000000"},
			want:  []interface{}{[]byte("abcd")},
		},
		{
			name:  "string",
			types: []string{"string"},
			data: []string{
				"0000000000000000000000000000000000000000000000000000000000000020",
				"000000000000000000000000000000000000000000000000000000000000000d",
				"48656c6c6f2c20776f726c642100000000000000000000000000000000000000",
			},
			want: []interface{}{"Hello, world!"},
		},
		{
			name:  "dynamic array",
			types: []string{"uint256[]"},
			data: []string{
				"0000000000000000000000000000000000000000000000000000000000000020",
				"0000000000000000000000000000000000000000000000000000000000000002",
				"0000000000000000000000000000000000000000000000000000000000000001",
				"0000000000000000000000000000000000000000000000000000000000000002",
			},
			want: []interface{}{[]interface{}{big.NewInt(1), big.NewInt(2)}},
		},
		{
			name:  "static array is inlined",
			types: []string{"bool[2]", "uint256"},
			data: []string{
				"0000000000000000000000000000000000000000000000000000000000000001",
				"0000000000000000000000000000000000000000000000000000000000000000",
				"0000000000000000000000000000000000000000000000000000000000000007",
			},
			want: []interface{}{[]interface{}{true, false}, big.NewInt(7)},
		},
		{
			name:  "static tuple is inlined",
			types: []string{"(uint256,bool)", "uint256"},
			data: []string{
				"0000000000000000000000000000000000000000000000000000000000000001",
				"0000000000000000000000000000000000000000000000000000000000000001",
				"0000000000000000000000000000000000000000000000000000000000000007",
			},
			want: []interface{}{[]interface{}{big.NewInt(1), true}, big.NewInt(7)},
		},
		{
			name:  "dynamic tuple through offset",
			types: []string{"(uint256,string)"},
			data: []string{
				"0000000000000000000000000000000000000000000000000000000000000020",
				"0000000000000000000000000000000000000000000000000000000000000001",
				"0000000000000000000000000000000000000000000000000000000000000040",
				"0000000000000000000000000000000000000000000000000000000000000002",
				"6162000000000000000000000000000000000000000000000000000000000000",
			},
			want: []interface{}{[]interface{}{big.NewInt(1), "ab"}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Decode(test.types, mustHex(t, test.data...))
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	types := []string{"bytes", "bool", "uint256[]", "(address,uint256)"}
	values := []interface{}{
		[]byte("dave"),
		true,
		[]interface{}{big.NewInt(1), big.NewInt(2), big.NewInt(3)},
		[]interface{}{common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"), big.NewInt(42)},
	}
	data, err := Encode(types, values)
	require.NoError(t, err)

	got, err := Decode(types, data)
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestDecodeWithSelector(t *testing.T) {
	values := []interface{}{common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"), big.NewInt(5)}
	calldata, err := EncodeWithSelector(transferEntry, values)
	require.NoError(t, err)

	got, err := DecodeWithSelector(transferEntry, calldata)
	require.NoError(t, err)
	assert.Equal(t, values, got)

	// a foreign selector is rejected
	calldata[0] ^= 0xff
	_, err = DecodeWithSelector(transferEntry, calldata)
	assert.Error(t, err)

	_, err = DecodeWithSelector(transferEntry, []byte{1, 2})
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	// no data for expected arguments
	_, err := Decode([]string{"uint256"}, nil)
	assert.Error(t, err)

	// truncated word
	_, err = Decode([]string{"uint256"}, make([]byte, 16))
	assert.Error(t, err)

	// truncated heads must error for every dynamic kind, never fault
	for _, typ := range []string{"string", "bytes", "uint256[]", "string[2]", "(uint256,string)", "(uint256,bool)"} {
		_, err = Decode([]string{typ}, make([]byte, 16))
		assert.Errorf(t, err, "Decode(%q, 16 bytes)", typ)

		_, err = Decode([]string{"uint256", typ}, make([]byte, 48))
		assert.Errorf(t, err, "Decode(uint256+%q, 48 bytes)", typ)
	}

	// offset beyond the payload
	_, err = Decode([]string{"bytes"}, mustHex(t,
		"0000000000000000000000000000000000000000000000000000000000000080",
	))
	assert.Error(t, err)

	// length beyond the payload
	_, err = Decode([]string{"bytes"}, mustHex(t,
		"0000000000000000000000000000000000000000000000000000000000000020",
		"00000000000000000000000000000000000000000000000000000000000000ff",
	))
	assert.Error(t, err)

	// dirty boolean word
	_, err = Decode([]string{"bool"}, mustHex(t,
		"0000000000000000000000000000000000000000000000000000000000000003",
	))
	assert.ErrorIs(t, err, errBadBool)

	// nothing expected, nothing decoded
	got, err := Decode(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
