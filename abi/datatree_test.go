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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTree(t *testing.T) {
	tree, err := DataTree(
		[]string{"bool[2]", "bytes"},
		[]interface{}{[]interface{}{true, false}, []byte{0x00, 0xff}},
	)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	assert.Equal(t, TypedData{
		Kind: ListData,
		Type: "bool[2]",
		Elems: []TypedData{
			{Kind: LeafData, Type: "bool", Value: true},
			{Kind: LeafData, Type: "bool", Value: false},
		},
	}, tree[0])
	assert.Equal(t, TypedData{Kind: LeafData, Type: "bytes", Value: []byte{0x00, 0xff}}, tree[1])
}

func TestDataTreeOpaqueAndTuple(t *testing.T) {
	tree, err := DataTree(
		[]string{"", "(uint256,bool)"},
		[]interface{}{42, []interface{}{1, true}},
	)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	assert.Equal(t, TypedData{Kind: OpaqueData, Value: 42}, tree[0])
	// a tuple stays one opaque unit, its internals are not decorated
	assert.Equal(t, TypedData{Kind: TupleData, Type: "(uint256,bool)", Value: []interface{}{1, true}}, tree[1])
}

func TestDataTreeErrors(t *testing.T) {
	_, err := DataTree([]string{"bool"}, []interface{}{true, false})
	assert.Error(t, err)

	_, err = DataTree([]string{"bool[2]"}, []interface{}{true})
	assert.Error(t, err)

	_, err = DataTree([]string{"(uint256,bool)"}, []interface{}{42})
	assert.Error(t, err)
}

func TestMapABIDataIdentity(t *testing.T) {
	data := []interface{}{[]interface{}{true, false}, []byte{0x00, 0xff}}
	out, err := MapABIData(nil, []string{"bool[2]", "bytes"}, data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestMapABIDataChecksumsAddresses(t *testing.T) {
	raw := []byte{
		0xf2, 0xe2, 0x46, 0xbb, 0x76, 0xdf, 0x87, 0x6c, 0xef, 0x8b,
		0x38, 0xae, 0x84, 0x13, 0x0f, 0x4f, 0x55, 0xde, 0x39, 0x5b,
	}
	out, err := MapABIData(
		[]Normalizer{AddressesChecksummed},
		[]string{"address", ""},
		[]interface{}{raw, 123},
	)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"0xF2E246BB76DF876Cef8b38ae84130F4F55De395b", 123}, out)
}

func TestMapABIDataCustomPipeline(t *testing.T) {
	// truthiness renamed on bool leaves, integers rendered as hex; list
	// shapes survive both stages
	boolNamer := func(typ string, value interface{}) (string, interface{}) {
		if typ == "bool" && value == true {
			return typ, "Tru-dat"
		}
		return typ, value
	}
	intToHex := func(typ string, value interface{}) (string, interface{}) {
		if typ == "int256" {
			return typ, fmt.Sprintf("%#x", value)
		}
		return typ, value
	}

	out, err := MapABIData(
		[]Normalizer{boolNamer, intToHex},
		[]string{"bool[2]", "int256"},
		[]interface{}{[]interface{}{true, false}, 9876543210},
	)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{[]interface{}{"Tru-dat", false}, "0x24cb016ea"}, out)
}

func TestMapDataTreeComposes(t *testing.T) {
	tree, err := DataTree([]string{"bytes", "string"}, []interface{}{"0x00ff", []byte("hello")})
	require.NoError(t, err)

	once := MapDataTree(HexToBytes, tree)
	twice := MapDataTree(BytesToText, once)

	assert.Equal(t, []byte{0x00, 0xff}, twice[0].Value)
	assert.Equal(t, "hello", twice[1].Value)
	// the original tree is untouched
	assert.Equal(t, "0x00ff", tree[0].Value)
}

func TestBytesToHexNormalizer(t *testing.T) {
	typ, value := BytesToHex("bytes", []byte{0xde, 0xad})
	assert.Equal(t, "bytes", typ)
	assert.Equal(t, "0xdead", value)

	// array types are handled per element by the tree walk, never whole
	typ, value = BytesToHex("bytes32[]", []interface{}{[]byte{1}})
	assert.Equal(t, "bytes32[]", typ)
	assert.Equal(t, []interface{}{[]byte{1}}, value)
}
