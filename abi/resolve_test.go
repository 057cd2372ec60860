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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overloadedABI declares four overloads of "a" plus a fallback, mirroring a
// contract whose calls must be told apart by argument shape alone.
var overloadedABI = ContractABI{
	{Type: Constructor},
	{Type: Fallback},
	{Type: Function, Name: "a", Inputs: []Parameter{}},
	{Type: Function, Name: "a", Inputs: []Parameter{{Name: "b", Type: "bytes32"}}},
	{Type: Function, Name: "a", Inputs: []Parameter{{Name: "b", Type: "uint256"}}},
	{Type: Function, Name: "a", Inputs: []Parameter{{Name: "b", Type: "uint8"}}},
}

func TestFilterByType(t *testing.T) {
	assert.Len(t, FilterByType(Function, overloadedABI), 4)
	assert.Len(t, FilterByType(Constructor, overloadedABI), 1)
	assert.Len(t, FilterByType(Fallback, overloadedABI), 1)
	assert.Empty(t, FilterByType(Event, overloadedABI))
}

func TestFilterByName(t *testing.T) {
	assert.Len(t, FilterByName("a", overloadedABI), 4)
	assert.Empty(t, FilterByName("b", overloadedABI))

	// unnamed fallback and constructor entries never match, not even for
	// an empty name
	assert.Empty(t, FilterByName("", overloadedABI))
}

func TestFilterByArgumentCount(t *testing.T) {
	named := FilterByName("a", overloadedABI)
	assert.Len(t, FilterByArgumentCount(0, named), 1)
	assert.Len(t, FilterByArgumentCount(1, named), 3)
	assert.Empty(t, FilterByArgumentCount(2, named))
}

func TestFilterByArgumentName(t *testing.T) {
	named := FilterByName("a", overloadedABI)
	assert.Len(t, FilterByArgumentName([]string{"b"}, named), 3)
	assert.Empty(t, FilterByArgumentName([]string{"c"}, named))
	// no names requested: every entry qualifies
	assert.Len(t, FilterByArgumentName(nil, named), 4)
}

func TestFilterByEncodability(t *testing.T) {
	named := FilterByName("a", overloadedABI)
	one := FilterByArgumentCount(1, named)

	// 1 fits uint256 and uint8, not bytes32
	assert.Len(t, FilterByEncodability([]interface{}{1}, nil, one), 2)
	// 256 overflows uint8
	assert.Len(t, FilterByEncodability([]interface{}{256}, nil, one), 1)
	assert.Len(t, FilterByEncodability([]interface{}{[]byte{1}}, nil, one), 0)
}

func TestFilterByEncodabilityTupleArgument(t *testing.T) {
	// a single-function ABI with a valid map-shaped tuple argument survives
	// the encodability filter intact
	single := ContractABI{getOrderInfoEntry}
	order := map[string]interface{}{
		"makerAddress":          "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"takerAddress":          "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"makerAssetAmount":      1000000,
		"takerAssetAmount":      1000000,
		"expirationTimeSeconds": 12345,
		"salt":                  12345,
		"makerAssetData":        []byte{0xf4, 0x7f},
		"takerAssetData":        []byte{0x0c, 0xc8},
	}
	assert.Equal(t, single, FilterByEncodability([]interface{}{order}, nil, single))
}

func TestFindMatchingFunction(t *testing.T) {
	// a() resolves to the nullary overload
	entry, err := FindMatchingFunction(overloadedABI, "a", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, entry.Inputs)

	// a(1) fits both uint256 and uint8; the earlier declaration wins
	entry, err = FindMatchingFunction(overloadedABI, "a", []interface{}{1}, nil)
	require.NoError(t, err)
	require.Len(t, entry.Inputs, 1)
	assert.Equal(t, "uint256", entry.Inputs[0].Type)

	// a(b=1) behaves identically through the keyword path
	entry, err = FindMatchingFunction(overloadedABI, "a", nil, map[string]interface{}{"b": 1})
	require.NoError(t, err)
	assert.Equal(t, "uint256", entry.Inputs[0].Type)

	// bytes32 is the only overload a 32-byte value fits
	entry, err = FindMatchingFunction(overloadedABI, "a", []interface{}{make([]byte, 32)}, nil)
	require.NoError(t, err)
	assert.Equal(t, "bytes32", entry.Inputs[0].Type)
}

func TestFindMatchingFunctionErrors(t *testing.T) {
	_, err := FindMatchingFunction(overloadedABI, "missing", []interface{}{1}, nil)
	require.ErrorIs(t, err, ErrNoMatchingFunction)
	assert.Contains(t, err.Error(), `no function named "missing"`)

	_, err = FindMatchingFunction(overloadedABI, "a", []interface{}{1, 2}, nil)
	require.ErrorIs(t, err, ErrNoMatchingFunction)
	assert.Contains(t, err.Error(), `no overload of "a" takes 2 argument(s)`)

	_, err = FindMatchingFunction(overloadedABI, "a", nil, map[string]interface{}{"c": 1})
	require.ErrorIs(t, err, ErrNoMatchingFunction)
	assert.Contains(t, err.Error(), `no overload of "a" accepts keyword argument(s) c`)

	_, err = FindMatchingFunction(overloadedABI, "a", []interface{}{-1}, nil)
	require.ErrorIs(t, err, ErrNoMatchingFunction)
	assert.Contains(t, err.Error(), "argument types")
}

func TestFindMatchingFunctionFallback(t *testing.T) {
	// a zero-argument call to an unknown name still reaches the fallback
	entry, err := FindMatchingFunction(overloadedABI, "missing", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Fallback, entry.Type)

	// but only when a fallback is declared
	noFallback := ContractABI{
		{Type: Function, Name: "a", Inputs: []Parameter{}},
	}
	_, err = FindMatchingFunction(noFallback, "missing", nil, nil)
	require.ErrorIs(t, err, ErrNoMatchingFunction)
}

func TestFindFallbackFunction(t *testing.T) {
	entry, err := FindFallbackFunction(overloadedABI)
	require.NoError(t, err)
	assert.Equal(t, Fallback, entry.Type)

	_, err = FindFallbackFunction(ContractABI{})
	assert.ErrorIs(t, err, ErrFallbackNotFound)
}

func TestFindConstructor(t *testing.T) {
	entry, err := FindConstructor(overloadedABI)
	require.NoError(t, err)
	assert.Equal(t, Constructor, entry.Type)

	entry, err = FindConstructor(ContractABI{})
	require.NoError(t, err)
	assert.Nil(t, entry)

	_, err = FindConstructor(ContractABI{{Type: Constructor}, {Type: Constructor}})
	assert.ErrorIs(t, err, ErrMultipleConstructors)
}
