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
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/w3forge/contractabi/common"
)

var (
	// maxUint64 bounds offsets and lengths before they are trusted.
	maxUint64 = new(big.Int).SetUint64(^uint64(0))
)

// Decode unpacks head/tail encoded data according to the given canonical
// type strings. Integers of every width decode to *big.Int, addresses to
// common.Address, the bytes types to []byte, tuples to []interface{} in
// component order.
func Decode(types []string, data []byte) ([]interface{}, error) {
	parsed := make([]Type, len(types))
	for i, typ := range types {
		t, err := ParseType(typ)
		if err != nil {
			return nil, err
		}
		parsed[i] = t
	}
	if len(data) == 0 {
		if len(parsed) != 0 {
			return nil, fmt.Errorf("abi: attempting to unmarshal an empty string while arguments are expected")
		}
		return []interface{}{}, nil
	}
	retval := make([]interface{}, 0, len(parsed))
	virtualArgs := 0
	for index, t := range parsed {
		value, err := toValue((index+virtualArgs)*32, t, data)
		if err != nil {
			return nil, err
		}
		if (t.T == ArrayTy || t.T == TupleTy) && !isDynamicType(t) {
			// Static arrays and tuples are inlined in the head and occupy
			// more than one word; advance past the extra ones.
			virtualArgs += getTypeSize(t)/32 - 1
		}
		retval = append(retval, value)
	}
	return retval, nil
}

// DecodeWithSelector strips the 4-byte selector of the given function from
// calldata and unpacks the remainder against its input types.
func DecodeWithSelector(entry Entry, calldata []byte) ([]interface{}, error) {
	if len(calldata) < 4 {
		return nil, fmt.Errorf("abi: calldata shorter than a selector")
	}
	selector := Selector(entry)
	if [4]byte(calldata[:4]) != selector {
		return nil, fmt.Errorf("abi: selector mismatch: have %#x, want %#x", calldata[:4], selector[:])
	}
	return Decode(InputTypes(entry), calldata[4:])
}

// toValue unpacks the value at the given byte index of output.
func toValue(index int, t Type, output []byte) (interface{}, error) {
	// every branch reads at least the word at index
	if index+32 > len(output) {
		return nil, fmt.Errorf("abi: cannot marshal into go type: length insufficient %d require %d", len(output), index+32)
	}
	switch t.T {
	case SliceTy:
		begin, length, err := lengthPrefixPointsTo(index, output)
		if err != nil {
			return nil, err
		}
		return forEachUnpack(t, output[begin:], 0, length)
	case ArrayTy:
		if isDynamicType(*t.Elem) {
			offset := binary.BigEndian.Uint64(output[index+24 : index+32])
			if offset > uint64(len(output)) {
				return nil, fmt.Errorf("abi: toValue offset greater than output length: offset: %d, len(output): %d", offset, len(output))
			}
			return forEachUnpack(t, output[offset:], 0, t.Size)
		}
		return forEachUnpack(t, output, index, t.Size)
	case TupleTy:
		if isDynamicType(t) {
			begin, err := tuplePointsTo(index, output)
			if err != nil {
				return nil, err
			}
			return forTupleUnpack(t, output[begin:])
		}
		return forTupleUnpack(t, output[index:])
	case StringTy:
		begin, length, err := lengthPrefixPointsTo(index, output)
		if err != nil {
			return nil, err
		}
		return string(output[begin : begin+length]), nil
	case BytesTy:
		begin, length, err := lengthPrefixPointsTo(index, output)
		if err != nil {
			return nil, err
		}
		return common.CopyBytes(output[begin : begin+length]), nil
	}
	word := output[index : index+32]
	switch t.T {
	case IntTy, UintTy:
		return readInteger(t, word), nil
	case BoolTy:
		return readBool(word)
	case AddressTy:
		return common.BytesToAddress(word[12:]), nil
	case FixedBytesTy:
		return common.CopyBytes(word[:t.Size]), nil
	default:
		return nil, fmt.Errorf("abi: unknown type %v", t.T)
	}
}

// forEachUnpack iteratively unpacks elements of an array or slice.
func forEachUnpack(t Type, output []byte, start, size int) ([]interface{}, error) {
	if size < 0 {
		return nil, fmt.Errorf("cannot marshal input to array, size is negative (%d)", size)
	}
	if start+32*size > len(output) {
		return nil, fmt.Errorf("abi: cannot marshal into go array: offset %d would go over slice boundary (len=%d)", len(output), start+32*size)
	}
	elemSize := getTypeSize(*t.Elem)
	elems := make([]interface{}, 0, size)
	for i, j := start, 0; j < size; i, j = i+elemSize, j+1 {
		inter, err := toValue(i, *t.Elem, output)
		if err != nil {
			return nil, err
		}
		elems = append(elems, inter)
	}
	return elems, nil
}

// forTupleUnpack unpacks the components of a tuple, static components
// inline and dynamic ones through their tail offsets.
func forTupleUnpack(t Type, output []byte) ([]interface{}, error) {
	elems := make([]interface{}, 0, len(t.TupleElems))
	virtualArgs := 0
	for index, elem := range t.TupleElems {
		value, err := toValue((index+virtualArgs)*32, *elem, output)
		if err != nil {
			return nil, err
		}
		if (elem.T == ArrayTy || elem.T == TupleTy) && !isDynamicType(*elem) {
			virtualArgs += getTypeSize(*elem)/32 - 1
		}
		elems = append(elems, value)
	}
	return elems, nil
}

// readInteger decodes a two's-complement word. All widths return *big.Int.
func readInteger(t Type, b []byte) *big.Int {
	ret := new(big.Int).SetBytes(b)
	if t.T == IntTy && ret.Bit(255) == 1 {
		ret.Sub(ret, twoPow256)
	}
	return ret
}

// readBool rejects any word that is not cleanly zero or one.
func readBool(word []byte) (bool, error) {
	for _, b := range word[:31] {
		if b != 0 {
			return false, errBadBool
		}
	}
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errBadBool
	}
}

// lengthPrefixPointsTo interprets a 32 byte slice as an offset and then
// determines which indices to look to decode the type.
func lengthPrefixPointsTo(index int, output []byte) (start int, length int, err error) {
	bigOffsetEnd := new(big.Int).SetBytes(output[index : index+32])
	bigOffsetEnd.Add(bigOffsetEnd, big.NewInt(32))
	outputLength := big.NewInt(int64(len(output)))

	if bigOffsetEnd.Cmp(outputLength) > 0 {
		return 0, 0, fmt.Errorf("abi: cannot marshal into go slice: offset %v would go over slice boundary (len=%v)", bigOffsetEnd, outputLength)
	}
	if bigOffsetEnd.BitLen() > 63 {
		return 0, 0, fmt.Errorf("abi offset larger than int64: %v", bigOffsetEnd)
	}

	offsetEnd := int(bigOffsetEnd.Uint64())
	lengthBig := new(big.Int).SetBytes(output[offsetEnd-32 : offsetEnd])

	totalSize := big.NewInt(0)
	totalSize.Add(totalSize, bigOffsetEnd)
	totalSize.Add(totalSize, lengthBig)
	if totalSize.BitLen() > 63 {
		return 0, 0, fmt.Errorf("abi: length larger than int64: %v", totalSize)
	}
	if totalSize.Cmp(outputLength) > 0 {
		return 0, 0, fmt.Errorf("abi: cannot marshal into go type: length insufficient %v require %v", outputLength, totalSize)
	}
	start = int(bigOffsetEnd.Uint64())
	length = int(lengthBig.Uint64())
	return
}

// tuplePointsTo resolves the location where a dynamic tuple's content begins.
func tuplePointsTo(index int, output []byte) (start int, err error) {
	offset := new(big.Int).SetBytes(output[index : index+32])
	outputLen := big.NewInt(int64(len(output)))

	if offset.Cmp(outputLen) > 0 {
		return 0, fmt.Errorf("abi: cannot marshal in to go slice: offset %v would go over slice boundary (len=%v)", offset, outputLen)
	}
	if offset.Cmp(maxUint64) > 0 {
		return 0, fmt.Errorf("abi offset larger than uint64: %v", offset)
	}
	return int(offset.Uint64()), nil
}
