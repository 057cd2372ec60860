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
	"math/big"
	"unicode/utf8"

	"github.com/holiman/uint256"

	"github.com/w3forge/contractabi/common"
	"github.com/w3forge/contractabi/common/hexutil"
	"github.com/w3forge/contractabi/ens"
)

// twoPow256 is used to map negative integers to their two's-complement
// word representation.
var twoPow256 = new(big.Int).Lsh(big.NewInt(1), 256)

// Encode packs values according to the given canonical type strings and
// returns the concatenated head/tail encoding. The types and values must
// line up one to one; each value must satisfy IsEncodable for its type.
func Encode(types []string, values []interface{}) ([]byte, error) {
	if len(types) != len(values) {
		return nil, fmt.Errorf("%w: %d types but %d values", ErrBadArguments, len(types), len(values))
	}
	parsed := make([]Type, len(types))
	for i, typ := range types {
		t, err := ParseType(typ)
		if err != nil {
			return nil, err
		}
		parsed[i] = t
	}
	// The static head size determines where the dynamic section begins.
	inputOffset := 0
	for _, t := range parsed {
		inputOffset += getTypeSize(t)
	}
	var ret []byte
	var variableInput []byte
	for i, t := range parsed {
		packed, err := packValue(t, values[i])
		if err != nil {
			return nil, err
		}
		if isDynamicType(t) {
			ret = append(ret, packOffset(inputOffset+len(variableInput))...)
			variableInput = append(variableInput, packed...)
		} else {
			ret = append(ret, packed...)
		}
	}
	return append(ret, variableInput...), nil
}

// EncodeWithSelector packs values for a call to the given function and
// prepends the 4-byte selector.
func EncodeWithSelector(entry Entry, values []interface{}) ([]byte, error) {
	if entry.Type != Function {
		return nil, fmt.Errorf("%w: cannot build calldata for %q entry", ErrBadArguments, entry.Type)
	}
	data, err := Encode(InputTypes(entry), values)
	if err != nil {
		return nil, err
	}
	selector := Selector(entry)
	return append(selector[:], data...), nil
}

// packValue returns the encoding of a single value, dynamic types without
// their head offset.
func packValue(t Type, value interface{}) ([]byte, error) {
	switch t.T {
	case SliceTy, ArrayTy:
		if !isListLike(value) {
			return nil, fmt.Errorf("%w: cannot encode %T as %s", ErrBadArguments, value, t)
		}
		elems := listValues(value)
		if t.T == ArrayTy && len(elems) != t.Size {
			return nil, fmt.Errorf("%w: %s needs %d elements, got %d", ErrBadArguments, t, t.Size, len(elems))
		}
		var ret []byte
		if t.T == SliceTy {
			ret = append(ret, packOffset(len(elems))...)
		}
		// Calculate number of offsets in the tail when elements are dynamic.
		offset := 0
		offsetReq := isDynamicType(*t.Elem)
		if offsetReq {
			offset = getTypeSize(*t.Elem) * len(elems)
		}
		var tail []byte
		for _, elem := range elems {
			val, err := packValue(*t.Elem, elem)
			if err != nil {
				return nil, err
			}
			if !offsetReq {
				ret = append(ret, val...)
				continue
			}
			ret = append(ret, packOffset(offset)...)
			offset += len(val)
			tail = append(tail, val...)
		}
		return append(ret, tail...), nil
	case TupleTy:
		elems, err := tupleElements(t, value)
		if err != nil {
			return nil, err
		}
		// Head/tail within the tuple mirrors the top-level layout.
		offset := 0
		for _, elem := range t.TupleElems {
			offset += getTypeSize(*elem)
		}
		var ret, tail []byte
		for i, elem := range t.TupleElems {
			val, err := packValue(*elem, elems[i])
			if err != nil {
				return nil, err
			}
			if isDynamicType(*elem) {
				ret = append(ret, packOffset(offset)...)
				tail = append(tail, val...)
				offset += len(val)
			} else {
				ret = append(ret, val...)
			}
		}
		return append(ret, tail...), nil
	default:
		return packElement(t, value)
	}
}

// packElement packs a primitive value into a single word, or a
// length-prefixed byte run for bytes and string.
func packElement(t Type, value interface{}) ([]byte, error) {
	switch t.T {
	case IntTy, UintTy:
		i, ok := toBigInt(value)
		if !ok {
			return nil, fmt.Errorf("%w: cannot encode %T as %s", ErrBadArguments, value, t)
		}
		if !intFits(i, t.T == UintTy, t.Size) {
			return nil, fmt.Errorf("%w: value out of range for %s", ErrBadArguments, t)
		}
		return packNum(i), nil
	case BoolTy:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: cannot encode %T as bool", ErrBadArguments, value)
		}
		if b {
			return common.LeftPadBytes([]byte{1}, 32), nil
		}
		return common.LeftPadBytes([]byte{0}, 32), nil
	case AddressTy:
		if s, ok := value.(string); ok && ens.IsName(s) {
			return nil, fmt.Errorf("%w: cannot encode unresolved name %q as address", ErrBadArguments, s)
		}
		addr, ok := toAddress(value)
		if !ok {
			return nil, fmt.Errorf("%w: cannot encode %T as address", ErrBadArguments, value)
		}
		return common.LeftPadBytes(addr[:], 32), nil
	case StringTy:
		s, ok := value.(string)
		if !ok {
			b, bok := toByteSlice(value)
			if !bok || !utf8.Valid(b) {
				return nil, fmt.Errorf("%w: cannot encode %T as string", ErrBadArguments, value)
			}
			s = string(b)
		}
		return packBytesSlice([]byte(s)), nil
	case BytesTy:
		b, err := bytesValue(value)
		if err != nil {
			return nil, err
		}
		return packBytesSlice(b), nil
	case FixedBytesTy:
		b, err := bytesValue(value)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrBadArguments, t, t.Size, len(b))
		}
		return common.RightPadBytes(b, 32), nil
	default:
		return nil, fmt.Errorf("%w: cannot encode type %s", ErrBadArguments, t)
	}
}

// tupleElements lines a tuple value up against the component types. Mapping
// shapes match by component name, sequence shapes by position.
func tupleElements(t Type, value interface{}) ([]interface{}, error) {
	if m, ok := value.(map[string]interface{}); ok {
		elems := make([]interface{}, len(t.TupleElems))
		for i, name := range t.TupleRawNames {
			v, present := m[name]
			if !present {
				return nil, fmt.Errorf("%w: tuple value missing component %q", ErrBadArguments, name)
			}
			elems[i] = v
		}
		return elems, nil
	}
	if !isListLike(value) {
		return nil, fmt.Errorf("%w: cannot encode %T as %s", ErrBadArguments, value, t)
	}
	elems := listValues(value)
	if len(elems) != len(t.TupleElems) {
		return nil, fmt.Errorf("%w: %s needs %d components, got %d", ErrBadArguments, t, len(t.TupleElems), len(elems))
	}
	return elems, nil
}

// bytesValue accepts byte slices, fixed-size byte arrays and hex-encoded
// strings for the bytes types.
func bytesValue(value interface{}) ([]byte, error) {
	if s, ok := value.(string); ok {
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot encode string %q as bytes: %v", ErrBadArguments, s, err)
		}
		return b, nil
	}
	b, ok := toByteSlice(value)
	if !ok {
		return nil, fmt.Errorf("%w: cannot encode %T as bytes", ErrBadArguments, value)
	}
	return b, nil
}

// packNum packs an integer into its two's-complement word.
func packNum(i *big.Int) []byte {
	v := i
	if v.Sign() < 0 {
		v = new(big.Int).Add(twoPow256, v)
	}
	u, _ := uint256.FromBig(v)
	word := u.Bytes32()
	return word[:]
}

// packOffset packs a non-negative length or tail offset.
func packOffset(n int) []byte {
	word := uint256.NewInt(uint64(n)).Bytes32()
	return word[:]
}

// packBytesSlice packs bytes as a length word followed by the data
// right-padded to a word boundary.
func packBytesSlice(b []byte) []byte {
	ret := packOffset(len(b))
	padded := (len(b) + 31) / 32 * 32
	return append(ret, common.RightPadBytes(b, padded)...)
}
