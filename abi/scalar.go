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
	"reflect"

	"github.com/holiman/uint256"

	"github.com/w3forge/contractabi/common"
)

// isEncodableScalar is the authoritative structural and range check for
// primitive (non-array, non-tuple) types. Coercions like ENS names or
// hex-encoded byte strings are handled by IsEncodable before values ever
// reach this point.
func isEncodableScalar(t Type, value interface{}) bool {
	switch t.T {
	case IntTy, UintTy:
		i, ok := toBigInt(value)
		return ok && intFits(i, t.T == UintTy, t.Size)
	case BoolTy:
		_, ok := value.(bool)
		return ok
	case AddressTy:
		_, ok := toAddress(value)
		return ok
	case FixedBytesTy:
		b, ok := toByteSlice(value)
		return ok && len(b) == t.Size
	case BytesTy:
		_, ok := toByteSlice(value)
		return ok
	case StringTy:
		_, ok := value.(string)
		return ok
	default:
		return false
	}
}

// intFits reports whether i is representable in the given two's-complement
// width.
func intFits(i *big.Int, unsigned bool, bits int) bool {
	if unsigned {
		if i.Sign() < 0 {
			return false
		}
		u, overflow := uint256.FromBig(i)
		return !overflow && u.BitLen() <= bits
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	if i.Sign() >= 0 {
		return i.Cmp(limit) < 0
	}
	return new(big.Int).Neg(i).Cmp(limit) <= 0
}

// toBigInt converts the numeric representations this layer accepts into a
// big integer. Booleans are not numbers.
func toBigInt(value interface{}) (*big.Int, bool) {
	switch v := value.(type) {
	case *big.Int:
		return v, v != nil
	case big.Int:
		return &v, true
	case *uint256.Int:
		if v == nil {
			return nil, false
		}
		return v.ToBig(), true
	case uint256.Int:
		return v.ToBig(), true
	case int:
		return big.NewInt(int64(v)), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	default:
		return nil, false
	}
}

// toAddress converts the address representations this layer accepts.
// ENS names are not addresses; their deferred resolution is decided before
// scalar checking.
func toAddress(value interface{}) (common.Address, bool) {
	switch v := value.(type) {
	case common.Address:
		return v, true
	case *common.Address:
		if v == nil {
			return common.Address{}, false
		}
		return *v, true
	case [common.AddressLength]byte:
		return common.Address(v), true
	case []byte:
		if len(v) != common.AddressLength {
			return common.Address{}, false
		}
		return common.BytesToAddress(v), true
	case string:
		if !common.IsHexAddress(v) {
			return common.Address{}, false
		}
		return common.HexToAddress(v), true
	default:
		return common.Address{}, false
	}
}

// toByteSlice converts byte-sequence representations: slices and fixed-size
// byte arrays of any length.
func toByteSlice(value interface{}) ([]byte, bool) {
	if b, ok := value.([]byte); ok {
		return b, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)
		return b, true
	}
	return nil, false
}

// isListLike reports whether value is a sequence (slice or array), byte
// slices and strings excluded.
func isListLike(value interface{}) bool {
	switch value.(type) {
	case []byte, string, nil:
		return false
	}
	kind := reflect.ValueOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// listValues returns the elements of a list-like value.
func listValues(value interface{}) []interface{} {
	if vs, ok := value.([]interface{}); ok {
		return vs
	}
	rv := reflect.ValueOf(value)
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
