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
	"unicode/utf8"

	"github.com/w3forge/contractabi/common/hexutil"
	"github.com/w3forge/contractabi/ens"
)

// IsEncodable reports whether value is structurally and semantically valid
// for the collapsed type string typ. Any structural mismatch reports false;
// nothing is raised for bad data. A few coercions are accepted beyond the
// strict value model:
//
//   - ENS-style names are encodable as addresses (resolution is deferred
//     to the surrounding system),
//   - 0x-prefixed even-length hex strings are encodable as byte types when
//     the decoded payload is,
//   - UTF-8 byte sequences are encodable as strings.
//
// A malformed type string is a programmer error, not a data error, and
// panics with the parse failure.
func IsEncodable(typ string, value interface{}) bool {
	t, err := ParseType(typ)
	if err != nil {
		panic(fmt.Sprintf("abi: IsEncodable: %v", err))
	}
	return isEncodableValue(t, value)
}

func isEncodableValue(t Type, value interface{}) bool {
	switch t.T {
	case TupleTy:
		if !isListLike(value) {
			return false
		}
		values := listValues(value)
		if len(values) != len(t.TupleElems) {
			return false
		}
		for i, elem := range t.TupleElems {
			if !isEncodableValue(*elem, values[i]) {
				return false
			}
		}
		return true
	case SliceTy, ArrayTy:
		if !isListLike(value) {
			return false
		}
		values := listValues(value)
		if t.T == ArrayTy && len(values) != t.Size {
			return false
		}
		for _, v := range values {
			if !isEncodableValue(*t.Elem, v) {
				return false
			}
		}
		return true
	case AddressTy:
		if name, ok := value.(string); ok && ens.IsName(name) {
			// ENS names can be used anywhere an address is needed.
			return true
		}
		return isEncodableScalar(t, value)
	case BytesTy, FixedBytesTy:
		if str, ok := value.(string); ok {
			// Hex-encoded values can be used anywhere bytes are needed,
			// but only full bytes: even length, 0x prefix.
			decoded, err := hexutil.Decode(str)
			if err != nil {
				return false
			}
			return isEncodableScalar(t, decoded)
		}
		return isEncodableScalar(t, value)
	case StringTy:
		if b, ok := value.([]byte); ok {
			// Bytes that decode as UTF-8 can be used anywhere a string is
			// needed.
			if !utf8.Valid(b) {
				return false
			}
			return isEncodableScalar(t, string(b))
		}
		return isEncodableScalar(t, value)
	default:
		return isEncodableScalar(t, value)
	}
}
