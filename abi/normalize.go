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
	"strings"

	"github.com/w3forge/contractabi/common/hexutil"
)

// A Normalizer conditionally rewrites a typed leaf value. It receives the
// governing ABI type string and the value and returns both, either of which
// may be changed. Normalizers compose into pipelines applied left to right
// by MapABIData; each one must preserve the tree shape expectations of the
// ones after it.
type Normalizer func(typ string, value interface{}) (string, interface{})

// AddressesChecksummed renders address values as EIP55-checksummed hex
// strings. Raw 20-byte values and hex strings of either case are accepted;
// anything else passes through for a later stage to reject.
func AddressesChecksummed(typ string, value interface{}) (string, interface{}) {
	if typ != "address" {
		return typ, value
	}
	if addr, ok := toAddress(value); ok {
		return typ, addr.Hex()
	}
	return typ, value
}

// HexToBytes decodes 0x-prefixed hex strings for bytes-typed leaves, so
// downstream encoding sees raw bytes.
func HexToBytes(typ string, value interface{}) (string, interface{}) {
	if !strings.HasPrefix(typ, "bytes") || strings.ContainsRune(typ, '[') {
		return typ, value
	}
	if str, ok := value.(string); ok {
		if decoded, err := hexutil.Decode(str); err == nil {
			return typ, decoded
		}
	}
	return typ, value
}

// BytesToText decodes UTF-8 byte sequences for string-typed leaves.
func BytesToText(typ string, value interface{}) (string, interface{}) {
	if typ != "string" {
		return typ, value
	}
	if b, ok := value.([]byte); ok {
		return typ, string(b)
	}
	return typ, value
}

// BytesToHex renders byte values as 0x-prefixed hex strings, the inverse of
// HexToBytes, for presenting decoded return values.
func BytesToHex(typ string, value interface{}) (string, interface{}) {
	if !strings.HasPrefix(typ, "bytes") || strings.ContainsRune(typ, '[') {
		return typ, value
	}
	if b, ok := toByteSlice(value); ok {
		return typ, hexutil.Encode(b)
	}
	return typ, value
}

// BaseReturnNormalizers is the pipeline applied to values coming back from
// the binary codec before they are handed to the caller.
var BaseReturnNormalizers = []Normalizer{AddressesChecksummed}
