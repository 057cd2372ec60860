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

// Package hexutil implements hex encoding with 0x prefix.
// This encoding is used by the Ethereum RPC API to transport binary data in
// JSON payloads.
//
// # Encoding Rules
//
// All hex data must have prefix "0x". Byte slices encode as a hex string with
// two hex digits per byte; an empty slice encodes as "0x".
package hexutil

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Errors returned by the decoding functions.
var (
	ErrEmptyString   = errors.New("empty hex string")
	ErrSyntax        = errors.New("invalid hex string")
	ErrMissingPrefix = errors.New("hex string without 0x prefix")
	ErrOddLength     = errors.New("hex string of odd length")
)

// Decode decodes a hex string with 0x prefix.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyString
	}
	if !has0xPrefix(input) {
		return nil, ErrMissingPrefix
	}
	if len(input)%2 != 0 {
		return nil, ErrOddLength
	}
	b, err := hex.DecodeString(input[2:])
	if err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

// MustDecode decodes a hex string with 0x prefix. It panics for invalid input.
func MustDecode(input string) []byte {
	dec, err := Decode(input)
	if err != nil {
		panic(fmt.Sprintf("hexutil: %v: %q", err, input))
	}
	return dec
}

// Encode encodes b as a hex string with 0x prefix.
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

// IsHex reports whether input is a 0x-prefixed string of hex digits with an
// even number of them, i.e. a well-formed byte string. The empty payload "0x"
// counts as valid.
func IsHex(input string) bool {
	if !has0xPrefix(input) || len(input)%2 != 0 {
		return false
	}
	for _, c := range input[2:] {
		if !isHexCharacter(byte(c)) {
			return false
		}
	}
	return true
}

func has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

func isHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func mapError(err error) error {
	if err, ok := err.(*hex.InvalidByteError); ok {
		return fmt.Errorf("%w: invalid byte %#U", ErrSyntax, rune(*err))
	}
	if err == hex.ErrLength {
		return ErrOddLength
	}
	return err
}
