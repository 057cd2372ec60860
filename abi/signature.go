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
	"regexp"
	"strings"

	"github.com/w3forge/contractabi/common"
)

// enumRegex matches "Library.EnumName" style type references that old
// compiler versions leaked into event ABIs.
var enumRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*\.[a-zA-Z_][a-zA-Z0-9_]*$`)

// IsProbablyEnum reports whether typ looks like a solidity enum reference
// rather than an elementary type.
func IsProbablyEnum(typ string) bool {
	return enumRegex.MatchString(typ)
}

// normalizeInputTypes rewrites enum-referencing parameter types to their
// uint8 wire representation, leaving everything else alone.
func normalizeInputTypes(inputs []Parameter) []Parameter {
	out := make([]Parameter, len(inputs))
	for i, arg := range inputs {
		out[i] = arg
		if !IsRecognizedType(arg.Type) && IsProbablyEnum(arg.Type) {
			out[i].Type = "uint8"
		}
	}
	return out
}

// Signature renders the canonical signature of a function or event entry:
// the name followed by the parenthesized list of collapsed, enum-normalized
// input types. This string is the selector/topic hash input.
func Signature(entry Entry) string {
	inputs := normalizeInputTypes(entry.Inputs)
	types := make([]string, len(inputs))
	for i, input := range inputs {
		types[i] = CollapseIfTuple(input)
	}
	return entry.Name + "(" + strings.Join(types, ",") + ")"
}

// Selector returns the 4-byte function selector: the leading bytes of the
// keccak256 hash of the canonical signature.
func Selector(entry Entry) [4]byte {
	var id [4]byte
	copy(id[:], common.Keccak256([]byte(Signature(entry)))[:4])
	return id
}

// EventTopic returns the 32-byte topic hash identifying an event in logs.
func EventTopic(entry Entry) common.Hash {
	return common.Keccak256Hash([]byte(Signature(entry)))
}
