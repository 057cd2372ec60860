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
	"strings"
)

// CollapseIfTuple converts a tuple-typed parameter descriptor to the
// parenthesized component-type list expected by the binary codec, recursing
// through nested tuples. Non-tuple parameters return their type unchanged.
//
//	{"name": "order", "type": "tuple", "components": [
//	    {"name": "maker", "type": "address"},
//	    {"name": "amount", "type": "uint256"},
//	]}
//
// collapses to "(address,uint256)". Array suffixes carry over, so a
// "tuple[2]" parameter collapses to "(...)[2]". This is the sole bridge from
// the named-component ABI-JSON representation to the positional form used
// everywhere else.
func CollapseIfTuple(param Parameter) string {
	if !strings.HasPrefix(param.Type, "tuple") {
		return param.Type
	}
	componentTypes := make([]string, len(param.Components))
	for i, component := range param.Components {
		componentTypes[i] = CollapseIfTuple(component)
	}
	return "(" + strings.Join(componentTypes, ",") + ")" + param.Type[len("tuple"):]
}

// TupleComponentTypes splits a collapsed tuple type string into its
// top-level component type strings, leaving nested tuples intact:
//
//	"(uint256,(uint256,uint256),uint256)" -> ["uint256", "(uint256,uint256)", "uint256"]
func TupleComponentTypes(tupleType string) ([]string, error) {
	if !strings.HasPrefix(tupleType, "(") || !strings.HasSuffix(tupleType, ")") {
		return nil, fmt.Errorf("abi: not a collapsed tuple type: %q", tupleType)
	}
	return splitTupleComponents(tupleType[1 : len(tupleType)-1])
}

// InputTypes returns the collapsed input type strings of entry, in order.
// Fallback entries have implicitly empty inputs.
func InputTypes(entry Entry) []string {
	if entry.Type == Fallback || entry.Type == Receive {
		return []string{}
	}
	types := make([]string, len(entry.Inputs))
	for i, input := range entry.Inputs {
		types[i] = CollapseIfTuple(input)
	}
	return types
}

// OutputTypes returns the collapsed output type strings of entry, in order.
func OutputTypes(entry Entry) []string {
	if entry.Type == Fallback || entry.Type == Receive {
		return []string{}
	}
	types := make([]string, len(entry.Outputs))
	for i, output := range entry.Outputs {
		types[i] = CollapseIfTuple(output)
	}
	return types
}

// InputNames returns the declared parameter names of entry, in order.
func InputNames(entry Entry) []string {
	if entry.Type == Fallback || entry.Type == Receive {
		return []string{}
	}
	names := make([]string, len(entry.Inputs))
	for i, input := range entry.Inputs {
		names[i] = input.Name
	}
	return names
}
