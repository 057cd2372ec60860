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
	"encoding/json"
	"fmt"
	"io"
)

// Descriptor entry kinds as they appear in contract ABI JSON.
const (
	Function    = "function"
	Constructor = "constructor"
	Fallback    = "fallback"
	Receive     = "receive"
	Event       = "event"
	ErrorDef    = "error"
)

// Parameter describes one input or output of a function, event or error.
// A "tuple" typed parameter always carries its component descriptors.
type Parameter struct {
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	InternalType string      `json:"internalType,omitempty"`
	Components   []Parameter `json:"components,omitempty"`

	// Indexed is only used by events.
	Indexed bool `json:"indexed,omitempty"`
}

// Entry is a single descriptor of a contract ABI: a function, constructor,
// fallback, receive, event or error definition. Mutability metadata is
// carried through unchanged.
type Entry struct {
	Type    string      `json:"type"`
	Name    string      `json:"name,omitempty"`
	Inputs  []Parameter `json:"inputs,omitempty"`
	Outputs []Parameter `json:"outputs,omitempty"`

	// Status indicator which can be: "pure", "view", "nonpayable" or
	// "payable".
	StateMutability string `json:"stateMutability,omitempty"`

	// Deprecated status indicators, removed from compiler output in
	// solidity v0.6.0 but still found in older ABI documents.
	Constant bool `json:"constant,omitempty"`
	Payable  bool `json:"payable,omitempty"`

	// Anonymous marks events declared as anonymous.
	Anonymous bool `json:"anonymous,omitempty"`
}

// ContractABI is the ordered sequence of descriptors of a contract. Multiple
// entries may share a name; overloads are told apart by argument shape and
// relative order is significant for tie-breaking.
type ContractABI []Entry

// ParseJSON decodes a contract ABI from its JSON representation.
func ParseJSON(reader io.Reader) (ContractABI, error) {
	dec := json.NewDecoder(reader)

	var abi ContractABI
	if err := dec.Decode(&abi); err != nil {
		return nil, fmt.Errorf("abi: invalid contract ABI document: %w", err)
	}
	for _, entry := range abi {
		switch entry.Type {
		case Function, Constructor, Fallback, Receive, Event, ErrorDef:
		default:
			return nil, fmt.Errorf("abi: could not recognize type %v of field %v", entry.Type, entry.Name)
		}
	}
	return abi, nil
}

// IndexedInputs returns the event inputs that are indexed into log topics.
func IndexedInputs(event Entry) []Parameter {
	var ret []Parameter
	for _, arg := range event.Inputs {
		if arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// NonIndexedInputs returns the event inputs with indexed arguments filtered
// out.
func NonIndexedInputs(event Entry) []Parameter {
	var ret []Parameter
	for _, arg := range event.Inputs {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}
