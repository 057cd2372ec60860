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
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// FilterByType returns the entries of the given descriptor type, in order.
func FilterByType(typ string, contractABI ContractABI) ContractABI {
	var out ContractABI
	for _, entry := range contractABI {
		if entry.Type == typ {
			out = append(out, entry)
		}
	}
	return out
}

// FilterByName returns the named entries, fallback and constructor entries
// excluded, in order.
func FilterByName(name string, contractABI ContractABI) ContractABI {
	var out ContractABI
	for _, entry := range contractABI {
		if entry.Type == Fallback || entry.Type == Constructor || entry.Type == Receive {
			continue
		}
		if entry.Name == name {
			out = append(out, entry)
		}
	}
	return out
}

// FilterByArgumentCount returns the entries declaring exactly numArguments
// inputs, in order.
func FilterByArgumentCount(numArguments int, contractABI ContractABI) ContractABI {
	var out ContractABI
	for _, entry := range contractABI {
		if len(entry.Inputs) == numArguments {
			out = append(out, entry)
		}
	}
	return out
}

// FilterByArgumentName returns the entries whose declared input names cover
// every name in argumentNames, in order.
func FilterByArgumentName(argumentNames []string, contractABI ContractABI) ContractABI {
	wanted := mapset.NewThreadUnsafeSet(argumentNames...)
	var out ContractABI
	for _, entry := range contractABI {
		declared := mapset.NewThreadUnsafeSet(InputNames(entry)...)
		if wanted.Intersect(declared).Equal(wanted) {
			out = append(out, entry)
		}
	}
	return out
}

// ArgumentsEncodable reports whether the given positional and keyword
// arguments can be merged into entry's input order and every merged value is
// encodable against its declared type. Shape errors report false, they never
// raise: during multi-candidate resolution they only shrink the candidate
// set.
func ArgumentsEncodable(entry Entry, args []interface{}, kwargs map[string]interface{}) bool {
	arguments, err := MergeArguments(entry, args, kwargs)
	if err != nil {
		return false
	}
	if len(entry.Inputs) != len(arguments) {
		return false
	}
	types, values, err := FlattenInputs(entry, arguments)
	if err != nil {
		return false
	}
	for i, typ := range types {
		if !IsEncodable(typ, values[i]) {
			return false
		}
	}
	return true
}

// FilterByEncodability returns the entries whose inputs can encode the given
// arguments, in order.
func FilterByEncodability(args []interface{}, kwargs map[string]interface{}, contractABI ContractABI) ContractABI {
	var out ContractABI
	for _, entry := range contractABI {
		if ArgumentsEncodable(entry, args, kwargs) {
			out = append(out, entry)
		}
	}
	return out
}

// FindFallbackFunction returns the ABI's fallback entry.
func FindFallbackFunction(contractABI ContractABI) (*Entry, error) {
	fallbacks := FilterByType(Fallback, contractABI)
	if len(fallbacks) == 0 {
		return nil, ErrFallbackNotFound
	}
	return &fallbacks[0], nil
}

// FindConstructor returns the ABI's constructor entry, or nil when the
// contract declares none. More than one constructor is malformed input.
func FindConstructor(contractABI ContractABI) (*Entry, error) {
	candidates := FilterByType(Constructor, contractABI)
	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return &candidates[0], nil
	default:
		return nil, ErrMultipleConstructors
	}
}

// FindMatchingFunction selects the one function entry matching name and the
// given call arguments. Candidates are filtered in stages: by name, by total
// argument count, by keyword-name coverage, and finally by encodability of
// every merged argument. If several overloads survive every stage the first
// in original ABI order wins. An empty candidate set is reported as an error
// naming the stage that eliminated the last candidate.
//
// A zero-argument call for which no named candidate exists still resolves
// through the ABI's fallback entry when one is declared.
func FindMatchingFunction(contractABI ContractABI, name string, args []interface{}, kwargs map[string]interface{}) (*Entry, error) {
	numArguments := len(args) + len(kwargs)

	candidates := FilterByName(name, contractABI)
	if len(candidates) == 0 {
		if numArguments == 0 {
			if fallback, err := FindFallbackFunction(contractABI); err == nil {
				return fallback, nil
			}
		}
		return nil, fmt.Errorf("%w: no function named %q found in this contract's ABI",
			ErrNoMatchingFunction, name)
	}

	candidates = FilterByArgumentCount(numArguments, candidates)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no overload of %q takes %d argument(s)",
			ErrNoMatchingFunction, name, numArguments)
	}

	if len(kwargs) > 0 {
		keys := make([]string, 0, len(kwargs))
		for key := range kwargs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		candidates = FilterByArgumentName(keys, candidates)
		if len(candidates) == 0 {
			return nil, fmt.Errorf("%w: no overload of %q accepts keyword argument(s) %s",
				ErrNoMatchingFunction, name, strings.Join(keys, ", "))
		}
	}

	candidates = FilterByEncodability(args, kwargs, candidates)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no overload of %q accepts the given argument types",
			ErrNoMatchingFunction, name)
	}
	return &candidates[0], nil
}
