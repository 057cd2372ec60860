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
)

// MergeArguments merges positional and keyword arguments into the single
// canonically-ordered positional form declared by entry's inputs. Arity
// mismatches, keywords colliding with positionally-filled parameters and
// keywords the entry does not declare are argument-shape errors reported
// before any encoding is attempted.
func MergeArguments(entry Entry, args []interface{}, kwargs map[string]interface{}) ([]interface{}, error) {
	if len(args)+len(kwargs) != len(entry.Inputs) {
		return nil, fmt.Errorf("%w: incorrect argument count: expected %d, got %d",
			ErrBadArguments, len(entry.Inputs), len(args)+len(kwargs))
	}
	if len(kwargs) == 0 {
		return args, nil
	}

	argsAsKwargs := make(map[string]interface{}, len(args))
	for i, arg := range args {
		argsAsKwargs[entry.Inputs[i].Name] = arg
	}
	var duplicates []string
	for key := range kwargs {
		if _, ok := argsAsKwargs[key]; ok {
			duplicates = append(duplicates, key)
		}
	}
	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		return nil, fmt.Errorf("%w: %s() got multiple values for argument(s) %s",
			ErrBadArguments, entry.Name, strings.Join(duplicates, ", "))
	}

	names := InputNames(entry)
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	var unknown []string
	for key := range kwargs {
		if _, ok := index[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		ident := entry.Name
		if ident == "" {
			// show the type instead of the name in case name is missing
			ident = entry.Type
		}
		return nil, fmt.Errorf("%w: %s() got unexpected keyword argument(s) %s",
			ErrBadArguments, ident, strings.Join(unknown, ", "))
	}

	merged := make([]interface{}, len(entry.Inputs))
	for name, value := range argsAsKwargs {
		merged[index[name]] = value
	}
	for name, value := range kwargs {
		merged[index[name]] = value
	}
	return merged, nil
}

// FlattenInputs pairs entry's inputs with their argument values, collapsing
// tuple-typed inputs to parenthesized type strings and flattening their
// values into plain positional slices. Tuple values may arrive either as a
// name-keyed mapping or as an already-positional sequence; any other shape
// is an argument-shape error. Non-tuple inputs pass through unchanged and
// input order is preserved exactly.
func FlattenInputs(entry Entry, argValues []interface{}) ([]string, []interface{}, error) {
	n := len(entry.Inputs)
	if len(argValues) < n {
		n = len(argValues)
	}
	types := make([]string, 0, n)
	values := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		input := entry.Inputs[i]
		value, err := flattenTupleValue(input, argValues[i])
		if err != nil {
			return nil, nil, err
		}
		types = append(types, CollapseIfTuple(input))
		values = append(values, value)
	}
	return types, values, nil
}

// flattenTupleValue converts the value of a tuple-typed parameter into the
// positional slice matching the component order, descending into nested
// tuple components. Non-tuple parameters pass through.
func flattenTupleValue(input Parameter, value interface{}) (interface{}, error) {
	if input.Type != "tuple" {
		return value, nil
	}
	switch v := value.(type) {
	case map[string]interface{}:
		out := make([]interface{}, len(input.Components))
		for i, component := range input.Components {
			cv, ok := v[component.Name]
			if !ok {
				return nil, fmt.Errorf("%w: tuple value missing component %q", ErrBadArguments, component.Name)
			}
			flattened, err := flattenTupleValue(component, cv)
			if err != nil {
				return nil, err
			}
			out[i] = flattened
		}
		return out, nil
	default:
		if !isListLike(value) {
			return nil, fmt.Errorf("%w: unknown value type %T for ABI type 'tuple'", ErrBadArguments, value)
		}
		vs := listValues(value)
		if len(vs) != len(input.Components) {
			return nil, fmt.Errorf("%w: tuple value has %d components, type wants %d",
				ErrBadArguments, len(vs), len(input.Components))
		}
		out := make([]interface{}, len(vs))
		for i, component := range input.Components {
			flattened, err := flattenTupleValue(component, vs[i])
			if err != nil {
				return nil, err
			}
			out[i] = flattened
		}
		return out, nil
	}
}
