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

import "fmt"

// Data node kinds.
const (
	// OpaqueData marks an untyped passthrough value. It is never
	// normalized.
	OpaqueData byte = iota
	// LeafData marks a scalar value governed by a plain type string.
	LeafData
	// TupleData marks a collapsed tuple held as one opaque unit. Tuple
	// internals are not independently normalizable once collapsed.
	TupleData
	// ListData marks an array node whose value is the sequence of its
	// typed children.
	ListData
)

// TypedData pairs a value with the ABI type string governing it. Composite
// values mirror their nesting as child nodes, so positional correspondence
// between types and data survives every transformation.
type TypedData struct {
	Kind  byte
	Type  string      // collapsed type string, empty for OpaqueData
	Value interface{} // payload of leaf, tuple and opaque nodes
	Elems []TypedData // children of list nodes
}

// DataTree decorates data with its types, node by node. Types and data are
// zipped positionally; an empty type string wraps its value as an untyped
// passthrough. Array types recurse one dimension at a time down to scalar
// leaves, while tuple types keep their whole value as a single unit.
//
//	DataTree([]string{"bool[2]", "uint256"}, []interface{}{[]interface{}{true, false}, 0})
//
// yields a "bool[2]" list node with two "bool" leaves, and a "uint256" leaf.
func DataTree(types []string, data []interface{}) ([]TypedData, error) {
	if len(types) != len(data) {
		return nil, fmt.Errorf("abi: data tree needs one type per value, got %d types for %d values",
			len(types), len(data))
	}
	tree := make([]TypedData, len(types))
	for i, typ := range types {
		node, err := dataSubTree(typ, data[i])
		if err != nil {
			return nil, err
		}
		tree[i] = node
	}
	return tree, nil
}

func dataSubTree(typ string, value interface{}) (TypedData, error) {
	if typ == "" {
		return TypedData{Kind: OpaqueData, Value: value}, nil
	}
	t, err := ParseType(typ)
	if err != nil {
		return TypedData{}, err
	}
	return typedSubTree(t, value)
}

func typedSubTree(t Type, value interface{}) (TypedData, error) {
	switch t.T {
	case TupleTy:
		if !isListLike(value) {
			return TypedData{}, fmt.Errorf("abi: tuple type %s needs a sequence value, got %T", t, value)
		}
		return TypedData{Kind: TupleData, Type: t.String(), Value: value}, nil
	case SliceTy, ArrayTy:
		if !isListLike(value) {
			return TypedData{}, fmt.Errorf("abi: array type %s needs a sequence value, got %T", t, value)
		}
		values := listValues(value)
		elems := make([]TypedData, len(values))
		for i, v := range values {
			node, err := typedSubTree(*t.Elem, v)
			if err != nil {
				return TypedData{}, err
			}
			elems[i] = node
		}
		return TypedData{Kind: ListData, Type: t.String(), Elems: elems}, nil
	default:
		return TypedData{Kind: LeafData, Type: t.String(), Value: value}, nil
	}
}

// MapDataTree applies normalize to every plain typed leaf of the tree,
// descending through list nodes. Opaque tuple leaves and untyped passthrough
// nodes stay untouched. The result has the exact shape of the input tree.
func MapDataTree(normalize Normalizer, tree []TypedData) []TypedData {
	out := make([]TypedData, len(tree))
	for i, node := range tree {
		out[i] = mapDataNode(normalize, node)
	}
	return out
}

func mapDataNode(normalize Normalizer, node TypedData) TypedData {
	switch node.Kind {
	case LeafData:
		typ, value := normalize(node.Type, node.Value)
		return TypedData{Kind: LeafData, Type: typ, Value: value}
	case ListData:
		elems := make([]TypedData, len(node.Elems))
		for i, elem := range node.Elems {
			elems[i] = mapDataNode(normalize, elem)
		}
		return TypedData{Kind: ListData, Type: node.Type, Elems: elems}
	default:
		return node
	}
}

// stripDataNode removes the type annotations again, restoring the plain
// nested value shape.
func stripDataNode(node TypedData) interface{} {
	if node.Kind != ListData {
		return node.Value
	}
	values := make([]interface{}, len(node.Elems))
	for i, elem := range node.Elems {
		values[i] = stripDataNode(elem)
	}
	return values
}

// MapABIData applies normalizers to data in the context of the relevant
// types. The data tree is decorated with types once, every normalizer maps
// over the typed tree in order, and the types are stripped back out at the
// end. The result has exactly the nested shape of data; the values may
// differ per the normalizers applied.
func MapABIData(normalizers []Normalizer, types []string, data []interface{}) ([]interface{}, error) {
	tree, err := DataTree(types, data)
	if err != nil {
		return nil, err
	}
	for _, normalize := range normalizers {
		tree = MapDataTree(normalize, tree)
	}
	out := make([]interface{}, len(tree))
	for i, node := range tree {
		out[i] = stripDataNode(node)
	}
	return out, nil
}
