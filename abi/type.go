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
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
)

// Type is the parsed form of an ABI type string. It is built once, either
// from a descriptor (NewType) or from a collapsed type string (ParseType),
// and walked instead of re-parsing strings at every recursion level.
type Type struct {
	Elem *Type // element type of slices and arrays
	Size int   // bit size for int/uint, byte size for fixed bytes, length for arrays
	T    byte  // our own type checking

	stringKind string // holds the canonical string for deriving signatures

	// Tuple relative fields
	TupleElems    []*Type  // type information of all tuple fields
	TupleRawNames []string // raw field name of all tuple fields, empty for ParseType results
}

var (
	// typeRegex parses the abi base types
	typeRegex = regexp.MustCompile("^([a-z]+)([0-9]*)$")

	// arraySuffixRegex matches one trailing array suffix
	arraySuffixRegex = regexp.MustCompile(`\[[0-9]*\]$`)

	// arrayTypeRegex matches a non-tuple array type string
	arrayTypeRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+(\[[0-9]*\])+$`)
)

// NewType creates the reflection of an ABI type from its descriptor form:
// the raw type string plus, for tuples, the named component descriptors.
func NewType(t string, components []Parameter) (typ Type, err error) {
	// check that array brackets are equal if they exist
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, errors.New("abi: invalid arg type in abi")
	}
	typ.stringKind = t

	// if there are brackets, get ready to go into slice/array mode and
	// recursively create the type
	if strings.Count(t, "[") != 0 {
		i := strings.LastIndex(t, "[")
		embeddedType, err := NewType(t[:i], components)
		if err != nil {
			return Type{}, err
		}
		return wrapArray(embeddedType, t[i:])
	}
	if t == "tuple" {
		if len(components) == 0 {
			return Type{}, errors.New("abi: tuple type lacks components")
		}
		var (
			elems      []*Type
			names      []string
			expression strings.Builder
		)
		expression.WriteByte('(')
		for idx, c := range components {
			cType, err := NewType(c.Type, c.Components)
			if err != nil {
				return Type{}, err
			}
			elems = append(elems, &cType)
			names = append(names, c.Name)
			expression.WriteString(cType.stringKind)
			if idx != len(components)-1 {
				expression.WriteByte(',')
			}
		}
		expression.WriteByte(')')

		typ.TupleElems = elems
		typ.TupleRawNames = names
		typ.T = TupleTy
		typ.stringKind = expression.String()
		return typ, nil
	}
	return parseBaseType(t)
}

// ParseType parses a collapsed type string, including parenthesized tuple
// forms like "(uint256,(bool,address))[2]". Tuple components parsed this way
// carry no field names.
func ParseType(t string) (Type, error) {
	if t == "" {
		return Type{}, errors.New("abi: empty type string")
	}
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, fmt.Errorf("abi: unbalanced array brackets in %q", t)
	}
	if t[0] == '(' {
		end := matchingParen(t, 0)
		if end < 0 {
			return Type{}, fmt.Errorf("abi: unbalanced parentheses in %q", t)
		}
		comps, err := splitTupleComponents(t[1:end])
		if err != nil {
			return Type{}, err
		}
		var (
			elems      []*Type
			expression strings.Builder
		)
		expression.WriteByte('(')
		for idx, comp := range comps {
			cType, err := ParseType(comp)
			if err != nil {
				return Type{}, err
			}
			elems = append(elems, &cType)
			expression.WriteString(cType.stringKind)
			if idx != len(comps)-1 {
				expression.WriteByte(',')
			}
		}
		expression.WriteByte(')')
		typ := Type{T: TupleTy, TupleElems: elems, TupleRawNames: make([]string, len(elems)), stringKind: expression.String()}
		return wrapArraySuffixes(typ, t[end+1:])
	}
	if i := strings.Index(t, "["); i != -1 {
		embedded, err := ParseType(t[:i])
		if err != nil {
			return Type{}, err
		}
		return wrapArraySuffixes(embedded, t[i:])
	}
	return parseBaseType(t)
}

// wrapArraySuffixes applies a run of array suffixes left to right, so the
// last suffix ends up as the outermost dimension.
func wrapArraySuffixes(typ Type, suffixes string) (Type, error) {
	rest := suffixes
	for rest != "" {
		if rest[0] != '[' {
			return Type{}, fmt.Errorf("abi: invalid array suffix %q", suffixes)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return Type{}, fmt.Errorf("abi: invalid array suffix %q", suffixes)
		}
		wrapped, err := wrapArray(typ, rest[:end+1])
		if err != nil {
			return Type{}, err
		}
		typ = wrapped
		rest = rest[end+1:]
	}
	return typ, nil
}

// wrapArray builds the slice or array type for a single "[]"/"[N]" suffix
// around elem.
func wrapArray(elem Type, suffix string) (Type, error) {
	typ := Type{Elem: &elem, stringKind: elem.stringKind + suffix}
	inner := strings.TrimSuffix(strings.TrimPrefix(suffix, "["), "]")
	if inner == "" {
		typ.T = SliceTy
		return typ, nil
	}
	size, err := strconv.ParseUint(inner, 10, 31)
	if err != nil {
		return Type{}, fmt.Errorf("abi: error parsing array size: %v", err)
	}
	typ.T = ArrayTy
	typ.Size = int(size)
	return typ, nil
}

// parseBaseType parses a scalar base type like "uint256" or "bytes32".
// Unsized "uint"/"int" aliases normalize to 256 bits.
func parseBaseType(t string) (typ Type, err error) {
	matches := typeRegex.FindStringSubmatch(t)
	if matches == nil {
		return Type{}, fmt.Errorf("abi: unsupported arg type: %s", t)
	}
	name, sizeStr := matches[1], matches[2]

	var size int
	if sizeStr != "" {
		size, err = strconv.Atoi(sizeStr)
		if err != nil {
			return Type{}, fmt.Errorf("abi: error parsing variable size: %v", err)
		}
	}
	switch name {
	case "int", "uint":
		if sizeStr == "" {
			size = 256
		}
		if size%8 != 0 || size < 8 || size > 256 {
			return Type{}, fmt.Errorf("abi: invalid size for type: %s", t)
		}
		typ.Size = size
		if name == "int" {
			typ.T = IntTy
		} else {
			typ.T = UintTy
		}
	case "bool":
		if sizeStr != "" {
			return Type{}, fmt.Errorf("abi: unsupported arg type: %s", t)
		}
		typ.T = BoolTy
	case "address":
		if sizeStr != "" {
			return Type{}, fmt.Errorf("abi: unsupported arg type: %s", t)
		}
		typ.Size = 20
		typ.T = AddressTy
	case "string":
		if sizeStr != "" {
			return Type{}, fmt.Errorf("abi: unsupported arg type: %s", t)
		}
		typ.T = StringTy
	case "bytes":
		if sizeStr == "" {
			typ.T = BytesTy
		} else {
			if size < 1 || size > 32 {
				return Type{}, fmt.Errorf("abi: unsupported arg type: %s", t)
			}
			typ.T = FixedBytesTy
			typ.Size = size
		}
	default:
		return Type{}, fmt.Errorf("abi: unsupported arg type: %s", t)
	}
	typ.stringKind = canonicalName(typ.T, name, typ.Size)
	return typ, nil
}

func canonicalName(kind byte, name string, size int) string {
	switch kind {
	case IntTy, UintTy:
		return name + strconv.Itoa(size)
	case FixedBytesTy:
		return name + strconv.Itoa(size)
	default:
		return name
	}
}

// matchingParen returns the index of the parenthesis closing the one at
// open, or -1.
func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTupleComponents splits the inside of a collapsed tuple on top-level
// commas, leaving nested tuples intact.
func splitTupleComponents(inner string) ([]string, error) {
	if inner == "" {
		return nil, nil
	}
	var (
		comps []string
		depth int
		start int
	)
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("abi: unbalanced parentheses in %q", inner)
			}
		case ',':
			if depth == 0 {
				comps = append(comps, inner[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("abi: unbalanced parentheses in %q", inner)
	}
	return append(comps, inner[start:]), nil
}

// String implements Stringer.
func (t Type) String() string {
	return t.stringKind
}

// requiresLengthPrefix returns whether the type requires any sort of length
// prefixing.
func (t Type) requiresLengthPrefix() bool {
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy
}

// isDynamicType returns true if the type is dynamic.
// The following types are called "dynamic":
// * bytes
// * string
// * T[] for any T
// * T[k] for any dynamic T and any k >= 0
// * (T1,...,Tk) if Ti is dynamic for some 1 <= i <= k
func isDynamicType(t Type) bool {
	if t.T == TupleTy {
		for _, elem := range t.TupleElems {
			if isDynamicType(*elem) {
				return true
			}
		}
		return false
	}
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy || (t.T == ArrayTy && isDynamicType(*t.Elem))
}

// getTypeSize returns the size that this type needs to occupy.
// Static types are encoded in-place and dynamic types are encoded at a
// separately allocated location after the current block, referenced by a
// fixed 32 byte head slot.
func getTypeSize(t Type) int {
	if t.T == ArrayTy && !isDynamicType(*t.Elem) {
		if t.Elem.T == ArrayTy || t.Elem.T == TupleTy {
			return t.Size * getTypeSize(*t.Elem)
		}
		return t.Size * 32
	} else if t.T == TupleTy && !isDynamicType(t) {
		total := 0
		for _, elem := range t.TupleElems {
			total += getTypeSize(*elem)
		}
		return total
	}
	return 32
}

// IsDynamicType reports whether the collapsed type string names a dynamic
// type. Malformed strings return an error.
func IsDynamicType(typ string) (bool, error) {
	t, err := ParseType(typ)
	if err != nil {
		return false, err
	}
	return isDynamicType(t), nil
}

var recognizedTypeRegex = buildRecognizedTypeRegex()

func buildRecognizedTypeRegex() *regexp.Regexp {
	var bases []string
	bases = append(bases, "address", "bool")
	for i := 8; i <= 256; i += 8 {
		bases = append(bases, fmt.Sprintf("uint%d", i), fmt.Sprintf("int%d", i))
	}
	for i := 1; i <= 32; i++ {
		bases = append(bases, fmt.Sprintf("bytes%d", i))
	}
	// legacy literal carried through from early compiler output
	bases = append(bases, regexp.QuoteMeta("bytes32.byte"))
	bases = append(bases, "bytes", "string")
	return regexp.MustCompile(`^(?:` + strings.Join(bases, "|") + `)(?:\[[0-9]*\])*$`)
}

// IsRecognizedType reports whether typ names one of the enumerated non-tuple
// ABI types, optionally followed by array suffixes.
func IsRecognizedType(typ string) bool {
	return recognizedTypeRegex.MatchString(typ)
}

// IsArrayType reports whether typ has at least one array suffix.
func IsArrayType(typ string) bool {
	return arrayTypeRegex.MatchString(typ) ||
		(strings.HasPrefix(typ, "(") && strings.HasSuffix(typ, "]"))
}

// SubTypeOfArrayType strips exactly one trailing array suffix.
func SubTypeOfArrayType(typ string) (string, error) {
	if !IsArrayType(typ) {
		return "", fmt.Errorf("abi: cannot parse subtype of nonarray abi-type: %s", typ)
	}
	return arraySuffixRegex.ReplaceAllString(typ, ""), nil
}

// LengthOfArrayType returns the outermost dimension of an array type.
// fixed is false for dynamically sized arrays.
func LengthOfArrayType(typ string) (length int, fixed bool, err error) {
	if !IsArrayType(typ) {
		return 0, false, fmt.Errorf("abi: cannot parse length of nonarray abi-type: %s", typ)
	}
	suffix := arraySuffixRegex.FindString(typ)
	inner := strings.TrimSuffix(strings.TrimPrefix(suffix, "["), "]")
	if inner == "" {
		return 0, false, nil
	}
	length, err = strconv.Atoi(inner)
	if err != nil {
		return 0, false, fmt.Errorf("abi: cannot parse length of abi-type %s: %v", typ, err)
	}
	return length, true, nil
}

// SizeOfType returns the bit width of fixed-width scalar types. Strings,
// byte types and arrays have no fixed bit width and return ok=false.
func SizeOfType(typ string) (size int, ok bool) {
	switch {
	case strings.Contains(typ, "string"), strings.Contains(typ, "byte"), strings.Contains(typ, "["):
		return 0, false
	case typ == "bool":
		return 8, true
	case typ == "address":
		return 160, true
	}
	digits := strings.TrimLeft(typ, "abcdefghijklmnopqrstuvwxyz")
	size, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return size, true
}
