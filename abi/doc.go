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

// Package abi implements contract ABI resolution: parsing descriptor
// documents, collapsing tuple types, selecting function overloads from call
// arguments, normalizing typed data trees, and packing and unpacking the
// solidity wire encoding.
//
// The package traffics in dynamically shaped values: argument lists are
// []interface{} and ABI types travel as their canonical strings, parsed once
// into a Type AST where structure matters.
package abi
