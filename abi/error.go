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

import "errors"

var (
	// ErrNoMatchingFunction is wrapped by resolution failures. The wrapping
	// message names the filter stage that eliminated the last candidate.
	ErrNoMatchingFunction = errors.New("no matching function")

	// ErrFallbackNotFound is returned when fallback resolution is requested
	// but the ABI defines no fallback entry.
	ErrFallbackNotFound = errors.New("no fallback function was found in the contract ABI")

	// ErrMultipleConstructors is returned for ABI documents carrying more
	// than one constructor entry.
	ErrMultipleConstructors = errors.New("found multiple constructors")

	// ErrBadArguments is wrapped by argument-shape failures: wrong arity,
	// duplicate keyword, unknown keyword or an unrecognized tuple argument
	// shape. The wrapping message names the offenders.
	ErrBadArguments = errors.New("bad arguments")

	// errBadBool is returned when a boolean word contains anything other
	// than a clean zero or one.
	errBadBool = errors.New("abi: improperly encoded boolean value")
)
