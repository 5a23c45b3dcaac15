/* This file is part of the NimbusDB Go client.
 * Copyright (C) 2026 NimbusDB Inc.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package types

import "errors"

var (
	// ErrRange indicates a calendar value outside the supported year range or
	// an invalid month/day for its year, or a fixed-layout value whose byte
	// length violates its wire-size invariant.
	ErrRange = errors.New("types: value out of range")

	// ErrFormat indicates textual input that does not match the expected
	// grammar.
	ErrFormat = errors.New("types: invalid format")

	// ErrOverflow indicates numeric parsing or a cross-representation cast
	// that exceeds the capacity of the target type.
	ErrOverflow = errors.New("types: numeric overflow")

	// ErrTypeMismatch indicates a codec received a value that is not an
	// instance of its expected domain type.
	ErrTypeMismatch = errors.New("types: unexpected value type")

	// ErrInvalidOperation indicates an operation that is undefined for
	// infinity values, such as subtracting two non-finite dates.
	ErrInvalidOperation = errors.New("types: operation undefined for infinity")

	// ErrProtocol indicates a declared wire length that disagrees with a
	// fixed-layout type's expected size.
	ErrProtocol = errors.New("types: wire length mismatch")
)
