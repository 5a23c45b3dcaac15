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

import (
	"database/sql/driver"
	"fmt"
	"math"

	"github.com/nimbusdb/nimbus-client-go/wire"
)

// DateLen is the fixed wire size of the date type: a big endian int32 day
// number relative to the era origin. Infinity encodes as MaxInt32 and
// negative infinity as MinInt32; neither is reachable by a finite date, the
// largest finite day number being below 2146000000.
const DateLen = 4

// DateCodec converts Date values. Stateless and safe for concurrent use.
type DateCodec struct{}

// Read consumes exactly length bytes and returns the decoded Date. A
// declared length other than DateLen fails with ErrProtocol before any byte
// is consumed.
func (DateCodec) Read(d *wire.Decoder, length int, col ColumnInfo) (driver.Value, error) {
	if length != DateLen {
		return nil, fmt.Errorf("types: date column %q declared %d bytes: %w", col.Name, length, ErrProtocol)
	}
	days, err := d.Int32()
	if err != nil {
		return nil, err
	}
	switch days {
	case math.MaxInt32:
		return Infinity, nil
	case math.MinInt32:
		return NegInfinity, nil
	}
	return dateFromDays(days), nil
}

// SizeForWrite validates v and reports the fixed wire size. It fails with
// ErrTypeMismatch for anything but a Date. Nothing is written.
func (DateCodec) SizeForWrite(v driver.Value, col ColumnInfo) (int, error) {
	if _, ok := v.(Date); !ok {
		return 0, fmt.Errorf("types: date column %q given %T: %w", col.Name, v, ErrTypeMismatch)
	}
	return DateLen, nil
}

// Write emits the four byte day number, with the infinity values mapped to
// their sentinel encodings. SizeForWrite must have succeeded for the same
// value first.
func (c DateCodec) Write(v driver.Value, e *wire.Encoder, col ColumnInfo) error {
	if _, err := c.SizeForWrite(v, col); err != nil {
		return err
	}
	date := v.(Date)
	days := date.days
	switch date.kind {
	case kindInfinity:
		days = math.MaxInt32
	case kindNegInfinity:
		days = math.MinInt32
	}
	_, err := e.Int32(days)
	return err
}
