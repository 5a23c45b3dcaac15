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

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/nimbusdb/nimbus-client-go/wire"
)

// ColumnType identifies the wire type of a column.
type ColumnType int8

const (
	NullColumn      ColumnType = 1
	BoolColumn      ColumnType = 3
	ShortColumn     ColumnType = 4
	IntColumn       ColumnType = 5
	LongColumn      ColumnType = 6
	FloatColumn     ColumnType = 8
	StringColumn    ColumnType = 9
	TimestampColumn ColumnType = 11
	DateColumn      ColumnType = 12
	VarBinColumn    ColumnType = 25
	MacAddrColumn   ColumnType = 28
)

// ColumnInfo is the value descriptor handed to a codec: which column is
// being converted and its declared wire type. The query pipeline fills it in
// from the result-set or parameter metadata.
type ColumnInfo struct {
	Type ColumnType
	Name string
}

// ScalarCodec converts one scalar type between its Go value and its wire
// encoding.
//
// Read consumes exactly length bytes from the decoder and returns a typed
// value. The caller establishes length from the wire message; for a
// fixed-layout type it must equal the type's fixed size, which a codec may
// defensively re-check and fail with ErrProtocol.
//
// SizeForWrite validates v and reports the exact byte count Write will emit,
// without touching any encoder, so the caller can frame the message before
// a single byte is written. It fails with ErrTypeMismatch when v is not the
// codec's domain type and with ErrRange when the value's shape violates the
// type's wire-size invariant. It must be called, and succeed, before Write
// is invoked for the same value.
//
// Write emits the value's canonical byte layout, exactly as many bytes as
// the preceding SizeForWrite reported.
//
// Codecs neither log nor retry; every error is surfaced to the caller.
type ScalarCodec interface {
	Read(d *wire.Decoder, length int, col ColumnInfo) (driver.Value, error)
	SizeForWrite(v driver.Value, col ColumnInfo) (int, error)
	Write(v driver.Value, e *wire.Encoder, col ColumnInfo) error
}

// Registry maps column types to their codecs. Safe for concurrent use; a
// single Registry is shared by all connections of a client.
type Registry struct {
	codecs *xsync.Map[ColumnType, ScalarCodec]
}

// NewRegistry returns a Registry with the built-in codecs registered.
func NewRegistry() *Registry {
	r := &Registry{codecs: xsync.NewMap[ColumnType, ScalarCodec]()}
	r.Register(DateColumn, DateCodec{})
	r.Register(MacAddrColumn, MacAddrCodec{})
	return r
}

// Register installs c as the codec for t, replacing any previous one.
func (r *Registry) Register(t ColumnType, c ScalarCodec) {
	r.codecs.Store(t, c)
}

// Lookup returns the codec registered for t.
func (r *Registry) Lookup(t ColumnType) (ScalarCodec, bool) {
	return r.codecs.Load(t)
}
