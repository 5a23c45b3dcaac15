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
	"io"
	"net"

	"github.com/nimbusdb/nimbus-client-go/wire"
)

// MacAddrLen is the fixed wire size of the macaddr type: six raw bytes, no
// length prefix, no byte order transformation.
const MacAddrLen = 6

// MacAddrCodec converts net.HardwareAddr values. It allocates a fresh result
// per Read and is safe for concurrent use.
type MacAddrCodec struct{}

// Read consumes exactly length bytes and returns them as a net.HardwareAddr.
// A declared length other than MacAddrLen fails with ErrProtocol before any
// byte is consumed.
func (MacAddrCodec) Read(d *wire.Decoder, length int, col ColumnInfo) (driver.Value, error) {
	if length != MacAddrLen {
		return nil, fmt.Errorf("types: macaddr column %q declared %d bytes: %w", col.Name, length, ErrProtocol)
	}
	b, err := d.Bytes(MacAddrLen)
	if err != nil {
		return nil, err
	}
	return net.HardwareAddr(b), nil
}

// SizeForWrite validates v and reports the fixed wire size. It fails with
// ErrTypeMismatch for anything but a net.HardwareAddr and with ErrRange for
// an address of any length but six bytes. Nothing is written.
func (MacAddrCodec) SizeForWrite(v driver.Value, col ColumnInfo) (int, error) {
	addr, ok := v.(net.HardwareAddr)
	if !ok {
		return 0, fmt.Errorf("types: macaddr column %q given %T: %w", col.Name, v, ErrTypeMismatch)
	}
	if len(addr) != MacAddrLen {
		return 0, fmt.Errorf("types: macaddr column %q given %d bytes: %w", col.Name, len(addr), ErrRange)
	}
	return MacAddrLen, nil
}

// Write emits the six raw address bytes. SizeForWrite must have succeeded
// for the same value first.
func (c MacAddrCodec) Write(v driver.Value, e *wire.Encoder, col ColumnInfo) error {
	if _, err := c.SizeForWrite(v, col); err != nil {
		return err
	}
	_, err := e.Write(v.(net.HardwareAddr))
	return err
}

// MacAddrScratchCodec is MacAddrCodec with a reusable scratch buffer for
// Read, avoiding the per-read allocation of the staging bytes. A single
// instance is not reentrant: overlapping Read calls from multiple goroutines
// race on the scratch space. The returned value is always a fresh copy and
// never aliases the scratch buffer.
type MacAddrScratchCodec struct {
	MacAddrCodec
	scratch [MacAddrLen]byte
}

// Read consumes exactly length bytes through the scratch buffer and returns
// a freshly owned net.HardwareAddr.
func (c *MacAddrScratchCodec) Read(d *wire.Decoder, length int, col ColumnInfo) (driver.Value, error) {
	if length != MacAddrLen {
		return nil, fmt.Errorf("types: macaddr column %q declared %d bytes: %w", col.Name, length, ErrProtocol)
	}
	if _, err := io.ReadFull(d, c.scratch[:]); err != nil {
		return nil, err
	}
	addr := make(net.HardwareAddr, MacAddrLen)
	copy(addr, c.scratch[:])
	return addr, nil
}
