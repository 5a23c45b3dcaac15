package types

import (
	"bytes"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbusdb/nimbus-client-go/wire"
)

var macCol = ColumnInfo{Type: MacAddrColumn, Name: "nic"}

func TestMacAddrCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	addr := net.HardwareAddr{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}
	codec := MacAddrCodec{}

	n, err := codec.SizeForWrite(addr, macCol)
	require.NoError(t, err)
	assert.Equal(t, MacAddrLen, n)

	e := wire.NewEncoder()
	defer wire.PutEncoder(e)
	require.NoError(t, codec.Write(addr, e, macCol))
	assert.Equal(t, n, e.Len())

	v, err := codec.Read(wire.NewDecoder(bytes.NewReader(e.Bytes())), n, macCol)
	require.NoError(t, err)
	got, ok := v.(net.HardwareAddr)
	require.True(t, ok)
	assert.Equal(t, addr, got)
}

func TestMacAddrCodec_SizeForWrite(t *testing.T) {
	t.Parallel()

	codec := MacAddrCodec{}

	_, err := codec.SizeForWrite(net.HardwareAddr{0x01, 0x23, 0x45, 0x67, 0x89}, macCol)
	assert.ErrorIs(t, err, ErrRange)

	_, err = codec.SizeForWrite(net.HardwareAddr{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd}, macCol)
	assert.ErrorIs(t, err, ErrRange)

	_, err = codec.SizeForWrite("01:23:45:67:89:ab", macCol)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = codec.SizeForWrite([]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}, macCol)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMacAddrCodec_WriteNothingOnInvalid(t *testing.T) {
	t.Parallel()

	e := wire.NewEncoder()
	defer wire.PutEncoder(e)

	err := MacAddrCodec{}.Write(net.HardwareAddr{0x01, 0x23}, e, macCol)
	assert.ErrorIs(t, err, ErrRange)
	assert.Equal(t, 0, e.Len(), "a failed validation must not emit bytes")
}

func TestMacAddrCodec_ReadLengthMismatch(t *testing.T) {
	t.Parallel()

	raw := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}
	d := wire.NewDecoder(bytes.NewReader(raw))

	_, err := MacAddrCodec{}.Read(d, 5, macCol)
	assert.ErrorIs(t, err, ErrProtocol)
	_, err = MacAddrCodec{}.Read(d, 7, macCol)
	assert.ErrorIs(t, err, ErrProtocol)

	// nothing was consumed by the rejected reads
	v, err := MacAddrCodec{}.Read(d, MacAddrLen, macCol)
	require.NoError(t, err)
	assert.Equal(t, net.HardwareAddr(raw), v)
}

func TestMacAddrScratchCodec_ReadsAreIndependent(t *testing.T) {
	t.Parallel()

	first := net.HardwareAddr{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}
	second := net.HardwareAddr{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}

	e := wire.NewEncoder()
	defer wire.PutEncoder(e)
	_, err := e.Write(first)
	require.NoError(t, err)
	_, err = e.Write(second)
	require.NoError(t, err)

	codec := &MacAddrScratchCodec{}
	d := wire.NewDecoder(bytes.NewReader(e.Bytes()))

	v1, err := codec.Read(d, MacAddrLen, macCol)
	require.NoError(t, err)
	v2, err := codec.Read(d, MacAddrLen, macCol)
	require.NoError(t, err)

	// the first result must not be backed by the scratch space the second
	// read overwrote
	assert.Equal(t, first, v1)
	assert.Equal(t, second, v2)

	_, err = codec.Read(d, 5, macCol)
	assert.ErrorIs(t, err, ErrProtocol)

	// the scratch variant still validates writes through the shared path
	_, err = codec.SizeForWrite(net.HardwareAddr{0x01}, macCol)
	assert.ErrorIs(t, err, ErrRange)
}
