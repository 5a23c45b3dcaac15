package wire

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"
)

//size of bytes
const (
	byteSize    = 1
	shortSize   = 2
	integerSize = 4
	longSize    = 8
)

var epool = sync.Pool{
	New: func() interface{} {
		return &Encoder{buf: &bytes.Buffer{}}
	},
}

// We are using big endian to encode the values for the nimbus wire protocol
var endian = binary.BigEndian

// Encoder defines methods for encoding Go values to the nimbus wire protocol.
// This struct is reusable, you can call Reset method and start encoding new
// fresh values.
//
// Values are encoded in Big Endian byte order mark.
//
// To retrieve []byte of the encoded values use Bytes method.
type Encoder struct {
	buf *bytes.Buffer
}

// NewEncoder returns a new Encoder instance
func NewEncoder() *Encoder {
	return epool.Get().(*Encoder)
}

// PutEncoder resets e and returns it to the internal pool for reuse.
func PutEncoder(e *Encoder) {
	e.Reset()
	epool.Put(e)
}

//Reset resets the underlying buffer. This will remove any values that were
//encoded before.
//
//Call this to reuse the Encoder and avoid unnecessary allocations.
func (e *Encoder) Reset() {
	e.buf.Reset()
}

// Bytes returns the buffered nimbus wire protocol encoded bytes
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of bytes buffered so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Byte encodes int8 value to nimbus wire protocol Byte. This returns the
// number of bytes written and an error if any.
//
// For a successful encoding the value of number of bytes written is 1
func (e *Encoder) Byte(v int8) (int, error) {
	b := make([]byte, byteSize)
	b[0] = byte(v)
	return e.buf.Write(b)
}

// Int16 encodes int16 value to nimbus wire protocol Short. For a successful
// encoding the number of bytes written is 2
func (e *Encoder) Int16(v int16) (int, error) {
	return e.uint16(uint16(v))
}

func (e *Encoder) uint16(v uint16) (int, error) {
	b := make([]byte, shortSize)
	endian.PutUint16(b, v)
	return e.buf.Write(b)
}

// Int32 encodes int32 value to nimbus wire protocol Integer. For a successful
// encoding the number of bytes written is 4
func (e *Encoder) Int32(v int32) (int, error) {
	return e.uint32(uint32(v))
}

func (e *Encoder) uint32(v uint32) (int, error) {
	b := make([]byte, integerSize)
	endian.PutUint32(b, v)
	return e.buf.Write(b)
}

// Int64 encodes int64 value into nimbus wire protocol Long. For a successful
// encoding the number of bytes written is 8
func (e *Encoder) Int64(v int64) (int, error) {
	return e.uint64(uint64(v))
}

func (e *Encoder) uint64(v uint64) (int, error) {
	b := make([]byte, longSize)
	endian.PutUint64(b, v)
	return e.buf.Write(b)
}

// Float64 encodes float64 value to nimbus wire protocol float type. This uses
// math.Float64bits to covert v to uint64 which is encoded into []byte of size
// 8.  For a successful encoding the number of bytes written is 8
func (e *Encoder) Float64(v float64) (int, error) {
	return e.uint64(math.Float64bits(v))
}

// Bool encodes bool values to nimbus wire protocol boolean
func (e *Encoder) Bool(v bool) (int, error) {
	if v {
		return e.Byte(0x1)
	}
	return e.Byte(0x0)
}

// Binary encodes []byte to nimbus wire protocol varbinary
//
// This first encodes the size of v as nimbus Integer followed by raw bytes of
// v.
func (e *Encoder) Binary(v []byte) (int, error) {
	s, err := e.Int32(int32(len(v)))
	if err != nil {
		return 0, err
	}
	n, err := e.buf.Write(v)
	if err != nil {
		return 0, err
	}
	return s + n, nil
}

// String encodes strings to nimbus wire protocol string. A string is treated
// like []byte. We first encode the size of the string, followed by the raw
// bytes of the string.
func (e *Encoder) String(v string) (int, error) {
	return e.Binary([]byte(v))
}

// Time encodes time.Time value to nimbus wire protocol timestamp, which is
// microseconds since the unix epoch. The zero time encodes as MinInt64.
func (e *Encoder) Time(v time.Time) (int, error) {
	if v.IsZero() {
		return e.Int64(math.MinInt64)
	}
	nano := v.Round(time.Microsecond).UnixNano()
	return e.Int64(nano / int64(time.Microsecond))
}

// Write writes b to the underlying buffer as is, with no length prefix and no
// byte order transformation. Fixed-layout codecs use this to emit their
// canonical byte layout.
func (e *Encoder) Write(b []byte) (int, error) {
	return e.buf.Write(b)
}

// Read implements io.Reader over the buffered bytes.
func (e *Encoder) Read(b []byte) (int, error) {
	return e.buf.Read(b)
}
