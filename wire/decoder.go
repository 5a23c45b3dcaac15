package wire

import (
	"io"
	"math"
	"time"
)

//integer sizes
const (
	ByteSize    = 1
	ShortSize   = 2
	IntegerSize = 4
	LongSize    = 8
)

// Decoder is the nimbus wire protocol decoder
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new Decoder that decodes values read from src
func NewDecoder(src io.Reader) *Decoder {
	return &Decoder{r: src}
}

// SetReader replaces the underlying reader, next call to Decode methods will
// read from this
func (d *Decoder) SetReader(r io.Reader) {
	d.r = r
}

// Reset clears the underlying io.Reader . This sets the reader to nil.
func (d *Decoder) Reset() {
	d.r = nil
}

// Byte reads and decodes nimbus wire protocol encoded []byte to int8.
func (d *Decoder) Byte() (int8, error) {
	var a [ByteSize]byte
	b := a[:]
	_, err := io.ReadFull(d.r, b)
	if err != nil {
		return 0, err
	}
	return int8(a[0]), nil
}

// Bool reads and decodes nimbus wire protocol encoded []byte to bool.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.Byte()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// Int16 reads and decodes nimbus wire protocol encoded []byte to int16.
func (d *Decoder) Int16() (int16, error) {
	v, err := d.Uint16()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// Uint16 reads and decodes nimbus wire protocol encoded []byte into uint16.
//
// This reads 2 bytes from the the underlying io.Reader, assuming the io.Reader
// is for nimbus wire protocol encoded bytes stream. Then the bytes read are
// decoded as uint16 using big endianess
func (d *Decoder) Uint16() (uint16, error) {
	var a [ShortSize]byte
	b := a[:]
	_, err := io.ReadFull(d.r, b)
	if err != nil {
		return 0, err
	}
	return endian.Uint16(b), nil
}

// Int32 reads and decodes nimbus wire protocol encoded []byte to int32.
func (d *Decoder) Int32() (int32, error) {
	u, err := d.Uint32()
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// Uint32 reads and decodes nimbus wire protocol encoded []byte into uint32.
//
// This reads 4 bytes from the the underlying io.Reader, assuming the io.Reader
// is for nimbus wire protocol encoded bytes stream. Then the bytes read are
// decoded as uint32 using big endianess
func (d *Decoder) Uint32() (uint32, error) {
	var a [IntegerSize]byte
	b := a[:]
	_, err := io.ReadFull(d.r, b)
	if err != nil {
		return 0, err
	}
	return endian.Uint32(b), nil
}

// Int64 reads and decodes nimbus wire protocol encoded []byte to int64.
func (d *Decoder) Int64() (int64, error) {
	u, err := d.Uint64()
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

// Uint64 reads and decodes nimbus wire protocol encoded []byte into uint64.
//
// This reads 8 bytes from the the underlying io.Reader, assuming the io.Reader
// is for nimbus wire protocol encoded bytes stream. Then the bytes read are
// decoded as uint64 using big endianess
func (d *Decoder) Uint64() (uint64, error) {
	var a [LongSize]byte
	b := a[:]
	_, err := io.ReadFull(d.r, b)
	if err != nil {
		return 0, err
	}
	return endian.Uint64(b), nil
}

// Float64 reads and decodes nimbus wire protocol encoded []byte to float64.
func (d *Decoder) Float64() (float64, error) {
	v, err := d.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// Time reads and decodes nimbus wire protocol encoded []byte to time.Time.
func (d *Decoder) Time() (time.Time, error) {
	v, err := d.Int64()
	if err != nil {
		return time.Time{}, err
	}
	if v != math.MinInt64 {
		ts := time.Unix(0, v*int64(time.Microsecond))
		return ts.Round(time.Microsecond), err
	}
	return time.Time{}, nil
}

// String reads and decodes nimbus wire protocol encoded []byte to string.
func (d *Decoder) String() (string, error) {
	length, err := d.Int32()
	if err != nil {
		return "", err
	}
	if length == -1 {
		return "", nil
	}
	b := make([]byte, length)
	_, err = io.ReadFull(d.r, b)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Bytes reads exactly n bytes from the underlying io.Reader and returns them
// as a freshly allocated slice. A short read is an error, never a partial
// result.
func (d *Decoder) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := io.ReadFull(d.r, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Read implements io.Reader. Codecs that manage their own scratch space read
// through this.
func (d *Decoder) Read(b []byte) (int, error) {
	return d.r.Read(b)
}

// Message reads a nimbus wire protocol encoded message block from the
// underlying io.Reader.
//
// A message is represented as, a message header followed by the message body.
// The message header is an int32 value dictating the size of the message i.e
// how many bytes the message body occupies. The message body is the next n
// bytes after the message header where n is the value of the message header.
func (d *Decoder) Message() ([]byte, error) {
	size, err := d.MessageHeader()
	if err != nil {
		return nil, err
	}
	b := make([]byte, size)
	_, err = io.ReadFull(d.r, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// MessageHeader reads an int32 value representing the size of the encoded
// message body.
func (d *Decoder) MessageHeader() (int32, error) {
	return d.Int32()
}
