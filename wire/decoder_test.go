package wire

import (
	"bytes"
	"io"
	"testing"
)

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	e := NewEncoder()
	defer PutEncoder(e)

	if _, err := e.Byte(-7); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Int16(0x4BCD); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Int32(-1000000); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Int64(1 << 40); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Float64(-459.67); err != nil {
		t.Fatal(err)
	}
	if _, err := e.String("nimbus"); err != nil {
		t.Fatal(err)
	}

	d := NewDecoder(bytes.NewReader(e.Bytes()))

	b, err := d.Byte()
	if err != nil {
		t.Fatal(err)
	}
	if b != -7 {
		t.Errorf("expected -7 got %d", b)
	}
	s, err := d.Int16()
	if err != nil {
		t.Fatal(err)
	}
	if s != 0x4BCD {
		t.Errorf("expected %d got %d", 0x4BCD, s)
	}
	i, err := d.Int32()
	if err != nil {
		t.Fatal(err)
	}
	if i != -1000000 {
		t.Errorf("expected -1000000 got %d", i)
	}
	l, err := d.Int64()
	if err != nil {
		t.Fatal(err)
	}
	if l != 1<<40 {
		t.Errorf("expected %d got %d", int64(1)<<40, l)
	}
	f, err := d.Float64()
	if err != nil {
		t.Fatal(err)
	}
	if f != -459.67 {
		t.Errorf("expected -459.67 got %v", f)
	}
	str, err := d.String()
	if err != nil {
		t.Fatal(err)
	}
	if str != "nimbus" {
		t.Errorf("expected nimbus got %s", str)
	}
}

func TestDecoder_Bytes(t *testing.T) {
	t.Parallel()

	raw := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}
	d := NewDecoder(bytes.NewReader(raw))

	got, err := d.Bytes(len(raw))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("expected %x got %x", raw, got)
	}

	// a short source is an error, never a partial result
	d.SetReader(bytes.NewReader(raw[:3]))
	_, err = d.Bytes(len(raw))
	if err != io.ErrUnexpectedEOF {
		t.Errorf("expected io.ErrUnexpectedEOF got %v", err)
	}
}

func TestDecoder_Message(t *testing.T) {
	t.Parallel()

	body := []byte("date column payload")
	e := NewEncoder()
	defer PutEncoder(e)
	if _, err := e.Binary(body); err != nil {
		t.Fatal(err)
	}

	msg, err := NewDecoder(bytes.NewReader(e.Bytes())).Message()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(msg, body) {
		t.Errorf("expected %q got %q", body, msg)
	}
}
