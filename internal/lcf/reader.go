// Package lcf decodes the RPG Maker 2000/2003 binary formats consumed by the
// linter: map units (.lmu) and the map tree (.lmt).
//
// Only the fields the rules inspect are materialized. Everything else is
// skipped by chunk size, so unknown or newer chunks never break decoding.
package lcf

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// ErrTruncated is returned when the input ends in the middle of a value.
var ErrTruncated = errors.New("unexpected end of data")

// DecodeError describes where and why decoding failed.
type DecodeError struct {
	// Offset is the byte offset at which the failure was detected.
	Offset int
	// Reason is a short description of the failure.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("offset %d: %s: %v", e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// reader walks a byte slice. It never panics on malformed input.
type reader struct {
	data []byte
	pos  int
	// base is the absolute file offset of data[0], used in errors.
	base int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) eof() bool {
	return r.pos >= len(r.data)
}

func (r *reader) fail(reason string, err error) error {
	return &DecodeError{Offset: r.base + r.pos, Reason: reason, Err: err}
}

// ber reads a compressed integer: 7 bits per byte, most significant group
// first, high bit set on every byte except the last.
// Values that do not fit 32 bits are rejected.
func (r *reader) ber() (uint32, error) {
	var v uint64
	for i := 0; ; i++ {
		if r.eof() {
			return 0, r.fail("reading integer", ErrTruncated)
		}
		if i == 5 {
			return 0, r.fail("integer longer than 5 bytes", nil)
		}
		b := r.data[r.pos]
		r.pos++
		v = v<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			n, err := safecast.Conv[uint32](v)
			if err != nil {
				return 0, r.fail("integer overflows 32 bits", err)
			}
			return n, nil
		}
	}
}

// size reads a BER integer used as a length and checks it fits the input.
func (r *reader) size() (int, error) {
	v, err := r.ber()
	if err != nil {
		return 0, err
	}
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0, r.fail("length out of range", err)
	}
	if n > len(r.data)-r.pos {
		return 0, r.fail(fmt.Sprintf("length %d exceeds remaining %d bytes", n, len(r.data)-r.pos), ErrTruncated)
	}
	return n, nil
}

func (r *reader) int() (int, error) {
	v, err := r.ber()
	if err != nil {
		return 0, err
	}
	// Negative values are stored as their 32-bit two's complement.
	return int(int32(v)), nil //nolint:gosec // intentional reinterpretation
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n > len(r.data)-r.pos {
		return nil, r.fail("reading bytes", ErrTruncated)
	}
	b := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

// str reads a length-prefixed byte string.
func (r *reader) str() ([]byte, error) {
	n, err := r.size()
	if err != nil {
		return nil, err
	}
	return r.bytes(n)
}

// header checks the leading signature string of a file.
func (r *reader) header(want string) error {
	got, err := r.str()
	if err != nil {
		return err
	}
	if string(got) != want {
		return r.fail(fmt.Sprintf("bad signature %q, want %q", got, want), nil)
	}
	return nil
}

// chunk is one (id, payload) pair of a chunked structure.
type chunk struct {
	id   uint32
	data []byte
	base int
}

// chunks reads chunks until a zero id or the end of input and calls fn for
// each of them.
func (r *reader) chunks(fn func(c chunk) error) error {
	for !r.eof() {
		id, err := r.ber()
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}
		n, err := r.size()
		if err != nil {
			return err
		}
		base := r.base + r.pos
		data, _ := r.bytes(n)
		if err := fn(chunk{id: id, data: data, base: base}); err != nil {
			return err
		}
	}
	return nil
}

func (c chunk) reader() *reader {
	return &reader{data: c.data, base: c.base}
}

// intValue decodes a chunk holding a single integer.
func (c chunk) intValue() (int, error) {
	return c.reader().int()
}
