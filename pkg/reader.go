package pkg

import "encoding/binary"

// Reader is a bounds-checked cursor over an immutable byte buffer.
//
// All descriptor parsing in this module reads through a Reader: every
// fixed-width read validates the remaining length before touching the
// buffer, so no parse path can read past the end or panic on short input.
// Failed reads return [ErrOutOfBounds] and leave the cursor unchanged.
//
// A Reader never copies the buffer. Slices returned by [Reader.ReadBytes]
// alias the underlying data and share its lifetime.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a reader positioned at the start of data.
// The reader does not copy data; the caller must not mutate it while parsing.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Position returns the current cursor offset from the start of the buffer.
func (r *Reader) Position() int {
	return r.pos
}

// Seek moves the cursor to an absolute offset.
// Seeking to Len() is valid and leaves the reader with zero remaining bytes.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return ErrOutOfBounds
	}
	r.pos = pos
	return nil
}

// ReadUint8 reads one byte and advances the cursor.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, ErrOutOfBounds
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadUint16 reads a little-endian 16-bit value and advances the cursor.
func (r *Reader) ReadUint16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, ErrOutOfBounds
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadBytes reads n bytes and advances the cursor. The returned slice
// aliases the underlying buffer; it is not a copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidParameter
	}
	if r.Remaining() < n {
		return nil, ErrOutOfBounds
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}
