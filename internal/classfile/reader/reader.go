// Package reader provides a sequential cursor over an in-memory class file buffer.
package reader

import (
	"encoding/binary"
	"fmt"
)

// ErrUnexpectedEOF is returned when a read would run past the end of the buffer.
type ErrUnexpectedEOF struct {
	At     int
	Wanted int
	Have   int
}

func (e *ErrUnexpectedEOF) Error() string {
	return fmt.Sprintf("unexpected EOF at offset %d: wanted %d bytes, have %d", e.At, e.Wanted, e.Have)
}

// Cursor wraps an immutable byte buffer and an offset into it. Every read
// advances the offset by exactly the width consumed; the only other ways to
// move it are Skip (forward) and SeekTo (to any offset, forward or back),
// which the decoder uses to resync after an attribute body's length mismatch.
type Cursor struct {
	b   []byte
	pos int
}

// New wraps b starting at offset 0.
func New(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Position returns the current byte offset.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.b) - c.pos
}

// Len returns the total buffer length.
func (c *Cursor) Len() int {
	return len(c.b)
}

func (c *Cursor) require(n int) error {
	if c.Remaining() < n {
		return &ErrUnexpectedEOF{At: c.pos, Wanted: n, Have: c.Remaining()}
	}
	return nil
}

// ReadU1 reads one unsigned byte.
func (c *Cursor) ReadU1() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.b[c.pos]
	c.pos++
	return v, nil
}

// ReadU2 reads a big-endian 16-bit unsigned integer.
func (c *Cursor) ReadU2() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.b[c.pos : c.pos+2])
	c.pos += 2
	return v, nil
}

// ReadU4 reads a big-endian 32-bit unsigned integer.
func (c *Cursor) ReadU4() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.b[c.pos : c.pos+4])
	c.pos += 4
	return v, nil
}

// ReadU8 reads a big-endian 64-bit unsigned integer.
func (c *Cursor) ReadU8() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(c.b[c.pos : c.pos+8])
	c.pos += 8
	return v, nil
}

// ReadI4 reads a big-endian signed 32-bit integer.
func (c *Cursor) ReadI4() (int32, error) {
	v, err := c.ReadU4()
	return int32(v), err
}

// ReadI8 reads a big-endian signed 64-bit integer.
func (c *Cursor) ReadI8() (int64, error) {
	v, err := c.ReadU8()
	return int64(v), err
}

// ReadSlice returns a view of the next n bytes without copying, and advances past them.
func (c *Cursor) ReadSlice(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative slice length: %d", n)
	}
	if err := c.require(n); err != nil {
		return nil, err
	}
	v := c.b[c.pos : c.pos+n]
	c.pos += n
	return v, nil
}

// Skip advances the cursor by n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("negative skip length: %d", n)
	}
	if err := c.require(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// SeekTo repositions the cursor to an absolute offset. Used only to resync
// after an attribute body under/over-reads its declared length.
func (c *Cursor) SeekTo(pos int) error {
	if pos < 0 || pos > len(c.b) {
		return fmt.Errorf("seek target %d out of range [0,%d]", pos, len(c.b))
	}
	c.pos = pos
	return nil
}
