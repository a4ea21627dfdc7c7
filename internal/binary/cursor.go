package binary

import (
	"github.com/simonhull/asfmeta/internal/types"
)

// Cursor reads sequentially from an in-memory buffer.
//
// Offsets are relative to the start of the buffer. base is the absolute
// file offset of the first byte and only appears in error messages.
// A read that would pass the end of the buffer fails without advancing.
type Cursor struct {
	buf  []byte
	path string
	base int64
	off  int
}

// NewCursor creates a Cursor over buf.
func NewCursor(buf []byte, base int64, path string) *Cursor {
	return &Cursor{buf: buf, base: base, path: path}
}

// Offset returns the current position relative to the start of the buffer.
func (c *Cursor) Offset() int { return c.off }

// Len returns the buffer length.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// Base returns the absolute file offset of the first byte of the buffer.
func (c *Cursor) Base() int64 { return c.base }

// AbsOffset returns the absolute file offset of the current position.
func (c *Cursor) AbsOffset() int64 { return c.base + int64(c.off) }

func (c *Cursor) outOfBounds(n int, what string) error {
	return &types.OutOfBoundsError{
		Path:   c.path,
		What:   what,
		Offset: c.AbsOffset(),
		Length: n,
		Size:   c.base + int64(len(c.buf)),
	}
}

// ReadBytes returns the next n bytes and advances past them.
// The returned slice aliases the buffer.
func (c *Cursor) ReadBytes(n int, what string) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, c.outOfBounds(n, what)
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Skip advances the position by n bytes.
func (c *Cursor) Skip(n int, what string) error {
	_, err := c.ReadBytes(n, what)
	return err
}

// Seek moves to pos, which may equal Len.
func (c *Cursor) Seek(pos int, what string) error {
	if pos < 0 || pos > len(c.buf) {
		return &types.OutOfBoundsError{
			Path:   c.path,
			What:   what,
			Offset: c.base + int64(pos),
			Size:   c.base + int64(len(c.buf)),
		}
	}
	c.off = pos
	return nil
}

// Sub returns a Cursor over the next n bytes and advances past them.
func (c *Cursor) Sub(n int, what string) (*Cursor, error) {
	start := c.AbsOffset()
	b, err := c.ReadBytes(n, what)
	if err != nil {
		return nil, err
	}
	return NewCursor(b, start, c.path), nil
}

// ReadGUID reads a 16-byte GUID.
func (c *Cursor) ReadGUID(what string) (types.GUID, error) {
	var g types.GUID
	b, err := c.ReadBytes(types.GUIDSize, what)
	if err != nil {
		return g, err
	}
	copy(g[:], b)
	return g, nil
}

// Read reads a little-endian value of type T and advances the position.
func Read[T Unsigned](c *Cursor, what string) (T, error) {
	b, err := c.ReadBytes(SizeOf[T](), what)
	if err != nil {
		var zero T
		return zero, err
	}
	return DecodeLE[T](b), nil
}

// Chain wraps a Cursor with deferred error checking.
// After the first failure every further read is a no-op returning zero
// values, so fixed-layout records can be decoded without an error check
// per field.
type Chain struct {
	c   *Cursor
	err error
}

// NewChain creates a new Chain.
func NewChain(c *Cursor) *Chain {
	return &Chain{c: c}
}

// ReadChained reads a value with deferred error checking.
func ReadChained[T Unsigned](ch *Chain, what string) T {
	if ch.err != nil {
		var zero T
		return zero
	}

	val, err := Read[T](ch.c, what)
	if err != nil {
		ch.err = err
	}
	return val
}

// Bytes reads n bytes, accumulating any error.
func (ch *Chain) Bytes(n int, what string) []byte {
	if ch.err != nil {
		return nil
	}

	b, err := ch.c.ReadBytes(n, what)
	if err != nil {
		ch.err = err
		return nil
	}
	return b
}

// GUID reads a GUID, accumulating any error.
func (ch *Chain) GUID(what string) types.GUID {
	if ch.err != nil {
		return types.GUID{}
	}

	g, err := ch.c.ReadGUID(what)
	if err != nil {
		ch.err = err
	}
	return g
}

// Skip skips n bytes, accumulating any error.
func (ch *Chain) Skip(n int, what string) {
	if ch.err != nil {
		return
	}
	ch.err = ch.c.Skip(n, what)
}

// Error returns the accumulated error, if any.
func (ch *Chain) Error() error {
	return ch.err
}
