package binary

import (
	"errors"
	"testing"

	"github.com/simonhull/asfmeta/internal/types"
)

func TestCursor_Sequential(t *testing.T) {
	data := []byte{
		0x01,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12,
	}
	c := NewCursor(data, 30, "test.wma")

	u8, err := Read[uint8](c, "u8")
	if err != nil || u8 != 0x01 {
		t.Fatalf("Read[uint8] = 0x%X, %v", u8, err)
	}
	u16, err := Read[uint16](c, "u16")
	if err != nil || u16 != 0x1234 {
		t.Fatalf("Read[uint16] = 0x%X, %v", u16, err)
	}
	u32, err := Read[uint32](c, "u32")
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("Read[uint32] = 0x%X, %v", u32, err)
	}
	u64, err := Read[uint64](c, "u64")
	if err != nil || u64 != 0x123456789ABCDEF0 {
		t.Fatalf("Read[uint64] = 0x%X, %v", u64, err)
	}

	if c.Offset() != len(data) {
		t.Errorf("Offset() = %d, want %d", c.Offset(), len(data))
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", c.Remaining())
	}
	if c.AbsOffset() != 30+int64(len(data)) {
		t.Errorf("AbsOffset() = %d", c.AbsOffset())
	}
}

func TestCursor_OutOfBoundsDoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3}, 100, "test.wma")

	if _, err := c.ReadBytes(2, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := Read[uint32](c, "too wide")
	if err == nil {
		t.Fatal("expected error")
	}

	var bounds *types.OutOfBoundsError
	if !errors.As(err, &bounds) {
		t.Fatalf("expected *types.OutOfBoundsError, got %T", err)
	}
	if bounds.Offset != 102 || bounds.Length != 4 || bounds.Size != 103 {
		t.Errorf("bounds error = %+v", bounds)
	}
	if c.Offset() != 2 {
		t.Errorf("failed read advanced the cursor to %d", c.Offset())
	}
}

func TestCursor_NegativeLength(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3}, 0, "test.wma")
	if _, err := c.ReadBytes(-1, "negative"); err == nil {
		t.Error("expected error for negative length")
	}
}

func TestCursor_SeekAndSkip(t *testing.T) {
	c := NewCursor(make([]byte, 10), 0, "test.wma")

	if err := c.Skip(4, "skip"); err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	if c.Offset() != 4 {
		t.Errorf("Offset() = %d, want 4", c.Offset())
	}
	if err := c.Skip(7, "skip past end"); err == nil {
		t.Error("expected error skipping past end")
	}

	if err := c.Seek(10, "seek to end"); err != nil {
		t.Errorf("Seek(Len) error = %v", err)
	}
	if err := c.Seek(11, "seek past end"); err == nil {
		t.Error("expected error seeking past end")
	}
	if err := c.Seek(-1, "seek before start"); err == nil {
		t.Error("expected error seeking before start")
	}
}

func TestCursor_Sub(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5, 6}, 30, "test.wma")
	_ = c.Skip(1, "skip")

	sub, err := c.Sub(3, "sub")
	if err != nil {
		t.Fatalf("Sub() error = %v", err)
	}
	if sub.Len() != 3 || sub.Base() != 31 {
		t.Errorf("sub Len() = %d, Base() = %d", sub.Len(), sub.Base())
	}
	if c.Offset() != 4 {
		t.Errorf("parent Offset() = %d, want 4", c.Offset())
	}

	if _, err := Read[uint32](sub, "past sub end"); err == nil {
		t.Error("sub cursor should be bounded to its own length")
	}

	if _, err := c.Sub(5, "too long"); err == nil {
		t.Error("expected error for sub past end")
	}
}

func TestChain_Success(t *testing.T) {
	data := []byte{0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0xAA, 0xBB}
	ch := NewChain(NewCursor(data, 0, "test.wma"))

	v16 := ReadChained[uint16](ch, "u16")
	v32 := ReadChained[uint32](ch, "u32")
	raw := ch.Bytes(2, "raw")

	if err := ch.Error(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v16 != 0x1234 || v32 != 0x12345678 || raw[0] != 0xAA || raw[1] != 0xBB {
		t.Errorf("got 0x%X 0x%X %v", v16, v32, raw)
	}
}

func TestChain_ErrorAccumulation(t *testing.T) {
	ch := NewChain(NewCursor([]byte{0x01, 0x02}, 0, "test.wma"))

	_ = ReadChained[uint32](ch, "first")
	second := ReadChained[uint8](ch, "second")
	g := ch.GUID("guid")
	ch.Skip(1, "skip")

	if ch.Error() == nil {
		t.Fatal("expected accumulated error")
	}
	if second != 0 || g != (types.GUID{}) {
		t.Error("reads after a failure should return zero values")
	}
}
