package reader

import "testing"

func TestReadU1U2U4(t *testing.T) {
	c := New([]byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x34})

	u4, err := c.ReadU4()
	if err != nil {
		t.Fatalf("ReadU4: %v", err)
	}
	if u4 != 0xCAFEBABE {
		t.Fatalf("ReadU4 = 0x%08X, want 0xCAFEBABE", u4)
	}

	u2, err := c.ReadU2()
	if err != nil {
		t.Fatalf("ReadU2: %v", err)
	}
	if u2 != 0x0034 {
		t.Fatalf("ReadU2 = 0x%04X, want 0x0034", u2)
	}

	if c.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", c.Remaining())
	}
}

func TestReadPastEndIsUnexpectedEOF(t *testing.T) {
	c := New([]byte{0x01, 0x02})
	if _, err := c.ReadU4(); err == nil {
		t.Fatal("expected UnexpectedEof reading u4 from 2 bytes")
	} else if _, ok := err.(*ErrUnexpectedEOF); !ok {
		t.Fatalf("expected *ErrUnexpectedEOF, got %T", err)
	}
}

func TestSkipAndPosition(t *testing.T) {
	c := New([]byte{1, 2, 3, 4, 5})
	if err := c.Skip(3); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if c.Position() != 3 {
		t.Fatalf("Position = %d, want 3", c.Position())
	}
	b, err := c.ReadSlice(2)
	if err != nil {
		t.Fatalf("ReadSlice: %v", err)
	}
	if b[0] != 4 || b[1] != 5 {
		t.Fatalf("ReadSlice = %v, want [4 5]", b)
	}
}

func TestSeekToResync(t *testing.T) {
	c := New(make([]byte, 10))
	if err := c.Skip(2); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if err := c.SeekTo(7); err != nil {
		t.Fatalf("SeekTo: %v", err)
	}
	if c.Remaining() != 3 {
		t.Fatalf("Remaining after SeekTo(7) on 10 bytes = %d, want 3", c.Remaining())
	}
	if err := c.SeekTo(11); err == nil {
		t.Fatal("expected error seeking past buffer end")
	}
}
