package parser

import (
	"testing"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/reader"
)

func TestParseConstantPoolLongOccupiesTwoSlots(t *testing.T) {
	// count=4: #1 Long(42), #2 Unusable (consumed by the Long), #3 Utf8("hi").
	b := newClassBuilder().
		u2(4).
		u1(byte(model.TagLong)).u8(42).
		u1(byte(model.TagUtf8)).utf8Body("hi").
		bytesOut()

	var diags []model.Diagnostic
	pool, err := parseConstantPool(reader.New(b), &diags)
	if err != nil {
		t.Fatalf("parseConstantPool: %v", err)
	}

	e, err := pool.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if e.Tag != model.TagLong || e.LongValue != 42 {
		t.Fatalf("entry 1 = %+v, want Long(42)", e)
	}

	e2, err := pool.Get(2)
	if err != nil {
		t.Fatalf("Get(2): %v", err)
	}
	if !e2.Unusable {
		t.Fatalf("entry 2 should be the unusable second slot of the Long, got %+v", e2)
	}

	if _, err := pool.Utf8(2, "test"); err == nil {
		t.Fatal("expected WrongConstantKind resolving the unusable slot as Utf8")
	} else if _, ok := err.(*model.WrongConstantKindError); !ok {
		t.Fatalf("expected *WrongConstantKindError, got %T (%v)", err, err)
	}

	s, err := pool.Utf8(3, "test")
	if err != nil {
		t.Fatalf("Utf8(3): %v", err)
	}
	if s != "hi" {
		t.Fatalf("Utf8(3) = %q, want hi", s)
	}
}

func TestParseConstantPoolSignedLong(t *testing.T) {
	// -1 as two's complement u8 must decode as a signed int64, not the
	// Python original's unsigned-hex-int reading.
	b := newClassBuilder().
		u2(3).
		u1(byte(model.TagLong)).u8(0xFFFFFFFFFFFFFFFF).
		bytesOut()

	var diags []model.Diagnostic
	pool, err := parseConstantPool(reader.New(b), &diags)
	if err != nil {
		t.Fatalf("parseConstantPool: %v", err)
	}
	e, err := pool.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if e.LongValue != -1 {
		t.Fatalf("LongValue = %d, want -1", e.LongValue)
	}
}

func TestParseConstantPoolBadTagIsFatal(t *testing.T) {
	b := newClassBuilder().
		u2(2).
		u1(0xEE). // not a recognised tag
		bytesOut()

	var diags []model.Diagnostic
	_, err := parseConstantPool(reader.New(b), &diags)
	if err == nil {
		t.Fatal("expected error for unrecognised constant tag")
	}
	if _, ok := err.(*model.BadConstantTagError); !ok {
		t.Fatalf("expected *BadConstantTagError, got %T (%v)", err, err)
	}
}

func TestParseConstantPoolBadUtf8IsRecoverable(t *testing.T) {
	// A lone continuation byte (0x80) is not valid modified UTF-8 on its own.
	b := newClassBuilder().
		u2(2).
		u1(byte(model.TagUtf8)).u2(1).u1(0x80).
		bytesOut()

	var diags []model.Diagnostic
	pool, err := parseConstantPool(reader.New(b), &diags)
	if err != nil {
		t.Fatalf("parseConstantPool: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if _, ok := diags[0].Err.(*model.BadUtf8Error); !ok {
		t.Fatalf("expected *BadUtf8Error, got %T", diags[0].Err)
	}
	e, err := pool.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if !e.Utf8DecodeErr {
		t.Fatal("expected Utf8DecodeErr to be set")
	}
}

func TestParseConstantPoolFloatDouble(t *testing.T) {
	b := newClassBuilder().
		u2(4).
		u1(byte(model.TagFloat)).u4(0x42280000). // 42.0
		u1(byte(model.TagDouble)).u8(0x4045000000000000). // 42.0
		bytesOut()

	var diags []model.Diagnostic
	pool, err := parseConstantPool(reader.New(b), &diags)
	if err != nil {
		t.Fatalf("parseConstantPool: %v", err)
	}
	fe, err := pool.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if fe.FloatValue != 42.0 {
		t.Fatalf("FloatValue = %v, want 42.0", fe.FloatValue)
	}
	de, err := pool.Get(2)
	if err != nil {
		t.Fatalf("Get(2): %v", err)
	}
	if de.DoubleValue != 42.0 {
		t.Fatalf("DoubleValue = %v, want 42.0", de.DoubleValue)
	}
}
