package model

import "testing"

func TestDecodeAccessFlagsFullBitfieldNotNibbleWise(t *testing.T) {
	// PUBLIC(0x0001) | STATIC(0x0008) | FINAL(0x0010) = 0x19 spans both
	// nibbles of the low byte; a nibble-wise decoder could only see one
	// nibble's bits at a time and would miss this combination.
	af := DecodeAccessFlags(0x0019, ContextMethod)
	for _, want := range []AccessFlagBit{FlagPublic, FlagStatic, FlagFinal} {
		if !af.Has(want) {
			t.Fatalf("expected %s set, got %+v", want, af.Flags)
		}
	}
	if len(af.Flags) != 3 {
		t.Fatalf("expected exactly 3 flags, got %+v", af.Flags)
	}
}

func TestDecodeAccessFlagsModuleBitRecognisedInClassContext(t *testing.T) {
	af := DecodeAccessFlags(0x8000, ContextClass)
	if !af.Has(FlagModule) {
		t.Fatalf("expected ACC_MODULE recognised in class context, got %+v", af)
	}
	if af.Residue != 0 {
		t.Fatalf("expected no residue for a recognised bit, got 0x%04x", af.Residue)
	}
}

func TestDecodeAccessFlagsResidueForUnclaimedBits(t *testing.T) {
	// 0x0002 (PRIVATE) is not a defined bit in the class context.
	af := DecodeAccessFlags(0x0001|0x0002, ContextClass)
	if !af.Has(FlagPublic) {
		t.Fatal("expected PUBLIC set")
	}
	if af.Residue != 0x0002 {
		t.Fatalf("Residue = 0x%04x, want 0x0002", af.Residue)
	}
}

func TestDecodeAccessFlagsContextsAreIndependent(t *testing.T) {
	// 0x0020 means SUPER in a class context but SYNCHRONIZED in a method context.
	classAF := DecodeAccessFlags(0x0020, ContextClass)
	methodAF := DecodeAccessFlags(0x0020, ContextMethod)
	if !classAF.Has(FlagSuper) || classAF.Has(FlagSynchronized) {
		t.Fatalf("class context decoded 0x0020 as %+v, want only SUPER", classAF.Flags)
	}
	if !methodAF.Has(FlagSynchronized) || methodAF.Has(FlagSuper) {
		t.Fatalf("method context decoded 0x0020 as %+v, want only SYNCHRONIZED", methodAF.Flags)
	}
}
