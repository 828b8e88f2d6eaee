package model

// AccessFlagBit is one named bit of an access_flags mask.
type AccessFlagBit string

const (
	FlagPublic       AccessFlagBit = "PUBLIC"
	FlagPrivate      AccessFlagBit = "PRIVATE"
	FlagProtected    AccessFlagBit = "PROTECTED"
	FlagStatic       AccessFlagBit = "STATIC"
	FlagFinal        AccessFlagBit = "FINAL"
	FlagSuper        AccessFlagBit = "SUPER"
	FlagSynchronized AccessFlagBit = "SYNCHRONIZED"
	FlagVolatile     AccessFlagBit = "VOLATILE"
	FlagBridge       AccessFlagBit = "BRIDGE"
	FlagTransient    AccessFlagBit = "TRANSIENT"
	FlagVarargs      AccessFlagBit = "VARARGS"
	FlagNative       AccessFlagBit = "NATIVE"
	FlagInterface    AccessFlagBit = "INTERFACE"
	FlagAbstract     AccessFlagBit = "ABSTRACT"
	FlagStrict       AccessFlagBit = "STRICT"
	FlagSynthetic    AccessFlagBit = "SYNTHETIC"
	FlagAnnotation   AccessFlagBit = "ANNOTATION"
	FlagEnum         AccessFlagBit = "ENUM"
	FlagModule       AccessFlagBit = "MODULE"
	FlagMandated     AccessFlagBit = "MANDATED"
	FlagTransitive   AccessFlagBit = "TRANSITIVE"
	FlagStaticPhase  AccessFlagBit = "STATIC_PHASE"
	FlagOpen         AccessFlagBit = "OPEN"
)

type bitDef struct {
	mask uint16
	name AccessFlagBit
}

// bitsByContext defines, per context, every named bit the JVM spec assigns
// at that bit position. Bits set in the mask but absent from this table are
// preserved as Residue rather than treated as an error.
var bitsByContext = map[AccessFlagContext][]bitDef{
	ContextClass: {
		{0x0001, FlagPublic}, {0x0010, FlagFinal}, {0x0020, FlagSuper},
		{0x0200, FlagInterface}, {0x0400, FlagAbstract}, {0x1000, FlagSynthetic},
		{0x2000, FlagAnnotation}, {0x4000, FlagEnum}, {0x8000, FlagModule},
	},
	ContextField: {
		{0x0001, FlagPublic}, {0x0002, FlagPrivate}, {0x0004, FlagProtected},
		{0x0008, FlagStatic}, {0x0010, FlagFinal}, {0x0040, FlagVolatile},
		{0x0080, FlagTransient}, {0x1000, FlagSynthetic}, {0x4000, FlagEnum},
	},
	ContextMethod: {
		{0x0001, FlagPublic}, {0x0002, FlagPrivate}, {0x0004, FlagProtected},
		{0x0008, FlagStatic}, {0x0010, FlagFinal}, {0x0020, FlagSynchronized},
		{0x0040, FlagBridge}, {0x0080, FlagVarargs}, {0x0100, FlagNative},
		{0x0400, FlagAbstract}, {0x0800, FlagStrict}, {0x1000, FlagSynthetic},
	},
	ContextInnerClass: {
		{0x0001, FlagPublic}, {0x0002, FlagPrivate}, {0x0004, FlagProtected},
		{0x0008, FlagStatic}, {0x0010, FlagFinal}, {0x0200, FlagInterface},
		{0x0400, FlagAbstract}, {0x1000, FlagSynthetic}, {0x2000, FlagAnnotation},
		{0x4000, FlagEnum},
	},
	ContextMethodParameter: {
		{0x0010, FlagFinal}, {0x1000, FlagSynthetic}, {0x8000, FlagMandated},
	},
	ContextModule: {
		{0x0020, FlagOpen}, {0x1000, FlagSynthetic}, {0x8000, FlagMandated},
	},
	ContextModuleRequires: {
		{0x0020, FlagTransitive}, {0x0040, FlagStaticPhase},
		{0x1000, FlagSynthetic}, {0x8000, FlagMandated},
	},
	ContextModuleExports: {
		{0x1000, FlagSynthetic}, {0x8000, FlagMandated},
	},
	ContextModuleOpens: {
		{0x1000, FlagSynthetic}, {0x8000, FlagMandated},
	},
}

// AccessFlags is a decoded bit-mask: the named bits recognised in its
// context, plus any numeric residue from bits the context doesn't define.
type AccessFlags struct {
	Mask    uint16
	Context AccessFlagContext
	Flags   map[AccessFlagBit]bool
	Residue uint16 // bits set in Mask that no defined flag in this context claims
}

// DecodeAccessFlags maps a u2 bit-mask to its named flags under ctx. Unlike
// the legacy nibble-wise decoder this tests the full 16-bit mask bit by bit,
// so combinations within one nibble (e.g. PUBLIC|STATIC = 0x09, the low
// nibble of PUBLIC|STATIC|FINAL = 0x19) decode correctly.
func DecodeAccessFlags(mask uint16, ctx AccessFlagContext) AccessFlags {
	af := AccessFlags{Mask: mask, Context: ctx, Flags: make(map[AccessFlagBit]bool)}
	claimed := uint16(0)
	for _, bd := range bitsByContext[ctx] {
		if mask&bd.mask != 0 {
			af.Flags[bd.name] = true
			claimed |= bd.mask
		}
	}
	af.Residue = mask &^ claimed
	return af
}

// Has reports whether the named bit is set.
func (af AccessFlags) Has(bit AccessFlagBit) bool {
	return af.Flags[bit]
}
