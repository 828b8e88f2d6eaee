package utils

import (
	"fmt"
	"strings"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
)

// flagOrder fixes a stable rendering order for named access-flag bits so
// output doesn't depend on Go's randomized map iteration.
var flagOrder = []model.AccessFlagBit{
	model.FlagPublic, model.FlagPrivate, model.FlagProtected, model.FlagStatic,
	model.FlagFinal, model.FlagSuper, model.FlagSynchronized, model.FlagVolatile,
	model.FlagBridge, model.FlagTransient, model.FlagVarargs, model.FlagNative,
	model.FlagInterface, model.FlagAbstract, model.FlagStrict, model.FlagSynthetic,
	model.FlagAnnotation, model.FlagEnum, model.FlagModule, model.FlagMandated,
	model.FlagTransitive, model.FlagStaticPhase, model.FlagOpen,
}

// FormatAccessFlags renders a decoded AccessFlags as its named bits joined
// with spaces, e.g. "PUBLIC FINAL SYNTHETIC", followed by any numeric
// residue this context doesn't claim.
func FormatAccessFlags(af model.AccessFlags) string {
	var names []string
	for _, bit := range flagOrder {
		if af.Has(bit) {
			names = append(names, string(bit))
		}
	}
	if af.Residue != 0 {
		names = append(names, fmt.Sprintf("0x%04X", af.Residue))
	}
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, " ")
}
