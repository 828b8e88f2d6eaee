package parser

import (
	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/reader"
)

// parseModule reads the full module descriptor of a Module attribute
// (JVMS 4.7.25): module_name, module_flags, module_version, then four
// length-prefixed tables (requires, exports, opens, uses) and a fifth
// (provides) whose entries themselves carry a nested length-prefixed list.
func parseModule(c *reader.Cursor) (*model.ModuleAttribute, error) {
	moduleNameIdx, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	moduleFlags, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	moduleVersionIdx, err := c.ReadU2()
	if err != nil {
		return nil, err
	}

	mod := &model.ModuleAttribute{
		ModuleNameIndex:    int(moduleNameIdx),
		ModuleFlags:        model.DecodeAccessFlags(moduleFlags, model.ContextModule),
		ModuleVersionIndex: int(moduleVersionIdx),
	}

	requiresCount, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	mod.Requires = make([]model.ModuleRequires, requiresCount)
	for i := range mod.Requires {
		idx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		flags, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		versionIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		mod.Requires[i] = model.ModuleRequires{
			RequiresIndex:        int(idx),
			RequiresFlags:        model.DecodeAccessFlags(flags, model.ContextModuleRequires),
			RequiresVersionIndex: int(versionIdx),
		}
	}

	exportsCount, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	mod.Exports = make([]model.ModuleExports, exportsCount)
	for i := range mod.Exports {
		idx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		flags, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		toCount, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		to := make([]int, toCount)
		for j := range to {
			v, err := c.ReadU2()
			if err != nil {
				return nil, err
			}
			to[j] = int(v)
		}
		mod.Exports[i] = model.ModuleExports{
			ExportsIndex:     int(idx),
			ExportsFlags:     model.DecodeAccessFlags(flags, model.ContextModuleExports),
			ExportsToIndexes: to,
		}
	}

	opensCount, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	mod.Opens = make([]model.ModuleOpens, opensCount)
	for i := range mod.Opens {
		idx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		flags, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		toCount, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		to := make([]int, toCount)
		for j := range to {
			v, err := c.ReadU2()
			if err != nil {
				return nil, err
			}
			to[j] = int(v)
		}
		mod.Opens[i] = model.ModuleOpens{
			OpensIndex:     int(idx),
			OpensFlags:     model.DecodeAccessFlags(flags, model.ContextModuleOpens),
			OpensToIndexes: to,
		}
	}

	usesCount, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	mod.UsesIndexes = make([]int, usesCount)
	for i := range mod.UsesIndexes {
		v, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		mod.UsesIndexes[i] = int(v)
	}

	providesCount, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	mod.Provides = make([]model.ModuleProvides, providesCount)
	for i := range mod.Provides {
		idx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		withCount, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		with := make([]int, withCount)
		for j := range with {
			v, err := c.ReadU2()
			if err != nil {
				return nil, err
			}
			with[j] = int(v)
		}
		mod.Provides[i] = model.ModuleProvides{ProvidesIndex: int(idx), ProvidesWithIndexes: with}
	}

	return mod, nil
}
