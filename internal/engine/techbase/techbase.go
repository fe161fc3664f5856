package techbase

import (
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
)

// Source names which fallback step produced a selection
type Source string

// Fallback sources, in the order they are tried
const (
	SourceMemory  Source = "MEMORY"
	SourceCurrent Source = "CURRENT"
	SourceDefault Source = "DEFAULT"
)

// Correction records a selection the engine replaced
type Correction struct {
	Category mech.ComponentCategory `json:"category"`
	TechBase mech.TechBase          `json:"techBase"`
	From     string                 `json:"from"`
	To       string                 `json:"to"`
	Source   Source                 `json:"source"`
}

// Result is the outcome of a tech-base change
type Result struct {
	Draft       mech.Draft
	Corrections []Correction
}

// SetMode changes the draft-wide tech base mode and revalidates every
// category against its new effective tech base. Per-subsystem tech bases are
// kept so switching back to MIXED restores them.
func SetMode(d mech.Draft, mode mech.TechBaseMode, memory *Memory) (Result, error) {
	if !mode.IsValid() {
		return Result{}, errors.InvalidArgumentf("unknown tech base mode %q", mode)
	}

	out := d.Clone()
	out.TechBaseMode = mode
	if tb, ok := mode.TechBase(); ok {
		out.TechBase = tb
	}

	corrections, err := revalidate(&out, mech.AllComponentCategories(), nil, memory)
	if err != nil {
		return Result{}, err
	}
	out.IsDirty = true
	return Result{Draft: out, Corrections: corrections}, nil
}

// SetComponentTechBase sets one subsystem's tech base. The value is always
// recorded; its categories are only revalidated while the draft is MIXED.
func SetComponentTechBase(d mech.Draft, subsystem mech.Subsystem, techBase mech.TechBase, memory *Memory) (Result, error) {
	vb := errors.NewValidationBuilder()
	if !subsystem.IsValid() {
		vb.InvalidField("subsystem", "unknown subsystem "+string(subsystem))
	}
	if !techBase.IsValid() {
		vb.InvalidField("techBase", "unknown tech base "+string(techBase))
	}
	if err := vb.Build(); err != nil {
		return Result{}, err
	}

	out := d.Clone()
	if out.ComponentTechBases == nil {
		out.ComponentTechBases = make(map[mech.Subsystem]mech.TechBase)
	}
	out.ComponentTechBases[subsystem] = techBase
	out.IsDirty = true

	if out.Mode() != mech.TechBaseModeMixed {
		return Result{Draft: out}, nil
	}

	corrections, err := revalidate(&out, subsystem.Categories(), &techBase, memory)
	if err != nil {
		return Result{}, err
	}
	return Result{Draft: out, Corrections: corrections}, nil
}

// Remember stores the draft's selections that are legal for their effective
// tech base. Call it when the user confirms a selection.
func Remember(d mech.Draft, memory *Memory) {
	for _, category := range mech.AllComponentCategories() {
		tb := d.EffectiveTechBase(mech.SubsystemOf(category))
		v, _ := ValidatorFor(category)
		current, _ := Selection(d, category)
		if v.IsValid(current, tb) {
			memory.Put(category, tb, current)
		}
	}
}

// Check lists categories whose selection is illegal for its effective tech
// base without changing anything.
func Check(d mech.Draft) []mech.ComponentCategory {
	var invalid []mech.ComponentCategory
	for _, category := range mech.AllComponentCategories() {
		tb := d.EffectiveTechBase(mech.SubsystemOf(category))
		v, _ := ValidatorFor(category)
		current, _ := Selection(d, category)
		if !v.IsValid(current, tb) {
			invalid = append(invalid, category)
		}
	}
	return invalid
}

// revalidate applies the fallback chain to each category: remembered value,
// then the current selection, then the default. The chosen value is written
// back to memory. A nil techBase means each category's effective tech base.
func revalidate(d *mech.Draft, categories []mech.ComponentCategory, techBase *mech.TechBase, memory *Memory) ([]Correction, error) {
	var corrections []Correction
	for _, category := range categories {
		v, err := ValidatorFor(category)
		if err != nil {
			return nil, err
		}
		current, err := Selection(*d, category)
		if err != nil {
			return nil, err
		}

		tb := d.EffectiveTechBase(mech.SubsystemOf(category))
		if techBase != nil {
			tb = *techBase
		}

		chosen, source := v.Default(tb), SourceDefault
		if remembered, ok := memory.Get(category, tb); ok && v.IsValid(remembered, tb) {
			chosen, source = remembered, SourceMemory
		} else if v.IsValid(current, tb) {
			chosen, source = current, SourceCurrent
		}
		memory.Put(category, tb, chosen)

		if chosen == current {
			continue
		}
		if err := setSelection(d, category, chosen); err != nil {
			return nil, err
		}
		corrections = append(corrections, Correction{
			Category: category,
			TechBase: tb,
			From:     current,
			To:       chosen,
			Source:   source,
		})
	}
	return corrections, nil
}
