// Package techbase keeps component selections legal for the tech base that
// governs them. It owns the per-category validators, the mode transitions and
// the selection memory used to restore earlier choices.
package techbase

import (
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
)

// Validator answers which selections are legal for a category
type Validator interface {
	ValidTypes(techBase mech.TechBase) []string
	IsValid(value string, techBase mech.TechBase) bool
	Default(techBase mech.TechBase) string
}

type typedValidator[T ~string] struct {
	innerSphere []T
	clan        []T
	fallback    T
}

func (v typedValidator[T]) list(techBase mech.TechBase) []T {
	if techBase == mech.TechBaseClan {
		return v.clan
	}
	return v.innerSphere
}

func (v typedValidator[T]) ValidTypes(techBase mech.TechBase) []string {
	types := v.list(techBase)
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func (v typedValidator[T]) IsValid(value string, techBase mech.TechBase) bool {
	for _, t := range v.list(techBase) {
		if string(t) == value {
			return true
		}
	}
	return false
}

func (v typedValidator[T]) Default(techBase mech.TechBase) string {
	if types := v.list(techBase); len(types) > 0 {
		return string(types[0])
	}
	return string(v.fallback)
}

var (
	engineValidator = typedValidator[mech.EngineType]{
		innerSphere: []mech.EngineType{mech.EngineStandard, mech.EngineXLIS, mech.EngineLight, mech.EngineXXL, mech.EngineCompact},
		clan:        []mech.EngineType{mech.EngineStandard, mech.EngineXLClan, mech.EngineXXL},
		fallback:    mech.EngineStandard,
	}
	gyroValidator = typedValidator[mech.GyroType]{
		innerSphere: []mech.GyroType{mech.GyroStandard, mech.GyroXL, mech.GyroCompact, mech.GyroHeavyDuty},
		clan:        []mech.GyroType{mech.GyroStandard},
		fallback:    mech.GyroStandard,
	}
	structureValidator = typedValidator[mech.StructureType]{
		innerSphere: []mech.StructureType{mech.StructureStandard, mech.StructureEndoSteelIS},
		clan:        []mech.StructureType{mech.StructureStandard, mech.StructureEndoSteelClan},
		fallback:    mech.StructureStandard,
	}
	cockpitValidator = typedValidator[mech.CockpitType]{
		innerSphere: []mech.CockpitType{mech.CockpitStandard, mech.CockpitSmall, mech.CockpitTorsoMounted, mech.CockpitCommandConsole},
		clan:        []mech.CockpitType{mech.CockpitStandard},
		fallback:    mech.CockpitStandard,
	}
	heatSinkValidator = typedValidator[mech.HeatSinkType]{
		innerSphere: []mech.HeatSinkType{mech.HeatSinkSingle, mech.HeatSinkDoubleIS},
		clan:        []mech.HeatSinkType{mech.HeatSinkDoubleClan, mech.HeatSinkSingle},
		fallback:    mech.HeatSinkSingle,
	}
	armorValidator = typedValidator[mech.ArmorType]{
		innerSphere: []mech.ArmorType{mech.ArmorStandard, mech.ArmorFerroFibrousIS, mech.ArmorReactiveIS, mech.ArmorStealth},
		clan:        []mech.ArmorType{mech.ArmorStandard, mech.ArmorFerroFibrousClan, mech.ArmorReactiveClan},
		fallback:    mech.ArmorStandard,
	}
)

// ValidatorFor returns the validator for a component category
func ValidatorFor(category mech.ComponentCategory) (Validator, error) {
	switch category {
	case mech.CategoryEngine:
		return engineValidator, nil
	case mech.CategoryGyro:
		return gyroValidator, nil
	case mech.CategoryStructure:
		return structureValidator, nil
	case mech.CategoryCockpit:
		return cockpitValidator, nil
	case mech.CategoryHeatSink:
		return heatSinkValidator, nil
	case mech.CategoryArmor:
		return armorValidator, nil
	default:
		return nil, errors.InvalidArgumentf("unknown component category %q", category)
	}
}

// Selection reads the draft's current selection for a category
func Selection(d mech.Draft, category mech.ComponentCategory) (string, error) {
	switch category {
	case mech.CategoryEngine:
		return string(d.EngineType), nil
	case mech.CategoryGyro:
		return string(d.GyroType), nil
	case mech.CategoryStructure:
		return string(d.StructureType), nil
	case mech.CategoryCockpit:
		return string(d.CockpitType), nil
	case mech.CategoryHeatSink:
		return string(d.HeatSinkType), nil
	case mech.CategoryArmor:
		return string(d.ArmorType), nil
	default:
		return "", errors.InvalidArgumentf("unknown component category %q", category)
	}
}

func setSelection(d *mech.Draft, category mech.ComponentCategory, value string) error {
	switch category {
	case mech.CategoryEngine:
		d.EngineType = mech.EngineType(value)
	case mech.CategoryGyro:
		d.GyroType = mech.GyroType(value)
	case mech.CategoryStructure:
		d.StructureType = mech.StructureType(value)
	case mech.CategoryCockpit:
		d.CockpitType = mech.CockpitType(value)
	case mech.CategoryHeatSink:
		d.HeatSinkType = mech.HeatSinkType(value)
	case mech.CategoryArmor:
		d.ArmorType = mech.ArmorType(value)
	default:
		return errors.InvalidArgumentf("unknown component category %q", category)
	}
	return nil
}
