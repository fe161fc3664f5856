// Package builder creates mech drafts and applies edits to them. Every
// operation returns a new draft and leaves its input untouched. Construction
// rules are not enforced here; the validation package reports violations.
package builder

import (
	"fmt"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
)

// DefaultWalkMP is the walk speed of a new draft
const DefaultWalkMP = 3

// CreateEmpty returns a draft with standard components, the minimum heat
// sinks and no armor or equipment.
func CreateEmpty(tonnage int, techBase mech.TechBase) (mech.Draft, error) {
	if reasons := tonnageReasons(tonnage); len(reasons) > 0 {
		return mech.Draft{}, errors.InvalidTonnage(tonnage, reasons...)
	}
	if !techBase.IsValid() {
		return mech.Draft{}, errors.InvalidArgumentf("unknown tech base %q", techBase)
	}

	heatSink := mech.HeatSinkSingle
	if techBase == mech.TechBaseClan {
		heatSink = mech.HeatSinkDoubleClan
	}

	return mech.Draft{
		Tonnage:       tonnage,
		TechBase:      techBase,
		TechBaseMode:  mech.ModeFor(techBase),
		EngineType:    mech.EngineStandard,
		EngineRating:  EngineRatingFor(DefaultWalkMP, tonnage),
		WalkMP:        DefaultWalkMP,
		RunMP:         mech.RunMP(DefaultWalkMP),
		StructureType: mech.StructureStandard,
		GyroType:      mech.GyroStandard,
		CockpitType:   mech.CockpitStandard,
		ArmorType:     mech.ArmorStandard,
		HeatSinkType:  heatSink,
		HeatSinkCount: mech.MinHeatSinks,
		Armor:         mech.ArmorAllocation{},
		Equipment:     []mech.MountedEquipment{},
	}, nil
}

// CreateFromUnit seeds an empty draft with a unit's identity, tonnage and
// tech base. Components are left at their defaults; see ImportUnit.
func CreateFromUnit(unit mech.UnitRecord) (mech.Draft, error) {
	techBase, mode, err := unit.BaseTechBase()
	if err != nil {
		return mech.Draft{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid unit tech base")
	}

	d, err := CreateEmpty(unit.Tonnage, techBase)
	if err != nil {
		return mech.Draft{}, err
	}

	d.ID = unit.ID
	d.Name = unit.Name()
	d.Chassis = unit.Chassis
	d.Model = unit.Model
	d.TechBaseMode = mode
	return d, nil
}

// EngineRatingFor returns walkMP x tonnage clamped to the buildable range
func EngineRatingFor(walkMP, tonnage int) int {
	rating := walkMP * tonnage
	if rating < mech.MinEngineRating {
		return mech.MinEngineRating
	}
	if rating > mech.MaxEngineRating {
		return mech.MaxEngineRating
	}
	return rating
}

func tonnageReasons(tonnage int) []string {
	var reasons []string
	if tonnage < mech.MinTonnage || tonnage > mech.MaxTonnage {
		reasons = append(reasons, fmt.Sprintf("tonnage must be between %d and %d", mech.MinTonnage, mech.MaxTonnage))
	}
	if tonnage%mech.TonnageStep != 0 {
		reasons = append(reasons, fmt.Sprintf("tonnage must be a multiple of %d", mech.TonnageStep))
	}
	return reasons
}
