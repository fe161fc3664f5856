package builder

import (
	"fmt"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
)

// ImportUnit builds a complete draft from an external unit record: identity
// and tonnage, component selections, engine, armor and equipment in record
// order. Unknown components or locations fail the whole import.
func ImportUnit(unit mech.UnitRecord) (mech.Draft, error) {
	d, err := CreateFromUnit(unit)
	if err != nil {
		return mech.Draft{}, err
	}

	comps, err := unit.Components()
	if err != nil {
		return mech.Draft{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid unit components")
	}

	walk := unit.Movement.Walk
	if walk <= 0 && comps.EngineRating > 0 {
		walk = comps.EngineRating / unit.Tonnage
	}
	if walk > 0 {
		d.WalkMP = walk
		d.RunMP = mech.RunMP(walk)
	}
	d.EngineRating = comps.EngineRating
	if d.EngineRating == 0 {
		d.EngineRating = EngineRatingFor(d.WalkMP, d.Tonnage)
	}

	d.EngineType = comps.EngineType
	d.GyroType = comps.GyroType
	d.CockpitType = comps.CockpitType
	d.StructureType = comps.StructureType
	d.ArmorType = comps.ArmorType
	d.HeatSinkType = comps.HeatSinkType
	if comps.HeatSinkCount > 0 {
		d.HeatSinkCount = comps.HeatSinkCount
	}
	if d.TechBaseMode == mech.TechBaseModeMixed {
		d.ComponentTechBases = comps.TechBases
	}

	armor, err := unit.ArmorAllocation()
	if err != nil {
		return mech.Draft{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid unit armor")
	}
	d.Armor = armor

	var badLocations []string
	for _, item := range unit.Equipment {
		loc, ok := mech.ParseLocation(item.Location)
		if !ok {
			badLocations = append(badLocations, fmt.Sprintf("%s at %q", item.ID, item.Location))
			continue
		}
		d = AddEquipment(d, item.ID, loc)
	}
	if len(badLocations) > 0 {
		return mech.Draft{}, errors.InvalidArgument("invalid equipment locations").WithReasons(badLocations...)
	}

	d.IsDirty = false
	return d, nil
}
