package builder

import (
	"fmt"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
)

// Changes is a partial edit. Nil fields are left alone.
type Changes struct {
	Name    *string `json:"name,omitempty"`
	Chassis *string `json:"chassis,omitempty"`
	Model   *string `json:"model,omitempty"`

	Tonnage    *int             `json:"tonnage,omitempty"`
	EngineType *mech.EngineType `json:"engineType,omitempty"`
	WalkMP     *int             `json:"walkMP,omitempty"`

	StructureType *mech.StructureType `json:"structureType,omitempty"`
	GyroType      *mech.GyroType      `json:"gyroType,omitempty"`
	CockpitType   *mech.CockpitType   `json:"cockpitType,omitempty"`
	ArmorType     *mech.ArmorType     `json:"armorType,omitempty"`
	HeatSinkType  *mech.HeatSinkType  `json:"heatSinkType,omitempty"`
	HeatSinkCount *int                `json:"heatSinkCount,omitempty"`
}

// IsEmpty reports whether the edit changes nothing
func (c Changes) IsEmpty() bool {
	return c == Changes{}
}

// TouchesSelections reports whether the edit picks a component
func (c Changes) TouchesSelections() bool {
	return c.EngineType != nil || c.StructureType != nil || c.GyroType != nil ||
		c.CockpitType != nil || c.ArmorType != nil || c.HeatSinkType != nil
}

// ApplyChanges merges an edit into a copy of the draft. Changing tonnage,
// walk or engine type recomputes the engine rating from walk x tonnage.
func ApplyChanges(d mech.Draft, c Changes) (mech.Draft, error) {
	if err := c.validate(); err != nil {
		return mech.Draft{}, err
	}

	out := d.Clone()
	if c.Name != nil {
		out.Name = *c.Name
	}
	if c.Chassis != nil {
		out.Chassis = *c.Chassis
	}
	if c.Model != nil {
		out.Model = *c.Model
	}
	if c.Tonnage != nil {
		out.Tonnage = *c.Tonnage
	}
	if c.EngineType != nil {
		out.EngineType = *c.EngineType
	}
	if c.WalkMP != nil {
		out.WalkMP = *c.WalkMP
		out.RunMP = mech.RunMP(out.WalkMP)
	}
	if c.StructureType != nil {
		out.StructureType = *c.StructureType
	}
	if c.GyroType != nil {
		out.GyroType = *c.GyroType
	}
	if c.CockpitType != nil {
		out.CockpitType = *c.CockpitType
	}
	if c.ArmorType != nil {
		out.ArmorType = *c.ArmorType
	}
	if c.HeatSinkType != nil {
		out.HeatSinkType = *c.HeatSinkType
	}
	if c.HeatSinkCount != nil {
		out.HeatSinkCount = *c.HeatSinkCount
	}

	if c.Tonnage != nil || c.WalkMP != nil || c.EngineType != nil {
		out.EngineRating = EngineRatingFor(out.WalkMP, out.Tonnage)
	}
	out.IsDirty = true
	return out, nil
}

func (c Changes) validate() error {
	if c.Tonnage != nil {
		if reasons := tonnageReasons(*c.Tonnage); len(reasons) > 0 {
			return errors.InvalidTonnage(*c.Tonnage, reasons...)
		}
	}

	vb := errors.NewValidationBuilder()
	if c.WalkMP != nil && *c.WalkMP < 0 {
		vb.InvalidField("walkMP", "must not be negative")
	}
	if c.HeatSinkCount != nil && *c.HeatSinkCount < 0 {
		vb.InvalidField("heatSinkCount", "must not be negative")
	}
	if c.EngineType != nil && !c.EngineType.IsValid() {
		vb.InvalidField("engineType", fmt.Sprintf("unknown engine type %q", *c.EngineType))
	}
	if c.StructureType != nil && !c.StructureType.IsValid() {
		vb.InvalidField("structureType", fmt.Sprintf("unknown structure type %q", *c.StructureType))
	}
	if c.GyroType != nil && !c.GyroType.IsValid() {
		vb.InvalidField("gyroType", fmt.Sprintf("unknown gyro type %q", *c.GyroType))
	}
	if c.CockpitType != nil && !c.CockpitType.IsValid() {
		vb.InvalidField("cockpitType", fmt.Sprintf("unknown cockpit type %q", *c.CockpitType))
	}
	if c.ArmorType != nil && !c.ArmorType.IsValid() {
		vb.InvalidField("armorType", fmt.Sprintf("unknown armor type %q", *c.ArmorType))
	}
	if c.HeatSinkType != nil && !c.HeatSinkType.IsValid() {
		vb.InvalidField("heatSinkType", fmt.Sprintf("unknown heat sink type %q", *c.HeatSinkType))
	}
	return vb.Build()
}

// SetEngine picks an engine type and, optionally, a new walk speed. The
// resulting rating must be buildable; nothing is clamped.
func SetEngine(d mech.Draft, engineType mech.EngineType, walkMP ...int) (mech.Draft, error) {
	if !engineType.IsValid() {
		return mech.Draft{}, errors.InvalidArgumentf("unknown engine type %q", engineType)
	}

	walk := d.WalkMP
	if len(walkMP) > 0 {
		walk = walkMP[0]
	}

	rating := walk * d.Tonnage
	var reasons []string
	if rating > mech.MaxEngineRating {
		reasons = append(reasons, fmt.Sprintf("rating exceeds maximum of %d", mech.MaxEngineRating))
	}
	if rating < mech.MinEngineRating {
		reasons = append(reasons, fmt.Sprintf("rating is below minimum of %d", mech.MinEngineRating))
	}
	if len(reasons) > 0 {
		return mech.Draft{}, errors.InvalidEngineRating(rating, walk, d.Tonnage, reasons...)
	}

	out := d.Clone()
	out.EngineType = engineType
	out.WalkMP = walk
	out.RunMP = mech.RunMP(walk)
	out.EngineRating = rating
	out.IsDirty = true
	return out, nil
}

// SetArmor replaces the armor of each location present in partial. Values
// are not clamped.
func SetArmor(d mech.Draft, partial mech.ArmorAllocation) mech.Draft {
	out := d.Clone()
	if out.Armor == nil {
		out.Armor = make(mech.ArmorAllocation, len(partial))
	}
	for loc, value := range partial {
		out.Armor[loc] = value
	}
	out.IsDirty = true
	return out
}

// AddEquipment appends an item. Its slot index is the number of items
// already mounted in the location.
func AddEquipment(d mech.Draft, equipmentID string, location mech.Location) mech.Draft {
	out := d.Clone()
	out.Equipment = append(out.Equipment, mech.MountedEquipment{
		EquipmentID: equipmentID,
		Location:    location,
		SlotIndex:   d.ItemsInLocation(location),
	})
	out.IsDirty = true
	return out
}

// RemoveEquipment drops the item at index. Remaining slot indices are kept
// as they were; an out-of-range index removes nothing.
func RemoveEquipment(d mech.Draft, index int) mech.Draft {
	out := d.Clone()
	out.Equipment = out.Equipment[:0]
	for i, eq := range d.Equipment {
		if i != index {
			out.Equipment = append(out.Equipment, eq)
		}
	}
	out.IsDirty = true
	return out
}
