package mech

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the rpg-toolkit entity type reported by drafts
const EntityType = "mech_draft"

// ArmorValue is the armor on one location. Rear is only meaningful on torsos.
type ArmorValue struct {
	Front int `json:"front"`
	Rear  int `json:"rear,omitempty"`
}

// Total returns front plus rear armor
func (a ArmorValue) Total() int {
	return a.Front + a.Rear
}

// ArmorAllocation maps a location to its armor points. Missing locations
// carry no armor.
type ArmorAllocation map[Location]ArmorValue

// TotalPoints sums front and rear armor over every location
func (a ArmorAllocation) TotalPoints() int {
	total := 0
	for _, v := range a {
		total += v.Total()
	}
	return total
}

// Clone returns an independent copy
func (a ArmorAllocation) Clone() ArmorAllocation {
	out := make(ArmorAllocation, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// MountedEquipment is one equipment entry on the draft
type MountedEquipment struct {
	EquipmentID string   `json:"equipmentId"`
	Location    Location `json:"location"`
	SlotIndex   int      `json:"slotIndex"`
}

// Draft is an in-progress mech design. Drafts are values: builder and
// tech-base operations return a modified copy and never touch the input.
type Draft struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Name      string `json:"name"`
	Chassis   string `json:"chassis,omitempty"`
	Model     string `json:"model,omitempty"`

	Tonnage      int          `json:"tonnage"`
	TechBase     TechBase     `json:"techBase"`
	TechBaseMode TechBaseMode `json:"techBaseMode"`

	EngineType   EngineType `json:"engineType"`
	EngineRating int        `json:"engineRating"`
	WalkMP       int        `json:"walkMP"`
	RunMP        int        `json:"runMP"`

	StructureType StructureType `json:"structureType"`
	GyroType      GyroType      `json:"gyroType"`
	CockpitType   CockpitType   `json:"cockpitType"`
	ArmorType     ArmorType     `json:"armorType"`
	HeatSinkType  HeatSinkType  `json:"heatSinkType"`
	HeatSinkCount int           `json:"heatSinkCount"`

	Armor     ArmorAllocation    `json:"armorAllocation"`
	Equipment []MountedEquipment `json:"equipment"`

	ComponentTechBases map[Subsystem]TechBase `json:"componentTechBases,omitempty"`

	IsDirty   bool  `json:"isDirty"`
	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

var _ core.Entity = (*Draft)(nil)

// GetID returns the draft's ID
func (d *Draft) GetID() string {
	return d.ID
}

// GetType returns the entity type for rpg-toolkit
func (d *Draft) GetType() string {
	return EntityType
}

// Clone returns a deep copy so the result shares no maps or slices with d
func (d Draft) Clone() Draft {
	out := d
	out.Armor = d.Armor.Clone()
	out.Equipment = make([]MountedEquipment, len(d.Equipment))
	copy(out.Equipment, d.Equipment)
	if d.ComponentTechBases != nil {
		out.ComponentTechBases = make(map[Subsystem]TechBase, len(d.ComponentTechBases))
		for k, v := range d.ComponentTechBases {
			out.ComponentTechBases[k] = v
		}
	}
	return out
}

// Mode returns the tech base mode, treating an unset mode as the draft's
// own tech base.
func (d Draft) Mode() TechBaseMode {
	if d.TechBaseMode.IsValid() {
		return d.TechBaseMode
	}
	return ModeFor(d.TechBase)
}

// EffectiveTechBase returns the tech base that governs a subsystem. Outside
// mixed mode every subsystem follows the draft; in mixed mode a subsystem
// uses its own tracked tech base, falling back to the draft's.
func (d Draft) EffectiveTechBase(s Subsystem) TechBase {
	mode := d.Mode()
	if tb, ok := mode.TechBase(); ok {
		return tb
	}
	if tb, ok := d.ComponentTechBases[s]; ok && tb.IsValid() {
		return tb
	}
	return d.TechBase
}

// ItemsInLocation counts equipment entries mounted in a location
func (d Draft) ItemsInLocation(loc Location) int {
	n := 0
	for _, eq := range d.Equipment {
		if eq.Location == loc {
			n++
		}
	}
	return n
}
