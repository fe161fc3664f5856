// Package calculator derives weight, cost, heat, movement and battle value
// from a draft. Equipment stats come from the registry; unknown ids
// contribute nothing.
package calculator

import (
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/registry"
)

// WeightBreakdown is the tonnage of each component group
type WeightBreakdown struct {
	Structure float64 `json:"structure"`
	Engine    float64 `json:"engine"`
	Gyro      float64 `json:"gyro"`
	Cockpit   float64 `json:"cockpit"`
	Armor     float64 `json:"armor"`
	HeatSinks float64 `json:"heatSinks"`
	Total     float64 `json:"total"`

	// Equipment is the registry weight of mounted items. It is reported
	// beside Total and never counted in it.
	Equipment float64 `json:"equipment"`
	Loaded    float64 `json:"loaded"`
}

// Totals summarises a draft's budgets
type Totals struct {
	Weight          WeightBreakdown `json:"weight"`
	Tonnage         int             `json:"tonnage"`
	RemainingWeight float64         `json:"remainingWeight"`
	RemainingLoaded float64         `json:"remainingLoaded"`
	ArmorPoints     int             `json:"armorPoints"`
	MaxArmorPoints  int             `json:"maxArmorPoints"`
	SlotsUsed       int             `json:"slotsUsed"`
	TotalSlots      int             `json:"totalSlots"`
}

// CalculateWeight sums the six component weights into Total. Mounted
// equipment is tallied separately; heat sink items are covered by the heat
// sink count and add nothing.
func CalculateWeight(d mech.Draft, reg registry.Registry) WeightBreakdown {
	w := WeightBreakdown{
		Structure: mech.StructureWeight(d.Tonnage),
		Engine:    mech.EngineWeight(d.EngineType, d.EngineRating),
		Gyro:      mech.GyroWeight(d.EngineRating),
		Cockpit:   mech.CockpitWeight,
		Armor:     mech.ArmorWeight(d.ArmorType, d.Armor.TotalPoints()),
		HeatSinks: mech.HeatSinkWeight(d.HeatSinkCount),
	}
	forEachResolved(d, reg, func(_ mech.MountedEquipment, eq registry.Equipment) {
		if eq.Category != registry.CategoryHeatSink {
			w.Equipment += eq.Weight
		}
	})
	w.Total = w.Structure + w.Engine + w.Gyro + w.Cockpit + w.Armor + w.HeatSinks
	w.Loaded = w.Total + w.Equipment
	return w
}

// CalculateTotals reports weight, armor and slot budgets
func CalculateTotals(d mech.Draft, reg registry.Registry) Totals {
	weight := CalculateWeight(d, reg)

	// unresolved items take one slot
	slots := len(d.Equipment)
	forEachResolved(d, reg, func(_ mech.MountedEquipment, eq registry.Equipment) {
		if eq.CriticalSlots > 0 {
			slots += eq.CriticalSlots - 1
		}
	})

	return Totals{
		Weight:          weight,
		Tonnage:         d.Tonnage,
		RemainingWeight: float64(d.Tonnage) - weight.Total,
		RemainingLoaded: float64(d.Tonnage) - weight.Loaded,
		ArmorPoints:     d.Armor.TotalPoints(),
		MaxArmorPoints:  mech.TotalMaxArmor(d.Tonnage),
		SlotsUsed:       slots,
		TotalSlots:      mech.TotalCriticalSlot,
	}
}

func forEachResolved(d mech.Draft, reg registry.Registry, fn func(mech.MountedEquipment, registry.Equipment)) {
	if reg == nil {
		return
	}
	for _, item := range d.Equipment {
		if result := reg.Lookup(item.EquipmentID); result.Found {
			fn(item, result.Equipment)
		}
	}
}
