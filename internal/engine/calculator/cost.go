package calculator

import (
	"math"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/registry"
)

// Cost constants in C-bills
const (
	structureCostPerTon = 400
	engineCostPerRating = 5000
	gyroCostPerRating   = 300
	armorCostPerTon     = 10000
	singleHeatSinkCost  = 2000
	doubleHeatSinkCost  = 6000
	finalCostMultiplier = 1.25
)

var cockpitCost = map[mech.CockpitType]float64{
	mech.CockpitStandard:       200000,
	mech.CockpitSmall:          175000,
	mech.CockpitTorsoMounted:   750000,
	mech.CockpitCommandConsole: 500000,
}

// CostBreakdown is the C-bill cost of each component group
type CostBreakdown struct {
	Structure float64 `json:"structure"`
	Engine    float64 `json:"engine"`
	Gyro      float64 `json:"gyro"`
	Cockpit   float64 `json:"cockpit"`
	Armor     float64 `json:"armor"`
	HeatSinks float64 `json:"heatSinks"`
	Equipment float64 `json:"equipment"`
	Subtotal  float64 `json:"subtotal"`
	Total     int64   `json:"total"`
}

// CalculateCost prices the draft: component costs with variant multipliers
// plus equipment, times the final 1.25 multiplier.
func CalculateCost(d mech.Draft, reg registry.Registry) CostBreakdown {
	c := CostBreakdown{
		Structure: float64(d.Tonnage) * structureCostPerTon * structureMultiplier(d.StructureType),
		Engine:    float64(d.EngineRating) * engineCostPerRating * engineMultiplier(d.EngineType),
		Gyro:      float64(d.EngineRating) * gyroCostPerRating * gyroMultiplier(d.GyroType),
		Cockpit:   cockpitCost[d.CockpitType],
		Armor:     mech.ArmorWeight(d.ArmorType, d.Armor.TotalPoints()) * armorCostPerTon * armorMultiplier(d.ArmorType),
	}
	if c.Cockpit == 0 {
		c.Cockpit = cockpitCost[mech.CockpitStandard]
	}

	extraSinks := d.HeatSinkCount - mech.IntegralHeatSinks
	if extraSinks > 0 {
		perSink := float64(singleHeatSinkCost)
		if d.HeatSinkType.IsDouble() {
			perSink = doubleHeatSinkCost
		}
		c.HeatSinks = float64(extraSinks) * perSink
	}

	forEachResolved(d, reg, func(_ mech.MountedEquipment, eq registry.Equipment) {
		c.Equipment += float64(eq.Cost)
	})

	c.Subtotal = c.Structure + c.Engine + c.Gyro + c.Cockpit + c.Armor + c.HeatSinks + c.Equipment
	c.Total = int64(math.Round(c.Subtotal * finalCostMultiplier))
	return c
}

func structureMultiplier(s mech.StructureType) float64 {
	if s.IsEndoSteel() {
		return 2
	}
	return 1
}

func engineMultiplier(e mech.EngineType) float64 {
	switch e {
	case mech.EngineLight:
		return 1.5
	case mech.EngineXLIS, mech.EngineXLClan:
		return 2
	case mech.EngineXXL:
		return 3
	default:
		return 1
	}
}

func gyroMultiplier(g mech.GyroType) float64 {
	switch g {
	case mech.GyroHeavyDuty:
		return 0.5
	case mech.GyroXL:
		return 2
	case mech.GyroCompact:
		return 4
	default:
		return 1
	}
}

func armorMultiplier(a mech.ArmorType) float64 {
	switch {
	case a.IsFerroFibrous():
		return 2
	case a.IsReactive():
		return 3
	case a == mech.ArmorStealth:
		return 5
	default:
		return 1
	}
}
