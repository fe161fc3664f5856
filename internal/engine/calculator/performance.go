package calculator

import (
	"math"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/registry"
)

// HeatProfile is the draft's heat balance per turn
type HeatProfile struct {
	Generated       int `json:"generated"`
	Dissipated      int `json:"dissipated"`
	Net             int `json:"net"`
	AlphaStrikeHeat int `json:"alphaStrikeHeat"`
}

// Movement is the draft's movement points
type Movement struct {
	Walk int `json:"walk"`
	Run  int `json:"run"`
	Jump int `json:"jump"`
}

// BattleValue is the BV2 rating and the terms it was built from
type BattleValue struct {
	Defensive      float64 `json:"defensive"`
	Offensive      float64 `json:"offensive"`
	HeatAdjustment float64 `json:"heatAdjustment"`
	EffectiveMP    int     `json:"effectiveMP"`
	SpeedFactor    float64 `json:"speedFactor"`
	Total          int     `json:"total"`
}

// Battle value weights
const (
	armorBVPerPoint      = 2.5
	structureBVPerPoint  = 1.5
	heatPenaltyPerPoint  = 0.1
	maxHeatPenalty       = 0.5
	jumpEffectiveMPRatio = 0.5
)

// CalculateHeatProfile sums weapon heat against heat sink dissipation
func CalculateHeatProfile(d mech.Draft, reg registry.Registry) HeatProfile {
	generated := 0
	forEachResolved(d, reg, func(_ mech.MountedEquipment, eq registry.Equipment) {
		if eq.Category != registry.CategoryWeapon {
			return
		}
		generated += eq.Heat
	})

	perSink := 1
	if d.HeatSinkType.IsDouble() {
		perSink = 2
	}
	dissipated := d.HeatSinkCount * perSink

	return HeatProfile{
		Generated:       generated,
		Dissipated:      dissipated,
		Net:             generated - dissipated,
		AlphaStrikeHeat: generated,
	}
}

// CalculateMovement derives run from walk and counts jump jets
func CalculateMovement(d mech.Draft) Movement {
	jump := 0
	for _, item := range d.Equipment {
		if mech.IsJumpJet(item.EquipmentID) {
			jump++
		}
	}
	return Movement{
		Walk: d.WalkMP,
		Run:  mech.RunMP(d.WalkMP),
		Jump: jump,
	}
}

// CalculateBattleValue computes BV2 as
// round((defensive + offensive x heatAdjustment) x speedFactor).
func CalculateBattleValue(d mech.Draft, reg registry.Registry) BattleValue {
	bv := BattleValue{
		Defensive: float64(d.Armor.TotalPoints())*armorBVPerPoint +
			float64(mech.TotalStructurePoints(d.Tonnage))*structureBVPerPoint,
	}
	forEachResolved(d, reg, func(_ mech.MountedEquipment, eq registry.Equipment) {
		bv.Offensive += float64(eq.BattleValue)
	})

	bv.HeatAdjustment = HeatAdjustment(CalculateHeatProfile(d, reg).Net)

	movement := CalculateMovement(d)
	bv.EffectiveMP = movement.Run
	if jumpMP := int(math.Ceil(float64(movement.Jump) * jumpEffectiveMPRatio)); jumpMP > bv.EffectiveMP {
		bv.EffectiveMP = jumpMP
	}
	bv.SpeedFactor = mech.SpeedFactor(bv.EffectiveMP)

	bv.Total = int(math.Round((bv.Defensive + bv.Offensive*bv.HeatAdjustment) * bv.SpeedFactor))
	return bv
}

// HeatAdjustment scales offensive BV down 10% per point of excess heat,
// never below half.
func HeatAdjustment(netHeat int) float64 {
	excess := math.Max(0, float64(netHeat))
	return 1 - math.Min(maxHeatPenalty, excess*heatPenaltyPerPoint)
}
