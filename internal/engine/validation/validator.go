package validation

import (
	"fmt"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/calculator"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/registry"
)

// Validate runs every rule check in order: weight, armor, critical slots,
// tech base, engine, heat sinks, then advisory hints.
func Validate(d mech.Draft, reg registry.Registry) Result {
	r := Result{
		Errors:   []Issue{},
		Warnings: []Issue{},
		Info:     []Issue{},
	}

	checkWeight(d, reg, &r)
	checkArmor(d, &r)
	checkSlots(d, &r)
	checkTechBase(d, reg, &r)
	checkEngine(d, &r)
	checkHeatSinks(d, &r)
	checkHints(d, &r)

	r.IsValid = len(r.Errors) == 0
	return r
}

// CanAddEquipment reports whether the location has a free slot. It checks
// capacity only; run Validate on the result for full legality.
func CanAddEquipment(d mech.Draft, _ string, location mech.Location) bool {
	return location.IsValid() && d.ItemsInLocation(location) < mech.SlotCapacity(location)
}

func checkWeight(d mech.Draft, reg registry.Registry, r *Result) {
	if !mech.IsValidTonnage(d.Tonnage) {
		r.add(Issue{
			Code:     CodeInvalidTonnage,
			Message:  fmt.Sprintf("tonnage %d is not a multiple of %d between %d and %d", d.Tonnage, mech.TonnageStep, mech.MinTonnage, mech.MaxTonnage),
			Severity: SeverityError,
			Field:    "tonnage",
			Actual:   d.Tonnage,
		})
	}

	weight := calculator.CalculateWeight(d, reg)
	if weight.Total > float64(d.Tonnage) {
		r.add(Issue{
			Code:     CodeOverweight,
			Message:  fmt.Sprintf("total weight %.1f tons exceeds tonnage %d", weight.Total, d.Tonnage),
			Severity: SeverityError,
			Field:    "tonnage",
			Expected: d.Tonnage,
			Actual:   weight.Total,
			Details: map[string]any{
				"structure": weight.Structure,
				"engine":    weight.Engine,
				"gyro":      weight.Gyro,
				"cockpit":   weight.Cockpit,
				"armor":     weight.Armor,
				"heatSinks": weight.HeatSinks,
			},
		})
		return
	}

	if weight.Loaded > float64(d.Tonnage) {
		r.add(Issue{
			Code:     CodeEquipmentOverBudget,
			Message:  fmt.Sprintf("components plus %.1f tons of equipment weigh %.1f tons, over tonnage %d", weight.Equipment, weight.Loaded, d.Tonnage),
			Severity: SeverityWarning,
			Field:    "equipment",
			Expected: d.Tonnage,
			Actual:   weight.Loaded,
			Details: map[string]any{
				"components": weight.Total,
				"equipment":  weight.Equipment,
			},
		})
		return
	}

	if remaining := float64(d.Tonnage) - weight.Loaded; remaining >= 1 {
		r.add(Issue{
			Code:     CodeUnderweight,
			Message:  fmt.Sprintf("%.1f tons unused", remaining),
			Severity: SeverityWarning,
			Field:    "tonnage",
			Expected: d.Tonnage,
			Actual:   weight.Loaded,
			Details:  map[string]any{"remaining": remaining},
		})
	}
}

func checkArmor(d mech.Draft, r *Result) {
	for _, loc := range mech.AllLocations() {
		value, ok := d.Armor[loc]
		if !ok {
			continue
		}
		limit := mech.MaxArmor(d.Tonnage, loc)
		field := "armorAllocation." + string(loc)

		if loc.IsTorso() {
			if total := value.Total(); total > limit {
				r.add(Issue{
					Code:     CodeArmorExceedsMax,
					Message:  fmt.Sprintf("%s armor %d (front %d, rear %d) exceeds maximum %d", loc, total, value.Front, value.Rear, limit),
					Severity: SeverityError,
					Field:    field,
					Expected: limit,
					Actual:   total,
					Details: map[string]any{
						"front": value.Front,
						"rear":  value.Rear,
						"total": total,
						"max":   limit,
					},
				})
			}
			continue
		}

		if value.Rear > 0 {
			r.add(Issue{
				Code:     CodeRearArmorIgnored,
				Message:  fmt.Sprintf("%s cannot carry rear armor; %d points ignored", loc, value.Rear),
				Severity: SeverityWarning,
				Field:    field + ".rear",
				Actual:   value.Rear,
			})
		}
		if value.Front > limit {
			r.add(Issue{
				Code:     CodeArmorExceedsMax,
				Message:  fmt.Sprintf("%s armor %d exceeds maximum %d", loc, value.Front, limit),
				Severity: SeverityError,
				Field:    field,
				Expected: limit,
				Actual:   value.Front,
				Details: map[string]any{
					"actual": value.Front,
					"max":    limit,
				},
			})
		}
	}
}

func checkSlots(d mech.Draft, r *Result) {
	for _, loc := range mech.AllLocations() {
		used, capacity := d.ItemsInLocation(loc), mech.SlotCapacity(loc)
		if used > capacity {
			r.add(Issue{
				Code:     CodeSlotsExceeded,
				Message:  fmt.Sprintf("%s has %d items but only %d critical slots", loc, used, capacity),
				Severity: SeverityError,
				Field:    "equipment",
				Expected: capacity,
				Actual:   used,
				Details:  map[string]any{"location": string(loc)},
			})
		}
	}
}

func checkTechBase(d mech.Draft, reg registry.Registry, r *Result) {
	if reg == nil {
		return
	}
	for i, item := range d.Equipment {
		result := reg.Lookup(item.EquipmentID)
		if !result.Found || result.Equipment.TechBase == "" {
			continue
		}
		subsystem := result.Equipment.Category.Subsystem()
		required := d.EffectiveTechBase(subsystem)
		if result.Equipment.TechBase == required {
			continue
		}
		r.add(Issue{
			Code:     CodeTechBaseIncompatible,
			Message:  fmt.Sprintf("%s is %s technology but %s uses %s", item.EquipmentID, result.Equipment.TechBase, subsystem, required),
			Severity: SeverityError,
			Field:    fmt.Sprintf("equipment[%d]", i),
			Expected: required,
			Actual:   result.Equipment.TechBase,
			Details: map[string]any{
				"equipmentId": item.EquipmentID,
				"location":    string(item.Location),
				"subsystem":   string(subsystem),
			},
		})
	}
}

func checkEngine(d mech.Draft, r *Result) {
	rating := d.EngineRating
	if rating < mech.MinEngineRating || rating > mech.MaxEngineRating {
		r.add(Issue{
			Code:     CodeInvalidEngineRating,
			Message:  fmt.Sprintf("engine rating %d must be between %d and %d", rating, mech.MinEngineRating, mech.MaxEngineRating),
			Severity: SeverityError,
			Field:    "engineRating",
			Actual:   rating,
			Details:  map[string]any{"min": mech.MinEngineRating, "max": mech.MaxEngineRating},
		})
	}
	if rating%mech.EngineRatingStep != 0 {
		r.add(Issue{
			Code:     CodeInvalidEngineRating,
			Message:  fmt.Sprintf("engine rating %d must be a multiple of %d", rating, mech.EngineRatingStep),
			Severity: SeverityError,
			Field:    "engineRating",
			Actual:   rating,
			Details:  map[string]any{"step": mech.EngineRatingStep},
		})
	}
}

func checkHeatSinks(d mech.Draft, r *Result) {
	if d.HeatSinkCount < mech.MinHeatSinks {
		r.add(Issue{
			Code:     CodeInsufficientHeatSinks,
			Message:  fmt.Sprintf("%d heat sinks is below the minimum of %d", d.HeatSinkCount, mech.MinHeatSinks),
			Severity: SeverityError,
			Field:    "heatSinkCount",
			Expected: mech.MinHeatSinks,
			Actual:   d.HeatSinkCount,
		})
	}
}

func checkHints(d mech.Draft, r *Result) {
	if expected := d.WalkMP * d.Tonnage; expected != d.EngineRating {
		r.add(Issue{
			Code:     CodeEngineRatingMismatch,
			Message:  fmt.Sprintf("engine rating %d does not match walk %d x %d tons", d.EngineRating, d.WalkMP, d.Tonnage),
			Severity: SeverityInfo,
			Field:    "engineRating",
			Expected: expected,
			Actual:   d.EngineRating,
		})
	}
}
