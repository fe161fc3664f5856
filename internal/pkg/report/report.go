// Package report renders drafts, validation results and statistics as
// plain text for the command line.
package report

import (
	"fmt"
	"io"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/validation"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
)

// WriteDraft prints a draft's identity, components, armor and equipment
func WriteDraft(w io.Writer, d *mech.Draft) {
	fmt.Fprintf(w, "Draft: %s\n", d.ID)
	if d.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", d.Name)
	}
	if d.OwnerID != "" {
		fmt.Fprintf(w, "Owner: %s\n", d.OwnerID)
	}
	fmt.Fprintf(w, "Tonnage: %d\n", d.Tonnage)
	fmt.Fprintf(w, "Tech Base: %s (%s)\n", d.TechBase, d.TechBaseMode)
	fmt.Fprintf(w, "Engine: %s %d (walk %d / run %d)\n", d.EngineType, d.EngineRating, d.WalkMP, d.RunMP)
	fmt.Fprintf(w, "Structure: %s\n", d.StructureType)
	fmt.Fprintf(w, "Gyro: %s\n", d.GyroType)
	fmt.Fprintf(w, "Cockpit: %s\n", d.CockpitType)
	fmt.Fprintf(w, "Heat Sinks: %d %s\n", d.HeatSinkCount, d.HeatSinkType)
	fmt.Fprintf(w, "Armor: %s, %d points\n", d.ArmorType, d.Armor.TotalPoints())

	for _, loc := range mech.AllLocations() {
		v, ok := d.Armor[loc]
		if !ok {
			continue
		}
		if loc.IsTorso() {
			fmt.Fprintf(w, "  - %s: %d / %d rear\n", loc, v.Front, v.Rear)
			continue
		}
		fmt.Fprintf(w, "  - %s: %d\n", loc, v.Front)
	}

	if len(d.Equipment) > 0 {
		fmt.Fprintf(w, "Equipment:\n")
		for i, eq := range d.Equipment {
			fmt.Fprintf(w, "  %d. %s (%s, slot %d)\n", i, eq.EquipmentID, eq.Location, eq.SlotIndex)
		}
	}

	if d.IsDirty {
		fmt.Fprintf(w, "Unsaved changes\n")
	}
}

// WriteValidation prints every issue, errors first
func WriteValidation(w io.Writer, r validation.Result) {
	if r.IsValid {
		fmt.Fprintf(w, "Valid: yes\n")
	} else {
		fmt.Fprintf(w, "Valid: no (%d errors)\n", len(r.Errors))
	}

	for _, issue := range r.Issues() {
		fmt.Fprintf(w, "  [%s] %s: %s\n", issue.Severity, issue.Code, issue.Message)
	}
}

// WriteStats prints weight, cost, heat, movement and battle value
func WriteStats(w io.Writer, s engine.Stats) {
	t := s.Totals
	fmt.Fprintf(w, "Weight: %.1f / %d tons (%.1f remaining)\n", t.Weight.Total, t.Tonnage, t.RemainingWeight)
	fmt.Fprintf(w, "  - Structure: %.1f\n", t.Weight.Structure)
	fmt.Fprintf(w, "  - Engine: %.1f\n", t.Weight.Engine)
	fmt.Fprintf(w, "  - Gyro: %.1f\n", t.Weight.Gyro)
	fmt.Fprintf(w, "  - Cockpit: %.1f\n", t.Weight.Cockpit)
	fmt.Fprintf(w, "  - Armor: %.1f\n", t.Weight.Armor)
	fmt.Fprintf(w, "  - Heat Sinks: %.1f\n", t.Weight.HeatSinks)
	fmt.Fprintf(w, "Equipment: %.1f tons, %.1f loaded (%.1f remaining)\n", t.Weight.Equipment, t.Weight.Loaded, t.RemainingLoaded)
	fmt.Fprintf(w, "Armor Points: %d / %d\n", t.ArmorPoints, t.MaxArmorPoints)
	fmt.Fprintf(w, "Critical Slots: %d / %d\n", t.SlotsUsed, t.TotalSlots)
	fmt.Fprintf(w, "Heat: %d generated, %d dissipated, net %d\n", s.Heat.Generated, s.Heat.Dissipated, s.Heat.Net)
	fmt.Fprintf(w, "Movement: %d / %d / %d\n", s.Movement.Walk, s.Movement.Run, s.Movement.Jump)
	fmt.Fprintf(w, "Cost: %d C-bills\n", s.Cost.Total)
	fmt.Fprintf(w, "Battle Value: %d\n", s.BattleValue.Total)
}
