package engine

import (
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/calculator"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/validation"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/registry"
)

// ValidateDraftInput contains the draft to validate
type ValidateDraftInput struct {
	Draft *mech.Draft
}

// ValidateDraftOutput contains the validation result
type ValidateDraftOutput struct {
	Result validation.Result
}

// CalculateDraftInput contains the draft to evaluate
type CalculateDraftInput struct {
	Draft *mech.Draft
}

// CalculateDraftOutput contains every derived statistic
type CalculateDraftOutput struct {
	Stats Stats
}

// Stats bundles the calculator results for one draft
type Stats struct {
	Totals      calculator.Totals        `json:"totals"`
	Cost        calculator.CostBreakdown `json:"cost"`
	Heat        calculator.HeatProfile   `json:"heat"`
	Movement    calculator.Movement      `json:"movement"`
	BattleValue calculator.BattleValue   `json:"battleValue"`
}

// CanAddEquipmentInput names the draft and the target location
type CanAddEquipmentInput struct {
	Draft       *mech.Draft
	EquipmentID string
	Location    mech.Location
}

// CanAddEquipmentOutput reports whether the location has room
type CanAddEquipmentOutput struct {
	Allowed bool
}

// LookupEquipmentInput contains the equipment id to resolve
type LookupEquipmentInput struct {
	EquipmentID string
}

// LookupEquipmentOutput contains the registry lookup
type LookupEquipmentOutput struct {
	Result registry.LookupResult
}
