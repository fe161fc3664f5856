// Package engine exposes the construction rules (validation and derived
// statistics) behind one injectable interface bound to an equipment registry.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/SwiggitySwerve/megamek-web-sub007/internal/engine Engine

import (
	"context"
)

// Engine validates drafts and computes their statistics
type Engine interface {
	// ValidateDraft runs every construction rule check
	ValidateDraft(ctx context.Context, input *ValidateDraftInput) (*ValidateDraftOutput, error)

	// CalculateDraft computes weight, cost, heat, movement and battle value
	CalculateDraft(ctx context.Context, input *CalculateDraftInput) (*CalculateDraftOutput, error)

	// CanAddEquipment checks the target location has a free slot
	CanAddEquipment(ctx context.Context, input *CanAddEquipmentInput) (*CanAddEquipmentOutput, error)

	// LookupEquipment resolves an equipment id against the registry
	LookupEquipment(ctx context.Context, input *LookupEquipmentInput) (*LookupEquipmentOutput, error)
}
