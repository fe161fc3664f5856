package engine

import (
	"context"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/calculator"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/validation"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/registry"
)

// Config holds the dependencies for the engine
type Config struct {
	Registry registry.Registry
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Registry == nil {
		vb.RequiredField("Registry")
	}
	return vb.Build()
}

type engine struct {
	registry registry.Registry
}

// New creates an engine bound to a registry
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &engine{registry: cfg.Registry}, nil
}

func (e *engine) ValidateDraft(_ context.Context, input *ValidateDraftInput) (*ValidateDraftOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}
	return &ValidateDraftOutput{
		Result: validation.Validate(*input.Draft, e.registry),
	}, nil
}

func (e *engine) CalculateDraft(_ context.Context, input *CalculateDraftInput) (*CalculateDraftOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}
	d := *input.Draft
	return &CalculateDraftOutput{
		Stats: Stats{
			Totals:      calculator.CalculateTotals(d, e.registry),
			Cost:        calculator.CalculateCost(d, e.registry),
			Heat:        calculator.CalculateHeatProfile(d, e.registry),
			Movement:    calculator.CalculateMovement(d),
			BattleValue: calculator.CalculateBattleValue(d, e.registry),
		},
	}, nil
}

func (e *engine) CanAddEquipment(_ context.Context, input *CanAddEquipmentInput) (*CanAddEquipmentOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}
	return &CanAddEquipmentOutput{
		Allowed: validation.CanAddEquipment(*input.Draft, input.EquipmentID, input.Location),
	}, nil
}

func (e *engine) LookupEquipment(_ context.Context, input *LookupEquipmentInput) (*LookupEquipmentOutput, error) {
	if input == nil || input.EquipmentID == "" {
		return nil, errors.InvalidArgument("equipment ID is required")
	}
	return &LookupEquipmentOutput{Result: e.registry.Lookup(input.EquipmentID)}, nil
}
