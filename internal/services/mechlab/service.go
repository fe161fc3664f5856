// Package mechlab defines the mech lab service: draft lifecycle, construction
// edits, tech base switching, validation and statistics.
package mechlab

//go:generate mockgen -destination=mock/mock_service.go -package=mechlabmock github.com/SwiggitySwerve/megamek-web-sub007/internal/services/mechlab Service

import (
	"context"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/builder"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/techbase"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/validation"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
)

// Service defines the mech lab operations
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	ImportUnit(ctx context.Context, input *ImportUnitInput) (*ImportUnitOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	ListDrafts(ctx context.Context, input *ListDraftsInput) (*ListDraftsOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Construction edits
	UpdateDraft(ctx context.Context, input *UpdateDraftInput) (*UpdateDraftOutput, error)
	SetEngine(ctx context.Context, input *SetEngineInput) (*SetEngineOutput, error)
	SetArmor(ctx context.Context, input *SetArmorInput) (*SetArmorOutput, error)
	AddEquipment(ctx context.Context, input *AddEquipmentInput) (*AddEquipmentOutput, error)
	RemoveEquipment(ctx context.Context, input *RemoveEquipmentInput) (*RemoveEquipmentOutput, error)

	// Tech base
	SetTechBaseMode(ctx context.Context, input *SetTechBaseModeInput) (*SetTechBaseModeOutput, error)
	SetComponentTechBase(ctx context.Context, input *SetComponentTechBaseInput) (*SetComponentTechBaseOutput, error)

	// Evaluation
	ValidateDraft(ctx context.Context, input *ValidateDraftInput) (*ValidateDraftOutput, error)
	CalculateDraft(ctx context.Context, input *CalculateDraftInput) (*CalculateDraftOutput, error)
}

// Draft lifecycle types

// CreateDraftInput defines the request for creating an empty draft
type CreateDraftInput struct {
	OwnerID   string
	SessionID string // Optional, defaults to the new draft's ID
	Name      string // Optional
	Tonnage   int
	TechBase  mech.TechBase
}

// CreateDraftOutput defines the response for creating a draft
type CreateDraftOutput struct {
	Draft *mech.Draft
}

// ImportUnitInput defines the request for importing a serialized unit
type ImportUnitInput struct {
	OwnerID   string
	SessionID string // Optional, defaults to the new draft's ID
	Unit      mech.UnitRecord
}

// ImportUnitOutput defines the response for importing a unit
type ImportUnitOutput struct {
	Draft *mech.Draft
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *mech.Draft
}

// ListDraftsInput defines the request for listing an owner's drafts
type ListDraftsInput struct {
	OwnerID string
	Limit   int
}

// ListDraftsOutput defines the response for listing drafts
type ListDraftsOutput struct {
	Drafts []*mech.Draft
}

// DeleteDraftInput defines the request for deleting a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput defines the response for deleting a draft
type DeleteDraftOutput struct {
	Message string
}

// Construction edit types

// UpdateDraftInput defines a partial edit of a draft
type UpdateDraftInput struct {
	DraftID   string
	SessionID string // Optional, defaults to the draft's session
	Changes   builder.Changes
}

// UpdateDraftOutput defines the response for an edit
type UpdateDraftOutput struct {
	Draft *mech.Draft
}

// SetEngineInput defines the request for choosing an engine
type SetEngineInput struct {
	DraftID    string
	SessionID  string // Optional, defaults to the draft's session
	EngineType mech.EngineType
	WalkMP     int // Zero keeps the current walk MP
}

// SetEngineOutput defines the response for choosing an engine
type SetEngineOutput struct {
	Draft *mech.Draft
}

// SetArmorInput defines the request for allocating armor
type SetArmorInput struct {
	DraftID string
	Armor   mech.ArmorAllocation
}

// SetArmorOutput defines the response for allocating armor
type SetArmorOutput struct {
	Draft *mech.Draft
}

// AddEquipmentInput defines the request for mounting equipment
type AddEquipmentInput struct {
	DraftID     string
	EquipmentID string
	Location    mech.Location
}

// AddEquipmentOutput defines the response for mounting equipment
type AddEquipmentOutput struct {
	Draft *mech.Draft
}

// RemoveEquipmentInput defines the request for removing mounted equipment
type RemoveEquipmentInput struct {
	DraftID string
	Index   int
}

// RemoveEquipmentOutput defines the response for removing equipment
type RemoveEquipmentOutput struct {
	Draft *mech.Draft
}

// Tech base types

// SetTechBaseModeInput defines the request for switching tech base mode
type SetTechBaseModeInput struct {
	DraftID   string
	SessionID string // Optional, defaults to the draft's session
	Mode      mech.TechBaseMode
}

// SetTechBaseModeOutput carries the updated draft and any selections that
// were replaced to stay legal.
type SetTechBaseModeOutput struct {
	Draft       *mech.Draft
	Corrections []techbase.Correction
}

// SetComponentTechBaseInput defines the request for retargeting a subsystem
type SetComponentTechBaseInput struct {
	DraftID   string
	SessionID string // Optional, defaults to the draft's session
	Subsystem mech.Subsystem
	TechBase  mech.TechBase
}

// SetComponentTechBaseOutput carries the updated draft and corrections
type SetComponentTechBaseOutput struct {
	Draft       *mech.Draft
	Corrections []techbase.Correction
}

// Evaluation types

// ValidateDraftInput defines the request for validating a stored draft
type ValidateDraftInput struct {
	DraftID string
}

// ValidateDraftOutput defines the validation report
type ValidateDraftOutput struct {
	Result validation.Result
}

// CalculateDraftInput defines the request for a stored draft's statistics
type CalculateDraftInput struct {
	DraftID string
}

// CalculateDraftOutput defines the derived statistics
type CalculateDraftOutput struct {
	Stats engine.Stats
}
