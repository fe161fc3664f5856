package v1alpha1

import (
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/builder"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/techbase"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/validation"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
)

// CreateDraftRequest creates an empty draft
type CreateDraftRequest struct {
	OwnerID   string        `json:"ownerId"`
	SessionID string        `json:"sessionId,omitempty"`
	Name      string        `json:"name,omitempty"`
	Tonnage   int           `json:"tonnage"`
	TechBase  mech.TechBase `json:"techBase,omitempty"`
}

// CreateDraftResponse returns the stored draft
type CreateDraftResponse struct {
	Draft *mech.Draft `json:"draft"`
}

// ImportUnitRequest builds a draft from a unit record
type ImportUnitRequest struct {
	OwnerID   string          `json:"ownerId"`
	SessionID string          `json:"sessionId,omitempty"`
	Unit      mech.UnitRecord `json:"unit"`
}

// ImportUnitResponse returns the imported draft
type ImportUnitResponse struct {
	Draft *mech.Draft `json:"draft"`
}

// GetDraftRequest names a draft
type GetDraftRequest struct {
	DraftID string `json:"draftId"`
}

// GetDraftResponse returns a draft
type GetDraftResponse struct {
	Draft *mech.Draft `json:"draft"`
}

// ListDraftsRequest lists an owner's drafts
type ListDraftsRequest struct {
	OwnerID string `json:"ownerId"`
	Limit   int    `json:"limit,omitempty"`
}

// ListDraftsResponse returns drafts, most recently updated first
type ListDraftsResponse struct {
	Drafts []*mech.Draft `json:"drafts"`
}

// DeleteDraftRequest names the draft to delete
type DeleteDraftRequest struct {
	DraftID string `json:"draftId"`
}

// DeleteDraftResponse confirms a deletion
type DeleteDraftResponse struct {
	Message string `json:"message"`
}

// UpdateDraftRequest applies a partial edit
type UpdateDraftRequest struct {
	DraftID   string          `json:"draftId"`
	SessionID string          `json:"sessionId,omitempty"`
	Changes   builder.Changes `json:"changes"`
}

// UpdateDraftResponse returns the edited draft
type UpdateDraftResponse struct {
	Draft *mech.Draft `json:"draft"`
}

// SetEngineRequest picks an engine and optionally a walk speed
type SetEngineRequest struct {
	DraftID    string          `json:"draftId"`
	SessionID  string          `json:"sessionId,omitempty"`
	EngineType mech.EngineType `json:"engineType"`
	WalkMP     int             `json:"walkMP,omitempty"`
}

// SetEngineResponse returns the edited draft
type SetEngineResponse struct {
	Draft *mech.Draft `json:"draft"`
}

// SetArmorRequest allocates armor to the listed locations
type SetArmorRequest struct {
	DraftID string               `json:"draftId"`
	Armor   mech.ArmorAllocation `json:"armor"`
}

// SetArmorResponse returns the edited draft
type SetArmorResponse struct {
	Draft *mech.Draft `json:"draft"`
}

// AddEquipmentRequest mounts an item
type AddEquipmentRequest struct {
	DraftID     string        `json:"draftId"`
	EquipmentID string        `json:"equipmentId"`
	Location    mech.Location `json:"location"`
}

// AddEquipmentResponse returns the edited draft
type AddEquipmentResponse struct {
	Draft *mech.Draft `json:"draft"`
}

// RemoveEquipmentRequest removes the item at an index
type RemoveEquipmentRequest struct {
	DraftID string `json:"draftId"`
	Index   int    `json:"index"`
}

// RemoveEquipmentResponse returns the edited draft
type RemoveEquipmentResponse struct {
	Draft *mech.Draft `json:"draft"`
}

// SetTechBaseModeRequest switches the tech base mode
type SetTechBaseModeRequest struct {
	DraftID   string            `json:"draftId"`
	SessionID string            `json:"sessionId,omitempty"`
	Mode      mech.TechBaseMode `json:"mode"`
}

// SetTechBaseModeResponse returns the draft and the replaced selections
type SetTechBaseModeResponse struct {
	Draft       *mech.Draft           `json:"draft"`
	Corrections []techbase.Correction `json:"corrections"`
}

// SetComponentTechBaseRequest retargets one subsystem
type SetComponentTechBaseRequest struct {
	DraftID   string         `json:"draftId"`
	SessionID string         `json:"sessionId,omitempty"`
	Subsystem mech.Subsystem `json:"subsystem"`
	TechBase  mech.TechBase  `json:"techBase"`
}

// SetComponentTechBaseResponse returns the draft and the replaced selections
type SetComponentTechBaseResponse struct {
	Draft       *mech.Draft           `json:"draft"`
	Corrections []techbase.Correction `json:"corrections"`
}

// ValidateDraftRequest names the draft to validate
type ValidateDraftRequest struct {
	DraftID string `json:"draftId"`
}

// ValidateDraftResponse is the validation report
type ValidateDraftResponse struct {
	Result validation.Result `json:"result"`
}

// CalculateDraftRequest names the draft to evaluate
type CalculateDraftRequest struct {
	DraftID string `json:"draftId"`
}

// CalculateDraftResponse carries the derived statistics
type CalculateDraftResponse struct {
	Stats engine.Stats `json:"stats"`
}
