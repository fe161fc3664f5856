// Package v1alpha1 serves the mech lab service over gRPC
package v1alpha1

import (
	"context"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/services/mechlab"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	MechLabService mechlab.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.MechLabService == nil {
		return errors.InvalidArgument("mech lab service is required")
	}
	return nil
}

// Handler implements MechLabServiceServer
type Handler struct {
	service mechlab.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("handler config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.MechLabService,
	}, nil
}

var _ MechLabServiceServer = (*Handler)(nil)

// CreateDraft creates an empty draft
func (h *Handler) CreateDraft(ctx context.Context, req *CreateDraftRequest) (*CreateDraftResponse, error) {
	if req.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}
	if req.Tonnage == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("tonnage is required"))
	}

	out, err := h.service.CreateDraft(ctx, &mechlab.CreateDraftInput{
		OwnerID:   req.OwnerID,
		SessionID: req.SessionID,
		Name:      req.Name,
		Tonnage:   req.Tonnage,
		TechBase:  req.TechBase,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CreateDraftResponse{Draft: out.Draft}, nil
}

// ImportUnit builds a draft from a unit record
func (h *Handler) ImportUnit(ctx context.Context, req *ImportUnitRequest) (*ImportUnitResponse, error) {
	if req.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}
	if req.Unit.Tonnage == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("unit.tonnage is required"))
	}

	out, err := h.service.ImportUnit(ctx, &mechlab.ImportUnitInput{
		OwnerID:   req.OwnerID,
		SessionID: req.SessionID,
		Unit:      req.Unit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ImportUnitResponse{Draft: out.Draft}, nil
}

// GetDraft returns a draft
func (h *Handler) GetDraft(ctx context.Context, req *GetDraftRequest) (*GetDraftResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	out, err := h.service.GetDraft(ctx, &mechlab.GetDraftInput{DraftID: req.DraftID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetDraftResponse{Draft: out.Draft}, nil
}

// ListDrafts lists an owner's drafts
func (h *Handler) ListDrafts(ctx context.Context, req *ListDraftsRequest) (*ListDraftsResponse, error) {
	if req.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.service.ListDrafts(ctx, &mechlab.ListDraftsInput{
		OwnerID: req.OwnerID,
		Limit:   req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListDraftsResponse{Drafts: out.Drafts}, nil
}

// DeleteDraft deletes a draft
func (h *Handler) DeleteDraft(ctx context.Context, req *DeleteDraftRequest) (*DeleteDraftResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	out, err := h.service.DeleteDraft(ctx, &mechlab.DeleteDraftInput{DraftID: req.DraftID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteDraftResponse{Message: out.Message}, nil
}

// UpdateDraft applies a partial edit
func (h *Handler) UpdateDraft(ctx context.Context, req *UpdateDraftRequest) (*UpdateDraftResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	out, err := h.service.UpdateDraft(ctx, &mechlab.UpdateDraftInput{
		DraftID:   req.DraftID,
		SessionID: req.SessionID,
		Changes:   req.Changes,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateDraftResponse{Draft: out.Draft}, nil
}

// SetEngine picks an engine
func (h *Handler) SetEngine(ctx context.Context, req *SetEngineRequest) (*SetEngineResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	out, err := h.service.SetEngine(ctx, &mechlab.SetEngineInput{
		DraftID:    req.DraftID,
		SessionID:  req.SessionID,
		EngineType: req.EngineType,
		WalkMP:     req.WalkMP,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetEngineResponse{Draft: out.Draft}, nil
}

// SetArmor allocates armor
func (h *Handler) SetArmor(ctx context.Context, req *SetArmorRequest) (*SetArmorResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}
	if len(req.Armor) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("armor is required"))
	}

	out, err := h.service.SetArmor(ctx, &mechlab.SetArmorInput{
		DraftID: req.DraftID,
		Armor:   req.Armor,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetArmorResponse{Draft: out.Draft}, nil
}

// AddEquipment mounts an item
func (h *Handler) AddEquipment(ctx context.Context, req *AddEquipmentRequest) (*AddEquipmentResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	out, err := h.service.AddEquipment(ctx, &mechlab.AddEquipmentInput{
		DraftID:     req.DraftID,
		EquipmentID: req.EquipmentID,
		Location:    req.Location,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AddEquipmentResponse{Draft: out.Draft}, nil
}

// RemoveEquipment removes an item by index
func (h *Handler) RemoveEquipment(ctx context.Context, req *RemoveEquipmentRequest) (*RemoveEquipmentResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}
	if req.Index < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("index must not be negative"))
	}

	out, err := h.service.RemoveEquipment(ctx, &mechlab.RemoveEquipmentInput{
		DraftID: req.DraftID,
		Index:   req.Index,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RemoveEquipmentResponse{Draft: out.Draft}, nil
}

// SetTechBaseMode switches the tech base mode
func (h *Handler) SetTechBaseMode(ctx context.Context, req *SetTechBaseModeRequest) (*SetTechBaseModeResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}
	if req.Mode == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("mode is required"))
	}

	out, err := h.service.SetTechBaseMode(ctx, &mechlab.SetTechBaseModeInput{
		DraftID:   req.DraftID,
		SessionID: req.SessionID,
		Mode:      req.Mode,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetTechBaseModeResponse{
		Draft:       out.Draft,
		Corrections: out.Corrections,
	}, nil
}

// SetComponentTechBase retargets one subsystem
func (h *Handler) SetComponentTechBase(ctx context.Context, req *SetComponentTechBaseRequest) (*SetComponentTechBaseResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	out, err := h.service.SetComponentTechBase(ctx, &mechlab.SetComponentTechBaseInput{
		DraftID:   req.DraftID,
		SessionID: req.SessionID,
		Subsystem: req.Subsystem,
		TechBase:  req.TechBase,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetComponentTechBaseResponse{
		Draft:       out.Draft,
		Corrections: out.Corrections,
	}, nil
}

// ValidateDraft reports rule violations for a draft
func (h *Handler) ValidateDraft(ctx context.Context, req *ValidateDraftRequest) (*ValidateDraftResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	out, err := h.service.ValidateDraft(ctx, &mechlab.ValidateDraftInput{DraftID: req.DraftID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ValidateDraftResponse{Result: out.Result}, nil
}

// CalculateDraft returns a draft's derived statistics
func (h *Handler) CalculateDraft(ctx context.Context, req *CalculateDraftRequest) (*CalculateDraftResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	out, err := h.service.CalculateDraft(ctx, &mechlab.CalculateDraftInput{DraftID: req.DraftID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CalculateDraftResponse{Stats: out.Stats}, nil
}
