// Package mechlab implements the mech lab orchestrator. It loads drafts and
// session selection memory from storage, applies builder and tech base
// operations, and writes the results back.
package mechlab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/builder"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/techbase"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/clock"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/idgen"
	mechdraft "github.com/SwiggitySwerve/megamek-web-sub007/internal/repositories/mech_draft"
	selectionmemory "github.com/SwiggitySwerve/megamek-web-sub007/internal/repositories/selection_memory"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/services/mechlab"
)

// Config holds the dependencies for the mech lab orchestrator
type Config struct {
	DraftRepo   mechdraft.Repository
	MemoryRepo  selectionmemory.Repository
	Engine      engine.Engine
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.MemoryRepo == nil {
		vb.RequiredField("MemoryRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the mechlab.Service interface
type Orchestrator struct {
	draftRepo   mechdraft.Repository
	memoryRepo  selectionmemory.Repository
	engine      engine.Engine
	idGenerator idgen.Generator
	clock       clock.Clock
}

// New creates a new mech lab orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		draftRepo:   cfg.DraftRepo,
		memoryRepo:  cfg.MemoryRepo,
		engine:      cfg.Engine,
		idGenerator: cfg.IDGenerator,
		clock:       cfg.Clock,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ mechlab.Service = (*Orchestrator)(nil)

// Draft lifecycle methods

// CreateDraft creates an empty draft for an owner
func (o *Orchestrator) CreateDraft(ctx context.Context, input *mechlab.CreateDraftInput) (*mechlab.CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	techBase := input.TechBase
	if techBase == "" {
		techBase = mech.TechBaseInnerSphere
	}

	d, err := builder.CreateEmpty(input.Tonnage, techBase)
	if err != nil {
		return nil, err
	}
	d.Name = input.Name
	if d.Name == "" {
		d.Name = fmt.Sprintf("New %d-ton Mech", input.Tonnage)
	}

	created, err := o.create(ctx, d, input.OwnerID, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &mechlab.CreateDraftOutput{Draft: created}, nil
}

// ImportUnit builds a draft from a serialized unit record
func (o *Orchestrator) ImportUnit(ctx context.Context, input *mechlab.ImportUnitInput) (*mechlab.ImportUnitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	d, err := builder.ImportUnit(input.Unit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to import unit %s", input.Unit.Name())
	}

	created, err := o.create(ctx, d, input.OwnerID, input.SessionID)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "unit imported",
		"draft_id", created.ID,
		"unit", input.Unit.Name(),
		"equipment", len(created.Equipment))

	return &mechlab.ImportUnitOutput{Draft: created}, nil
}

// create assigns identity and timestamps, stores the draft and seeds the
// session memory with its selections.
func (o *Orchestrator) create(ctx context.Context, d mech.Draft, ownerID, sessionID string) (*mech.Draft, error) {
	now := o.clock.Now().Unix()
	d.ID = o.idGenerator.Generate()
	d.OwnerID = ownerID
	d.SessionID = sessionID
	if d.SessionID == "" {
		d.SessionID = d.ID
	}
	d.CreatedAt = now
	d.UpdatedAt = now
	d.IsDirty = false

	out, err := o.draftRepo.Create(ctx, mechdraft.CreateInput{Draft: &d})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	memory := techbase.NewMemory()
	techbase.Remember(d, memory)
	if err := o.saveMemory(ctx, d.SessionID, memory); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "draft created",
		"draft_id", d.ID,
		"owner_id", ownerID,
		"tonnage", d.Tonnage,
		"tech_base", d.TechBase)

	return out.Draft, nil
}

// GetDraft retrieves a draft by ID
func (o *Orchestrator) GetDraft(ctx context.Context, input *mechlab.GetDraftInput) (*mechlab.GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	return &mechlab.GetDraftOutput{Draft: d}, nil
}

// ListDrafts lists an owner's drafts, most recently updated first
func (o *Orchestrator) ListDrafts(ctx context.Context, input *mechlab.ListDraftsInput) (*mechlab.ListDraftsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if input.Limit < 0 {
		vb.InvalidField("limit", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.draftRepo.ListByOwner(ctx, mechdraft.ListByOwnerInput{
		OwnerID: input.OwnerID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drafts")
	}

	return &mechlab.ListDraftsOutput{Drafts: out.Drafts}, nil
}

// DeleteDraft removes a draft and its session memory
func (o *Orchestrator) DeleteDraft(ctx context.Context, input *mechlab.DeleteDraftInput) (*mechlab.DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if _, err := o.draftRepo.Delete(ctx, mechdraft.DeleteInput{ID: d.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete draft")
	}

	session := sessionFor(d, "")
	if _, err := o.memoryRepo.Delete(ctx, selectionmemory.DeleteInput{SessionID: session}); err != nil {
		// the memory expires on its own
		slog.WarnContext(ctx, "failed to delete selection memory",
			"draft_id", d.ID,
			"session_id", session,
			"error", err)
	}

	return &mechlab.DeleteDraftOutput{
		Message: fmt.Sprintf("Draft %s deleted successfully", d.ID),
	}, nil
}

// Construction edit methods

// UpdateDraft applies a partial edit. Component picks are remembered for the
// draft's current tech bases.
func (o *Orchestrator) UpdateDraft(ctx context.Context, input *mechlab.UpdateDraftInput) (*mechlab.UpdateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Changes.IsEmpty() {
		return nil, errors.InvalidArgument("changes are required")
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	updated, err := builder.ApplyChanges(*d, input.Changes)
	if err != nil {
		logRejected(ctx, d.ID, err)
		return nil, err
	}

	if input.Changes.TouchesSelections() {
		if err := o.rememberSelections(ctx, updated, input.SessionID); err != nil {
			return nil, err
		}
	}

	saved, err := o.saveDraft(ctx, updated)
	if err != nil {
		return nil, err
	}

	return &mechlab.UpdateDraftOutput{Draft: saved}, nil
}

// SetEngine picks an engine type and optionally a new walk speed
func (o *Orchestrator) SetEngine(ctx context.Context, input *mechlab.SetEngineInput) (*mechlab.SetEngineOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("engineType", string(input.EngineType), vb)
	if input.WalkMP < 0 {
		vb.InvalidField("walkMP", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	var walk []int
	if input.WalkMP > 0 {
		walk = append(walk, input.WalkMP)
	}
	updated, err := builder.SetEngine(*d, input.EngineType, walk...)
	if err != nil {
		logRejected(ctx, d.ID, err)
		return nil, err
	}

	if err := o.rememberSelections(ctx, updated, input.SessionID); err != nil {
		return nil, err
	}

	saved, err := o.saveDraft(ctx, updated)
	if err != nil {
		return nil, err
	}

	return &mechlab.SetEngineOutput{Draft: saved}, nil
}

// SetArmor merges an armor allocation into the draft
func (o *Orchestrator) SetArmor(ctx context.Context, input *mechlab.SetArmorInput) (*mechlab.SetArmorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	for loc, v := range input.Armor {
		if !loc.IsValid() {
			vb.Fieldf("armor", "unknown location %q", loc)
		}
		if v.Front < 0 || v.Rear < 0 {
			vb.Fieldf("armor", "negative armor at %s", loc)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	saved, err := o.saveDraft(ctx, builder.SetArmor(*d, input.Armor))
	if err != nil {
		return nil, err
	}

	return &mechlab.SetArmorOutput{Draft: saved}, nil
}

// AddEquipment mounts a registered item in a location with a free slot
func (o *Orchestrator) AddEquipment(ctx context.Context, input *mechlab.AddEquipmentInput) (*mechlab.AddEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("equipmentID", input.EquipmentID, vb)
	if !input.Location.IsValid() {
		vb.InvalidField("location", fmt.Sprintf("unknown location %q", input.Location))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	lookup, err := o.engine.LookupEquipment(ctx, &engine.LookupEquipmentInput{EquipmentID: input.EquipmentID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up equipment")
	}
	if !lookup.Result.Found {
		return nil, errors.NotFoundf("equipment %s not found", input.EquipmentID)
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	room, err := o.engine.CanAddEquipment(ctx, &engine.CanAddEquipmentInput{
		Draft:       d,
		EquipmentID: input.EquipmentID,
		Location:    input.Location,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check location capacity")
	}
	if !room.Allowed {
		return nil, errors.FailedPreconditionf("%s has no free critical slots", input.Location)
	}

	saved, err := o.saveDraft(ctx, builder.AddEquipment(*d, input.EquipmentID, input.Location))
	if err != nil {
		return nil, err
	}

	return &mechlab.AddEquipmentOutput{Draft: saved}, nil
}

// RemoveEquipment removes the equipment entry at an index
func (o *Orchestrator) RemoveEquipment(ctx context.Context, input *mechlab.RemoveEquipmentInput) (*mechlab.RemoveEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	saved, err := o.saveDraft(ctx, builder.RemoveEquipment(*d, input.Index))
	if err != nil {
		return nil, err
	}

	return &mechlab.RemoveEquipmentOutput{Draft: saved}, nil
}

// Tech base methods

// SetTechBaseMode switches the draft's tech base mode, replacing selections
// that become illegal with remembered, current or default ones.
func (o *Orchestrator) SetTechBaseMode(ctx context.Context, input *mechlab.SetTechBaseModeInput) (*mechlab.SetTechBaseModeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Mode.IsValid() {
		return nil, errors.InvalidArgumentf("unknown tech base mode %q", input.Mode)
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	session := sessionFor(d, input.SessionID)
	memory, err := o.loadMemory(ctx, session)
	if err != nil {
		return nil, err
	}

	result, err := techbase.SetMode(*d, input.Mode, memory)
	if err != nil {
		return nil, err
	}

	if err := o.saveMemory(ctx, session, memory); err != nil {
		return nil, err
	}

	saved, err := o.saveDraft(ctx, result.Draft)
	if err != nil {
		return nil, err
	}

	logCorrections(ctx, saved.ID, result.Corrections)

	return &mechlab.SetTechBaseModeOutput{
		Draft:       saved,
		Corrections: result.Corrections,
	}, nil
}

// SetComponentTechBase retargets one subsystem. Selections are only
// corrected while the draft is in mixed mode.
func (o *Orchestrator) SetComponentTechBase(ctx context.Context, input *mechlab.SetComponentTechBaseInput) (*mechlab.SetComponentTechBaseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	session := sessionFor(d, input.SessionID)
	memory, err := o.loadMemory(ctx, session)
	if err != nil {
		return nil, err
	}

	result, err := techbase.SetComponentTechBase(*d, input.Subsystem, input.TechBase, memory)
	if err != nil {
		return nil, err
	}

	if err := o.saveMemory(ctx, session, memory); err != nil {
		return nil, err
	}

	saved, err := o.saveDraft(ctx, result.Draft)
	if err != nil {
		return nil, err
	}

	logCorrections(ctx, saved.ID, result.Corrections)

	return &mechlab.SetComponentTechBaseOutput{
		Draft:       saved,
		Corrections: result.Corrections,
	}, nil
}

// Evaluation methods

// ValidateDraft checks a stored draft against the construction rules
func (o *Orchestrator) ValidateDraft(ctx context.Context, input *mechlab.ValidateDraftInput) (*mechlab.ValidateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.ValidateDraft(ctx, &engine.ValidateDraftInput{Draft: d})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate draft")
	}

	return &mechlab.ValidateDraftOutput{Result: out.Result}, nil
}

// CalculateDraft derives weight, cost, heat, movement and battle value
func (o *Orchestrator) CalculateDraft(ctx context.Context, input *mechlab.CalculateDraftInput) (*mechlab.CalculateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.CalculateDraft(ctx, &engine.CalculateDraftInput{Draft: d})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate draft")
	}

	return &mechlab.CalculateDraftOutput{Stats: out.Stats}, nil
}

// Helpers

func (o *Orchestrator) loadDraft(ctx context.Context, draftID string) (*mech.Draft, error) {
	if draftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	out, err := o.draftRepo.Get(ctx, mechdraft.GetInput{ID: draftID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get draft")
	}

	return out.Draft, nil
}

func (o *Orchestrator) saveDraft(ctx context.Context, d mech.Draft) (*mech.Draft, error) {
	d.UpdatedAt = o.clock.Now().Unix()

	out, err := o.draftRepo.Update(ctx, mechdraft.UpdateInput{Draft: &d})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update draft")
	}

	return out.Draft, nil
}

func (o *Orchestrator) loadMemory(ctx context.Context, sessionID string) (*techbase.Memory, error) {
	out, err := o.memoryRepo.Get(ctx, selectionmemory.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load selection memory")
	}
	return out.Memory, nil
}

func (o *Orchestrator) saveMemory(ctx context.Context, sessionID string, memory *techbase.Memory) error {
	if _, err := o.memoryRepo.Save(ctx, selectionmemory.SaveInput{
		SessionID: sessionID,
		Memory:    memory,
	}); err != nil {
		return errors.Wrap(err, "failed to save selection memory")
	}
	return nil
}

// rememberSelections records the draft's current picks in its session memory
func (o *Orchestrator) rememberSelections(ctx context.Context, d mech.Draft, sessionID string) error {
	session := sessionFor(&d, sessionID)
	memory, err := o.loadMemory(ctx, session)
	if err != nil {
		return err
	}
	techbase.Remember(d, memory)
	return o.saveMemory(ctx, session, memory)
}

// sessionFor picks the explicit session, then the draft's, then the draft ID
func sessionFor(d *mech.Draft, sessionID string) string {
	switch {
	case sessionID != "":
		return sessionID
	case d.SessionID != "":
		return d.SessionID
	default:
		return d.ID
	}
}

func logCorrections(ctx context.Context, draftID string, corrections []techbase.Correction) {
	for _, c := range corrections {
		slog.InfoContext(ctx, "selection corrected for tech base",
			"draft_id", draftID,
			"category", c.Category,
			"tech_base", c.TechBase,
			"from", c.From,
			"to", c.To,
			"source", c.Source)
	}
}

// logRejected records construction failures; other errors are left to the caller
func logRejected(ctx context.Context, draftID string, err error) {
	code := errors.GetCode(err)
	if !code.IsConstruction() {
		return
	}
	slog.InfoContext(ctx, "draft edit rejected",
		"draft_id", draftID,
		"code", code.String(),
		"reasons", errors.GetReasons(err))
}
