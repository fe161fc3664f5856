package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// MechLabServiceClient is the client API for the mech lab service
type MechLabServiceClient interface {
	CreateDraft(ctx context.Context, in *CreateDraftRequest, opts ...grpc.CallOption) (*CreateDraftResponse, error)
	ImportUnit(ctx context.Context, in *ImportUnitRequest, opts ...grpc.CallOption) (*ImportUnitResponse, error)
	GetDraft(ctx context.Context, in *GetDraftRequest, opts ...grpc.CallOption) (*GetDraftResponse, error)
	ListDrafts(ctx context.Context, in *ListDraftsRequest, opts ...grpc.CallOption) (*ListDraftsResponse, error)
	DeleteDraft(ctx context.Context, in *DeleteDraftRequest, opts ...grpc.CallOption) (*DeleteDraftResponse, error)
	UpdateDraft(ctx context.Context, in *UpdateDraftRequest, opts ...grpc.CallOption) (*UpdateDraftResponse, error)
	SetEngine(ctx context.Context, in *SetEngineRequest, opts ...grpc.CallOption) (*SetEngineResponse, error)
	SetArmor(ctx context.Context, in *SetArmorRequest, opts ...grpc.CallOption) (*SetArmorResponse, error)
	AddEquipment(ctx context.Context, in *AddEquipmentRequest, opts ...grpc.CallOption) (*AddEquipmentResponse, error)
	RemoveEquipment(ctx context.Context, in *RemoveEquipmentRequest, opts ...grpc.CallOption) (*RemoveEquipmentResponse, error)
	SetTechBaseMode(ctx context.Context, in *SetTechBaseModeRequest, opts ...grpc.CallOption) (*SetTechBaseModeResponse, error)
	SetComponentTechBase(ctx context.Context, in *SetComponentTechBaseRequest, opts ...grpc.CallOption) (*SetComponentTechBaseResponse, error)
	ValidateDraft(ctx context.Context, in *ValidateDraftRequest, opts ...grpc.CallOption) (*ValidateDraftResponse, error)
	CalculateDraft(ctx context.Context, in *CalculateDraftRequest, opts ...grpc.CallOption) (*CalculateDraftResponse, error)
}

type mechLabServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMechLabServiceClient returns a client that speaks the JSON codec over cc
func NewMechLabServiceClient(cc grpc.ClientConnInterface) MechLabServiceClient {
	return &mechLabServiceClient{cc: cc}
}

func (c *mechLabServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, FullMethod(method), in, out, opts...)
}

func (c *mechLabServiceClient) CreateDraft(ctx context.Context, in *CreateDraftRequest, opts ...grpc.CallOption) (*CreateDraftResponse, error) {
	out := new(CreateDraftResponse)
	if err := c.invoke(ctx, "CreateDraft", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) ImportUnit(ctx context.Context, in *ImportUnitRequest, opts ...grpc.CallOption) (*ImportUnitResponse, error) {
	out := new(ImportUnitResponse)
	if err := c.invoke(ctx, "ImportUnit", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) GetDraft(ctx context.Context, in *GetDraftRequest, opts ...grpc.CallOption) (*GetDraftResponse, error) {
	out := new(GetDraftResponse)
	if err := c.invoke(ctx, "GetDraft", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) ListDrafts(ctx context.Context, in *ListDraftsRequest, opts ...grpc.CallOption) (*ListDraftsResponse, error) {
	out := new(ListDraftsResponse)
	if err := c.invoke(ctx, "ListDrafts", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) DeleteDraft(ctx context.Context, in *DeleteDraftRequest, opts ...grpc.CallOption) (*DeleteDraftResponse, error) {
	out := new(DeleteDraftResponse)
	if err := c.invoke(ctx, "DeleteDraft", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) UpdateDraft(ctx context.Context, in *UpdateDraftRequest, opts ...grpc.CallOption) (*UpdateDraftResponse, error) {
	out := new(UpdateDraftResponse)
	if err := c.invoke(ctx, "UpdateDraft", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) SetEngine(ctx context.Context, in *SetEngineRequest, opts ...grpc.CallOption) (*SetEngineResponse, error) {
	out := new(SetEngineResponse)
	if err := c.invoke(ctx, "SetEngine", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) SetArmor(ctx context.Context, in *SetArmorRequest, opts ...grpc.CallOption) (*SetArmorResponse, error) {
	out := new(SetArmorResponse)
	if err := c.invoke(ctx, "SetArmor", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) AddEquipment(ctx context.Context, in *AddEquipmentRequest, opts ...grpc.CallOption) (*AddEquipmentResponse, error) {
	out := new(AddEquipmentResponse)
	if err := c.invoke(ctx, "AddEquipment", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) RemoveEquipment(ctx context.Context, in *RemoveEquipmentRequest, opts ...grpc.CallOption) (*RemoveEquipmentResponse, error) {
	out := new(RemoveEquipmentResponse)
	if err := c.invoke(ctx, "RemoveEquipment", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) SetTechBaseMode(ctx context.Context, in *SetTechBaseModeRequest, opts ...grpc.CallOption) (*SetTechBaseModeResponse, error) {
	out := new(SetTechBaseModeResponse)
	if err := c.invoke(ctx, "SetTechBaseMode", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) SetComponentTechBase(ctx context.Context, in *SetComponentTechBaseRequest, opts ...grpc.CallOption) (*SetComponentTechBaseResponse, error) {
	out := new(SetComponentTechBaseResponse)
	if err := c.invoke(ctx, "SetComponentTechBase", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) ValidateDraft(ctx context.Context, in *ValidateDraftRequest, opts ...grpc.CallOption) (*ValidateDraftResponse, error) {
	out := new(ValidateDraftResponse)
	if err := c.invoke(ctx, "ValidateDraft", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mechLabServiceClient) CalculateDraft(ctx context.Context, in *CalculateDraftRequest, opts ...grpc.CallOption) (*CalculateDraftResponse, error) {
	out := new(CalculateDraftResponse)
	if err := c.invoke(ctx, "CalculateDraft", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
