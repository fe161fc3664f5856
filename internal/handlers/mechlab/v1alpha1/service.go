package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "mechlab.v1alpha1.MechLabService"

// MechLabServiceServer is the server API for the mech lab service
type MechLabServiceServer interface {
	CreateDraft(context.Context, *CreateDraftRequest) (*CreateDraftResponse, error)
	ImportUnit(context.Context, *ImportUnitRequest) (*ImportUnitResponse, error)
	GetDraft(context.Context, *GetDraftRequest) (*GetDraftResponse, error)
	ListDrafts(context.Context, *ListDraftsRequest) (*ListDraftsResponse, error)
	DeleteDraft(context.Context, *DeleteDraftRequest) (*DeleteDraftResponse, error)
	UpdateDraft(context.Context, *UpdateDraftRequest) (*UpdateDraftResponse, error)
	SetEngine(context.Context, *SetEngineRequest) (*SetEngineResponse, error)
	SetArmor(context.Context, *SetArmorRequest) (*SetArmorResponse, error)
	AddEquipment(context.Context, *AddEquipmentRequest) (*AddEquipmentResponse, error)
	RemoveEquipment(context.Context, *RemoveEquipmentRequest) (*RemoveEquipmentResponse, error)
	SetTechBaseMode(context.Context, *SetTechBaseModeRequest) (*SetTechBaseModeResponse, error)
	SetComponentTechBase(context.Context, *SetComponentTechBaseRequest) (*SetComponentTechBaseResponse, error)
	ValidateDraft(context.Context, *ValidateDraftRequest) (*ValidateDraftResponse, error)
	CalculateDraft(context.Context, *CalculateDraftRequest) (*CalculateDraftResponse, error)
}

// MechLabService_ServiceDesc describes the service for grpc.Server
var MechLabService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MechLabServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateDraft", MechLabServiceServer.CreateDraft),
		unary("ImportUnit", MechLabServiceServer.ImportUnit),
		unary("GetDraft", MechLabServiceServer.GetDraft),
		unary("ListDrafts", MechLabServiceServer.ListDrafts),
		unary("DeleteDraft", MechLabServiceServer.DeleteDraft),
		unary("UpdateDraft", MechLabServiceServer.UpdateDraft),
		unary("SetEngine", MechLabServiceServer.SetEngine),
		unary("SetArmor", MechLabServiceServer.SetArmor),
		unary("AddEquipment", MechLabServiceServer.AddEquipment),
		unary("RemoveEquipment", MechLabServiceServer.RemoveEquipment),
		unary("SetTechBaseMode", MechLabServiceServer.SetTechBaseMode),
		unary("SetComponentTechBase", MechLabServiceServer.SetComponentTechBase),
		unary("ValidateDraft", MechLabServiceServer.ValidateDraft),
		unary("CalculateDraft", MechLabServiceServer.CalculateDraft),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterMechLabServiceServer registers the service implementation
func RegisterMechLabServiceServer(s grpc.ServiceRegistrar, srv MechLabServiceServer) {
	s.RegisterService(&MechLabService_ServiceDesc, srv)
}

// FullMethod returns the wire path of a method, e.g.
// "/mechlab.v1alpha1.MechLabService/GetDraft".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary adapts a typed server method to a grpc.MethodDesc, decoding the
// request and running the server's interceptor chain.
func unary[Req, Resp any](name string, call func(MechLabServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := FullMethod(name)
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MechLabServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(MechLabServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
