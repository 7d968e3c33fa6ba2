package invitationv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"workspace-hub/backend/internal/platform/rpc"
)

const serviceName = "invitation.v1.InvitationService"

const (
	InvitationService_CreateInvitation_FullMethodName         = "/" + serviceName + "/CreateInvitation"
	InvitationService_GetInvitation_FullMethodName            = "/" + serviceName + "/GetInvitation"
	InvitationService_ValidateInvitation_FullMethodName       = "/" + serviceName + "/ValidateInvitation"
	InvitationService_AcceptInvitation_FullMethodName         = "/" + serviceName + "/AcceptInvitation"
	InvitationService_DeclineInvitation_FullMethodName        = "/" + serviceName + "/DeclineInvitation"
	InvitationService_CancelInvitation_FullMethodName         = "/" + serviceName + "/CancelInvitation"
	InvitationService_ListWorkspaceInvitations_FullMethodName = "/" + serviceName + "/ListWorkspaceInvitations"
	InvitationService_RegisterWithInvitation_FullMethodName   = "/" + serviceName + "/RegisterWithInvitation"
	InvitationService_CreateWorkspace_FullMethodName          = "/" + serviceName + "/CreateWorkspace"
)

// InvitationServiceServer is the server API for InvitationService.
type InvitationServiceServer interface {
	CreateInvitation(context.Context, *CreateInvitationRequest) (*CreateInvitationResponse, error)
	GetInvitation(context.Context, *GetInvitationRequest) (*GetInvitationResponse, error)
	ValidateInvitation(context.Context, *ValidateInvitationRequest) (*ValidateInvitationResponse, error)
	AcceptInvitation(context.Context, *AcceptInvitationRequest) (*AcceptInvitationResponse, error)
	DeclineInvitation(context.Context, *DeclineInvitationRequest) (*DeclineInvitationResponse, error)
	CancelInvitation(context.Context, *CancelInvitationRequest) (*CancelInvitationResponse, error)
	ListWorkspaceInvitations(context.Context, *ListWorkspaceInvitationsRequest) (*ListWorkspaceInvitationsResponse, error)
	RegisterWithInvitation(context.Context, *RegisterWithInvitationRequest) (*RegisterWithInvitationResponse, error)
	CreateWorkspace(context.Context, *CreateWorkspaceRequest) (*CreateWorkspaceResponse, error)
}

// UnimplementedInvitationServiceServer returns Unimplemented for every method.
type UnimplementedInvitationServiceServer struct{}

func (UnimplementedInvitationServiceServer) CreateInvitation(context.Context, *CreateInvitationRequest) (*CreateInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateInvitation not implemented")
}
func (UnimplementedInvitationServiceServer) GetInvitation(context.Context, *GetInvitationRequest) (*GetInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInvitation not implemented")
}
func (UnimplementedInvitationServiceServer) ValidateInvitation(context.Context, *ValidateInvitationRequest) (*ValidateInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateInvitation not implemented")
}
func (UnimplementedInvitationServiceServer) AcceptInvitation(context.Context, *AcceptInvitationRequest) (*AcceptInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AcceptInvitation not implemented")
}
func (UnimplementedInvitationServiceServer) DeclineInvitation(context.Context, *DeclineInvitationRequest) (*DeclineInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeclineInvitation not implemented")
}
func (UnimplementedInvitationServiceServer) CancelInvitation(context.Context, *CancelInvitationRequest) (*CancelInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelInvitation not implemented")
}
func (UnimplementedInvitationServiceServer) ListWorkspaceInvitations(context.Context, *ListWorkspaceInvitationsRequest) (*ListWorkspaceInvitationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListWorkspaceInvitations not implemented")
}
func (UnimplementedInvitationServiceServer) RegisterWithInvitation(context.Context, *RegisterWithInvitationRequest) (*RegisterWithInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterWithInvitation not implemented")
}
func (UnimplementedInvitationServiceServer) CreateWorkspace(context.Context, *CreateWorkspaceRequest) (*CreateWorkspaceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateWorkspace not implemented")
}

// InvitationService_ServiceDesc is the grpc.ServiceDesc for InvitationService.
var InvitationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*InvitationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateInvitation", Handler: rpc.UnaryMethod(InvitationService_CreateInvitation_FullMethodName, InvitationServiceServer.CreateInvitation)},
		{MethodName: "GetInvitation", Handler: rpc.UnaryMethod(InvitationService_GetInvitation_FullMethodName, InvitationServiceServer.GetInvitation)},
		{MethodName: "ValidateInvitation", Handler: rpc.UnaryMethod(InvitationService_ValidateInvitation_FullMethodName, InvitationServiceServer.ValidateInvitation)},
		{MethodName: "AcceptInvitation", Handler: rpc.UnaryMethod(InvitationService_AcceptInvitation_FullMethodName, InvitationServiceServer.AcceptInvitation)},
		{MethodName: "DeclineInvitation", Handler: rpc.UnaryMethod(InvitationService_DeclineInvitation_FullMethodName, InvitationServiceServer.DeclineInvitation)},
		{MethodName: "CancelInvitation", Handler: rpc.UnaryMethod(InvitationService_CancelInvitation_FullMethodName, InvitationServiceServer.CancelInvitation)},
		{MethodName: "ListWorkspaceInvitations", Handler: rpc.UnaryMethod(InvitationService_ListWorkspaceInvitations_FullMethodName, InvitationServiceServer.ListWorkspaceInvitations)},
		{MethodName: "RegisterWithInvitation", Handler: rpc.UnaryMethod(InvitationService_RegisterWithInvitation_FullMethodName, InvitationServiceServer.RegisterWithInvitation)},
		{MethodName: "CreateWorkspace", Handler: rpc.UnaryMethod(InvitationService_CreateWorkspace_FullMethodName, InvitationServiceServer.CreateWorkspace)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invitation/v1/invitation.go",
}

// RegisterInvitationServiceServer registers srv on s.
func RegisterInvitationServiceServer(s grpc.ServiceRegistrar, srv InvitationServiceServer) {
	s.RegisterService(&InvitationService_ServiceDesc, srv)
}

// InvitationServiceClient is the client API for InvitationService.
type InvitationServiceClient interface {
	CreateInvitation(ctx context.Context, in *CreateInvitationRequest, opts ...grpc.CallOption) (*CreateInvitationResponse, error)
	GetInvitation(ctx context.Context, in *GetInvitationRequest, opts ...grpc.CallOption) (*GetInvitationResponse, error)
	ValidateInvitation(ctx context.Context, in *ValidateInvitationRequest, opts ...grpc.CallOption) (*ValidateInvitationResponse, error)
	AcceptInvitation(ctx context.Context, in *AcceptInvitationRequest, opts ...grpc.CallOption) (*AcceptInvitationResponse, error)
	DeclineInvitation(ctx context.Context, in *DeclineInvitationRequest, opts ...grpc.CallOption) (*DeclineInvitationResponse, error)
	CancelInvitation(ctx context.Context, in *CancelInvitationRequest, opts ...grpc.CallOption) (*CancelInvitationResponse, error)
	ListWorkspaceInvitations(ctx context.Context, in *ListWorkspaceInvitationsRequest, opts ...grpc.CallOption) (*ListWorkspaceInvitationsResponse, error)
	RegisterWithInvitation(ctx context.Context, in *RegisterWithInvitationRequest, opts ...grpc.CallOption) (*RegisterWithInvitationResponse, error)
	CreateWorkspace(ctx context.Context, in *CreateWorkspaceRequest, opts ...grpc.CallOption) (*CreateWorkspaceResponse, error)
}

type invitationServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewInvitationServiceClient returns a client issuing commands over cc.
func NewInvitationServiceClient(cc grpc.ClientConnInterface) InvitationServiceClient {
	return &invitationServiceClient{cc: cc}
}

func (c *invitationServiceClient) CreateInvitation(ctx context.Context, in *CreateInvitationRequest, opts ...grpc.CallOption) (*CreateInvitationResponse, error) {
	return rpc.Invoke[CreateInvitationRequest, CreateInvitationResponse](ctx, c.cc, InvitationService_CreateInvitation_FullMethodName, in, opts...)
}

func (c *invitationServiceClient) GetInvitation(ctx context.Context, in *GetInvitationRequest, opts ...grpc.CallOption) (*GetInvitationResponse, error) {
	return rpc.Invoke[GetInvitationRequest, GetInvitationResponse](ctx, c.cc, InvitationService_GetInvitation_FullMethodName, in, opts...)
}

func (c *invitationServiceClient) ValidateInvitation(ctx context.Context, in *ValidateInvitationRequest, opts ...grpc.CallOption) (*ValidateInvitationResponse, error) {
	return rpc.Invoke[ValidateInvitationRequest, ValidateInvitationResponse](ctx, c.cc, InvitationService_ValidateInvitation_FullMethodName, in, opts...)
}

func (c *invitationServiceClient) AcceptInvitation(ctx context.Context, in *AcceptInvitationRequest, opts ...grpc.CallOption) (*AcceptInvitationResponse, error) {
	return rpc.Invoke[AcceptInvitationRequest, AcceptInvitationResponse](ctx, c.cc, InvitationService_AcceptInvitation_FullMethodName, in, opts...)
}

func (c *invitationServiceClient) DeclineInvitation(ctx context.Context, in *DeclineInvitationRequest, opts ...grpc.CallOption) (*DeclineInvitationResponse, error) {
	return rpc.Invoke[DeclineInvitationRequest, DeclineInvitationResponse](ctx, c.cc, InvitationService_DeclineInvitation_FullMethodName, in, opts...)
}

func (c *invitationServiceClient) CancelInvitation(ctx context.Context, in *CancelInvitationRequest, opts ...grpc.CallOption) (*CancelInvitationResponse, error) {
	return rpc.Invoke[CancelInvitationRequest, CancelInvitationResponse](ctx, c.cc, InvitationService_CancelInvitation_FullMethodName, in, opts...)
}

func (c *invitationServiceClient) ListWorkspaceInvitations(ctx context.Context, in *ListWorkspaceInvitationsRequest, opts ...grpc.CallOption) (*ListWorkspaceInvitationsResponse, error) {
	return rpc.Invoke[ListWorkspaceInvitationsRequest, ListWorkspaceInvitationsResponse](ctx, c.cc, InvitationService_ListWorkspaceInvitations_FullMethodName, in, opts...)
}

func (c *invitationServiceClient) RegisterWithInvitation(ctx context.Context, in *RegisterWithInvitationRequest, opts ...grpc.CallOption) (*RegisterWithInvitationResponse, error) {
	return rpc.Invoke[RegisterWithInvitationRequest, RegisterWithInvitationResponse](ctx, c.cc, InvitationService_RegisterWithInvitation_FullMethodName, in, opts...)
}

func (c *invitationServiceClient) CreateWorkspace(ctx context.Context, in *CreateWorkspaceRequest, opts ...grpc.CallOption) (*CreateWorkspaceResponse, error) {
	return rpc.Invoke[CreateWorkspaceRequest, CreateWorkspaceResponse](ctx, c.cc, InvitationService_CreateWorkspace_FullMethodName, in, opts...)
}
