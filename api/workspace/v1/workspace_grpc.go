package workspacev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"workspace-hub/backend/internal/platform/rpc"
)

const serviceName = "workspace.v1.WorkspaceService"

// Full method names.
const (
	WorkspaceService_GetUserMembership_FullMethodName                 = "/" + serviceName + "/GetUserMembership"
	WorkspaceService_GetUserWorkspaces_FullMethodName                 = "/" + serviceName + "/GetUserWorkspaces"
	WorkspaceService_CreateInvitation_FullMethodName                  = "/" + serviceName + "/CreateInvitation"
	WorkspaceService_GetInvitationByToken_FullMethodName              = "/" + serviceName + "/GetInvitationByToken"
	WorkspaceService_ValidateInvitationForRegistration_FullMethodName = "/" + serviceName + "/ValidateInvitationForRegistration"
	WorkspaceService_AcceptInvitation_FullMethodName                  = "/" + serviceName + "/AcceptInvitation"
	WorkspaceService_DeclineInvitation_FullMethodName                 = "/" + serviceName + "/DeclineInvitation"
	WorkspaceService_GetWorkspaceInvitations_FullMethodName           = "/" + serviceName + "/GetWorkspaceInvitations"
	WorkspaceService_CancelInvitation_FullMethodName                  = "/" + serviceName + "/CancelInvitation"
	WorkspaceService_CreateWorkspace_FullMethodName                   = "/" + serviceName + "/CreateWorkspace"
	WorkspaceService_GetWorkspace_FullMethodName                      = "/" + serviceName + "/GetWorkspace"
)

// WorkspaceServiceServer is the server API for WorkspaceService.
type WorkspaceServiceServer interface {
	GetUserMembership(context.Context, *GetUserMembershipRequest) (*GetUserMembershipResponse, error)
	GetUserWorkspaces(context.Context, *GetUserWorkspacesRequest) (*GetUserWorkspacesResponse, error)
	CreateInvitation(context.Context, *CreateInvitationRequest) (*CreateInvitationResponse, error)
	GetInvitationByToken(context.Context, *GetInvitationByTokenRequest) (*GetInvitationByTokenResponse, error)
	ValidateInvitationForRegistration(context.Context, *ValidateInvitationForRegistrationRequest) (*ValidateInvitationForRegistrationResponse, error)
	AcceptInvitation(context.Context, *AcceptInvitationRequest) (*AcceptInvitationResponse, error)
	DeclineInvitation(context.Context, *DeclineInvitationRequest) (*DeclineInvitationResponse, error)
	GetWorkspaceInvitations(context.Context, *GetWorkspaceInvitationsRequest) (*GetWorkspaceInvitationsResponse, error)
	CancelInvitation(context.Context, *CancelInvitationRequest) (*CancelInvitationResponse, error)
	CreateWorkspace(context.Context, *CreateWorkspaceRequest) (*CreateWorkspaceResponse, error)
	GetWorkspace(context.Context, *GetWorkspaceRequest) (*GetWorkspaceResponse, error)
}

// UnimplementedWorkspaceServiceServer returns Unimplemented for every method.
type UnimplementedWorkspaceServiceServer struct{}

func (UnimplementedWorkspaceServiceServer) GetUserMembership(context.Context, *GetUserMembershipRequest) (*GetUserMembershipResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserMembership not implemented")
}
func (UnimplementedWorkspaceServiceServer) GetUserWorkspaces(context.Context, *GetUserWorkspacesRequest) (*GetUserWorkspacesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserWorkspaces not implemented")
}
func (UnimplementedWorkspaceServiceServer) CreateInvitation(context.Context, *CreateInvitationRequest) (*CreateInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateInvitation not implemented")
}
func (UnimplementedWorkspaceServiceServer) GetInvitationByToken(context.Context, *GetInvitationByTokenRequest) (*GetInvitationByTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInvitationByToken not implemented")
}
func (UnimplementedWorkspaceServiceServer) ValidateInvitationForRegistration(context.Context, *ValidateInvitationForRegistrationRequest) (*ValidateInvitationForRegistrationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateInvitationForRegistration not implemented")
}
func (UnimplementedWorkspaceServiceServer) AcceptInvitation(context.Context, *AcceptInvitationRequest) (*AcceptInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AcceptInvitation not implemented")
}
func (UnimplementedWorkspaceServiceServer) DeclineInvitation(context.Context, *DeclineInvitationRequest) (*DeclineInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeclineInvitation not implemented")
}
func (UnimplementedWorkspaceServiceServer) GetWorkspaceInvitations(context.Context, *GetWorkspaceInvitationsRequest) (*GetWorkspaceInvitationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetWorkspaceInvitations not implemented")
}
func (UnimplementedWorkspaceServiceServer) CancelInvitation(context.Context, *CancelInvitationRequest) (*CancelInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelInvitation not implemented")
}
func (UnimplementedWorkspaceServiceServer) CreateWorkspace(context.Context, *CreateWorkspaceRequest) (*CreateWorkspaceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateWorkspace not implemented")
}
func (UnimplementedWorkspaceServiceServer) GetWorkspace(context.Context, *GetWorkspaceRequest) (*GetWorkspaceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetWorkspace not implemented")
}

// WorkspaceService_ServiceDesc is the grpc.ServiceDesc for WorkspaceService.
var WorkspaceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*WorkspaceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetUserMembership", Handler: rpc.UnaryMethod(WorkspaceService_GetUserMembership_FullMethodName, WorkspaceServiceServer.GetUserMembership)},
		{MethodName: "GetUserWorkspaces", Handler: rpc.UnaryMethod(WorkspaceService_GetUserWorkspaces_FullMethodName, WorkspaceServiceServer.GetUserWorkspaces)},
		{MethodName: "CreateInvitation", Handler: rpc.UnaryMethod(WorkspaceService_CreateInvitation_FullMethodName, WorkspaceServiceServer.CreateInvitation)},
		{MethodName: "GetInvitationByToken", Handler: rpc.UnaryMethod(WorkspaceService_GetInvitationByToken_FullMethodName, WorkspaceServiceServer.GetInvitationByToken)},
		{MethodName: "ValidateInvitationForRegistration", Handler: rpc.UnaryMethod(WorkspaceService_ValidateInvitationForRegistration_FullMethodName, WorkspaceServiceServer.ValidateInvitationForRegistration)},
		{MethodName: "AcceptInvitation", Handler: rpc.UnaryMethod(WorkspaceService_AcceptInvitation_FullMethodName, WorkspaceServiceServer.AcceptInvitation)},
		{MethodName: "DeclineInvitation", Handler: rpc.UnaryMethod(WorkspaceService_DeclineInvitation_FullMethodName, WorkspaceServiceServer.DeclineInvitation)},
		{MethodName: "GetWorkspaceInvitations", Handler: rpc.UnaryMethod(WorkspaceService_GetWorkspaceInvitations_FullMethodName, WorkspaceServiceServer.GetWorkspaceInvitations)},
		{MethodName: "CancelInvitation", Handler: rpc.UnaryMethod(WorkspaceService_CancelInvitation_FullMethodName, WorkspaceServiceServer.CancelInvitation)},
		{MethodName: "CreateWorkspace", Handler: rpc.UnaryMethod(WorkspaceService_CreateWorkspace_FullMethodName, WorkspaceServiceServer.CreateWorkspace)},
		{MethodName: "GetWorkspace", Handler: rpc.UnaryMethod(WorkspaceService_GetWorkspace_FullMethodName, WorkspaceServiceServer.GetWorkspace)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "workspace/v1/workspace.go",
}

// RegisterWorkspaceServiceServer registers srv on s.
func RegisterWorkspaceServiceServer(s grpc.ServiceRegistrar, srv WorkspaceServiceServer) {
	s.RegisterService(&WorkspaceService_ServiceDesc, srv)
}

// WorkspaceServiceClient is the client API for WorkspaceService.
type WorkspaceServiceClient interface {
	GetUserMembership(ctx context.Context, in *GetUserMembershipRequest, opts ...grpc.CallOption) (*GetUserMembershipResponse, error)
	GetUserWorkspaces(ctx context.Context, in *GetUserWorkspacesRequest, opts ...grpc.CallOption) (*GetUserWorkspacesResponse, error)
	CreateInvitation(ctx context.Context, in *CreateInvitationRequest, opts ...grpc.CallOption) (*CreateInvitationResponse, error)
	GetInvitationByToken(ctx context.Context, in *GetInvitationByTokenRequest, opts ...grpc.CallOption) (*GetInvitationByTokenResponse, error)
	ValidateInvitationForRegistration(ctx context.Context, in *ValidateInvitationForRegistrationRequest, opts ...grpc.CallOption) (*ValidateInvitationForRegistrationResponse, error)
	AcceptInvitation(ctx context.Context, in *AcceptInvitationRequest, opts ...grpc.CallOption) (*AcceptInvitationResponse, error)
	DeclineInvitation(ctx context.Context, in *DeclineInvitationRequest, opts ...grpc.CallOption) (*DeclineInvitationResponse, error)
	GetWorkspaceInvitations(ctx context.Context, in *GetWorkspaceInvitationsRequest, opts ...grpc.CallOption) (*GetWorkspaceInvitationsResponse, error)
	CancelInvitation(ctx context.Context, in *CancelInvitationRequest, opts ...grpc.CallOption) (*CancelInvitationResponse, error)
	CreateWorkspace(ctx context.Context, in *CreateWorkspaceRequest, opts ...grpc.CallOption) (*CreateWorkspaceResponse, error)
	GetWorkspace(ctx context.Context, in *GetWorkspaceRequest, opts ...grpc.CallOption) (*GetWorkspaceResponse, error)
}

type workspaceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewWorkspaceServiceClient returns a client issuing commands over cc.
func NewWorkspaceServiceClient(cc grpc.ClientConnInterface) WorkspaceServiceClient {
	return &workspaceServiceClient{cc: cc}
}

func (c *workspaceServiceClient) GetUserMembership(ctx context.Context, in *GetUserMembershipRequest, opts ...grpc.CallOption) (*GetUserMembershipResponse, error) {
	return rpc.Invoke[GetUserMembershipRequest, GetUserMembershipResponse](ctx, c.cc, WorkspaceService_GetUserMembership_FullMethodName, in, opts...)
}

func (c *workspaceServiceClient) GetUserWorkspaces(ctx context.Context, in *GetUserWorkspacesRequest, opts ...grpc.CallOption) (*GetUserWorkspacesResponse, error) {
	return rpc.Invoke[GetUserWorkspacesRequest, GetUserWorkspacesResponse](ctx, c.cc, WorkspaceService_GetUserWorkspaces_FullMethodName, in, opts...)
}

func (c *workspaceServiceClient) CreateInvitation(ctx context.Context, in *CreateInvitationRequest, opts ...grpc.CallOption) (*CreateInvitationResponse, error) {
	return rpc.Invoke[CreateInvitationRequest, CreateInvitationResponse](ctx, c.cc, WorkspaceService_CreateInvitation_FullMethodName, in, opts...)
}

func (c *workspaceServiceClient) GetInvitationByToken(ctx context.Context, in *GetInvitationByTokenRequest, opts ...grpc.CallOption) (*GetInvitationByTokenResponse, error) {
	return rpc.Invoke[GetInvitationByTokenRequest, GetInvitationByTokenResponse](ctx, c.cc, WorkspaceService_GetInvitationByToken_FullMethodName, in, opts...)
}

func (c *workspaceServiceClient) ValidateInvitationForRegistration(ctx context.Context, in *ValidateInvitationForRegistrationRequest, opts ...grpc.CallOption) (*ValidateInvitationForRegistrationResponse, error) {
	return rpc.Invoke[ValidateInvitationForRegistrationRequest, ValidateInvitationForRegistrationResponse](ctx, c.cc, WorkspaceService_ValidateInvitationForRegistration_FullMethodName, in, opts...)
}

func (c *workspaceServiceClient) AcceptInvitation(ctx context.Context, in *AcceptInvitationRequest, opts ...grpc.CallOption) (*AcceptInvitationResponse, error) {
	return rpc.Invoke[AcceptInvitationRequest, AcceptInvitationResponse](ctx, c.cc, WorkspaceService_AcceptInvitation_FullMethodName, in, opts...)
}

func (c *workspaceServiceClient) DeclineInvitation(ctx context.Context, in *DeclineInvitationRequest, opts ...grpc.CallOption) (*DeclineInvitationResponse, error) {
	return rpc.Invoke[DeclineInvitationRequest, DeclineInvitationResponse](ctx, c.cc, WorkspaceService_DeclineInvitation_FullMethodName, in, opts...)
}

func (c *workspaceServiceClient) GetWorkspaceInvitations(ctx context.Context, in *GetWorkspaceInvitationsRequest, opts ...grpc.CallOption) (*GetWorkspaceInvitationsResponse, error) {
	return rpc.Invoke[GetWorkspaceInvitationsRequest, GetWorkspaceInvitationsResponse](ctx, c.cc, WorkspaceService_GetWorkspaceInvitations_FullMethodName, in, opts...)
}

func (c *workspaceServiceClient) CancelInvitation(ctx context.Context, in *CancelInvitationRequest, opts ...grpc.CallOption) (*CancelInvitationResponse, error) {
	return rpc.Invoke[CancelInvitationRequest, CancelInvitationResponse](ctx, c.cc, WorkspaceService_CancelInvitation_FullMethodName, in, opts...)
}

func (c *workspaceServiceClient) CreateWorkspace(ctx context.Context, in *CreateWorkspaceRequest, opts ...grpc.CallOption) (*CreateWorkspaceResponse, error) {
	return rpc.Invoke[CreateWorkspaceRequest, CreateWorkspaceResponse](ctx, c.cc, WorkspaceService_CreateWorkspace_FullMethodName, in, opts...)
}

func (c *workspaceServiceClient) GetWorkspace(ctx context.Context, in *GetWorkspaceRequest, opts ...grpc.CallOption) (*GetWorkspaceResponse, error) {
	return rpc.Invoke[GetWorkspaceRequest, GetWorkspaceResponse](ctx, c.cc, WorkspaceService_GetWorkspace_FullMethodName, in, opts...)
}
