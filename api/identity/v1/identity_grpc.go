package identityv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"workspace-hub/backend/internal/platform/rpc"
)

const serviceName = "identity.v1.IdentityService"

const (
	IdentityService_LookupUserByEmail_FullMethodName = "/" + serviceName + "/LookupUserByEmail"
	IdentityService_LookupUserByID_FullMethodName    = "/" + serviceName + "/LookupUserByID"
	IdentityService_Register_FullMethodName          = "/" + serviceName + "/Register"
	IdentityService_Login_FullMethodName             = "/" + serviceName + "/Login"
)

// IdentityServiceServer is the server API for IdentityService.
type IdentityServiceServer interface {
	LookupUserByEmail(context.Context, *LookupUserByEmailRequest) (*LookupUserByEmailResponse, error)
	LookupUserByID(context.Context, *LookupUserByIDRequest) (*LookupUserByIDResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
}

// UnimplementedIdentityServiceServer returns Unimplemented for every method.
type UnimplementedIdentityServiceServer struct{}

func (UnimplementedIdentityServiceServer) LookupUserByEmail(context.Context, *LookupUserByEmailRequest) (*LookupUserByEmailResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LookupUserByEmail not implemented")
}
func (UnimplementedIdentityServiceServer) LookupUserByID(context.Context, *LookupUserByIDRequest) (*LookupUserByIDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LookupUserByID not implemented")
}
func (UnimplementedIdentityServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedIdentityServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

// IdentityService_ServiceDesc is the grpc.ServiceDesc for IdentityService.
var IdentityService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*IdentityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "LookupUserByEmail", Handler: rpc.UnaryMethod(IdentityService_LookupUserByEmail_FullMethodName, IdentityServiceServer.LookupUserByEmail)},
		{MethodName: "LookupUserByID", Handler: rpc.UnaryMethod(IdentityService_LookupUserByID_FullMethodName, IdentityServiceServer.LookupUserByID)},
		{MethodName: "Register", Handler: rpc.UnaryMethod(IdentityService_Register_FullMethodName, IdentityServiceServer.Register)},
		{MethodName: "Login", Handler: rpc.UnaryMethod(IdentityService_Login_FullMethodName, IdentityServiceServer.Login)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "identity/v1/identity.go",
}

// RegisterIdentityServiceServer registers srv on s.
func RegisterIdentityServiceServer(s grpc.ServiceRegistrar, srv IdentityServiceServer) {
	s.RegisterService(&IdentityService_ServiceDesc, srv)
}

// IdentityServiceClient is the client API for IdentityService.
type IdentityServiceClient interface {
	LookupUserByEmail(ctx context.Context, in *LookupUserByEmailRequest, opts ...grpc.CallOption) (*LookupUserByEmailResponse, error)
	LookupUserByID(ctx context.Context, in *LookupUserByIDRequest, opts ...grpc.CallOption) (*LookupUserByIDResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
}

type identityServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewIdentityServiceClient returns a client issuing commands over cc.
func NewIdentityServiceClient(cc grpc.ClientConnInterface) IdentityServiceClient {
	return &identityServiceClient{cc: cc}
}

func (c *identityServiceClient) LookupUserByEmail(ctx context.Context, in *LookupUserByEmailRequest, opts ...grpc.CallOption) (*LookupUserByEmailResponse, error) {
	return rpc.Invoke[LookupUserByEmailRequest, LookupUserByEmailResponse](ctx, c.cc, IdentityService_LookupUserByEmail_FullMethodName, in, opts...)
}

func (c *identityServiceClient) LookupUserByID(ctx context.Context, in *LookupUserByIDRequest, opts ...grpc.CallOption) (*LookupUserByIDResponse, error) {
	return rpc.Invoke[LookupUserByIDRequest, LookupUserByIDResponse](ctx, c.cc, IdentityService_LookupUserByID_FullMethodName, in, opts...)
}

func (c *identityServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return rpc.Invoke[RegisterRequest, RegisterResponse](ctx, c.cc, IdentityService_Register_FullMethodName, in, opts...)
}

func (c *identityServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return rpc.Invoke[LoginRequest, LoginResponse](ctx, c.cc, IdentityService_Login_FullMethodName, in, opts...)
}
