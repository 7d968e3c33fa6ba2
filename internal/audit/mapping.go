// Package audit names the operation behind a gRPC method for access logs.
package audit

import "strings"

// ActionResource holds action and resource derived from a gRPC full method name.
type ActionResource struct {
	Action   string
	Resource string
}

// Methods whose resource is not the one their service name suggests.
const (
	identityRegister = "/identity.v1.IdentityService/Register"
	identityLogin    = "/identity.v1.IdentityService/Login"
	orchestratorReg  = "/invitation.v1.InvitationService/RegisterWithInvitation"
	orchestratorWS   = "/invitation.v1.InvitationService/CreateWorkspace"
	workspaceMember  = "/workspace.v1.WorkspaceService/GetUserMembership"
	workspaceMembers = "/workspace.v1.WorkspaceService/GetUserWorkspaces"
)

// ParseFullMethod returns action and resource for a gRPC full method
// (e.g. /invitation.v1.InvitationService/AcceptInvitation -> accept, invitation).
// Resource is derived from the service name.
func ParseFullMethod(fullMethod string) ActionResource {
	switch fullMethod {
	case identityRegister:
		return ActionResource{Action: "register", Resource: "user"}
	case identityLogin:
		return ActionResource{Action: "login", Resource: "user"}
	case orchestratorReg:
		return ActionResource{Action: "register", Resource: "invitation"}
	case orchestratorWS:
		return ActionResource{Action: "create", Resource: "workspace"}
	case workspaceMember, workspaceMembers:
		return ActionResource{Action: "get", Resource: "membership"}
	}
	// fullMethod format: /package.v1.ServiceName/MethodName
	slash := strings.LastIndex(fullMethod, "/")
	if slash < 0 {
		return ActionResource{Action: "unknown", Resource: "unknown"}
	}
	method := fullMethod[slash+1:]
	beforeSlash := fullMethod[:slash]
	dot := strings.LastIndex(beforeSlash, ".")
	if dot < 0 {
		return ActionResource{Action: strings.ToLower(method), Resource: "unknown"}
	}
	serviceName := beforeSlash[dot+1:]
	resource := serviceToResource(serviceName)
	action := methodToAction(method)
	return ActionResource{Action: action, Resource: resource}
}

func serviceToResource(serviceName string) string {
	// InvitationService -> invitation, WorkspaceService -> workspace
	s := strings.TrimSuffix(serviceName, "Service")
	if s == "" {
		return "unknown"
	}
	return strings.ToLower(s[0:1]) + s[1:]
}

func methodToAction(method string) string {
	switch {
	case strings.HasPrefix(method, "Get") && method != "Get":
		return "get"
	case strings.HasPrefix(method, "List"):
		return "list"
	case strings.HasPrefix(method, "Lookup"):
		return "lookup"
	case strings.HasPrefix(method, "Create"):
		return "create"
	case strings.HasPrefix(method, "Validate"):
		return "validate"
	case strings.HasPrefix(method, "Accept"):
		return "accept"
	case strings.HasPrefix(method, "Decline"):
		return "decline"
	case strings.HasPrefix(method, "Cancel"):
		return "cancel"
	case strings.HasPrefix(method, "Register"):
		return "register"
	default:
		return strings.ToLower(method)
	}
}
