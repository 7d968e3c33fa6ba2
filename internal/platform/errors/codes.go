package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// Validation errors
	CodeInvalidArgument         Code = "INVALID_ARGUMENT"
	CodeInvalidRole             Code = "INVALID_ROLE"
	CodeInvitationOwnerRole     Code = "INVITATION_OWNER_ROLE"
	CodeInviteeAlreadyMember    Code = "INVITEE_ALREADY_MEMBER"
	CodeInviteeInOtherWorkspace Code = "INVITEE_IN_OTHER_WORKSPACE"

	// Authentication errors
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"

	// Authorization errors
	CodeNotWorkspaceOwner Code = "NOT_WORKSPACE_OWNER"
	CodeEmailMismatch     Code = "EMAIL_MISMATCH"
	CodePermissionDenied  Code = "PERMISSION_DENIED"

	// Lookup errors
	CodeInvitationNotFound Code = "INVITATION_NOT_FOUND"
	CodeWorkspaceNotFound  Code = "WORKSPACE_NOT_FOUND"
	CodeUserNotFound       Code = "USER_NOT_FOUND"

	// State conflicts
	CodeInvitationPending         Code = "INVITATION_ALREADY_PENDING"
	CodeMembershipExists          Code = "MEMBERSHIP_EXISTS"
	CodeInvitationAlreadyAccepted Code = "INVITATION_ALREADY_ACCEPTED"
	CodeInvitationDeclined        Code = "INVITATION_DECLINED"
	CodeEmailAlreadyRegistered    Code = "EMAIL_ALREADY_REGISTERED"
	CodeWorkspaceSlugTaken        Code = "WORKSPACE_SLUG_TAKEN"

	// Time-to-live errors
	CodeInvitationExpired   Code = "INVITATION_EXPIRED"
	CodeInvitationCancelled Code = "INVITATION_CANCELLED"

	// Collaborator failures
	CodeTransportFailure Code = "TRANSPORT_FAILURE"
	CodeRateLimited      Code = "RATE_LIMITED"

	CodeInternal Code = "INTERNAL"
)

// Kind groups codes that boundaries treat the same way.
type Kind string

const (
	KindBadRequest       Kind = "BAD_REQUEST"
	KindUnauthenticated  Kind = "UNAUTHENTICATED"
	KindForbidden        Kind = "FORBIDDEN"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindExpired          Kind = "EXPIRED"
	KindTooManyRequests  Kind = "TOO_MANY_REQUESTS"
	KindTransportFailure Kind = "TRANSPORT_FAILURE"
	KindInternal         Kind = "INTERNAL"
)

// Kind returns the kind the code belongs to. Unknown codes are internal.
func (c Code) Kind() Kind {
	switch c {
	case CodeInvalidArgument,
		CodeInvalidRole,
		CodeInvitationOwnerRole,
		CodeInviteeAlreadyMember,
		CodeInviteeInOtherWorkspace:
		return KindBadRequest
	case CodeUnauthenticated,
		CodeInvalidCredentials:
		return KindUnauthenticated
	case CodeNotWorkspaceOwner,
		CodeEmailMismatch,
		CodePermissionDenied:
		return KindForbidden
	case CodeInvitationNotFound,
		CodeWorkspaceNotFound,
		CodeUserNotFound:
		return KindNotFound
	case CodeInvitationPending,
		CodeMembershipExists,
		CodeInvitationAlreadyAccepted,
		CodeInvitationDeclined,
		CodeEmailAlreadyRegistered,
		CodeWorkspaceSlugTaken:
		return KindConflict
	case CodeInvitationExpired,
		CodeInvitationCancelled:
		return KindExpired
	case CodeRateLimited:
		return KindTooManyRequests
	case CodeTransportFailure:
		return KindTransportFailure
	default:
		return KindInternal
	}
}

// Status returns the numeric status-like value for the kind.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return 400
	case KindUnauthenticated:
		return 401
	case KindForbidden:
		return 403
	case KindNotFound:
		return 404
	case KindConflict:
		return 409
	case KindExpired:
		return 410
	case KindTooManyRequests:
		return 429
	case KindTransportFailure:
		return 503
	default:
		return 500
	}
}

// GRPCCode maps the kind to a gRPC status code.
func (k Kind) GRPCCode() codes.Code {
	switch k {
	case KindBadRequest:
		return codes.InvalidArgument
	case KindUnauthenticated:
		return codes.Unauthenticated
	case KindForbidden:
		return codes.PermissionDenied
	case KindNotFound:
		return codes.NotFound
	case KindConflict:
		return codes.AlreadyExists
	case KindExpired:
		return codes.FailedPrecondition
	case KindTooManyRequests:
		return codes.ResourceExhausted
	case KindTransportFailure:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// Retryable reports whether a caller may retry the failed call later.
func (k Kind) Retryable() bool {
	return k == KindTransportFailure || k == KindTooManyRequests
}
