package errors

import (
	"context"
	stderrors "errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain attached to every status produced by this module.
const Domain = "workspace-hub"

// metadataStatus is the ErrorInfo metadata key carrying the numeric status.
const metadataStatus = "status"

// ToGRPCStatus converts the error to a gRPC status with an ErrorInfo detail.
// Reason holds the code; metadata holds the numeric status plus the error's own metadata.
func (e *Error) ToGRPCStatus() error {
	grpcCode := e.Kind().GRPCCode()
	st := status.New(grpcCode, e.Error())

	meta := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		meta[k] = v
	}
	meta[metadataStatus] = strconv.Itoa(e.Status())

	withDetails, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   Domain,
		Metadata: meta,
	})
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// ToGRPC converts any error into a gRPC status error. Domain errors keep their code;
// context errors become Canceled/DeadlineExceeded; anything else is Internal with a generic message.
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}
	if e := As(err); e != nil {
		return e.ToGRPCStatus()
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case stderrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	}
	return New(CodeInternal, "internal error").ToGRPCStatus()
}

// FromGRPC rebuilds a domain error from a gRPC call error.
// Statuses carrying an ErrorInfo from this domain keep their code. Otherwise Unavailable,
// DeadlineExceeded and Canceled become TransportFailure, and the remaining codes map to the
// closest generic code.
func FromGRPC(err error) error {
	if err == nil {
		return nil
	}
	if e := As(err); e != nil {
		return e
	}
	st, ok := status.FromError(err)
	if !ok {
		if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
			return Wrap(CodeTransportFailure, "collaborator call timed out", err)
		}
		return Wrap(CodeTransportFailure, "collaborator call failed", err)
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		var meta map[string]string
		for k, v := range info.GetMetadata() {
			if k == metadataStatus {
				continue
			}
			if meta == nil {
				meta = make(map[string]string)
			}
			meta[k] = v
		}
		return &Error{Code: Code(info.GetReason()), Message: st.Message(), Metadata: meta}
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return Wrap(CodeTransportFailure, st.Message(), err)
	case codes.InvalidArgument:
		return New(CodeInvalidArgument, st.Message())
	case codes.Unauthenticated:
		return New(CodeUnauthenticated, st.Message())
	case codes.PermissionDenied:
		return New(CodePermissionDenied, st.Message())
	case codes.ResourceExhausted:
		return New(CodeRateLimited, st.Message())
	default:
		return Wrap(CodeInternal, st.Message(), err)
	}
}
