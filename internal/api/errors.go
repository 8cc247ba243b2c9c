package api

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/driftpay/drift/internal/fault"
)

// rpcError translates a fault category into the one gRPC status code it maps
// to. Uncategorized errors surface as INTERNAL with a generic message so
// store internals never leak to clients.
func rpcError(err error) error {
	if err == nil {
		return nil
	}
	switch fault.CodeOf(err) {
	case fault.CodeNotFound:
		return status.Error(codes.NotFound, err.Error())
	case fault.CodeInvalidArgument:
		return status.Error(codes.InvalidArgument, err.Error())
	case fault.CodeFailedPrecondition:
		return status.Error(codes.FailedPrecondition, err.Error())
	case fault.CodeAlreadyExists:
		return status.Error(codes.AlreadyExists, err.Error())
	case fault.CodeDeadlineExceeded:
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
