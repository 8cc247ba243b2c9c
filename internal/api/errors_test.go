package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/driftpay/drift/internal/fault"
)

func TestRPCErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not found", fault.New(fault.CodeNotFound, "account x not found"), codes.NotFound},
		{"invalid argument", fault.New(fault.CodeInvalidArgument, "amount must be > 0"), codes.InvalidArgument},
		{"failed precondition", fault.New(fault.CodeFailedPrecondition, "insufficient funds"), codes.FailedPrecondition},
		{"already exists", fault.New(fault.CodeAlreadyExists, "key collision"), codes.AlreadyExists},
		{"deadline exceeded", fault.New(fault.CodeDeadlineExceeded, "timed out"), codes.DeadlineExceeded},
		{"uncategorized", errors.New("disk on fire"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(rpcError(tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.want, st.Code())
		})
	}
}

func TestRPCErrorFindsCodeThroughWrapping(t *testing.T) {
	inner := fault.New(fault.CodeFailedPrecondition, "insufficient funds")
	wrapped := fmt.Errorf("reserve: %w", inner)

	st, _ := status.FromError(rpcError(wrapped))
	assert.Equal(t, codes.FailedPrecondition, st.Code())
}

func TestRPCErrorHidesInternalDetails(t *testing.T) {
	st, _ := status.FromError(rpcError(errors.New("pq: connection refused")))
	assert.Equal(t, "internal error", st.Message())
}

func TestRPCErrorNil(t *testing.T) {
	assert.NoError(t, rpcError(nil))
}
