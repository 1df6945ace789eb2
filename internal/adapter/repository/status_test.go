package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"artisanmarket/pkg/errors"
)

func TestClassifyNotFound(t *testing.T) {
	err := classify("Conversation", status.Error(codes.NotFound, "missing"))
	assert.True(t, errors.IsNotFound(err))
}

func TestClassifyPermissionDenied(t *testing.T) {
	// Policy rejections must come back typed, not as empty data.
	err := classify("Seller records", status.Error(codes.PermissionDenied, "denied by rule"))
	assert.True(t, errors.IsPermissionDenied(err))
	assert.False(t, errors.IsNotFound(err))
}

func TestClassifyTransient(t *testing.T) {
	for _, code := range []codes.Code{codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted} {
		err := classify("Customer records", status.Error(code, "hiccup"))
		assert.True(t, errors.IsTransient(err), "code %v should classify as transient", code)
	}
}

func TestClassifyContextDeadline(t *testing.T) {
	err := classify("Messages", context.DeadlineExceeded)
	assert.True(t, errors.IsTransient(err))
}

func TestClassifyUnknown(t *testing.T) {
	err := classify("Messages", assert.AnError)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, classify("Messages", nil))
}
