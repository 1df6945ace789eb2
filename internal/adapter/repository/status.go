package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"artisanmarket/pkg/errors"
	"artisanmarket/pkg/logger"
)

// classify maps a raw backend error onto the store error taxonomy. Policy
// rejections are logged here so they cannot masquerade as empty data.
func classify(resource string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Transient(fmt.Sprintf("read of %s timed out", resource), err)
	}

	switch status.Code(err) {
	case codes.NotFound:
		return errors.NotFound(resource, err)
	case codes.PermissionDenied:
		logger.Error("Backing store rejected access to %s: %v", resource, err)
		return errors.PermissionDenied(fmt.Sprintf("store policy rejected access to %s", resource), err)
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return errors.Transient(fmt.Sprintf("backend unavailable reading %s", resource), err)
	}

	return errors.Internal(fmt.Sprintf("failed to read %s", resource), err)
}
