package service

import (
	"context"
	"errors"

	"matchmaker/internal/sentinel"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/requestcontext"
)

// storeError translates a store failure into a domain error. Domain errors
// pass through unchanged.
func storeError(err error, notFoundMsg, op string) error {
	var de *dErrors.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, notFoundMsg)
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, op+": store unavailable")
	case errors.Is(err, sentinel.ErrInvalidInput):
		return dErrors.Wrap(err, dErrors.CodeInvariantViolation, op+": stored data is invalid")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, op+" failed")
	}
}

// engineError logs and counts invariant violations raised by the engine.
// They surface as internal errors, never as a failed match.
func (s *Service) engineError(ctx context.Context, err error, op string, attrs ...any) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		s.metrics.IncInvariantViolation(op)
		s.logger.ErrorContext(ctx, "preference set violates an invariant",
			append([]any{"operation", op, "request_id", requestcontext.RequestID(ctx), "error", err}, attrs...)...,
		)
	}
	return err
}
