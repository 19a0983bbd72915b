package patientflow

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// ConfirmFunc asks the user to confirm a destructive action. Returning false
// aborts without error.
type ConfirmFunc func(ctx context.Context, view RequestView) (bool, error)

// CancellationCoordinator drives request cancellation: local precondition,
// user confirmation, server call, optimistic local removal.
type CancellationCoordinator struct {
	api     API
	store   *Store
	confirm ConfirmFunc
	log     *zap.Logger
}

func NewCancellationCoordinator(api API, store *Store, confirm ConfirmFunc, logger *zap.Logger) *CancellationCoordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CancellationCoordinator{
		api:     api,
		store:   store,
		confirm: confirm,
		log:     logger,
	}
}

// Cancellable reports whether the request can still be cancelled: pending
// and accepted always, confirmed only while no provider has accepted it.
func Cancellable(view RequestView) bool {
	switch view.Status {
	case StatusPending, StatusAccepted:
		return true
	case StatusConfirmed:
		return len(view.Orders) == 0
	default:
		return false
	}
}

// Cancel requests cancellation of the given request. A request outside the
// cancellable set is rejected before any network call. A declined
// confirmation returns (nil, nil) and touches nothing. On success the local
// view drops the request immediately; the next full fetch is authoritative.
func (c *CancellationCoordinator) Cancel(ctx context.Context, view RequestView, reason string) (*Request, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, &ValidationError{Message: "cancellation reason is required"}
	}
	if !Cancellable(view) {
		return nil, &ValidationError{Message: "request can no longer be cancelled"}
	}

	if c.confirm != nil {
		confirmed, err := c.confirm(ctx, view)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			return nil, nil
		}
	}

	cancelled, err := c.api.CancelRequest(ctx, view.ID, reason)
	if err != nil {
		c.log.Warn("cancellation rejected",
			zap.String("request_id", view.ID),
			zap.Error(err),
		)
		return nil, err
	}

	if c.store != nil {
		c.store.Remove(view.ID)
	}

	c.log.Info("request cancelled",
		zap.String("request_id", view.ID),
	)

	return cancelled, nil
}
