package contracts

import (
	"context"

	"healiinn-service/internal/app/models"
)

// ProviderNotifier pushes lifecycle events to matched providers. The service
// only triggers the notification; delivery is owned by the downstream
// consumer of the queue.
type ProviderNotifier interface {
	PublishPaymentConfirmed(ctx context.Context, request *models.ServiceRequest, transaction *models.Transaction) error
	PublishRequestCancelled(ctx context.Context, request *models.ServiceRequest) error
}
