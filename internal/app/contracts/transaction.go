package contracts

import (
	"context"

	"healiinn-service/internal/app/models"
)

type TransactionUsecase interface {
	FindAllByPatient(ctx context.Context, patientID string) ([]models.Transaction, error)
}

// TransactionRepository is append-only: ledger rows are never updated or
// deleted once written.
type TransactionRepository interface {
	FindAllByPatientID(ctx context.Context, patientID string) ([]models.Transaction, error)
	FindByRequestAndGatewayOrder(ctx context.Context, requestID, gatewayOrderID string) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
}
