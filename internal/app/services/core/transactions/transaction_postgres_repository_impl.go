package transactions

import (
	"context"
	"database/sql"
	"time"

	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/app/models"
	"healiinn-service/internal/pkg/exceptions"
	"healiinn-service/internal/pkg/queries"

	"github.com/google/uuid"
)

type transactionPostgresRepository struct {
	DB *sql.DB
}

func NewTransactionPostgresRepository(db *sql.DB) contracts.TransactionRepository {
	return &transactionPostgresRepository{
		DB: db,
	}
}

func (repo *transactionPostgresRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.Transaction, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetTransactionsByPatientID, patientID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var model models.Transaction
		if err := rows.Scan(
			&model.ID,
			&model.RequestID,
			&model.PatientID,
			&model.GatewayOrderID,
			&model.GatewayPaymentID,
			&model.PaymentMethod,
			&model.Amount,
			&model.Currency,
			&model.Status,
			&model.CreatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		transactions = append(transactions, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return transactions, nil
}

func (repo *transactionPostgresRepository) FindByRequestAndGatewayOrder(ctx context.Context, requestID, gatewayOrderID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := repo.DB.QueryRowContext(ctx, queries.GetTransactionByRequestAndGatewayOrder, requestID, gatewayOrderID).Scan(
		&transaction.ID,
		&transaction.RequestID,
		&transaction.PatientID,
		&transaction.GatewayOrderID,
		&transaction.GatewayPaymentID,
		&transaction.PaymentMethod,
		&transaction.Amount,
		&transaction.Currency,
		&transaction.Status,
		&transaction.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &transaction, nil
}

func (repo *transactionPostgresRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	}
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now().UTC()
	}

	_, err := repo.DB.ExecContext(ctx, queries.InsertTransaction,
		transaction.ID,
		transaction.RequestID,
		transaction.PatientID,
		transaction.GatewayOrderID,
		transaction.GatewayPaymentID,
		transaction.PaymentMethod,
		transaction.Amount,
		transaction.Currency,
		transaction.Status,
		transaction.CreatedAt,
	)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return transaction, nil
}
