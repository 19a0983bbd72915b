package transactions

import (
	"context"
	"sync"

	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/app/models"
	"healiinn-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type transactionUsecase struct {
	TransactionRepository contracts.TransactionRepository
	Log                   *zap.Logger
}

var (
	transactionUsecaseInstance contracts.TransactionUsecase
	onceTransactionUsecase     sync.Once
)

func NewTransactionUsecase(transactionRepository contracts.TransactionRepository, logger *zap.Logger) contracts.TransactionUsecase {
	onceTransactionUsecase.Do(func() {
		instance := &transactionUsecase{
			TransactionRepository: transactionRepository,
			Log:                   logger,
		}
		transactionUsecaseInstance = instance
	})
	return transactionUsecaseInstance
}

func (uc *transactionUsecase) FindAllByPatient(ctx context.Context, patientID string) ([]models.Transaction, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Debug("transactionUsecase.FindAllByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	transactions, err := uc.TransactionRepository.FindAllByPatientID(ctx, patientID)
	if err != nil {
		uc.Log.Error("transactionUsecase.FindAllByPatient error fetching ledger",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return transactions, nil
}
