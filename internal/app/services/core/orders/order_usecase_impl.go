package orders

import (
	"context"
	"sync"

	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/app/models"
	"healiinn-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type orderUsecase struct {
	OrderRepository contracts.OrderRepository
	Log             *zap.Logger
}

var (
	orderUsecaseInstance contracts.OrderUsecase
	onceOrderUsecase     sync.Once
)

func NewOrderUsecase(orderRepository contracts.OrderRepository, logger *zap.Logger) contracts.OrderUsecase {
	onceOrderUsecase.Do(func() {
		instance := &orderUsecase{
			OrderRepository: orderRepository,
			Log:             logger,
		}
		orderUsecaseInstance = instance
	})
	return orderUsecaseInstance
}

func (uc *orderUsecase) FindAllByPatient(ctx context.Context, patientID string) ([]models.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Debug("orderUsecase.FindAllByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	orders, err := uc.OrderRepository.FindAllByPatientID(ctx, patientID)
	if err != nil {
		uc.Log.Error("orderUsecase.FindAllByPatient error fetching orders",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return orders, nil
}
