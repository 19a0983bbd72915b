package contracts

import (
	"context"

	"healiinn-service/internal/pkg/dto/requests"
	"healiinn-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreatePaymentOrder(ctx context.Context, patientID, requestID string) (*responses.PaymentOrder, error)
	ConfirmPayment(ctx context.Context, patientID, requestID string, request *requests.ConfirmPayment) (*responses.ServiceRequest, error)
	GatewayCallback(ctx context.Context, rawBody []byte, signature string) error
}
