package contracts

import (
	"context"

	"healiinn-service/internal/pkg/dto/requests"
	"healiinn-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, request *requests.GatewayOrder) (*responses.GatewayOrder, error)
	// VerifyPaymentSignature checks the HMAC the gateway computed over
	// "orderID|paymentID" during checkout.
	VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool
	// VerifyWebhookSignature checks the HMAC over a raw callback body.
	VerifyWebhookSignature(body []byte, signature string) bool
	KeyID() string
}
