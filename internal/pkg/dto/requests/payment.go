package requests

// ConfirmPayment is submitted by the client after the gateway success
// callback fires.
type ConfirmPayment struct {
	PaymentID     string `json:"paymentId" validate:"required"`
	OrderID       string `json:"orderId" validate:"required"`
	Signature     string `json:"signature" validate:"required"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// GatewayOrder is what the payment gateway client sends to the gateway API
// when creating an order. AmountMinor is in the currency's minor unit.
type GatewayOrder struct {
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
}

// GatewayCallback is the server-to-server webhook body pushed by the gateway.
// Only the fields the reconciliation path reads are modeled.
type GatewayCallback struct {
	Event   string                 `json:"event"`
	Payload GatewayCallbackPayload `json:"payload"`
}

type GatewayCallbackPayload struct {
	Payment GatewayCallbackPayment `json:"payment"`
}

type GatewayCallbackPayment struct {
	Entity GatewayPaymentEntity `json:"entity"`
}

type GatewayPaymentEntity struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Method  string `json:"method"`
}
