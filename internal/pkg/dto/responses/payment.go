package responses

// PaymentOrder is returned by the payment-order endpoint. Amount is in the
// gateway's minor currency unit, derived server-side from the authoritative
// total at creation time.
type PaymentOrder struct {
	OrderID      string `json:"orderId"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	GatewayKeyID string `json:"gatewayKeyId"`
}

// GatewayOrder is the gateway API's view of a created order.
type GatewayOrder struct {
	OrderID     string `json:"id"`
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
}
