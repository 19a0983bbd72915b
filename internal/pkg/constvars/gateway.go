package constvars

// Razorpay integration constants.
const (
	RazorpayOrdersPath = "/v1/orders"

	RazorpayOrderStatusCreated   = "created"
	RazorpayOrderStatusPaid      = "paid"
	RazorpayOrderStatusAttempted = "attempted"

	RazorpayEventPaymentCaptured = "payment.captured"
	RazorpayEventPaymentFailed   = "payment.failed"

	HeaderRazorpaySignature = "X-Razorpay-Signature"

	// Currencies with two decimal places are sent in minor units.
	GatewayMinorUnitFactor = 100

	GatewayDefaultCurrency = "INR"

	GatewayReceiptPrefix = "healiinn_rcpt"
)
