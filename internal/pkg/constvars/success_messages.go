package constvars

const (
	SuccessListServiceRequests = "Successfully fetched service requests"
	SuccessGetServiceRequest   = "Successfully fetched service request"
	SuccessCreateRequest       = "Successfully submitted service request"
	SuccessListOrders          = "Successfully fetched orders"
	SuccessListTransactions    = "Successfully fetched transactions"
	SuccessCreatePaymentOrder  = "Successfully created payment order"
	SuccessConfirmPayment      = "Payment verified successfully"
	SuccessCancelRequest       = "Service request cancelled"
	SuccessGatewayCallback     = "Callback processed"
)
