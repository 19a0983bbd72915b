package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingEndpointKey       = "endpoint"
	LoggingMethodKey         = "method"
	LoggingQueryKey          = "query"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingDurationKey       = "duration"
	LoggingStatusCodeKey     = "status_code"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingPatientIDKey      = "patient_id"
	LoggingServiceRequestKey = "service_request_id"
	LoggingOrderIDKey        = "order_id"
	LoggingGatewayOrderKey   = "gateway_order_id"
	LoggingGatewayPaymentKey = "gateway_payment_id"
	LoggingTransactionIDKey  = "transaction_id"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingQueueKey          = "queue"
	LoggingEventKey          = "event"
)
