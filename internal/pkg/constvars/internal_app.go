package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_PATIENT_ID_KEY           contextKey = "patient_id"
)

const (
	URLParamRequestID = "requestID"
	URLParamOrderID   = "orderID"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"
)
