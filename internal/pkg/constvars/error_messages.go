package constvars

// Client-facing messages. These are the only strings that ever leave the API
// inside an error envelope.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "Your session has expired, please log in again"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"
	ErrClientRequestNotFound               = "The requested service request could not be found"
	ErrClientRequestNotPayable             = "This request is not ready for payment yet"
	ErrClientPaymentOrderFailed            = "We could not start the payment, please try again"
	ErrClientPaymentVerificationFailed     = "Payment verification failed, no amount has been captured"
	ErrClientCancellationRejected          = "This request can no longer be cancelled"
	ErrClientCancelReasonRequired          = "A cancellation reason is required"
	ErrClientPrescriptionUploadFailed      = "The prescription could not be uploaded, please try again"
)

// Developer messages, logged but never returned to clients in production.
const (
	ErrDevValidationFailed            = "Input validation failed"
	ErrDevURLParamIDValidationFailed  = "URL parameter %s failed validation"
	ErrDevCannotParseJSON             = "Failed to parse JSON body"
	ErrDevCannotMarshalJSON           = "Failed to marshal value into JSON"
	ErrDevMissingRequestID            = "Request ID missing from context"
	ErrDevServerDeadlineExceeded      = "Handler deadline exceeded"
	ErrDevAuthTokenMissing            = "Authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired   = "Authorization token invalid or expired"
	ErrDevRequestNotFound             = "Service request document not found"
	ErrDevRequestNotOwnedByPatient    = "Service request does not belong to the requesting patient"
	ErrDevRequestNotAccepted          = "Service request is not in accepted status"
	ErrDevRequestNotPriced            = "Service request has no priced admin response"
	ErrDevPaymentOrderCreateFailed    = "Payment gateway order creation failed"
	ErrDevPaymentOrderMismatch        = "Gateway order id does not match the one issued for this request"
	ErrDevPaymentSignatureMismatch    = "Gateway payment signature verification failed"
	ErrDevPaymentConfirmLocked        = "Another verification for this payment is already in progress"
	ErrDevCancellationNotAllowed      = "Service request status is outside the cancellable set"
	ErrDevCancellationFulfilmentBegun = "Provider already started fulfilment for this request"
	ErrDevDBFailedToFindDocument      = "Database failed to find document"
	ErrDevDBFailedToInsertDocument    = "Database failed to insert document"
	ErrDevDBFailedToUpdateDocument    = "Database failed to update document"
	ErrDevDBFailedToIterateDocuments  = "Database failed to iterate documents"
	ErrDevDBFailedToFindData          = "Database failed to find data"
	ErrDevDBFailedToInsertData        = "Database failed to insert data"
	ErrDevDBFailedToIterateDataset    = "Database failed to iterate dataset"
	ErrDevRedisFailedToSetKey         = "Redis failed to set key"
	ErrDevRedisFailedToGetKey         = "Redis failed to get key"
	ErrDevRedisFailedToDeleteKey      = "Redis failed to delete key"
	ErrDevRedisFailedToSetNX          = "Redis failed to acquire SETNX lock"
	ErrDevQueueFailedToPublish        = "Message queue failed to publish"
	ErrDevMinioFailedToCreateObject   = "Minio failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject  = "Minio failed to presign object in bucket %s"
	ErrDevGatewayCallbackBadSignature = "Gateway callback signature verification failed"
	ErrDevGatewayCallbackUnknownOrder = "Gateway callback references an unknown order"
)

const ResponseUnknown = "unknown"
