package constvars

const (
	MongoCollectionServiceRequests = "service_requests"
	MongoCollectionOrders          = "orders"
)
