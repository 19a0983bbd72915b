package config

type InternalConfig struct {
	App            App
	JWT            AppJWT
	PaymentGateway AppPaymentGateway
	ProviderQueue  AppProviderQueue
}

type App struct {
	Env                         string
	Port                        string
	Version                     string
	EndpointPrefix              string
	Timezone                    string
	MaxRequests                 int
	ShutdownTimeoutInSeconds    int
	RequestTimeoutInSeconds     int
	PaymentLockTimeoutInSeconds int
	PrescriptionURLExpiryHours  int
}

type AppJWT struct {
	Secret string
}

type AppPaymentGateway struct {
	BaseUrl                 string
	KeyID                   string
	KeySecret               string
	WebhookSecret           string
	Currency                string
	RequestTimeoutInSeconds int
	// MaxRequestsPerSecond throttles outbound order creation calls.
	MaxRequestsPerSecond int
}

type AppProviderQueue struct {
	QueueName           string
	DeadLetterQueueName string
	Prefetch            int
}
