package routers

import (
	"healiinn-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// The callback route carries no patient session: the gateway authenticates
// itself with the webhook signature header instead.
func attachPaymentCallbackRoutes(router chi.Router, paymentController *controllers.PaymentController) {
	router.Post("/gateway/callback", paymentController.GatewayCallback)
}
