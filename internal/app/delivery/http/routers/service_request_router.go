package routers

import (
	"fmt"

	"healiinn-service/internal/app/delivery/http/controllers"
	"healiinn-service/internal/app/delivery/http/middlewares"
	"healiinn-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachServiceRequestRoutes(router chi.Router, middlewares *middlewares.Middlewares, serviceRequestController *controllers.ServiceRequestController, paymentController *controllers.PaymentController) {
	router.Use(middlewares.PatientSession)

	router.Get("/", serviceRequestController.FindAll)
	router.Post("/", serviceRequestController.Create)

	requestIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamRequestID)
	router.Route(requestIDPattern, func(r chi.Router) {
		r.Get("/", serviceRequestController.FindByID)
		r.Post("/cancel", serviceRequestController.Cancel)
		r.Post("/payment-order", paymentController.CreatePaymentOrder)
		r.Post("/payment-confirm", paymentController.ConfirmPayment)
	})
}
