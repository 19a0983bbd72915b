package routers

import (
	"fmt"
	"time"

	"healiinn-service/internal/app/config"
	"healiinn-service/internal/app/delivery/http/controllers"
	"healiinn-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	serviceRequestController *controllers.ServiceRequestController,
	paymentController *controllers.PaymentController,
	orderController *controllers.OrderController,
	transactionController *controllers.TransactionController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/requests", func(r chi.Router) {
				attachServiceRequestRoutes(r, middlewares, serviceRequestController, paymentController)
			})

			r.Route("/orders", func(r chi.Router) {
				attachOrderRoutes(r, middlewares, orderController)
			})

			r.Route("/transactions", func(r chi.Router) {
				attachTransactionRoutes(r, middlewares, transactionController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentCallbackRoutes(r, paymentController)
			})
		})
	})
}
