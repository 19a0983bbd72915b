package routers

import (
	"healiinn-service/internal/app/delivery/http/controllers"
	"healiinn-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTransactionRoutes(router chi.Router, middlewares *middlewares.Middlewares, transactionController *controllers.TransactionController) {
	router.Use(middlewares.PatientSession)

	router.Get("/", transactionController.FindAll)
}
