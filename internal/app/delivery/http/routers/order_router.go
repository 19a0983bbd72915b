package routers

import (
	"healiinn-service/internal/app/delivery/http/controllers"
	"healiinn-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachOrderRoutes(router chi.Router, middlewares *middlewares.Middlewares, orderController *controllers.OrderController) {
	router.Use(middlewares.PatientSession)

	router.Get("/", orderController.FindAll)
}
