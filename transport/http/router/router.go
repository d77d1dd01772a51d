package router

import (
	"github.com/go-chi/chi/v5"

	"medibook/internal/handlers/booking"
	"medibook/internal/handlers/doctor"
	"medibook/internal/handlers/health"
	"medibook/internal/handlers/payment"
	"medibook/internal/handlers/verification"
	"medibook/transport/http/middleware"
)

type DomainHandlers struct {
	Health       health.Handler
	Doctor       doctor.Handler
	Booking      booking.Handler
	Verification verification.Handler
	Payment      payment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.Tracing)
	router.Use(r.App.RateLimit())

	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Doctor.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Verification.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
