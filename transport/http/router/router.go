package router

import (
	"risecheckout/internal/handlers/sales"
	"risecheckout/internal/handlers/timezone"
	"risecheckout/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type DomainHandlers struct {
	Sales    sales.Handler
	Timezone timezone.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.Recoverer,
		r.Middleware.Tracing,
		r.Middleware.CORS(),
		r.Middleware.RateLimit(),
	)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Sales.Router(routerGroup)
		r.DomainHandlers.Timezone.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
