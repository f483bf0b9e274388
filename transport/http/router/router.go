package router

import (
	"github.com/go-chi/chi/v5"

	"todoapp/internal/handlers/health"
	"todoapp/internal/handlers/todo"
	"todoapp/transport/http/middleware"
)

type DomainHandlers struct {
	Health health.Handler
	Todo   todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.Middleware.Cors())
	router.Use(r.Middleware.Tracing)
	router.Use(r.Middleware.RateLimit())

	r.DomainHandlers.Health.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Todo.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}
