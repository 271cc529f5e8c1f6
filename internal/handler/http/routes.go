package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// actuator endpoints bypass the bearer-token boundary
	router.Route("/actuator", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/info", h.info)
	})

	router.Route("/api/customers", func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(h.authenticate, h.authorize)

		r.Get("/", h.listCustomers)
		r.Post("/", h.createCustomer)
		r.Get("/by-email", h.getCustomerByEmail)
		r.Get("/{id}", h.getCustomerByID)
		r.Put("/{id}", h.updateCustomer)
		r.Delete("/{id}", h.deleteCustomer)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
