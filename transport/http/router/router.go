package router

import (
	"hotelier/internal/handlers/auth"
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/customer"
	"hotelier/internal/handlers/review"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Customer customer.Handler
	Booking  booking.Handler
	Review   review.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		response.WithPlainText(w, http.StatusOK, constant.RootBanner)
	})

	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Customer.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Review.Router(router)

	// Everything unmatched answers with the legacy plain-text fallback.
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithPlainText(w, http.StatusNotFound, constant.NotFoundResponse)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
