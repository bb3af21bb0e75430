package booking

import (
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/customers/book-room", handler.BookRoom)
	r.Get("/admin/booking", handler.GetAllBookings)
	r.Get("/customer/booking", handler.GetCustomerBookings)
}

// BookRoom creates a booking for the authenticated customer.
// @Summary Book a room
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse "Room booked"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /customers/book-room [post]
// @Security BearerAuth
func (handler *Handler) BookRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking request")

		response.WithError(w, failure.BadRequestFromString("All fields are required."))

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room booked")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetAllBookings lists every booking. Admin only.
// @Summary List all bookings
// @Tags Booking
// @Produce json
// @Success 200 {array} dto.BookingResponse "List of bookings"
// @Failure 500 {object} response.Error
// @Router /admin/booking [get]
// @Security BearerAuth
func (handler *Handler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCustomerBookings lists the authenticated customer's bookings.
// @Summary List my bookings
// @Tags Booking
// @Produce json
// @Success 200 {array} dto.BookingResponse "List of bookings"
// @Failure 500 {object} response.Error
// @Router /customer/booking [get]
// @Security BearerAuth
func (handler *Handler) GetCustomerBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	res, err := handler.service.GetByCustomer(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
