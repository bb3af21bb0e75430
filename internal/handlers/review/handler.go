package review

import (
	"hotelier/infras/otel"
	"hotelier/internal/domains/review/model/dto"
	"hotelier/internal/domains/review/service"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/customers/add", handler.AddReview)
}

// AddReview stores a review for a booking by the authenticated customer.
// @Summary Add a review
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} dto.CreateReviewResponse "Review added"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /customers/add [post]
// @Security BearerAuth
func (handler *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate review request")

		response.WithError(w, failure.BadRequestFromString("All fields are required."))

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review added")

	response.WithJSON(w, http.StatusCreated, res)
}
