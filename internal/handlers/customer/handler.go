package customer

import (
	"hotelier/infras/otel"
	"hotelier/internal/domains/customer/model/dto"
	"hotelier/internal/domains/customer/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/customers", handler.GetCustomers)
	r.Post("/customers", handler.AddCustomer)
	r.Get("/customers/{id}", handler.GetCustomer)
	r.Put("/customers/{id}", handler.UpdateCustomer)
	r.Delete("/customers/{id}", handler.DeleteCustomer)
}

func (handler *Handler) customerID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("Invalid customer id.") // nolint:wrapcheck
	}

	return id, nil
}

// GetCustomers lists every customer record.
// @Summary List customers
// @Tags Customer
// @Produce json
// @Success 200 {array} dto.CustomerResponse "List of customers"
// @Failure 500 {object} response.Error
// @Router /customers [get]
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCustomer retrieves one customer by id.
// @Summary Get a customer
// @Tags Customer
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse "Customer record"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /customers/{id} [get]
func (handler *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomer")
	defer scope.End()

	id, err := handler.customerID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddCustomer creates a customer record from the admin-facing form.
// @Summary Add a customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.AddCustomerRequest true "Add Customer Request"
// @Success 201 {object} dto.AddCustomerResponse "Customer added"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /customers [post]
func (handler *Handler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCustomer")
	defer scope.End()

	req := dto.AddCustomerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Add(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer added")

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateCustomer applies a partial update to a customer record. Non-admin
// callers may only update their own record.
// @Summary Update a customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body dto.UpdateCustomerRequest true "Update Customer Request"
// @Success 200 {object} response.Message "Customer updated"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /customers/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomer")
	defer scope.End()

	id, err := handler.customerID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateCustomerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	msg, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer updated")

	response.WithMessage(w, http.StatusOK, msg)
}

// DeleteCustomer removes a customer record by id.
// @Summary Delete a customer
// @Tags Customer
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} response.Message "Customer deleted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /customers/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCustomer")
	defer scope.End()

	id, err := handler.customerID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer deleted")

	response.WithMessage(w, http.StatusOK, "Customer deleted successfully.")
}
