package service

import (
	"context"
	"errors"
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/auth/model/dto"
	customerModel "hotelier/internal/domains/customer/model"
	customerDto "hotelier/internal/domains/customer/model/dto"
	customerRepo "hotelier/internal/domains/customer/repository"
	staffModel "hotelier/internal/domains/staff/model"
	staffRepo "hotelier/internal/domains/staff/repository"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/password"
	gRepo "hotelier/shared/repository"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Signup(ctx context.Context, req dto.SignupRequest) (dto.SignupResponse, error)
}

type serviceImpl struct {
	customerRepo customerRepo.Customer
	staffRepo    staffRepo.Staff
	cfg          *config.Config
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(customerRepo customerRepo.Customer, staffRepo staffRepo.Staff, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		customerRepo: customerRepo,
		staffRepo:    staffRepo,
		cfg:          cfg,
		otel:         otel,
		jwtService:   jwt,
	}
}

// Login resolves the email against staff first, then customers. A staff match
// yields an admin token plus the full customer list; a customer match yields a
// customer token plus the single record.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	staffFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    staffModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    staffModel.TableName,
			},
		},
	}

	staff, err := s.staffRepo.Get(ctx, staffFilter)
	if err == nil {
		return s.loginAsAdmin(ctx, req, staff)
	}

	if !errors.Is(err, gRepo.ErrNotFound) {
		log.Error().Err(err).Msg("failed to look up staff account")

		return res, failure.InternalErrorFromString("Login failed.")
	}

	return s.loginAsCustomer(ctx, req)
}

func (s *serviceImpl) loginAsAdmin(ctx context.Context, req dto.LoginRequest, staff staffModel.Staff) (res dto.LoginResponse, err error) {
	if err := password.Verify(req.Password, staff.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("admin login attempt with wrong password")

		return res, failure.Unauthorized("Invalid credentials.") // nolint:wrapcheck
	}

	token, err := s.jwtService.GenerateToken(staff.ID, staff.Email, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate admin token")

		return res, failure.InternalErrorFromString("Login failed.")
	}

	customers, err := s.customerRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch customers for admin login")

		return res, failure.InternalErrorFromString("Login failed.")
	}

	res.Message = "Login successful."
	res.Role = constant.RoleAdmin
	res.Token = token
	res.Customers = customerDto.FromModels(customers)

	return res, nil
}

func (s *serviceImpl) loginAsCustomer(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	customerFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    customerModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    customerModel.TableName,
			},
		},
	}

	customer, err := s.customerRepo.Get(ctx, customerFilter)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

			return res, failure.NotFound("Customer not found.") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to look up customer account")

		return res, failure.InternalErrorFromString("Login failed.")
	}

	if err := password.Verify(req.Password, customer.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("Invalid credentials.") // nolint:wrapcheck
	}

	token, err := s.jwtService.GenerateToken(customer.ID, customer.Email, constant.RoleCustomer)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate customer token")

		return res, failure.InternalErrorFromString("Login failed.")
	}

	var record customerDto.CustomerResponse
	record.FromModel(customer)

	res.Message = "Login successful."
	res.Role = constant.RoleCustomer
	res.Token = token
	res.Customer = &record

	return res, nil
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (res dto.SignupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(err)

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, failure.InternalErrorFromString("Signup failed.")
	}

	id, err := s.customerRepo.Insert(ctx, req.ToModel(hashedPassword))
	if err != nil {
		log.Error().Err(err).Msg("failed to create customer account")

		return res, failure.InternalErrorFromString("Signup failed.")
	}

	token, err := s.jwtService.GenerateToken(id, req.Email, constant.RoleCustomer)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate signup token")

		return res, failure.InternalErrorFromString("Signup failed.")
	}

	res.Message = "Signup successful."
	res.Token = token

	return res, nil
}
