package service

import (
	"context"
	"errors"
	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/customer/model"
	"hotelier/internal/domains/customer/model/dto"
	"hotelier/internal/domains/customer/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/password"
	gRepo "hotelier/shared/repository"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetCustomer    = "customer:get"
	cacheGetAllCustomer = "customer:gets"
)

type Customer interface {
	GetAll(ctx context.Context, params gDto.QueryParams) ([]dto.CustomerResponse, error)
	Get(ctx context.Context, id int64) (dto.CustomerResponse, error)
	Add(ctx context.Context, req dto.AddCustomerRequest) (dto.AddCustomerResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id int64) (string, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Customer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllCustomers")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCustomer, params, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customers")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, failure.InternalErrorFromString("Failed to fetch customers.")
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCustomer, shared.FormatID(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer")

		return res, nil
	}

	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			return res, failure.NotFound("Customer not found.") // nolint:wrapcheck
		}

		log.Error().Err(err).Int64("id", id).Msg("failed to get customer")

		return res, failure.InternalErrorFromString("Failed to retrieve customer.")
	}

	res.FromModel(customer)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddCustomerRequest) (res dto.AddCustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, failure.InternalErrorFromString("Failed to add customer.")
	}

	id, err := s.repo.Insert(ctx, req.ToModel(hashedPassword))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.BadRequestFromString("Email already in use.") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to add customer")

		return res, failure.InternalErrorFromString("Failed to add customer.")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
	}()

	res.Message = "Customer added successfully"
	res.CustomerID = id

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id int64) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return msg, failure.BadRequestFromString("At least one field is required to update.") // nolint:wrapcheck
	}

	callerID, _ := ctx.Value(constant.ContextKeyCustomerID).(int64)
	callerRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if callerRole != constant.RoleAdmin && callerID != id {
		return msg, failure.Forbidden("You are not authorized to update this customer.") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)

	affected, err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update customer")

		return msg, failure.InternalErrorFromString("Failed to update customer.")
	}

	if affected == 0 {
		return msg, failure.NotFound("Customer not found.") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheGetCustomer)
	}()

	if callerRole == constant.RoleAdmin {
		return "Customer updated successfully.", nil
	}

	return "Your data updated successfully.", nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete customer")

		return failure.InternalErrorFromString("Failed to delete customer.")
	}

	if affected == 0 {
		return failure.NotFound("Customer not found.") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheGetCustomer)
	}()

	return nil
}
