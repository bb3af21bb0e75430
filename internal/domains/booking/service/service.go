package service

import (
	"context"
	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBooking   = "booking:gets"
	cacheCustomerBooking = "booking:customer"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]dto.BookingResponse, error)
	GetByCustomer(ctx context.Context, params gDto.QueryParams) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	repo   repository.Booking
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	events kafka.Client
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, events kafka.Client) Booking {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		events: events,
	}
}

// Create inserts a booking for the authenticated customer. Event publishing
// and cache invalidation are best effort and never fail the request.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyCustomerID).(int64)

	booking, err := req.ToModel(customerID)
	if err != nil {
		log.Warn().Err(err).Msg("booking request with malformed dates")

		return res, failure.BadRequestFromString("All fields are required.") // nolint:wrapcheck
	}

	id, err := s.repo.Insert(ctx, booking)
	if err != nil || id == 0 {
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to book room")

		return res, failure.InternalErrorFromString("Failed to book room.")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheCustomerBooking, shared.FormatID(customerID)))

		s.publishBookingCreated(c, id, booking)
	}()

	res.Message = "Room booked successfully."
	res.BookingID = id

	return res, nil
}

func (s *serviceImpl) publishBookingCreated(ctx context.Context, id int64, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := dto.BookingCreatedEvent{
		BookingID:    id,
		CustomerID:   booking.CustomerID,
		RoomID:       booking.RoomID,
		NumOfRoom:    booking.NumOfRoom,
		NumOfGuest:   booking.NumOfGuest,
		Status:       booking.Status,
		CheckinDate:  booking.CheckinDate.Format(constant.DateFormat),
		CheckoutDate: booking.CheckoutDate.Format(constant.DateFormat),
	}

	message := kafka.Message{
		Key:   shared.FormatID(id),
		Value: event,
	}

	if err := s.events.SendMessages(ctx, constant.KafkaTopicBookingCreated, message); err != nil {
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to publish booking created event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, failure.InternalErrorFromString("Failed to fetch bookings.")
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByCustomer(ctx context.Context, params gDto.QueryParams) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCustomerBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyCustomerID).(int64)

	filter := shared.FilterByID(customerID, model.FieldCustomerID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheCustomerBooking, shared.FormatID(customerID)), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to get customer bookings")

		return res, failure.InternalErrorFromString("Failed to fetch bookings.")
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer bookings to cache")
		}
	}()

	return res, nil
}
