package service

import (
	"context"
	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/review/model/dto"
	"hotelier/internal/domains/review/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.CreateReviewResponse, error)
}

type serviceImpl struct {
	repo   repository.Review
	cfg    *config.Config
	otel   otel.Otel
	events kafka.Client
}

func New(repo repository.Review, cfg *config.Config, otel otel.Otel, events kafka.Client) Review {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		otel:   otel,
		events: events,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.CreateReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyCustomerID).(int64)
	if customerID == 0 {
		return res, failure.BadRequestFromString("Customer ID is missing in the request.") // nolint:wrapcheck
	}

	id, err := s.repo.Insert(ctx, req.ToModel(customerID))
	if err != nil || id == 0 {
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to save review")

		return res, failure.InternalErrorFromString("An error occurred while saving the review.")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishReviewCreated(c, id, req, customerID)
	}()

	res.Message = "Review added successfully!"
	res.ReviewID = id

	return res, nil
}

func (s *serviceImpl) publishReviewCreated(ctx context.Context, id int64, req dto.CreateReviewRequest, customerID int64) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := dto.ReviewCreatedEvent{
		ReviewID:   id,
		BookingID:  req.BookingID,
		CustomerID: customerID,
		Rating:     req.Rating,
		Comments:   req.Comments,
	}

	message := kafka.Message{
		Key:   shared.FormatID(id),
		Value: event,
	}

	if err := s.events.SendMessages(ctx, constant.KafkaTopicReviewCreated, message); err != nil {
		log.Error().Err(err).Int64("review_id", id).Msg("failed to publish review created event")
	}
}
