package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	kafkaMocks "hotelier/infras/kafka/mocks"
	"hotelier/infras/otel/mocks"
	reviewMocks "hotelier/internal/domains/review/mocks"
	"hotelier/internal/domains/review/model"
	"hotelier/internal/domains/review/model/dto"
	"hotelier/internal/domains/review/service"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

func TestReviewService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockOtel := mocks.NewOtel()
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true

	svc := service.New(mockRepo, cfg, mockOtel, mockKafka)

	req := dto.CreateReviewRequest{
		BookingID: 5,
		Comments:  "Great stay",
		Rating:    5,
	}

	tests := []struct {
		name       string
		customerID int64
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantMsg    string
	}{
		{
			name:       "successful review",
			customerID: 42,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Review) (int64, error) {
						assert.Equal(t, int64(42), m.CustomerID)
						assert.Equal(t, int64(5), m.BookingID)

						return int64(3), nil
					})

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), constant.KafkaTopicReviewCreated, gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantMsg: "Review added successfully!",
		},
		{
			name:       "missing identity",
			customerID: 0,
			setupMock:  func() {},
			wantErr:    true,
			wantCode:   400,
			wantMsg:    "Customer ID is missing in the request.",
		},
		{
			name:       "repository error",
			customerID: 42,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
			wantMsg:  "An error occurred while saving the review.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			if tt.customerID != 0 {
				ctx = context.WithValue(ctx, constant.ContextKeyCustomerID, tt.customerID)
			}

			res, err := svc.Create(ctx, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, tt.wantMsg, err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMsg, res.Message)
				assert.Equal(t, int64(3), res.ReviewID)
			}
		})
	}
}
