package dto

import (
	"hotelier/internal/domains/review/model"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
)

type CreateReviewRequest struct {
	BookingID int64  `json:"bookingId" validate:"required"`
	Comments  string `json:"comments"  validate:"required"`
	Rating    int    `json:"rating"    validate:"required,gte=1,lte=5"`
}

// ToModel builds the review row for the authenticated customer.
func (c *CreateReviewRequest) ToModel(customerID int64) model.Review {
	return model.Review{
		BookingID:   c.BookingID,
		CustomerID:  customerID,
		Comments:    c.Comments,
		Rating:      c.Rating,
		CreatedDate: timezone.Now(),
	}
}

type ReviewResponse struct {
	ID          int64  `json:"id"`
	BookingID   int64  `json:"booking_id"`
	CustomerID  int64  `json:"customer_id"`
	Comments    string `json:"comments"`
	Rating      int    `json:"rating"`
	CreatedDate string `json:"created_date"`
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.CustomerID = model.CustomerID
	r.Comments = model.Comments
	r.Rating = model.Rating
	r.CreatedDate = timezone.Format(model.CreatedDate, constant.DateTimeFormat)
}

func FromModels(models []model.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

type CreateReviewResponse struct {
	Message  string `json:"message"`
	ReviewID int64  `json:"reviewId"`
}

// ReviewCreatedEvent is published to Kafka after a successful insert.
type ReviewCreatedEvent struct {
	ReviewID   int64  `json:"review_id"`
	BookingID  int64  `json:"booking_id"`
	CustomerID int64  `json:"customer_id"`
	Rating     int    `json:"rating"`
	Comments   string `json:"comments"`
}
