package dto

import (
	"hotelier/internal/domains/booking/model"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
	"time"
)

type CreateBookingRequest struct {
	NumOfRoom    int    `json:"num_of_room"   validate:"required,gte=1"`
	NumOfGuest   int    `json:"num_of_guest"  validate:"required,gte=1"`
	CheckinDate  string `json:"checkin_date"  validate:"required"`
	CheckoutDate string `json:"checkout_date" validate:"required"`
	RoomID       int64  `json:"room_id"       validate:"required"`
}

// ToModel builds the booking row for the authenticated customer. The customer
// id always comes from the verified identity, never from the request body.
func (c *CreateBookingRequest) ToModel(customerID int64) (model.Booking, error) {
	checkin, err := time.Parse(constant.DateFormat, c.CheckinDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkout, err := time.Parse(constant.DateFormat, c.CheckoutDate)
	if err != nil {
		return model.Booking{}, err
	}

	now := timezone.Now()

	return model.Booking{
		CustomerID:   customerID,
		NumOfRoom:    c.NumOfRoom,
		NumOfGuest:   c.NumOfGuest,
		Status:       constant.BookingStatusPending,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		RoomID:       c.RoomID,
		CreatedDate:  now,
		ModifiedDate: now,
	}, nil
}

type BookingResponse struct {
	ID           int64  `json:"id"`
	CustomerID   int64  `json:"customer_id"`
	NumOfRoom    int    `json:"num_of_room"`
	NumOfGuest   int    `json:"num_of_guest"`
	Status       string `json:"status"`
	CheckinDate  string `json:"checkin_date"`
	CheckoutDate string `json:"checkout_date"`
	RoomID       int64  `json:"room_id"`
	CreatedDate  string `json:"created_date"`
	ModifiedDate string `json:"modified_date"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.NumOfRoom = model.NumOfRoom
	r.NumOfGuest = model.NumOfGuest
	r.Status = model.Status
	r.CheckinDate = model.CheckinDate.Format(constant.DateFormat)
	r.CheckoutDate = model.CheckoutDate.Format(constant.DateFormat)
	r.RoomID = model.RoomID
	r.CreatedDate = timezone.Format(model.CreatedDate, constant.DateTimeFormat)
	r.ModifiedDate = timezone.Format(model.ModifiedDate, constant.DateTimeFormat)
}

func FromModels(models []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"bookingId"`
}

// BookingCreatedEvent is published to Kafka after a successful insert.
type BookingCreatedEvent struct {
	BookingID    int64  `json:"booking_id"`
	CustomerID   int64  `json:"customer_id"`
	RoomID       int64  `json:"room_id"`
	NumOfRoom    int    `json:"num_of_room"`
	NumOfGuest   int    `json:"num_of_guest"`
	Status       string `json:"status"`
	CheckinDate  string `json:"checkin_date"`
	CheckoutDate string `json:"checkout_date"`
}
