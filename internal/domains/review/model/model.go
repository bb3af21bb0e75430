package model

import (
	"time"
)

const (
	TableName  = "review"
	EntityName = "review"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldCustomerID  = "customer_id"
	FieldComments    = "comments"
	FieldRating      = "rating"
	FieldCreatedDate = "created_date"
)

type Review struct {
	ID          int64     `db:"id"`
	BookingID   int64     `db:"booking_id"`
	CustomerID  int64     `db:"customer_id"`
	Comments    string    `db:"comments"`
	Rating      int       `db:"rating"`
	CreatedDate time.Time `db:"created_date"`
}
