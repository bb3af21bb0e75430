package model

import (
	"time"
)

const (
	TableName  = "booking"
	EntityName = "booking"

	FieldID           = "id"
	FieldCustomerID   = "customer_id"
	FieldNumOfRoom    = "num_of_room"
	FieldNumOfGuest   = "num_of_guest"
	FieldStatus       = "status"
	FieldCheckinDate  = "checkin_date"
	FieldCheckoutDate = "checkout_date"
	FieldRoomID       = "room_id"
	FieldCreatedDate  = "created_date"
	FieldModifiedDate = "modified_date"
)

type Booking struct {
	ID           int64     `db:"id"`
	CustomerID   int64     `db:"customer_id"`
	NumOfRoom    int       `db:"num_of_room"`
	NumOfGuest   int       `db:"num_of_guest"`
	Status       string    `db:"status"`
	CheckinDate  time.Time `db:"checkin_date"`
	CheckoutDate time.Time `db:"checkout_date"`
	RoomID       int64     `db:"room_id"`
	CreatedDate  time.Time `db:"created_date"`
	ModifiedDate time.Time `db:"modified_date"`
}
