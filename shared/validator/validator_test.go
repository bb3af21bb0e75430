package validator_test

import (
	"hotelier/shared/validator"
	"strings"
	"testing"
)

type bookingPayload struct {
	RoomType string `validate:"required"                 json:"roomType"`
	Email    string `validate:"required,email"           json:"email"`
	Rating   int    `validate:"gte=1,lte=5"              json:"rating"`
	Status   string `validate:"oneof=Pending Confirmed"  json:"status"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingPayload
		expectError bool
	}{
		{
			name: "valid struct",
			data: &bookingPayload{
				RoomType: "Deluxe",
				Email:    "jane@example.com",
				Rating:   4,
				Status:   "Pending",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &bookingPayload{
				Email:  "jane@example.com",
				Rating: 4,
				Status: "Pending",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &bookingPayload{
				RoomType: "Deluxe",
				Email:    "not-an-email",
				Rating:   4,
				Status:   "Pending",
			},
			expectError: true,
		},
		{
			name: "rating out of range",
			data: &bookingPayload{
				RoomType: "Deluxe",
				Email:    "jane@example.com",
				Rating:   6,
				Status:   "Pending",
			},
			expectError: true,
		},
		{
			name: "invalid oneof value",
			data: &bookingPayload{
				RoomType: "Deluxe",
				Email:    "jane@example.com",
				Rating:   4,
				Status:   "Cancelled",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       3,
			tag:         "gte=1,lte=5",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       9,
			tag:         "gte=1,lte=5",
			expectError: true,
		},
		{
			name:        "empty custom tag accepts zero value",
			field:       "",
			tag:         "empty",
			expectError: false,
		},
		{
			name:        "empty custom tag rejects set value",
			field:       "something",
			tag:         "empty",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"roomType":"Deluxe","email":"jane@example.com","rating":4,"status":"Pending"}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"roomType":"Deluxe","email":"not-an-email","rating":4,"status":"Pending"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"roomType":"Deluxe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)

			var data bookingPayload
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &bookingPayload{}

	err := validator.ValidateStruct(data)
	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	if !strings.Contains(err.Error(), "required") {
		t.Errorf("expected message containing 'required', got: %s", err.Error())
	}
}
