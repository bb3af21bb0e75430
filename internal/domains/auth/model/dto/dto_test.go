package dto_test

import (
	"encoding/json"
	"testing"

	"hotelier/internal/domains/auth/model/dto"
	customerDto "hotelier/internal/domains/customer/model/dto"
	"hotelier/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_ToModel(t *testing.T) {
	req := dto.SignupRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0101",
		Address:  "1 Seaside Ave",
		Password: "plaintext",
	}

	customer := req.ToModel("hashed-password")

	assert.Equal(t, req.Name, customer.Name)
	assert.Equal(t, req.Email, customer.Email)
	assert.Equal(t, req.Phone, customer.Phone)
	assert.Equal(t, req.Address, customer.Address)
	assert.Equal(t, "hashed-password", customer.Password, "model must carry the hash, not the plaintext")
	assert.Equal(t, constant.RoleCustomer, customer.Role, "signup must never grant a caller-chosen role")
}

func TestLoginResponse_JSONShape(t *testing.T) {
	t.Run("customer login omits the customers list", func(t *testing.T) {
		res := dto.LoginResponse{
			Message:  "Login successful.",
			Role:     constant.RoleCustomer,
			Token:    "token",
			Customer: &customerDto.CustomerResponse{ID: 42, Email: "jane@example.com"},
		}

		raw, err := json.Marshal(res)
		assert.NoError(t, err)

		assert.Contains(t, string(raw), `"customer"`)
		assert.NotContains(t, string(raw), `"customers"`)
	})

	t.Run("admin login omits the single customer", func(t *testing.T) {
		res := dto.LoginResponse{
			Message:   "Login successful.",
			Role:      constant.RoleAdmin,
			Token:     "token",
			Customers: []customerDto.CustomerResponse{{ID: 42}},
		}

		raw, err := json.Marshal(res)
		assert.NoError(t, err)

		assert.Contains(t, string(raw), `"customers"`)
		assert.NotContains(t, string(raw), `"customer":{`)
	})
}
