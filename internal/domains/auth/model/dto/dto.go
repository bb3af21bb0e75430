package dto

import (
	customerModel "hotelier/internal/domains/customer/model"
	customerDto "hotelier/internal/domains/customer/model/dto"
	"hotelier/shared/constant"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries exactly one of Customers (admin login) or Customer
// (customer login).
type LoginResponse struct {
	Message   string                         `json:"message"`
	Role      string                         `json:"role"`
	Token     string                         `json:"token"`
	Customers []customerDto.CustomerResponse `json:"customers,omitempty"`
	Customer  *customerDto.CustomerResponse  `json:"customer,omitempty"`
}

type SignupRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Phone    string `json:"phone"    validate:"required,max=20"`
	Address  string `json:"address"  validate:"omitempty,max=200"`
	Password string `json:"password" validate:"required,min=6"`
}

// ToModel builds the customer row for a self-service signup. The role is
// always "customer", never caller supplied.
func (r *SignupRequest) ToModel(hashedPassword string) customerModel.Customer {
	return customerModel.Customer{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Password: hashedPassword,
		Role:     constant.RoleCustomer,
	}
}

type SignupResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
