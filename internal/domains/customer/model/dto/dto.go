package dto

import (
	"hotelier/internal/domains/customer/model"
)

type AddCustomerRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Phone    string `json:"phone"    validate:"required,max=20"`
	Address  string `json:"address"  validate:"required,max=200"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=customer admin"`
}

func (r *AddCustomerRequest) ToModel(hashedPassword string) model.Customer {
	return model.Customer{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Password: hashedPassword,
		Role:     r.Role,
	}
}

// UpdateCustomerRequest carries the partial-update fields. The `db` tags are
// the update allow-list consumed by shared.TransformFields.
type UpdateCustomerRequest struct {
	Name    *string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Email   *string `db:"email"   json:"email"   validate:"omitempty,email,max=100"`
	Phone   *string `db:"phone"   json:"phone"   validate:"omitempty,max=20"`
	Address *string `db:"address" json:"address" validate:"omitempty,max=200"`
	Role    *string `db:"role"    json:"role"    validate:"omitempty,oneof=customer admin"`
}

// IsEmpty reports whether no updatable field was supplied.
func (r *UpdateCustomerRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil && r.Address == nil && r.Role == nil
}

// CustomerResponse is the customer record without the password hash.
type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.Role = model.Role
}

func FromModels(models []model.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

type AddCustomerResponse struct {
	Message    string `json:"message"`
	CustomerID int64  `json:"customerId"`
}
