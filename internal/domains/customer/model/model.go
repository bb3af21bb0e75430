package model

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldAddress  = "address"
	FieldPassword = "password"
	FieldRole     = "role"
)

type Customer struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	Address  string `db:"address"`
	Password string `db:"password"`
	Role     string `db:"role"`
}
