package model

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
)

type Staff struct {
	ID       int64  `db:"id"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Role     string `db:"role"`
}
