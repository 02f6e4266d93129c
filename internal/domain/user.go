package domain

// User represents an application account. Field names follow the wire
// schema the frontend already speaks (nombre/apellido/ci/telefono).
type User struct {
	ID       string
	Nombre   string
	Apellido string
	Email    string

	// CI is the citizen id used as the login identifier. Unique across
	// all accounts, enforced by a storage index.
	CI string

	// PasswordHash is a bcrypt hash. Raw passwords are never stored.
	PasswordHash string

	Telefono string
	IsAdmin  bool
}

// UserUpdate carries the optional fields of a user update. Nil fields
// are left untouched.
type UserUpdate struct {
	Nombre       *string
	Apellido     *string
	Email        *string
	Telefono     *string
	PasswordHash *string
}
