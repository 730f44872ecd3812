package model

import "time"

// User is an account that owns catalog and favorites records.
// Corresponds to a row in the `users` table.
type User struct {
	ID           string    // users.id (uuid)
	Email        string    // users.email, stored lower-cased
	PasswordHash string    // users.password_hash (bcrypt)
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
