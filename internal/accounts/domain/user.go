package domain

import "time"

// DefaultRole is the baseline classification assigned at signup. It is
// embedded in issued tokens but never enforced by this service.
const DefaultRole = "user"

// User is one registered account. Records are created exactly once and never
// mutated or deleted by this service.
type User struct {
	ID           string
	Username     string // unique, doubles as the token subject
	Email        string // unique, alternate login identifier
	PasswordHash string // argon2id encoded, never serialized
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
