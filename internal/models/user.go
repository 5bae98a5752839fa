package models

import "time"

type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
)

// User is local-only or Google-only: exactly one of PasswordHash and
// GoogleID is set, matching the users_one_credential constraint.
type User struct {
	ID             int64
	Username       string
	Email          string
	PasswordHash   []byte
	GoogleID       *string
	ProfilePicture *string
	AuthProvider   AuthProvider
	CreatedAt      time.Time
}
