package models

import (
	"time"
)

// AuthProvider names how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User is the stored form of a user, including credentials that never leave the server.
type User struct {
	UserID         string       `json:"userID"`
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"`
	EmailVerified  bool         `json:"emailVerified"`
	CreatedAt      time.Time    `json:"createdAt"`
}
