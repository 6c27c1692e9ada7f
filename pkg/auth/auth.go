// Package auth holds the account security primitives: bcrypt password
// hashes, signed password-reset tokens and cookie sessions.
package auth

import "time"

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

type JWTServiceInterface interface {
	GenerateResetToken(email string, expirationTime time.Time) (string, error)
	ValidateResetToken(tokenString string) (*Claims, error)
}
