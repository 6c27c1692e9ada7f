package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// ResetPurpose scopes tokens to the password recovery flow.
	ResetPurpose = "email-recover"
	ResetMaxAge  = time.Hour

	issuer = "bloodbank"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secretKey string) *JWTService {
	return &JWTService{secretKey: []byte(secretKey)}
}

func (s *JWTService) GenerateResetToken(email string, expirationTime time.Time) (string, error) {
	if email == "" {
		return "", errors.New("email cannot be empty")
	}
	claims := Claims{
		Email:   email,
		Purpose: ResetPurpose,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateResetToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Email == "" || claims.Purpose != ResetPurpose || claims.Issuer != issuer {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
