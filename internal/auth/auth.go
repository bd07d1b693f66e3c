package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Authenticator interface {
	GenerateToken(subject string, ttl time.Duration) (string, error)
	ValidateToken(token string) (*jwt.Token, error)
}
