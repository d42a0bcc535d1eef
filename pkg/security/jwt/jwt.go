package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sabin7k/ukstudy/pkg/auth"
)

type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

func (g *Generator) Generate(ctx context.Context, user auth.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		Username: user.Username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}
