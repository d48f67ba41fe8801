package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService verifies the bearer tokens minted by the hosted auth
// provider. The backend never issues sessions itself; CreateAccessToken
// exists for local development and tests.
type TokenService struct {
	Secret    []byte
	Issuer    string
	AccessTTL time.Duration
}

func (t TokenService) CreateAccessToken(userID, email string) (string, int64, error) {
	now := time.Now().UTC()
	exp := now.Add(t.AccessTTL)
	claims := jwt.MapClaims{
		"iss":   t.Issuer,
		"sub":   userID,
		"typ":   "access",
		"email": email,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.Secret)
	return signed, exp.Unix(), err
}

func (t TokenService) ParseToken(tokenStr string) (*jwt.Token, jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.Secret, nil
	}, jwt.WithIssuer(t.Issuer))
	return token, claims, err
}
