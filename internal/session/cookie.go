package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The cookie does not carry the bare session token: it carries the
// token wrapped in a signed claim, so a tampered cookie is rejected
// before any store lookup.

type cookieClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func SignToken(token string, secret []byte) (string, error) {
	claims := &cookieClaims{
		SessionID: token,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func VerifyToken(signed string, secret []byte) (string, error) {
	claims := &cookieClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session cookie")
	}
	return claims.SessionID, nil
}
