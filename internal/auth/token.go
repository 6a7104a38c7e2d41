package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken issues an HS256 access token carrying the user id and role.
func NewAccessToken(secret string, userID int, role string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{
		"sub":  float64(userID),
		"role": role,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ParseAccessToken verifies the signature and expiry and returns the user
// id and role embedded in the token.
func ParseAccessToken(secret, tokenString string) (int, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	return int(sub), role, nil
}
