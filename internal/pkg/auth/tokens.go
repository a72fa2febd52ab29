package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned when a presented token is past its expiry.
var ErrTokenExpired = errors.New("token expired")

// UserClaims are the JWT claims carried by an access token.
// UserID is the string form of the user's UUID.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// GenerateUserJWT issues an HS256 access token for the given user id.
func GenerateUserJWT(userID string, expire time.Duration, key []byte) (string, error) {
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %w", err)
	}
	return tokenString, nil
}

// ValidateUserJWT parses and validates an access token, returning its claims.
func ValidateUserJWT(tokenString string, key []byte) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, new(UserClaims), func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
