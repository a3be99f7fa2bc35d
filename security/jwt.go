package security

import (
	"errors"
	"fmt"
	"time"

	"adviceglobe/globe-api/model"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure. Callers can't tell
// an expired token from a tampered one, which keeps the error surface
// uniform.
var ErrInvalidToken = errors.New("invalid token")

const tokenTTL = time.Hour * 24

// Claims is the signed credential payload. Expiry forces a re-login,
// there is no refresh.
type Claims struct {
	jwt.RegisteredClaims
	UserID string     `json:"user_id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
}

// TokenManager signs and verifies auth tokens with a process-wide
// secret loaded once at startup.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret can't be empty")
	}

	return &TokenManager{secret: []byte(secret)}, nil
}

func (tm *TokenManager) Issue(userID, email string, role model.Role) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	})

	return t.SignedString(tm.secret)
}

func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
