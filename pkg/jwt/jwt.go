package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an admin token. Expiry is the
// only invalidation mechanism; there is no revocation list.
const TokenTTL = 24 * time.Hour

// ErrNoSecret is returned when the manager was built without a
// signing secret. A missing secret must never silently accept tokens.
var ErrNoSecret = errors.New("jwt signing secret is not configured")

// Claims carried by an admin token.
type Claims struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations
type Manager struct {
	secret string
}

// NewManager creates new JWT manager
func NewManager(secret string) *Manager {
	return &Manager{secret: secret}
}

// Generate issues a 24-hour admin token. The system has exactly one
// principal, so id and role are fixed.
func (m *Manager) Generate(username string) (string, error) {
	if m.secret == "" {
		return "", ErrNoSecret
	}

	claims := Claims{
		ID:       1,
		Username: username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Validate checks signature and expiry and returns the parsed claims.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	if m.secret == "" {
		return nil, ErrNoSecret
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
