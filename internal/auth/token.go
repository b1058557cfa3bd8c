package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/crimetrack/crimetrack-be/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed tokens, bad signatures, and claim
// mismatches. ErrExpiredToken is reported separately so callers can tell
// a stale session apart from a forged one.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carried inside a session token.
type Claims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed session tokens. Verification is
// stateless; there is no revocation list, so a token stays valid until it
// expires.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Generate issues a signed HS256 token for the given user.
func (t *TokenManager) Generate(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token string and returns its claims.
func (t *TokenManager) Verify(tokenString string) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if token.Method == nil || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}
	if !token.Valid || claims.UserID <= 0 {
		return Claims{}, ErrInvalidToken
	}
	if t.issuer != "" && claims.Issuer != t.issuer {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
